package hash

import "math/bits"

// seed is the multiplier used by the Fx family of hashers (rustc, Firefox).
const seed = 0x517cc1b727220a95

// Cell hashes a short signed-integer coordinate tuple.
//
// Each component is folded into the state with a rotate, xor and multiply.
// This is not collision resistant; callers must compare the full key on a
// hash hit.
func Cell(coords []int32) uint64 {
	var h uint64
	for _, c := range coords {
		h = (bits.RotateLeft64(h, 5) ^ uint64(uint32(c))) * seed
	}
	return h
}

