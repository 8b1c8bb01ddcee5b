// Package hash provides fast, non-cryptographic hashing for short integer
// keys such as grid cell coordinates.
//
// # Fx hash
//
// Cell keys are a handful of int32 values. General purpose byte hashers
// (CRC, xxHash, SipHash) spend most of their time on setup and tail handling
// for inputs this small. The Fx scheme processes one word per step:
//
//	h = (rotl(h, 5) ^ word) * 0x517cc1b727220a95
//
// # Usage
//
//	h := hash.Cell([]int32{3, -1, 7})
//
// Distinct keys may collide. Tables built on top of Cell must compare the
// stored coordinates before treating a hit as a match.
package hash
