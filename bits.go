// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package mpu6050

// Bit-field helpers shared by every register accessor. Bits are numbered
// 0 (LSB) to 7. Fields are (start, length) with start+length <= 8; that
// bound is a caller precondition, not checked here.

// getBit returns bit n of b as 0 or 1.
func getBit(b byte, n byte) byte {
	return (b >> n) & 0x01
}

// setBit clears bit n of *b and sets it again when v is true. All other
// bits are left untouched.
func setBit(b *byte, n byte, v bool) {
	*b &^= 1 << n
	if v {
		*b |= 1 << n
	}
}

// getBits extracts bits [start, start+length) of b, right-aligned.
func getBits(b byte, start, length byte) byte {
	mask := byte(1<<length) - 1
	return (b >> start) & mask
}

// setBits replaces bits [start, start+length) of *b with the low `length`
// bits of v. Extra high bits of v are truncated, matching hardware
// register semantics where callers pass pre-masked enum codes.
func setBits(b *byte, start, length, v byte) {
	mask := (byte(1<<length) - 1) << start
	*b &^= mask
	*b |= (v << start) & mask
}
