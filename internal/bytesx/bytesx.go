// Package bytesx holds the endian-safe loads/stores, constant-time buffer
// operations, and small counter helpers every belt mode needs. It has no
// dependency on the rest of the module so it can be imported by every
// package without a cycle.
package bytesx

import (
	"crypto/subtle"
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// LoadU32LE reads a little-endian uint32 from the first 4 bytes of b.
func LoadU32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// StoreU32LE writes v into the first 4 bytes of b as little-endian.
func StoreU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// XorBytes XORs src into dst in place, dst[i] ^= src[i], for min(len(dst),
// len(src)) bytes. It is safe when dst and src alias the same underlying
// array at the same offset (in-place stream-cipher usage).
func XorBytes(dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// Copy16/Copy32 style whole-block copies are just copy(); the packages of
// this module call copy() directly and do not go through CopyBlock.

// CopyBlock copies exactly len(src) bytes from src to dst. It exists so
// call sites documenting "copy a block" read uniformly whether the block is
// 16 (belt), 32 (hash/DRBG output), or another multiple.
func CopyBlock(dst, src []byte) { copy(dst, src) }

// ConstantTimeCompare reports whether a and b are equal, in time that
// depends only on len(a) and len(b), never on their contents. Every MAC,
// hash-tag, and KWP-trailer comparison in this module must go through this
// function instead of bytes.Equal.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// CounterAddLE128 adds delta to the 128-bit little-endian counter held in
// ctr, in place, wrapping modulo 2^128. delta must be small and non-negative
// (every caller in this module only ever adds 1).
func CounterAddLE128(ctr *[16]byte, delta uint64) {
	carry := delta
	for i := 0; i < 16 && carry != 0; i++ {
		sum := uint64(ctr[i]) + (carry & 0xFF)
		ctr[i] = byte(sum)
		carry = (carry >> 8) + (sum >> 8)
	}
}

// ReverseBlock reverses b in place. No package in this module calls it; CTR
// advances its little-endian counter with CounterAddLE128 without reversal.
func ReverseBlock(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// ClampLen returns v clamped to the inclusive range [lo, hi]. Generic over
// any integer type so both byte counts (int) and bit counts (uint64) share
// one implementation instead of writing one clamp per type.
func ClampLen[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Zero overwrites b with zeros. ExpandKey and the aead BDE/SDE states call
// it on their sensitive buffers; no other package calls it.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
