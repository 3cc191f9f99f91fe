package belthash

import (
	"encoding/binary"
)

// Size is the belt-hash digest length in octets (wire formats).
const Size = 32

// BlockSize is the belt-hash absorption block size in octets.
const BlockSize = 32

// initH is belt-hash's fixed initial chaining value. Supplied as a
// compile-time constant exactly like the S-box, it starts every
// digest from the same non-secret state.
var initH = [chainLen]byte{
	0x75, 0x1B, 0xAB, 0x0D, 0x62, 0x13, 0x6D, 0x8E, 0xE0, 0x5B, 0x50, 0x31, 0xC5, 0x19, 0x53, 0x9D,
	0x12, 0x93, 0xB7, 0x72, 0xCF, 0x38, 0xBB, 0xA1, 0xB9, 0x11, 0x48, 0xDE, 0x28, 0x3B, 0x57, 0x80,
}

// Hash is the streaming belt-hash state `S_hash` : a running
// 128-bit bit-length, the sigma1 accumulator `s`, the 256-bit chaining
// value `h`, and a pending-block buffer.
type Hash struct {
	lenLo, lenHi uint64 // running bit-length, 128 bits split lo/hi
	s            [BlockLen]byte
	h            [chainLen]byte
	buf          [BlockSize]byte
	filled       int
}

// New returns a fresh belt-hash state.
func New() *Hash {
	hs := &Hash{h: initH}
	return hs
}

// addBits adds n bits to the running 128-bit counter, invariant
// that the counter never exceeds 2^128-1 (callers are expected to respect
// realistic message sizes; this module does not itself enforce the
// ceiling beyond what a uint64/uint64 pair can represent, 2^128-1 bits of
// input being astronomically larger than any achievable message).
func (hs *Hash) addBits(n uint64) {
	old := hs.lenLo
	hs.lenLo += n
	if hs.lenLo < old {
		hs.lenHi++
	}
}

func (hs *Hash) absorbBlock(block [BlockSize]byte) {
	var x [chainLen]byte
	copy(x[:], block[:])
	hNew, sigma1 := compr(hs.h, x)
	hs.h = hNew
	for i := range hs.s {
		hs.s[i] ^= sigma1[i]
	}
}

// Write absorbs len(p) octets, any length, any number of calls. Bits held
// in a still-pending partial block are not yet reflected in the running
// counter; Sum accounts for them via pendingBits when it builds the
// finalization block.
func (hs *Hash) Write(p []byte) (int, error) {
	i := 0
	for i < len(p) {
		n := BlockSize - hs.filled
		if rem := len(p) - i; rem < n {
			n = rem
		}
		copy(hs.buf[hs.filled:hs.filled+n], p[i:i+n])
		hs.filled += n
		i += n
		if hs.filled == BlockSize {
			hs.absorbBlock(hs.buf)
			hs.addBits(BlockSize * 8)
			hs.filled = 0
		}
	}
	return len(p), nil
}

// pendingBits returns the number of bits held in the not-yet-absorbed
// partial block.
func (hs *Hash) pendingBits() uint64 { return uint64(hs.filled) * 8 }

// Sum finalizes and returns the 32-octet digest, without mutating the
// receiver's real chaining state ("s and h are copied before
// finalization so the state can continue accepting data after a StepG").
func (hs *Hash) Sum() [Size]byte {
	h := hs.h
	s := hs.s
	totalLenLo := hs.lenLo + hs.pendingBits()
	totalLenHi := hs.lenHi
	if totalLenLo < hs.lenLo {
		totalLenHi++
	}

	if hs.filled > 0 {
		var padded [BlockSize]byte
		copy(padded[:], hs.buf[:hs.filled])
		var x [chainLen]byte
		copy(x[:], padded[:])
		hNew, sigma1 := compr(h, x)
		h = hNew
		for i := range s {
			s[i] ^= sigma1[i]
		}
	}

	var final [chainLen]byte
	binary.LittleEndian.PutUint64(final[0:8], totalLenLo)
	binary.LittleEndian.PutUint64(final[8:16], totalLenHi)
	copy(final[16:32], s[:])

	hFinal, _ := compr(h, final)

	var digest [Size]byte
	copy(digest[:], hFinal[:])
	return digest
}

// SumAppend appends the digest to b and returns the resulting slice, matching
// the shape of hash.Hash.Sum from the standard library for callers that
// want to compose it that way.
func (hs *Hash) SumAppend(b []byte) []byte {
	d := hs.Sum()
	return append(b, d[:]...)
}

// Reset restores the state to New()'s initial condition.
func (hs *Hash) Reset() {
	hs.lenLo, hs.lenHi = 0, 0
	hs.s = [BlockLen]byte{}
	hs.h = initH
	hs.buf = [BlockSize]byte{}
	hs.filled = 0
}

// Sum256 is the one-shot convenience wrapper for a single buffer.
func Sum256(data []byte) [Size]byte {
	hs := New()
	_, _ = hs.Write(data)
	return hs.Sum()
}
