package beltgo

import "github.com/stb34101/beltgo/internal/bytesx"

// BlockSize is the belt block size in octets.
const BlockSize = 16

// rotAmounts are the three G-function rotation widths; which one applies to
// a given half of a given round cycles through this slice.
var rotAmounts = [3]uint32{5, 13, 21}

// rounds is the number of belt rounds the algorithm performs.
const rounds = 8

// KeySchedule is the expanded belt key: eight 32-bit little-endian words,
// derived once from a 16/24/32-octet key by zero-padding to 32 octets. It
// is read-only for the lifetime of every mode state built on top of it.
type KeySchedule struct {
	w [8]uint32
}

// ExpandKey builds a KeySchedule from a 16, 24, or 32 byte key, zero-padding
// shorter keys to 32 octets. Any other length is rejected with
// ErrBeltKeyMustBe1624 (code BadInput).
func ExpandKey(key []byte) (KeySchedule, error) {
	var ks KeySchedule
	switch len(key) {
	case 16, 24, 32:
	default:
		return ks, ErrBeltKeyMustBe1624
	}
	var padded [32]byte
	copy(padded[:], key)
	for i := 0; i < 8; i++ {
		ks.w[i] = bytesx.LoadU32LE(padded[i*4 : i*4+4])
	}
	bytesx.Zero(padded[:])
	return ks, nil
}

// Wipe overwrites the key words with zero. Called by every mode state's
// Close/Wipe so key material does not linger in memory.
func (ks *KeySchedule) Wipe() {
	for i := range ks.w {
		ks.w[i] = 0
	}
}

// g applies the belt S-box to each of the four bytes of x (little-endian)
// and rotates the result left by r bits. This is the keyed G-function.
func g(x uint32, r uint32) uint32 {
	var b [4]byte
	b[0] = sbox[byte(x)]
	b[1] = sbox[byte(x>>8)]
	b[2] = sbox[byte(x>>16)]
	b[3] = sbox[byte(x>>24)]
	y := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return rotl32(y, r)
}

func rotl32(x uint32, r uint32) uint32 {
	r &= 31
	return (x << r) | (x >> (32 - r))
}

// EncryptBlock enciphers the 16-octet block in place under ks.
func (ks *KeySchedule) EncryptBlock(b []byte) {
	a := bytesx.LoadU32LE(b[0:4])
	b1 := bytesx.LoadU32LE(b[4:8])
	c := bytesx.LoadU32LE(b[8:12])
	d := bytesx.LoadU32LE(b[12:16])

	for i := 0; i < rounds; i++ {
		k := ks.w[i%8]
		r1 := rotAmounts[i%3]
		r2 := rotAmounts[(i+1)%3]

		b1 ^= g(a+k, r1)
		c ^= g(d+k, r2)
		a, b1, c, d = d, a, b1, c
	}

	bytesx.StoreU32LE(b[0:4], a)
	bytesx.StoreU32LE(b[4:8], b1)
	bytesx.StoreU32LE(b[8:12], c)
	bytesx.StoreU32LE(b[12:16], d)
}

// DecryptBlock deciphers the 16-octet block in place under ks, running the
// round schedule in reverse.
func (ks *KeySchedule) DecryptBlock(b []byte) {
	a := bytesx.LoadU32LE(b[0:4])
	b1 := bytesx.LoadU32LE(b[4:8])
	c := bytesx.LoadU32LE(b[8:12])
	d := bytesx.LoadU32LE(b[12:16])

	for i := rounds - 1; i >= 0; i-- {
		k := ks.w[i%8]
		r1 := rotAmounts[i%3]
		r2 := rotAmounts[(i+1)%3]

		// Undo the word rotation first: (a,b1,c,d) here is the forward
		// round's (d1,a1,b1,c1); recover the pre-rotation values.
		na := b1
		nd := a
		nb := c ^ g(b1+k, r1)
		nc := d ^ g(a+k, r2)
		a, b1, c, d = na, nb, nc, nd
	}

	bytesx.StoreU32LE(b[0:4], a)
	bytesx.StoreU32LE(b[4:8], b1)
	bytesx.StoreU32LE(b[8:12], c)
	bytesx.StoreU32LE(b[12:16], d)
}
