package mode

import (
	"github.com/stb34101/beltgo"
	"github.com/stb34101/beltgo/internal/bytesx"
)

// DefaultTagLen is the belt-MAC tag length in octets (wire formats).
const DefaultTagLen = 8

// MAC implements CMAC-like belt-MAC: an accumulator `s` folded one
// block at a time through the block cipher, finalized with one of two
// GF(2^128)-doubled subkeys depending on whether the last block was a full
// 16 octets or needed 0x80-padding.
type MAC struct {
	ks      beltgo.KeySchedule
	s       [blockSize]byte
	k1, k2  [blockSize]byte
	buf     [blockSize]byte
	filled  int
	tagLen  int
	started bool
}

// NewMAC is Start(K) for belt-MAC, with the default 8-octet tag length.
func NewMAC(key []byte) (*MAC, error) {
	return NewMACTagLen(key, DefaultTagLen)
}

// NewMACTagLen is Start(K) with an explicit tag length in [1, 16].
func NewMACTagLen(key []byte, tagLen int) (*MAC, error) {
	if tagLen < 1 || tagLen > blockSize {
		return nil, ErrMacTagLengthMustBe1
	}
	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	m := &MAC{ks: ks, tagLen: tagLen}
	var r [blockSize]byte
	m.ks.EncryptBlock(r[:]) // r <- E_K(0)
	m.k1 = xtimes128(r)
	m.k2 = xtimes128(m.k1)
	return m, nil
}

// Close wipes MAC state.
func (m *MAC) Close() {
	m.ks.Wipe()
	m.k1 = [blockSize]byte{}
	m.k2 = [blockSize]byte{}
}

func (m *MAC) foldFull(block []byte) {
	for i := 0; i < blockSize; i++ {
		m.s[i] ^= block[i]
	}
	m.ks.EncryptBlock(m.s[:])
}

// StepA absorbs data into the running tag, any length, any number of calls.
func (m *MAC) StepA(data []byte) {
	m.started = true
	i := 0
	for i < len(data) {
		if m.filled == blockSize {
			m.foldFull(m.buf[:])
			m.filled = 0
		}
		n := blockSize - m.filled
		if rem := len(data) - i; rem < n {
			n = rem
		}
		copy(m.buf[m.filled:m.filled+n], data[i:i+n])
		m.filled += n
		i += n
	}
}

// finalBlock computes the tweaked last block per the complete/partial
// branch and returns the tag-bearing accumulator, without mutating m so
// StepG can be called more than once on the same state ("get-then-
// continue", marked experimental there but permitted).
func (m *MAC) finalBlock() [blockSize]byte {
	var last [blockSize]byte
	var tweak [blockSize]byte
	if m.filled == blockSize {
		last = m.buf
		tweak = m.k1
	} else {
		last = m.buf
		last[m.filled] = 0x80
		for j := m.filled + 1; j < blockSize; j++ {
			last[j] = 0
		}
		tweak = m.k2
	}
	for i := range last {
		last[i] ^= tweak[i]
	}
	s := m.s
	for i := range s {
		s[i] ^= last[i]
	}
	m.ks.EncryptBlock(s[:])
	return s
}

// StepG finalizes and returns the tag. The state is left usable for further
// StepA calls "get-then-continue" allowance.
func (m *MAC) StepG() []byte {
	tag := m.finalBlock()
	out := make([]byte, m.tagLen)
	copy(out, tag[:m.tagLen])
	return out
}

// StepV finalizes and compares against an expected tag in constant time.
func (m *MAC) StepV(expected []byte) bool {
	got := m.StepG()
	return bytesx.ConstantTimeCompare(got, expected)
}
