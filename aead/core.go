package aead

import (
	"encoding/binary"

	"github.com/stb34101/beltgo"
	"github.com/stb34101/beltgo/internal/bytesx"
)

const blockSize = beltgo.BlockSize

// TagLen is the belt-DWP/CHE tag length in octets (wire formats).
const TagLen = 8

type phase int

const (
	phaseAD phase = iota
	phaseCT
	phaseDone
)

// core is the shared CTR-keystream + GF(2^128) polynomial-hash state DWP
// and CHE are both built from ("otherwise identical protocol
// skeleton"); they differ only in how the keystream counter advances
// between blocks, supplied as advance.
type core struct {
	ks beltgo.KeySchedule

	ctr   [blockSize]byte
	gamma [blockSize]byte
	pos   int

	r [blockSize]byte // polynomial-hash key: the first keystream block
	t [blockSize]byte // running polynomial-hash accumulator

	buf    [blockSize]byte
	filled int
	adLen  uint64
	ctLen  uint64
	ph     phase

	advance func(ctr [blockSize]byte) [blockSize]byte
}

func newCore(key, iv []byte, advance func([blockSize]byte) [blockSize]byte) (*core, error) {
	if len(iv) != blockSize {
		return nil, ErrAeadIvMustBe16Octets
	}
	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return nil, err
	}

	c := &core{ks: ks, advance: advance}
	copy(c.ctr[:], iv)
	c.ks.EncryptBlock(c.ctr[:]) // ctr <- E_K(iv)

	// Force the first keystream block now: it doubles as r, the
	// polynomial-hash key ("the same block that would be the first
	// keystream block").
	c.ctr = c.advance(c.ctr)
	c.gamma = c.ctr
	c.ks.EncryptBlock(c.gamma[:])
	c.pos = 0
	c.r = c.gamma

	return c, nil
}

// Close wipes key and polynomial-hash material.
func (c *core) Close() {
	c.ks.Wipe()
	c.r = [blockSize]byte{}
	c.t = [blockSize]byte{}
}

func (c *core) nextGammaByte() byte {
	if c.pos == blockSize {
		c.ctr = c.advance(c.ctr)
		c.gamma = c.ctr
		c.ks.EncryptBlock(c.gamma[:])
		c.pos = 0
	}
	b := c.gamma[c.pos]
	c.pos++
	return b
}

func (c *core) xorStream(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		dst[i] = src[i] ^ c.nextGammaByte()
	}
}

// absorbFull folds one full 16-octet block into the running polynomial
// hash: t <- (t xor x) * r mod (x^128+x^7+x^2+x+1).
func (c *core) absorbFull(x [blockSize]byte) {
	for i := range c.t {
		c.t[i] ^= x[i]
	}
	c.t = gmul(c.t, c.r)
}

// absorb buffers data of any length, folding full blocks as they fill. It
// does not touch the running length counters; callers add len(data) to
// adLen or ctLen themselves.
func (c *core) absorb(data []byte) {
	i := 0
	for i < len(data) {
		if c.filled == blockSize {
			c.absorbFull(c.buf)
			c.filled = 0
		}
		n := blockSize - c.filled
		if rem := len(data) - i; rem < n {
			n = rem
		}
		copy(c.buf[c.filled:c.filled+n], data[i:i+n])
		c.filled += n
		i += n
	}
}

// flushPartial zero-pads and folds any still-pending partial block.
func (c *core) flushPartial() {
	if c.filled == 0 {
		return
	}
	var last [blockSize]byte
	copy(last[:], c.buf[:c.filled])
	c.absorbFull(last)
	c.filled = 0
}

// finalize flushes any pending CT partial block, folds in the 128-bit
// (adLen || ctLen) length block (both in bits, little-endian), and
// enciphers the result to produce the full tag block.
func (c *core) finalize() [blockSize]byte {
	c.flushPartial()

	var lenBlock [blockSize]byte
	binary.LittleEndian.PutUint64(lenBlock[0:8], c.adLen*8)
	binary.LittleEndian.PutUint64(lenBlock[8:16], c.ctLen*8)
	c.absorbFull(lenBlock)

	tag := c.t
	c.ks.EncryptBlock(tag[:])
	return tag
}

func plusOne(ctr [blockSize]byte) [blockSize]byte {
	bytesx.CounterAddLE128(&ctr, 1)
	return ctr
}

func timesX(ctr [blockSize]byte) [blockSize]byte {
	return xtimes(ctr)
}
