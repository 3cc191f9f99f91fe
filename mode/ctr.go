package mode

import (
	"github.com/stb34101/beltgo"
	"github.com/stb34101/beltgo/internal/bytesx"
)

// CTR implements CTR mode. Start pre-encrypts the IV once into the
// running counter register; every subsequent keystream block increments
// that register as a 128-bit little-endian integer and enciphers a copy of
// it, so the very first keystream block is E_K(E_K(IV)+1), never E_K(IV)
// itself.
type CTR struct {
	ks    beltgo.KeySchedule
	ctr   [blockSize]byte
	gamma [blockSize]byte
	pos   int
}

// NewCTR is Start(K, IV) for CTR mode.
func NewCTR(key, iv []byte) (*CTR, error) {
	if len(iv) != blockSize {
		return nil, ErrCtrIvMustBe16Octets
	}
	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	c := &CTR{ks: ks, pos: blockSize}
	copy(c.ctr[:], iv)
	c.ks.EncryptBlock(c.ctr[:]) // ctr <- E_K(IV)
	return c, nil
}

// Close wipes cipher state.
func (c *CTR) Close() { c.ks.Wipe() }

// Reserved returns the number of unused gamma octets left in the current
// block.
func (c *CTR) Reserved() int { return blockSize - c.pos }

func (c *CTR) nextGammaByte() byte {
	if c.pos == blockSize {
		bytesx.CounterAddLE128(&c.ctr, 1)
		c.gamma = c.ctr
		c.ks.EncryptBlock(c.gamma[:])
		c.pos = 0
	}
	b := c.gamma[c.pos]
	c.pos++
	return b
}

// StepE/StepD both XOR with the keystream: CTR encryption and decryption
// are the same operation.
func (c *CTR) StepE(dst, src []byte) { c.xorStream(dst, src) }
func (c *CTR) StepD(dst, src []byte) { c.xorStream(dst, src) }

func (c *CTR) xorStream(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		dst[i] = src[i] ^ c.nextGammaByte()
	}
}
