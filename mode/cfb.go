package mode

import "github.com/stb34101/beltgo"

// CFB implements CFB mode: a byte-granular stream cipher where the
// keystream block is regenerated by enciphering the previous ciphertext
// block (IV for the first block), and partial blocks persist across calls
// via `reserved` the way describes for every streaming cipher state.
type CFB struct {
	ks    beltgo.KeySchedule
	gamma [blockSize]byte
	pos   int // bytes of gamma already consumed this block; 0 <= pos <= blockSize
}

// NewCFB is Start(K, IV) for CFB mode.
func NewCFB(key, iv []byte) (*CFB, error) {
	if len(iv) != blockSize {
		return nil, ErrCfbIvMustBe16Octets
	}
	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	c := &CFB{ks: ks, pos: blockSize} // pos==blockSize forces regeneration on first byte
	copy(c.gamma[:], iv)
	return c, nil
}

// Close wipes cipher state.
func (c *CFB) Close() { c.ks.Wipe() }

// Reserved returns the number of unused gamma octets left in the current
// block (invariant: 0 <= reserved <= 15).
func (c *CFB) Reserved() int { return blockSize - c.pos }

// StepE encrypts src into dst, any length, any number of calls. dst and src
// may alias (in-place streaming).
func (c *CFB) StepE(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		if c.pos == blockSize {
			c.ks.EncryptBlock(c.gamma[:])
			c.pos = 0
		}
		ct := src[i] ^ c.gamma[c.pos]
		c.gamma[c.pos] = ct // gamma chaining depends on output, both directions
		dst[i] = ct
		c.pos++
	}
}

// StepD decrypts src into dst, the mirror of StepE.
func (c *CFB) StepD(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		if c.pos == blockSize {
			c.ks.EncryptBlock(c.gamma[:])
			c.pos = 0
		}
		ct := src[i]
		pt := ct ^ c.gamma[c.pos]
		c.gamma[c.pos] = ct
		dst[i] = pt
		c.pos++
	}
}
