package mode

import "github.com/stb34101/beltgo"

// CBC implements CBC mode with the same ciphertext-stealing tail
// policy as ECB, chained through a running block C initialized from the IV.
type CBC struct {
	ks beltgo.KeySchedule
	iv [blockSize]byte
}

// NewCBC is Start(K, IV) for CBC mode.
func NewCBC(key, iv []byte) (*CBC, error) {
	if len(iv) != blockSize {
		return nil, ErrCbcIvMustBe16Octets
	}
	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	c := &CBC{ks: ks}
	copy(c.iv[:], iv)
	return c, nil
}

// Close wipes cipher state.
func (c *CBC) Close() { c.ks.Wipe() }

// Encrypt writes len(src) bytes of ciphertext to dst. len(src) must be >=
// 16. The running chaining block always starts from the IV given to
// NewCBC: CBC here is a one-shot wrapper per message, matching ECB's
// ciphertext-stealing constraint (requires seeing the whole message to
// steal from its tail).
func (c *CBC) Encrypt(dst, src []byte) error {
	if len(src) < minStealLen {
		return ErrCbcRequiresLeastOneBlock
	}
	if len(dst) != len(src) {
		return ErrDstSrcLengthMismatch
	}
	n := len(src)
	full := n / blockSize
	rem := n % blockSize

	chain := c.iv

	encBlock := func(dstBlk, srcBlk []byte) {
		var tmp [blockSize]byte
		copy(tmp[:], srcBlk)
		for i := range tmp {
			tmp[i] ^= chain[i]
		}
		c.ks.EncryptBlock(tmp[:])
		copy(dstBlk, tmp[:])
		copy(chain[:], tmp[:])
	}

	if rem == 0 {
		for i := 0; i < full; i++ {
			encBlock(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
		}
		return nil
	}

	for i := 0; i < full-1; i++ {
		encBlock(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
	}

	lastFullOff := (full - 1) * blockSize
	lastFull := make([]byte, blockSize)
	encBlock(lastFull, src[lastFullOff:lastFullOff+blockSize]) // chain now holds E(P_{n-1} xor chain)

	tail := src[full*blockSize:]
	spliced := make([]byte, blockSize)
	copy(spliced, lastFull[rem:])
	copy(spliced[blockSize-rem:], tail)
	// The chain xor was already folded into lastFull above; the spliced
	// block is enciphered directly, the same way ECB's tail is.
	c.ks.EncryptBlock(spliced)

	copy(dst[lastFullOff:lastFullOff+rem], lastFull[:rem])
	copy(dst[lastFullOff+rem:lastFullOff+rem+blockSize], spliced)
	return nil
}

// Decrypt reverses Encrypt. Per : "C_tmp <- C_i; output D_K(C_i) xor C;
// C <- C_tmp".
func (c *CBC) Decrypt(dst, src []byte) error {
	if len(src) < minStealLen {
		return ErrCbcRequiresLeastOneBlock
	}
	if len(dst) != len(src) {
		return ErrDstSrcLengthMismatch
	}
	n := len(src)
	full := n / blockSize
	rem := n % blockSize

	chain := c.iv

	decBlock := func(dstBlk, srcBlk []byte) {
		var tmp [blockSize]byte
		copy(tmp[:], srcBlk)
		c.ks.DecryptBlock(tmp[:])
		for i := range tmp {
			tmp[i] ^= chain[i]
		}
		copy(chain[:], srcBlk)
		copy(dstBlk, tmp[:])
	}

	if rem == 0 {
		for i := 0; i < full; i++ {
			decBlock(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
		}
		return nil
	}

	for i := 0; i < full-1; i++ {
		decBlock(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
	}

	lastFullOff := (full - 1) * blockSize
	cTail := src[lastFullOff : lastFullOff+rem]
	cLast := src[lastFullOff+rem : lastFullOff+rem+blockSize]

	// prevChain is the chain value as of just before the penultimate block
	// (index full-1) was encrypted; the spliced tail block was enciphered
	// directly (no chain xor), mirroring Encrypt.
	prevChain := chain
	var splicedPlain [blockSize]byte
	copy(splicedPlain[:], cLast)
	c.ks.DecryptBlock(splicedPlain[:])

	lastFull := make([]byte, blockSize)
	copy(lastFull, cTail)
	copy(lastFull[rem:], splicedPlain[:blockSize-rem])

	// E(P_{n-1} xor prevChain) is `lastFull` reinterpreted as ciphertext of
	// the penultimate block; decrypt it and XOR with prevChain to recover
	// P_{n-1}.
	var plain [blockSize]byte
	copy(plain[:], lastFull)
	c.ks.DecryptBlock(plain[:])
	for i := range plain {
		plain[i] ^= prevChain[i]
	}

	copy(dst[lastFullOff:lastFullOff+blockSize], plain[:])
	copy(dst[lastFullOff+blockSize:lastFullOff+blockSize+rem], splicedPlain[blockSize-rem:])
	return nil
}
