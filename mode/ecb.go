package mode

import "github.com/stb34101/beltgo"

// ECB implements ECB mode: no chaining, with ciphertext stealing for
// a final partial block. Because stealing needs to see where the message
// ends, ECB is exposed as a one-shot convenience wrapper that builds the
// state, runs the sequence, and frees it, rather than a block-at-a-time
// Step API.
type ECB struct {
	ks beltgo.KeySchedule
}

// NewECB is Start(K) for ECB mode.
func NewECB(key []byte) (*ECB, error) {
	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &ECB{ks: ks}, nil
}

// Close wipes the key schedule so key material does not linger in memory.
func (e *ECB) Close() { e.ks.Wipe() }

// Encrypt writes len(src) bytes of ciphertext to dst. len(src) must be >=
// 16; dst and src may alias the same slice (in-place encryption is
// explicitly permitted).
func (e *ECB) Encrypt(dst, src []byte) error {
	if len(src) < minStealLen {
		return ErrEcbRequiresLeastOneBlock
	}
	if len(dst) != len(src) {
		return ErrDstSrcLengthMismatch
	}
	n := len(src)
	full := n / blockSize
	rem := n % blockSize

	if rem == 0 {
		for i := 0; i < full; i++ {
			copy(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
			e.ks.EncryptBlock(dst[i*blockSize : (i+1)*blockSize])
		}
		return nil
	}

	// Encrypt every full block up to and including the penultimate one
	// normally; the tail is handled by ciphertext stealing below.
	for i := 0; i < full-1; i++ {
		copy(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
		e.ks.EncryptBlock(dst[i*blockSize : (i+1)*blockSize])
	}

	lastFullOff := (full - 1) * blockSize
	lastFull := make([]byte, blockSize)
	copy(lastFull, src[lastFullOff:lastFullOff+blockSize])
	e.ks.EncryptBlock(lastFull) // C_{n-1} candidate before splicing

	tail := src[full*blockSize:] // P_n, length rem
	// Splice: output C_n = first `rem` octets of E(P_{n-1}); then encipher
	// the remaining octets of E(P_{n-1}) concatenated with P_n to get the
	// real C_{n-1}.
	spliced := make([]byte, blockSize)
	copy(spliced, lastFull[rem:])
	copy(spliced[blockSize-rem:], tail)
	e.ks.EncryptBlock(spliced)

	copy(dst[lastFullOff:lastFullOff+rem], lastFull[:rem])
	copy(dst[lastFullOff+rem:lastFullOff+rem+blockSize], spliced)
	return nil
}

// Decrypt reverses Encrypt.
func (e *ECB) Decrypt(dst, src []byte) error {
	if len(src) < minStealLen {
		return ErrEcbRequiresLeastOneBlock
	}
	if len(dst) != len(src) {
		return ErrDstSrcLengthMismatch
	}
	n := len(src)
	full := n / blockSize
	rem := n % blockSize

	if rem == 0 {
		for i := 0; i < full; i++ {
			copy(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
			e.ks.DecryptBlock(dst[i*blockSize : (i+1)*blockSize])
		}
		return nil
	}

	for i := 0; i < full-1; i++ {
		copy(dst[i*blockSize:(i+1)*blockSize], src[i*blockSize:(i+1)*blockSize])
		e.ks.DecryptBlock(dst[i*blockSize : (i+1)*blockSize])
	}

	lastFullOff := (full - 1) * blockSize
	cTail := src[lastFullOff : lastFullOff+rem]               // C_n
	cLast := src[lastFullOff+rem : lastFullOff+rem+blockSize] // C_{n-1}

	eLast := make([]byte, blockSize)
	copy(eLast, cLast)
	e.ks.DecryptBlock(eLast) // recovers the splice buffer used at encryption time:
	// eLast[:blockSize-rem] == E(P_{n-1})[rem:], eLast[blockSize-rem:] == P_n

	lastFull := make([]byte, blockSize)
	copy(lastFull, cTail)                       // lastFull[:rem] == E(P_{n-1})[:rem]
	copy(lastFull[rem:], eLast[:blockSize-rem]) // lastFull[rem:] == E(P_{n-1})[rem:]
	plain := make([]byte, blockSize)
	copy(plain, lastFull)
	e.ks.DecryptBlock(plain)

	copy(dst[lastFullOff:lastFullOff+blockSize], plain)
	copy(dst[lastFullOff+blockSize:lastFullOff+blockSize+rem], eLast[blockSize-rem:])
	return nil
}
