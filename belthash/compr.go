// Package belthash implements : the belt-compr double-pseudorandom-
// permutation compression function, belt-hash built on top of it, and
// belt-HMAC built on belt-hash.
package belthash

import "github.com/stb34101/beltgo"

// BlockLen is the 128-bit half-block length compr operates on.
const BlockLen = 16

// chainLen is the 256-bit chaining value length (h_lo || h_hi).
const chainLen = 32

// compr implements belt-compr: given the running chaining value h
// (32 octets, h_lo || h_hi) and a 32-octet input block X (X_lo || X_hi), it
// returns the updated chaining value and the sigma1 output, an independent
// 128-bit absorber belt-hash folds into its running `s` accumulator.
func compr(h [chainLen]byte, x [chainLen]byte) (hNew [chainLen]byte, sigma1 [BlockLen]byte) {
	var hLo, hHi, xLo, xHi [BlockLen]byte
	copy(hLo[:], h[:BlockLen])
	copy(hHi[:], h[BlockLen:])
	copy(xLo[:], x[:BlockLen])
	copy(xHi[:], x[BlockLen:])

	// K1 = h_lo xor h_hi || h_hi
	var k1 [chainLen]byte
	for i := 0; i < BlockLen; i++ {
		k1[i] = hLo[i] ^ hHi[i]
	}
	copy(k1[BlockLen:], hHi[:])

	// K2 = not(K1_lo) || h_lo
	var k2 [chainLen]byte
	for i := 0; i < BlockLen; i++ {
		k2[i] = ^k1[i]
	}
	copy(k2[BlockLen:], hLo[:])

	ksHH, _ := beltgo.ExpandKey(h[:]) // key = h_lo || h_hi
	ksK1, _ := beltgo.ExpandKey(k1[:])
	ksK2, _ := beltgo.ExpandKey(k2[:])
	defer func() {
		ksHH.Wipe()
		ksK1.Wipe()
		ksK2.Wipe()
	}()

	// sigma1 = E_{h_lo||h_hi}(X_lo xor X_hi) xor X_lo xor X_hi
	var xXor [BlockLen]byte
	for i := range xXor {
		xXor[i] = xLo[i] ^ xHi[i]
	}
	sigma1 = xXor
	ksHH.EncryptBlock(sigma1[:])
	for i := range sigma1 {
		sigma1[i] ^= xXor[i]
	}

	// h_lo' = E_{K1}(X_lo) xor X_lo
	hLoNew := xLo
	ksK1.EncryptBlock(hLoNew[:])
	for i := range hLoNew {
		hLoNew[i] ^= xLo[i]
	}

	// h_hi' = E_{K2}(X_hi) xor X_hi
	hHiNew := xHi
	ksK2.EncryptBlock(hHiNew[:])
	for i := range hHiNew {
		hHiNew[i] ^= xHi[i]
	}

	copy(hNew[:BlockLen], hLoNew[:])
	copy(hNew[BlockLen:], hHiNew[:])
	return hNew, sigma1
}
