// Package pbkdf wires PBKDF2 (RFC 8018) to belt-hmac as its PRF. STB
// 34.101.31's lists PBKDF among the suite's primitives but the
// component-design body never works out its mechanics beyond "key
// stretching over belt-hmac" — this package is the minimal, idiomatic-Go
// shape of that: a func() hash.Hash adapter over belthash.HMAC handed to
// golang.org/x/crypto/pbkdf2, exactly the way a Go library reaches for the
// standard library's PBKDF2 rather than hand-rolling the iteration loop.
package pbkdf

import (
	"hash"

	"github.com/stb34101/beltgo/belthash"
	"golang.org/x/crypto/pbkdf2"
)

// MinIterations is a floor below which Derive refuses to run: a PBKDF with
// a tiny iteration count defeats its own purpose.
const MinIterations = 1000

// beltHMACHash adapts belthash.HMAC to hash.Hash so pbkdf2.Key can drive it
// like any other PRF. Reset re-keys from the captured key rather than
// clearing state in place, since belthash.HMAC exposes no in-place reset.
type beltHMACHash struct {
	key []byte
	h   *belthash.HMAC
}

func newBeltHMACHash(key []byte) *beltHMACHash {
	k := append([]byte(nil), key...)
	return &beltHMACHash{key: k, h: belthash.NewHMAC(k)}
}

func (b *beltHMACHash) Write(p []byte) (int, error) { return b.h.Write(p) }

func (b *beltHMACHash) Sum(in []byte) []byte {
	d := b.h.Sum()
	return append(in, d[:]...)
}

func (b *beltHMACHash) Reset()         { b.h = belthash.NewHMAC(b.key) }
func (b *beltHMACHash) Size() int      { return belthash.Size }
func (b *beltHMACHash) BlockSize() int { return belthash.BlockSize }

func newHash(key []byte) func() hash.Hash {
	return func() hash.Hash { return newBeltHMACHash(key) }
}

// Derive runs PBKDF2 over belt-hmac: password is the PRF key material,
// salt and iter are RFC 8018's usual parameters, keyLen is the number of
// octets to produce.
func Derive(password, salt []byte, iter, keyLen int) ([]byte, error) {
	if iter < MinIterations {
		return nil, ErrPbkdfIterationCountBelowMinimum
	}
	if keyLen <= 0 {
		return nil, ErrPbkdfKeylenMustBePositive
	}
	return pbkdf2.Key(password, salt, iter, keyLen, newHash(password)), nil
}
