package ecgf2m

import (
	"crypto/rand"
	"io"
	"math/big"
)

// ScalarField wraps a curve's group order n so callers get mod, mul_mod,
// inv_mod, and rand_mod scalar arithmetic without reaching into math/big
// directly at every call site.
type ScalarField struct {
	N *big.Int
}

// NewScalarField builds a ScalarField over the given group order.
func NewScalarField(n *big.Int) *ScalarField { return &ScalarField{N: new(big.Int).Set(n)} }

// Mod is mod: reduces k into [0, n).
func (s *ScalarField) Mod(k *big.Int) *big.Int {
	return new(big.Int).Mod(k, s.N)
}

// MulMod is mul_mod: (a*b) mod n.
func (s *ScalarField) MulMod(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, s.N)
}

// InvMod is inv_mod: a^-1 mod n. Returns BadParams if a has no inverse
// (shares a nontrivial factor with n, or is 0).
func (s *ScalarField) InvMod(a *big.Int) (*big.Int, error) {
	r := new(big.Int).Mod(a, s.N)
	inv := new(big.Int).ModInverse(r, s.N)
	if inv == nil {
		return nil, ErrEcgf2mScalarHasNoInverseMod
	}
	return inv, nil
}

// RandMod is rand_mod: a uniform scalar in [1, n-1], read from src (pass
// nil for crypto/rand.Reader). Rejection-sampled against n's bit length so
// the output is unbiased.
func (s *ScalarField) RandMod(src io.Reader) (*big.Int, error) {
	if src == nil {
		src = rand.Reader
	}
	if s.N.Sign() <= 0 {
		return nil, ErrEcgf2mScalarFieldOrderMustBe
	}
	one := big.NewInt(1)
	nMinusOne := new(big.Int).Sub(s.N, one)
	for i := 0; i < 256; i++ {
		k, err := rand.Int(src, nMinusOne)
		if err != nil {
			return nil, ErrEcgf2mRandModSourceReadFailed
		}
		k.Add(k, one)
		if k.Sign() > 0 && k.Cmp(s.N) < 0 {
			return k, nil
		}
	}
	return nil, ErrEcgf2mRandModFailedSampleAfter
}
