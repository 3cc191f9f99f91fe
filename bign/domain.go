// Package bign is a thin DSTU/BIGN-style elliptic-curve signature flow: a
// consumer of the curve/field math, never a definer of it. GenerateKey,
// Sign, and Verify are built entirely on top of the beltgo/ecgf2m math
// collaborator (field/curve arithmetic) and beltgo/belthash (message
// digest). It does not implement a certificate chain, anchor, or ring
// (BadCert/BadAnchor/BadCertRing stay defined in the error taxonomy but
// this package never produces them).
package bign

import (
	"math/big"
	"sync"

	"github.com/stb34101/beltgo/ecgf2m"
)

// domain holds the curve, base point, and group order this package signs
// and verifies against. Curve and base-point parameters are this
// package's own construction, not a transcription of a published STB/DSTU
// curve (see DESIGN.md): the field is kept deliberately small (GF(2^15))
// so the exact group order can be recovered by direct point enumeration
// at init time instead of requiring a point-counting algorithm like SEA.
type domain struct {
	field *ecgf2m.Field
	curve *ecgf2m.Curve
	g     ecgf2m.Point
	n     *big.Int
	sf    *ecgf2m.ScalarField
}

var (
	domainOnce sync.Once
	defaultDom *domain
)

// x15Field reduces modulo x^15 + x + 1, a well-known irreducible
// trinomial over GF(2) (the classic degree-15 maximal-period LFSR
// polynomial).
var x15Field = ecgf2m.NewField(15, []int{1, 0})

func frobenius(f *ecgf2m.Field, a ecgf2m.Elem, times int) ecgf2m.Elem {
	for i := 0; i < times; i++ {
		a = f.Sqr(a)
	}
	return a
}

// trace computes Tr(a) = sum_{i=0}^{m-1} a^(2^i), which always reduces to
// the field's Zero or One since the trace map lands in the GF(2) subfield.
func trace(f *ecgf2m.Field, a ecgf2m.Elem) bool {
	acc := a
	x := a
	for i := 1; i < f.M; i++ {
		x = f.Sqr(x)
		acc = f.Add(acc, x)
	}
	return !acc.IsZero()
}

// halfTrace solves z^2+z=a for odd-degree fields via the standard
// half-trace construction (IEEE P1363 Annex A.4.1 / SEC 1 §2.3.7): z =
// sum_{i=0}^{(m-1)/2} a^(2^(2i)). Valid only when m is odd and Tr(a)=0;
// callers check the trace first.
func halfTrace(f *ecgf2m.Field, a ecgf2m.Elem) ecgf2m.Elem {
	acc := f.Zero()
	x := a
	k := (f.M - 1) / 2
	for i := 0; i <= k; i++ {
		acc = f.Add(acc, x)
		if i < k {
			x = frobenius(f, x, 2)
		}
	}
	return acc
}

// solveY solves the curve's defining equation y^2+xy=rhs for y given x and
// rhs = x^3+A*x^2+B, returning both roots (they differ by x) when a
// solution exists.
func solveY(f *ecgf2m.Field, x, rhs ecgf2m.Elem) (y0, y1 ecgf2m.Elem, ok bool) {
	if x.IsZero() {
		// y^2 = rhs: squaring is a field automorphism (Frobenius), so the
		// unique root is rhs^(2^(m-1)).
		y := frobenius(f, rhs, f.M-1)
		return y, y, true
	}
	xInv, err := f.Inv(x)
	if err != nil {
		return ecgf2m.Elem{}, ecgf2m.Elem{}, false
	}
	xInv2 := f.Mul(xInv, xInv)
	t := f.Mul(rhs, xInv2)
	if trace(f, t) {
		return ecgf2m.Elem{}, ecgf2m.Elem{}, false
	}
	z := halfTrace(f, t)
	y0 = f.Mul(x, z)
	y1 = f.Add(y0, x)
	return y0, y1, true
}

// countPoints enumerates every x in the field, counting 0/1/2 affine
// points per x plus the point at infinity, to recover the curve's exact
// group order without a point-counting algorithm. Feasible only because
// the domain's field is kept deliberately small; see x15Field above.
func countPoints(c *ecgf2m.Curve) *big.Int {
	f := c.F
	size := uint64(1) << uint(f.M)
	count := big.NewInt(1) // point at infinity
	for xi := uint64(0); xi < size; xi++ {
		x := elemFromUint(f, xi)
		x2 := f.Sqr(x)
		x3 := f.Mul(x2, x)
		rhs := f.Add(f.Add(x3, f.Mul(c.A, x2)), c.B)
		if _, _, ok := solveY(f, x, rhs); ok {
			if x.IsZero() {
				count.Add(count, big.NewInt(1))
			} else {
				count.Add(count, big.NewInt(2))
			}
		}
	}
	return count
}

func elemFromUint(f *ecgf2m.Field, v uint64) ecgf2m.Elem {
	n := (f.M + 7) / 8
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[n-1-i] = byte(v >> uint(8*i))
	}
	e, _ := f.FromBytes(buf)
	return e
}

// buildDomain constructs the package-wide curve, finds a base point by
// trying x=1,2,3,... until the quadratic solves, computes the exact group
// order by enumeration, and wraps it in a ScalarField. Every point's
// order divides the group order by Lagrange's theorem, so n*G = O holds
// for whichever point is picked as G without a separate order search.
func buildDomain() *domain {
	f := x15Field
	a := f.One()
	b := f.One()
	c := ecgf2m.NewCurve(f, a, b)

	var g ecgf2m.Point
	for xi := uint64(1); ; xi++ {
		x := elemFromUint(f, xi)
		x2 := f.Sqr(x)
		x3 := f.Mul(x2, x)
		rhs := f.Add(f.Add(x3, f.Mul(c.A, x2)), c.B)
		y0, _, ok := solveY(f, x, rhs)
		if ok {
			g = ecgf2m.Point{X: x, Y: y0}
			break
		}
	}

	n := countPoints(c)
	return &domain{field: f, curve: c, g: g, n: n, sf: ecgf2m.NewScalarField(n)}
}

// defaultDomain returns the package-wide domain parameters, building them
// on first use.
func defaultDomain() *domain {
	domainOnce.Do(func() { defaultDom = buildDomain() })
	return defaultDom
}
