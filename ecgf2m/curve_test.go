package ecgf2m

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// smallCurveFixture builds a tiny GF(2^7) curve (x^7+x+1, a well-known
// irreducible trinomial) with A=B=1 and uses the x=0 point, whose
// coordinates are solvable by inspection (y^2=B has the unique root
// y=B since B=1 is fixed by every power of Frobenius), so the fixture
// needs no quadratic solver of its own.
func smallCurveFixture(t *testing.T) (*Curve, Point) {
	t.Helper()
	f := NewField(7, []int{1, 0})
	a := f.One()
	b := f.One()
	c := NewCurve(f, a, b)

	p := Point{X: f.Zero(), Y: f.One()}
	require.True(t, c.IsOnCurve(p))
	return c, p
}

func TestIsOnCurveRejectsTamperedPoint(t *testing.T) {
	c, p := smallCurveFixture(t)
	tampered := Point{X: p.X, Y: c.F.Add(p.Y, c.F.One())}
	// p.Y XOR One, when p.Y is already One, lands on Zero; use a point
	// with a distinguishable X instead so the tamper is guaranteed to
	// move off-curve.
	tampered = Point{X: c.F.One(), Y: p.Y}
	require.False(t, c.IsOnCurve(tampered))
}

func TestInfinityIsAdditiveIdentity(t *testing.T) {
	c, p := smallCurveFixture(t)
	sum := c.addA(p, c.Infinity())
	require.Equal(t, p, sum)
}

func TestNegAAddsToInfinity(t *testing.T) {
	c, p := smallCurveFixture(t)
	neg := c.NegA(p)
	require.True(t, c.IsOnCurve(neg))
	sum := c.addA(p, neg)
	require.True(t, sum.Infinity)
}

func TestMulAOneIsIdentity(t *testing.T) {
	c, p := smallCurveFixture(t)
	got := c.MulA(p, big.NewInt(1))
	require.Equal(t, p, got)
}

func TestMulAZeroIsInfinity(t *testing.T) {
	c, p := smallCurveFixture(t)
	got := c.MulA(p, big.NewInt(0))
	require.True(t, got.Infinity)
}

func TestMulATwoMatchesDouble(t *testing.T) {
	c, p := smallCurveFixture(t)
	doubled := c.addA(p, p)
	got := c.MulA(p, big.NewInt(2))
	require.Equal(t, doubled, got)
}

func TestAddMulACombinesBothScalars(t *testing.T) {
	c, p := smallCurveFixture(t)
	got := c.AddMulA(big.NewInt(2), p, big.NewInt(3), p)
	want := c.MulA(p, big.NewInt(5))
	require.Equal(t, want, got)
}
