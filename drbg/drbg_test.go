package drbg

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestCTRDeterministic(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 32)

	g1, err := NewCTR(key, iv)
	require.NoError(t, err)
	g2, err := NewCTR(key, iv)
	require.NoError(t, err)

	out1 := make([]byte, 96)
	out2 := make([]byte, 96)
	g1.StepR(out1)
	g2.StepR(out2)
	require.Equal(t, out1, out2)
}

func TestCTRSplitRequestsMatchOneShot(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 32)

	g1, err := NewCTR(key, iv)
	require.NoError(t, err)
	oneShot := make([]byte, 96)
	g1.StepR(oneShot)

	g2, err := NewCTR(key, iv)
	require.NoError(t, err)
	var split bytes.Buffer
	for _, n := range []int{32, 32, 32} {
		buf := make([]byte, n)
		g2.StepR(buf)
		split.Write(buf)
	}
	require.Equal(t, oneShot, split.Bytes())
}

func TestCTRUnalignedSplitMatchesOneShot(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 32)

	g1, err := NewCTR(key, iv)
	require.NoError(t, err)
	oneShot := make([]byte, 96)
	g1.StepR(oneShot)

	g2, err := NewCTR(key, iv)
	require.NoError(t, err)
	var split bytes.Buffer
	for _, n := range []int{10, 22, 64} {
		buf := make([]byte, n)
		g2.StepR(buf)
		split.Write(buf)
	}
	require.Equal(t, oneShot, split.Bytes())
}

func TestCTRDifferentIVsDiffer(t *testing.T) {
	key := randBytes(t, 32)
	iv1 := randBytes(t, 32)
	iv2 := randBytes(t, 32)

	g1, err := NewCTR(key, iv1)
	require.NoError(t, err)
	g2, err := NewCTR(key, iv2)
	require.NoError(t, err)

	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	g1.StepR(out1)
	g2.StepR(out2)
	require.NotEqual(t, out1, out2)
}

func TestCTRRejectsBadIVLength(t *testing.T) {
	_, err := NewCTR(randBytes(t, 32), randBytes(t, 16))
	require.Error(t, err)
}

func TestCTRStepGResumeContinuesStream(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 32)

	g, err := NewCTR(key, iv)
	require.NoError(t, err)
	first := make([]byte, 20)
	g.StepR(first)

	st := g.StepG()
	resumed := ResumeCTR(st)

	wantNext := make([]byte, 20)
	g.StepR(wantNext)
	gotNext := make([]byte, 20)
	resumed.StepR(gotNext)
	require.Equal(t, wantNext, gotNext)
}

func TestHMACDeterministic(t *testing.T) {
	key := randBytes(t, 32)
	iv := make([]byte, 32)

	g1, err := NewHMAC(key, iv)
	require.NoError(t, err)
	g2, err := NewHMAC(key, iv)
	require.NoError(t, err)

	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	g1.StepR(out1)
	g2.StepR(out2)
	require.Equal(t, out1, out2)
}

func TestHMACSplitRequestsMatchOneShot(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 32)

	g1, err := NewHMAC(key, iv)
	require.NoError(t, err)
	oneShot := make([]byte, 64)
	g1.StepR(oneShot)

	g2, err := NewHMAC(key, iv)
	require.NoError(t, err)
	var split bytes.Buffer
	for _, n := range []int{5, 27, 32} {
		buf := make([]byte, n)
		g2.StepR(buf)
		split.Write(buf)
	}
	require.Equal(t, oneShot, split.Bytes())
}

func TestHMACDiffersFromCTR(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 32)

	c, err := NewCTR(key, iv)
	require.NoError(t, err)
	h, err := NewHMAC(key, iv)
	require.NoError(t, err)

	cOut := make([]byte, 32)
	hOut := make([]byte, 32)
	c.StepR(cOut)
	h.StepR(hOut)
	require.NotEqual(t, cOut, hOut)
}

func TestHMACRejectsBadIVLength(t *testing.T) {
	_, err := NewHMAC(randBytes(t, 32), randBytes(t, 10))
	require.Error(t, err)
}

func TestPooledReaderProducesDistinctOutput(t *testing.T) {
	r, err := NewReader(WithShards(1))
	require.NoError(t, err)

	a := make([]byte, 64)
	b := make([]byte, 64)
	_, err = r.Read(a)
	require.NoError(t, err)
	_, err = r.Read(b)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestPooledReaderRekeysUnderLowBudget(t *testing.T) {
	r, err := NewReader(WithShards(1), WithMaxBytesPerKey(16))
	require.NoError(t, err)

	buf := make([]byte, 16)
	for i := 0; i < 8; i++ {
		_, err := r.Read(buf)
		require.NoError(t, err)
	}
}

func TestPackageReaderIsUsable(t *testing.T) {
	buf := make([]byte, 32)
	n, err := Reader.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 32, n)
}
