package pbkdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveDeterministic(t *testing.T) {
	a, err := Derive([]byte("correct horse"), []byte("salt"), MinIterations, 32)
	require.NoError(t, err)
	b, err := Derive([]byte("correct horse"), []byte("salt"), MinIterations, 32)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDeriveDiffersOnSalt(t *testing.T) {
	a, err := Derive([]byte("correct horse"), []byte("salt1"), MinIterations, 32)
	require.NoError(t, err)
	b, err := Derive([]byte("correct horse"), []byte("salt2"), MinIterations, 32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDeriveRespectsKeyLen(t *testing.T) {
	out, err := Derive([]byte("pw"), []byte("salt"), MinIterations, 48)
	require.NoError(t, err)
	require.Len(t, out, 48)
}

func TestDeriveRejectsLowIterationCount(t *testing.T) {
	_, err := Derive([]byte("pw"), []byte("salt"), 1, 32)
	require.Error(t, err)
}

func TestDeriveRejectsZeroKeyLen(t *testing.T) {
	_, err := Derive([]byte("pw"), []byte("salt"), MinIterations, 0)
	require.Error(t, err)
}

func TestBeltHMACHashResetMatchesFreshInstance(t *testing.T) {
	h := newBeltHMACHash([]byte("key"))
	_, _ = h.Write([]byte("hello"))
	d1 := h.Sum(nil)

	h.Reset()
	_, _ = h.Write([]byte("hello"))
	d2 := h.Sum(nil)

	require.Equal(t, d1, d2)
}
