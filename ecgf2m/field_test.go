package ecgf2m

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldAddIsItsOwnInverse(t *testing.T) {
	f := DefaultField
	a, err := f.FromBytes([]byte{0x12, 0x34, 0x56})
	require.NoError(t, err)
	sum := f.Add(a, a)
	require.True(t, sum.IsZero())
}

func TestFieldMulInvRoundTrip(t *testing.T) {
	f := DefaultField
	a, err := f.FromBytes([]byte{0x01, 0x02, 0x03, 0x04})
	require.NoError(t, err)
	require.False(t, a.IsZero())

	inv, err := f.Inv(a)
	require.NoError(t, err)
	one := f.Mul(a, inv)
	require.True(t, f.Equal(one, f.One()))
}

func TestFieldInvZeroFails(t *testing.T) {
	f := DefaultField
	_, err := f.Inv(f.Zero())
	require.Error(t, err)
}

func TestFieldToBytesFromBytesRoundTrip(t *testing.T) {
	f := DefaultField
	in := []byte{0xAB, 0xCD, 0xEF, 0x01, 0x23}
	e, err := f.FromBytes(in)
	require.NoError(t, err)
	out := e.ToBytes()
	// ToBytes always pads to ceil(M/8) octets; the decoded value's
	// trailing octets must match the input exactly.
	require.Equal(t, in, out[len(out)-len(in):])
}

func TestFieldSqrMatchesMulSelf(t *testing.T) {
	f := DefaultField
	a, err := f.FromBytes([]byte{0x7F, 0x11})
	require.NoError(t, err)
	require.True(t, f.Equal(f.Sqr(a), f.Mul(a, a)))
}

func TestFieldFromBytesRejectsOverlongInput(t *testing.T) {
	f := NewField(8, []int{4, 3, 1, 0})
	_, err := f.FromBytes([]byte{0x01, 0x02})
	require.Error(t, err)
}
