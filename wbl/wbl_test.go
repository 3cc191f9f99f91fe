package wbl

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stb34101/beltgo"
)

func randBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestWBLRoundTripAligned(t *testing.T) {
	for _, n := range []int{32, 48, 64, 96} {
		key := randBytes(t, 32)
		ks, err := beltgo.ExpandKey(key)
		require.NoError(t, err)

		pt := randBytes(t, n)
		ct := append([]byte(nil), pt...)
		require.NoError(t, Encrypt(&ks, ct))
		require.NotEqual(t, pt, ct, "n=%d", n)

		pt2 := append([]byte(nil), ct...)
		require.NoError(t, Decrypt(&ks, pt2))
		require.Equal(t, pt, pt2, "n=%d", n)
	}
}

func TestWBLRoundTripUnaligned(t *testing.T) {
	for _, n := range []int{33, 37, 47, 50, 63} {
		key := randBytes(t, 16)
		ks, err := beltgo.ExpandKey(key)
		require.NoError(t, err)

		pt := randBytes(t, n)
		ct := append([]byte(nil), pt...)
		require.NoError(t, Encrypt(&ks, ct))
		require.NotEqual(t, pt, ct, "n=%d", n)

		pt2 := append([]byte(nil), ct...)
		require.NoError(t, Decrypt(&ks, pt2))
		require.Equal(t, pt, pt2, "n=%d", n)
	}
}

func TestWBLRejectsShortInput(t *testing.T) {
	key := randBytes(t, 16)
	ks, err := beltgo.ExpandKey(key)
	require.NoError(t, err)

	buf := randBytes(t, 31)
	require.Error(t, Encrypt(&ks, buf))
	require.Error(t, Decrypt(&ks, buf))
}

func TestWBLDiffusion(t *testing.T) {
	key := randBytes(t, 24)
	ks, err := beltgo.ExpandKey(key)
	require.NoError(t, err)

	pt := randBytes(t, 64)
	ct1 := append([]byte(nil), pt...)
	require.NoError(t, Encrypt(&ks, ct1))

	pt2 := append([]byte(nil), pt...)
	pt2[0] ^= 0x01
	ct2 := append([]byte(nil), pt2...)
	require.NoError(t, Encrypt(&ks, ct2))

	diff := 0
	for i := range ct1 {
		if ct1[i] != ct2[i] {
			diff++
		}
	}
	require.Greater(t, diff, len(ct1)/2, "flipping one input bit should change most output bytes")
}

func TestKWPRoundTrip(t *testing.T) {
	for _, keyLen := range []int{16, 24, 32} {
		key := randBytes(t, 32)
		src := randBytes(t, keyLen)
		header := randBytes(t, HeaderLen)

		dest := make([]byte, len(src)+headerLen)
		require.NoError(t, Wrap(key, dest, src, header))

		unwrapped := make([]byte, keyLen)
		require.NoError(t, Unwrap(key, unwrapped, dest, header))
		require.Equal(t, src, unwrapped, "keyLen=%d", keyLen)
	}
}

func TestKWPImplicitZeroHeader(t *testing.T) {
	key := randBytes(t, 32)
	src := randBytes(t, 32)

	dest := make([]byte, len(src)+headerLen)
	require.NoError(t, Wrap(key, dest, src, nil))

	unwrapped := make([]byte, len(src))
	require.NoError(t, Unwrap(key, unwrapped, dest, nil))
	require.Equal(t, src, unwrapped)
}

func TestKWPBadHeaderRejected(t *testing.T) {
	key := randBytes(t, 32)
	src := randBytes(t, 32)
	header := randBytes(t, HeaderLen)

	dest := make([]byte, len(src)+headerLen)
	require.NoError(t, Wrap(key, dest, src, header))

	wrongHeader := randBytes(t, HeaderLen)
	unwrapped := make([]byte, len(src))
	err := Unwrap(key, unwrapped, dest, wrongHeader)
	require.Error(t, err)
	require.Equal(t, beltgo.BadKeyToken, beltgo.CodeOf(err))
	require.True(t, errors.Is(err, ErrKwpHeaderMismatch))
}

func TestKWPTamperedCiphertextRejected(t *testing.T) {
	key := randBytes(t, 32)
	src := randBytes(t, 24)

	dest := make([]byte, len(src)+headerLen)
	require.NoError(t, Wrap(key, dest, src, nil))
	dest[0] ^= 0xFF

	unwrapped := make([]byte, len(src))
	err := Unwrap(key, unwrapped, dest, nil)
	require.Error(t, err)
}

func TestKRPDeterministicAndDistinct(t *testing.T) {
	key := randBytes(t, 32)
	k1, err := Start(key)
	require.NoError(t, err)

	level := randBytes(t, LevelLen)
	header := randBytes(t, HeaderLen)

	out1 := make([]byte, 32)
	require.NoError(t, k1.StepG(out1, 32, level, header))

	k2, err := Start(key)
	require.NoError(t, err)
	out2 := make([]byte, 32)
	require.NoError(t, k2.StepG(out2, 32, level, header))
	require.Equal(t, out1, out2)

	out16 := make([]byte, 16)
	require.NoError(t, k1.StepG(out16, 16, level, header))
	require.NotEqual(t, out1[:16], out16, "different derived lengths must not alias the same bytes")

	otherLevel := randBytes(t, LevelLen)
	out3 := make([]byte, 32)
	require.NoError(t, k1.StepG(out3, 32, otherLevel, header))
	require.NotEqual(t, out1, out3)
}

func TestKRPRejectsBadLengths(t *testing.T) {
	_, err := Start(randBytes(t, 20))
	require.Error(t, err)

	k, err := Start(randBytes(t, 32))
	require.NoError(t, err)

	out := make([]byte, 20)
	err = k.StepG(out, 20, randBytes(t, LevelLen), randBytes(t, HeaderLen))
	require.Error(t, err)
}

func TestFMTRoundTrip(t *testing.T) {
	cases := []struct {
		modulus uint32
		count   int
	}{
		{10, 6}, {10, 16}, {100, 8}, {65536, 4}, {2, 32},
		{10, 40}, // b==2 per half: exercises the ECB ciphertext-stealing path
		{10, 80}, // b>=3 per half: exercises the WBL path
	}
	key := randBytes(t, 32)

	for _, c := range cases {
		enc, err := NewFMT(key, c.modulus, c.count, 0xDEADBEEF)
		require.NoError(t, err)

		digits := make([]uint16, c.count)
		for i := range digits {
			digits[i] = uint16(i % int(c.modulus))
		}
		original := append([]uint16(nil), digits...)

		require.NoError(t, enc.Encrypt(digits))
		require.NotEqual(t, original, digits, "modulus=%d count=%d", c.modulus, c.count)
		for _, d := range digits {
			require.Less(t, uint32(d), c.modulus)
		}

		dec, err := NewFMT(key, c.modulus, c.count, 0xDEADBEEF)
		require.NoError(t, err)
		require.NoError(t, dec.Decrypt(digits))
		require.Equal(t, original, digits, "modulus=%d count=%d", c.modulus, c.count)
	}
}

func TestFMTDifferentIVsDiffer(t *testing.T) {
	key := randBytes(t, 32)
	digits := []uint16{1, 2, 3, 4, 5, 6}

	enc1, err := NewFMT(key, 10, 6, 1)
	require.NoError(t, err)
	out1 := append([]uint16(nil), digits...)
	require.NoError(t, enc1.Encrypt(out1))

	enc2, err := NewFMT(key, 10, 6, 2)
	require.NoError(t, err)
	out2 := append([]uint16(nil), digits...)
	require.NoError(t, enc2.Encrypt(out2))

	require.NotEqual(t, out1, out2)
}

func TestFMTRejectsOutOfRangeParams(t *testing.T) {
	key := randBytes(t, 32)
	_, err := NewFMT(key, 1, 6, 0)
	require.Error(t, err)

	_, err = NewFMT(key, 10, 1, 0)
	require.Error(t, err)

	_, err = NewFMT(key, 10, 601, 0)
	require.Error(t, err)
}

func TestFMTRejectsBadDigits(t *testing.T) {
	key := randBytes(t, 32)
	enc, err := NewFMT(key, 10, 6, 0)
	require.NoError(t, err)

	require.Error(t, enc.Encrypt([]uint16{1, 2, 3}))
	require.Error(t, enc.Encrypt([]uint16{1, 2, 3, 4, 5, 10}))
}
