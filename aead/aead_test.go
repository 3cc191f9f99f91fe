package aead

import (
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

func TestDWPRoundTrip(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	ad := randBytes(t, 40)
	pt := randBytes(t, 70)

	ct := make([]byte, len(pt))
	tag, err := Wrap(key, iv, ct, pt, ad)
	require.NoError(t, err)
	require.Len(t, tag, TagLen)
	require.NotEqual(t, pt, ct)

	pt2 := make([]byte, len(ct))
	require.NoError(t, Unwrap(key, iv, pt2, ct, ad, tag))
	require.Equal(t, pt, pt2)
}

func TestDWPTamperedTagRejected(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	ad := randBytes(t, 10)
	pt := randBytes(t, 33)

	ct := make([]byte, len(pt))
	tag, err := Wrap(key, iv, ct, pt, ad)
	require.NoError(t, err)

	tag[0] ^= 0xFF
	pt2 := make([]byte, len(ct))
	err = Unwrap(key, iv, pt2, ct, ad, tag)
	require.Error(t, err)
}

func TestDWPTamperedCiphertextRejected(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	ad := randBytes(t, 10)
	pt := randBytes(t, 33)

	ct := make([]byte, len(pt))
	tag, err := Wrap(key, iv, ct, pt, ad)
	require.NoError(t, err)

	ct[0] ^= 0xFF
	pt2 := make([]byte, len(ct))
	err = Unwrap(key, iv, pt2, ct, ad, tag)
	require.Error(t, err)
}

func TestDWPTamperedADRejected(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	ad := randBytes(t, 10)
	pt := randBytes(t, 33)

	ct := make([]byte, len(pt))
	tag, err := Wrap(key, iv, ct, pt, ad)
	require.NoError(t, err)

	ad[0] ^= 0xFF
	pt2 := make([]byte, len(ct))
	err = Unwrap(key, iv, pt2, ct, ad, tag)
	require.Error(t, err)
}

func TestDWPStepIRejectedAfterStepA(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)

	d, err := NewDWP(key, iv)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.StepI(randBytes(t, 8)))
	require.NoError(t, d.StepA(randBytes(t, 8)))
	require.Error(t, d.StepI(randBytes(t, 8)))
}

func TestDWPStepARejectedAfterTag(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)

	d, err := NewDWP(key, iv)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.StepA(randBytes(t, 8)))
	_ = d.StepG()
	require.Error(t, d.StepA(randBytes(t, 8)))
}

func TestCHERoundTrip(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	ad := randBytes(t, 20)
	pt := randBytes(t, 90)

	ct := make([]byte, len(pt))
	tag, err := WrapCHE(key, iv, ct, pt, ad)
	require.NoError(t, err)
	require.NotEqual(t, pt, ct)

	pt2 := make([]byte, len(ct))
	require.NoError(t, UnwrapCHE(key, iv, pt2, ct, ad, tag))
	require.Equal(t, pt, pt2)
}

func TestCHETamperedTagRejected(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	pt := randBytes(t, 48)

	ct := make([]byte, len(pt))
	tag, err := WrapCHE(key, iv, ct, pt, nil)
	require.NoError(t, err)
	tag[0] ^= 0x01

	pt2 := make([]byte, len(ct))
	require.Error(t, UnwrapCHE(key, iv, pt2, ct, nil, tag))
}

func TestDWPAndCHEKeystreamsDiffer(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	pt := randBytes(t, 48)

	dwpCT := make([]byte, len(pt))
	_, err := Wrap(key, iv, dwpCT, pt, nil)
	require.NoError(t, err)

	cheCT := make([]byte, len(pt))
	_, err = WrapCHE(key, iv, cheCT, pt, nil)
	require.NoError(t, err)

	require.NotEqual(t, dwpCT, cheCT)
}

func TestBDERoundTrip(t *testing.T) {
	master := randBytes(t, 32)
	b, err := NewBDE(master)
	require.NoError(t, err)
	defer b.Close()

	pt := randBytes(t, 512)
	ct := make([]byte, len(pt))
	require.NoError(t, b.EncryptSector(7, ct, pt))
	require.NotEqual(t, pt, ct)

	pt2 := make([]byte, len(pt))
	require.NoError(t, b.DecryptSector(7, pt2, ct))
	require.Equal(t, pt, pt2)
}

func TestBDEDistinctSectorsDiffer(t *testing.T) {
	master := randBytes(t, 32)
	b, err := NewBDE(master)
	require.NoError(t, err)
	defer b.Close()

	pt := randBytes(t, 64)
	ct1 := make([]byte, len(pt))
	require.NoError(t, b.EncryptSector(1, ct1, pt))
	ct2 := make([]byte, len(pt))
	require.NoError(t, b.EncryptSector(2, ct2, pt))

	require.NotEqual(t, ct1, ct2)
}

func TestSDERoundTrip(t *testing.T) {
	master := randBytes(t, 32)
	s, err := NewSDE(master)
	require.NoError(t, err)
	defer s.Close()

	pt := randBytes(t, 512)
	ct := make([]byte, len(pt))
	tag, err := s.EncryptSector(3, ct, pt)
	require.NoError(t, err)
	require.Len(t, tag, TagLen)

	pt2 := make([]byte, len(pt))
	require.NoError(t, s.DecryptSector(3, pt2, ct, tag))
	require.Equal(t, pt, pt2)
}

func TestSDETamperedTagRejected(t *testing.T) {
	master := randBytes(t, 32)
	s, err := NewSDE(master)
	require.NoError(t, err)
	defer s.Close()

	pt := randBytes(t, 128)
	ct := make([]byte, len(pt))
	tag, err := s.EncryptSector(9, ct, pt)
	require.NoError(t, err)
	tag[0] ^= 0xFF

	pt2 := make([]byte, len(pt))
	err = s.DecryptSector(9, pt2, ct, tag)
	require.Error(t, err)
}

func TestSDEWrongSectorRejected(t *testing.T) {
	master := randBytes(t, 32)
	s, err := NewSDE(master)
	require.NoError(t, err)
	defer s.Close()

	pt := randBytes(t, 128)
	ct := make([]byte, len(pt))
	tag, err := s.EncryptSector(1, ct, pt)
	require.NoError(t, err)

	pt2 := make([]byte, len(pt))
	err = s.DecryptSector(2, pt2, ct, tag)
	require.Error(t, err)
}
