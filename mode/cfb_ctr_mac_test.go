package mode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCFBRoundTrip_VariousChunking(t *testing.T) {
	key := randBytes(t, 32)
	iv := randBytes(t, 16)
	pt := randBytes(t, 100)

	enc, err := NewCFB(key, iv)
	require.NoError(t, err)
	ct := make([]byte, len(pt))
	enc.StepE(ct, pt)

	for _, chunk := range []int{1, 3, 7, 16, 50} {
		dec, err := NewCFB(key, iv)
		require.NoError(t, err)
		out := make([]byte, len(ct))
		for i := 0; i < len(ct); i += chunk {
			end := i + chunk
			if end > len(ct) {
				end = len(ct)
			}
			dec.StepD(out[i:end], ct[i:end])
		}
		require.Equal(t, pt, out, "chunk=%d", chunk)
	}
}

func TestCFBInPlace(t *testing.T) {
	key := randBytes(t, 16)
	iv := randBytes(t, 16)
	pt := randBytes(t, 37)

	enc, err := NewCFB(key, iv)
	require.NoError(t, err)
	buf := bytes.Clone(pt)
	enc.StepE(buf, buf)
	require.NotEqual(t, pt, buf)

	dec, err := NewCFB(key, iv)
	require.NoError(t, err)
	dec.StepD(buf, buf)
	require.Equal(t, pt, buf)
}

func TestCTRRoundTrip_VariousChunking(t *testing.T) {
	key := randBytes(t, 24)
	iv := randBytes(t, 16)
	pt := randBytes(t, 130)

	enc, err := NewCTR(key, iv)
	require.NoError(t, err)
	ct := make([]byte, len(pt))
	enc.StepE(ct, pt)

	for _, chunk := range []int{1, 5, 16, 64} {
		dec, err := NewCTR(key, iv)
		require.NoError(t, err)
		out := make([]byte, len(ct))
		for i := 0; i < len(ct); i += chunk {
			end := i + chunk
			if end > len(ct) {
				end = len(ct)
			}
			dec.StepD(out[i:end], ct[i:end])
		}
		require.Equal(t, pt, out, "chunk=%d", chunk)
	}
}

func TestCTRFirstBlockIsNotEK_IV(t *testing.T) {
	key := randBytes(t, 32)
	iv := make([]byte, 16)

	c, err := NewCTR(key, iv)
	require.NoError(t, err)

	// ctr field already holds E_K(IV) right after Start; the first
	// keystream block must differ from it.
	ekIV := c.ctr
	firstKeystream := make([]byte, 16)
	zero := make([]byte, 16)
	c.StepE(firstKeystream, zero)
	require.NotEqual(t, ekIV[:], firstKeystream, "first output block must not equal E_K(IV)")
}

func TestMACDeterministic(t *testing.T) {
	key := randBytes(t, 32)
	msg := randBytes(t, 50)

	m1, err := NewMAC(key)
	require.NoError(t, err)
	m1.StepA(msg)
	tag1 := m1.StepG()

	m2, err := NewMAC(key)
	require.NoError(t, err)
	m2.StepA(msg)
	tag2 := m2.StepG()

	require.Equal(t, tag1, tag2)
	require.Len(t, tag1, DefaultTagLen)
}

func TestMACVerify(t *testing.T) {
	key := randBytes(t, 32)
	msg := randBytes(t, 33) // exercises the 0x80-padding branch

	m, err := NewMAC(key)
	require.NoError(t, err)
	m.StepA(msg)
	tag := m.StepG()

	v, err := NewMAC(key)
	require.NoError(t, err)
	v.StepA(msg)
	require.True(t, v.StepV(tag))

	tampered := bytes.Clone(tag)
	tampered[0] ^= 0xFF
	v2, err := NewMAC(key)
	require.NoError(t, err)
	v2.StepA(msg)
	require.False(t, v2.StepV(tampered))
}

func TestMACChunkingIndependence(t *testing.T) {
	key := randBytes(t, 32)
	msg := randBytes(t, 65) // > 4 full blocks, exercises foldFull boundary

	whole, err := NewMAC(key)
	require.NoError(t, err)
	whole.StepA(msg)
	tagWhole := whole.StepG()

	chunked, err := NewMAC(key)
	require.NoError(t, err)
	for i := 0; i < len(msg); i += 7 {
		end := i + 7
		if end > len(msg) {
			end = len(msg)
		}
		chunked.StepA(msg[i:end])
	}
	tagChunked := chunked.StepG()

	require.Equal(t, tagWhole, tagChunked)
}
