package drbg

import (
	"github.com/stb34101/beltgo/belthash"
)

// HMAC is brng-hmac's streaming state: "similar structure [to
// brng-ctr] but uses belt-hmac(key, r || iv) as the next-block primitive
// and updates r ← belt-hmac(key, r) between blocks." Unlike brng-ctr there
// is no separate counter s; r alone carries the chain forward, and iv is
// fixed for the generator's lifetime rather than advancing.
type HMAC struct {
	key      []byte
	iv       [belthash.Size]byte
	r        [belthash.Size]byte
	buf      [belthash.Size]byte
	reserved int
}

// NewHMAC starts a brng-hmac generator. iv must be 32 octets (belt-hmac's
// digest size). r's initial value is not specified by beyond its
// length; seeding it from iv mirrors brng-ctr seeding its counter s from
// iv, so both generators derive all of their non-key initial state from
// the same caller-supplied 32 octets.
func NewHMAC(key, iv []byte) (*HMAC, error) {
	if len(iv) != belthash.Size {
		return nil, ErrDrbgBrngHmacIvMustBe
	}
	g := &HMAC{key: append([]byte(nil), key...)}
	copy(g.iv[:], iv)
	copy(g.r[:], iv)
	return g, nil
}

func (g *HMAC) fill() {
	h := belthash.NewHMAC(g.key)
	_, _ = h.Write(g.r[:])
	_, _ = h.Write(g.iv[:])
	g.buf = h.Sum()

	rNext := belthash.NewHMAC(g.key)
	_, _ = rNext.Write(g.r[:])
	g.r = rNext.Sum()

	g.reserved = belthash.Size
}

// StepR extracts len(dst) octets of keystream, with the same
// split-invariant buffered-block semantics as CTR.StepR.
func (g *HMAC) StepR(dst []byte) {
	pos := belthash.Size - g.reserved
	for i := range dst {
		if g.reserved == 0 {
			g.fill()
			pos = 0
		}
		dst[i] = g.buf[pos]
		pos++
		g.reserved--
	}
}

// HMACState is an exported snapshot for continuation, mirroring CTRState.
type HMACState struct {
	Key      []byte
	IV       [belthash.Size]byte
	R        [belthash.Size]byte
	Buf      [belthash.Size]byte
	Reserved int
}

// StepG exports the generator's current state.
func (g *HMAC) StepG() HMACState {
	return HMACState{
		Key:      append([]byte(nil), g.key...),
		IV:       g.iv,
		R:        g.r,
		Buf:      g.buf,
		Reserved: g.reserved,
	}
}

// ResumeHMAC reconstructs an HMAC generator from an exported state.
func ResumeHMAC(st HMACState) *HMAC {
	return &HMAC{
		key:      append([]byte(nil), st.Key...),
		iv:       st.IV,
		r:        st.R,
		buf:      st.Buf,
		reserved: st.Reserved,
	}
}

// Close wipes the generator's sensitive state.
func (g *HMAC) Close() {
	for i := range g.key {
		g.key[i] = 0
	}
	for i := range g.r {
		g.r[i] = 0
	}
	for i := range g.buf {
		g.buf[i] = 0
	}
	for i := range g.iv {
		g.iv[i] = 0
	}
	g.reserved = 0
}
