// Package drbg implements STB 34.101.47's BRNG core: the two deterministic
// random bit generators, brng-ctr and brng-hmac, that the process-wide RNG
// singleton (the entropy package) keys from harvested entropy. Both are
// streaming state machines, not one-shot functions: Start once, StepR
// repeatedly, StepG to snapshot state for a continuation generator on
// another instance.
package drbg

import (
	"github.com/stb34101/beltgo/belthash"
)

// StateLen is the octet length of brng-ctr's s and r accumulators (256
// bits, "s, r ∈ {0,1}^256").
const StateLen = 32

// BlockSize is brng-ctr's output-block granularity: one belt-hash digest
// per block, unlike the 16-octet blocks belt's own cipher modes use.
const BlockSize = belthash.Size

// CTR is brng-ctr's streaming state: a pre-absorbed key context H_k, the
// counter s and feedback accumulator r, and the reserved-byte bookkeeping
// for partial-block extraction (the same buffered-keystream idiom
// mode.CTR uses for its 16-octet gamma blocks, generalized to 32).
type CTR struct {
	hk       belthash.Hash
	s        [StateLen]byte
	r        [StateLen]byte
	prev     [BlockSize]byte
	buf      [BlockSize]byte
	reserved int
}

// NewCTR starts a brng-ctr generator (Start(key, iv)). key is absorbed into
// a belt-hash context once and reused (by value copy) for every output
// block, rather than rehashed from scratch each time. iv, 32 octets, seeds
// the initial counter s; r starts at all-zero and the first block's
// context X is the zero block, since "the previous output block" chaining
// rule has no predecessor yet.
func NewCTR(key, iv []byte) (*CTR, error) {
	if len(iv) != StateLen {
		return nil, ErrDrbgBrngCtrIvMustBe
	}
	g := &CTR{}
	hk := belthash.New()
	_, _ = hk.Write(key)
	g.hk = *hk
	copy(g.s[:], iv)
	return g, nil
}

func incCounter(c *[StateLen]byte) {
	for i := 0; i < StateLen; i++ {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}

// generateBlock produces one 32-octet output block Y_i = belt-hash(H_k ||
// s || X || r), then advances s by 1 (little-endian) and folds Y_i into r.
func (g *CTR) generateBlock(ctx []byte) [BlockSize]byte {
	h := g.hk
	_, _ = h.Write(g.s[:])
	_, _ = h.Write(ctx)
	_, _ = h.Write(g.r[:])
	y := h.Sum()

	incCounter(&g.s)
	for i := range g.r {
		g.r[i] ^= y[i]
	}
	return y
}

func (g *CTR) fill() {
	g.buf = g.generateBlock(g.prev[:])
	g.prev = g.buf
	g.reserved = BlockSize
}

// Reseed folds externally-supplied entropy into r, mixing it into every
// subsequent output block without restarting s or H_k. Used by the RNG
// singleton's extraction path (entropy package) to stir freshly harvested
// source octets into the stream before each StepR, so the delivered output
// is always DRBG output but never independent of ongoing entropy harvest.
func (g *CTR) Reseed(extra []byte) {
	for i, b := range extra {
		g.r[i%StateLen] ^= b
	}
}

// StepR extracts len(dst) octets of keystream. Requests are not required to
// align to BlockSize: splitting one request into several smaller ones
// yields the same byte stream as a single larger request (property 6),
// since extraction just keeps walking the same buffered block sequence
// regardless of how the caller chooses to slice it.
func (g *CTR) StepR(dst []byte) {
	pos := BlockSize - g.reserved
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

// CTRState is an exported snapshot of a CTR generator, returned by StepG so
// a caller can resume an equivalent generator elsewhere ("StepG,
// export state for continuation").
type CTRState struct {
	HK       belthash.Hash
	S        [StateLen]byte
	R        [StateLen]byte
	Prev     [BlockSize]byte
	Buf      [BlockSize]byte
	Reserved int
}

// StepG exports the generator's current state.
func (g *CTR) StepG() CTRState {
	return CTRState{HK: g.hk, S: g.s, R: g.r, Prev: g.prev, Buf: g.buf, Reserved: g.reserved}
}

// ResumeCTR reconstructs a CTR generator from a previously exported state.
func ResumeCTR(st CTRState) *CTR {
	return &CTR{hk: st.HK, s: st.S, r: st.R, prev: st.Prev, buf: st.Buf, reserved: st.Reserved}
}

// Close wipes the generator's sensitive state.
func (g *CTR) Close() {
	for i := range g.s {
		g.s[i] = 0
	}
	for i := range g.r {
		g.r[i] = 0
	}
	for i := range g.buf {
		g.buf[i] = 0
	}
	for i := range g.prev {
		g.prev[i] = 0
	}
	g.reserved = 0
}
