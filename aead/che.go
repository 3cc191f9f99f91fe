package aead

import (
	"github.com/stb34101/beltgo/internal/bytesx"
)

// CHE implements belt-CHE: identical protocol skeleton to DWP, but
// the keystream counter advances by GF(2^128) multiplication by the fixed
// element x (doubling) each step instead of +1, so the MAC key and every
// keystream block descend from the same GF(2^128) element tree.
type CHE struct {
	c *core
}

// NewCHE is Start(K, IV) for belt-CHE.
func NewCHE(key, iv []byte) (*CHE, error) {
	c, err := newCore(key, iv, timesX)
	if err != nil {
		return nil, err
	}
	return &CHE{c: c}, nil
}

// Close wipes cipher and MAC state.
func (e *CHE) Close() { e.c.Close() }

// StepI absorbs associated data. Rejected once StepE or StepA has run.
func (e *CHE) StepI(ad []byte) error {
	if e.c.ph != phaseAD {
		return ErrCheStepiAfterAssociatedDataFinished
	}
	e.c.absorb(ad)
	e.c.adLen += uint64(len(ad))
	return nil
}

func (e *CHE) transitionToCT() {
	if e.c.ph == phaseAD {
		e.c.flushPartial()
		e.c.ph = phaseCT
	}
}

// StepE encrypts src into dst via the CHE keystream.
func (e *CHE) StepE(dst, src []byte) error {
	if e.c.ph == phaseDone {
		return ErrCheStepeAfterTagFinalized
	}
	e.transitionToCT()
	e.c.xorStream(dst, src)
	return nil
}

// StepD decrypts src into dst; identical keystream operation to StepE.
// Callers decrypting untrusted input must verify via StepV first, to
// avoid leaking partial plaintext on tag failure — Unwrap below enforces
// this for the one-shot path.
func (e *CHE) StepD(dst, src []byte) error { return e.StepE(dst, src) }

// StepA absorbs ciphertext octets into the running tag.
func (e *CHE) StepA(ct []byte) error {
	if e.c.ph == phaseDone {
		return ErrCheStepaAfterTagFinalized
	}
	e.transitionToCT()
	e.c.absorb(ct)
	e.c.ctLen += uint64(len(ct))
	return nil
}

// StepG finalizes and returns the TagLen-octet tag.
func (e *CHE) StepG() []byte {
	e.transitionToCT()
	tag := e.c.finalize()
	e.c.ph = phaseDone
	out := make([]byte, TagLen)
	copy(out, tag[:TagLen])
	return out
}

// StepV finalizes and compares against an expected tag in constant time.
func (e *CHE) StepV(expected []byte) bool {
	got := e.StepG()
	return bytesx.ConstantTimeCompare(got, expected)
}

// WrapCHE is the one-shot CHE encrypt, same I/E/A/G sequence as DWP's Wrap.
func WrapCHE(key, iv, dst, src, ad []byte) ([]byte, error) {
	e, err := NewCHE(key, iv)
	if err != nil {
		return nil, err
	}
	defer e.Close()

	if err := e.StepI(ad); err != nil {
		return nil, err
	}
	if err := e.StepE(dst, src); err != nil {
		return nil, err
	}
	if err := e.StepA(dst); err != nil {
		return nil, err
	}
	return e.StepG(), nil
}

// UnwrapCHE is the one-shot CHE decrypt: reject-then-decrypt, verifying the
// tag before producing any plaintext (DWP's Unwrap applies the same
// discipline for consistency).
func UnwrapCHE(key, iv, dst, src, ad, tag []byte) error {
	e, err := NewCHE(key, iv)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.StepI(ad); err != nil {
		return err
	}
	if err := e.StepA(src); err != nil {
		return err
	}
	if !e.StepV(tag) {
		return ErrCheTagMismatch
	}

	e2, err := NewCHE(key, iv)
	if err != nil {
		return err
	}
	defer e2.Close()
	return e2.StepD(dst, src)
}
