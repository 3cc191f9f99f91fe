package aead

import (
	"github.com/stb34101/beltgo/internal/bytesx"
)

// DWP implements belt-DWP: CTR encryption with a GF(2^128)
// polynomial-hash MAC keyed by the first keystream block. Associated data
// is absorbed via StepI, ciphertext via StepA; StepI is rejected once
// StepA has started, and StepA is rejected once the tag has been read.
type DWP struct {
	c *core
}

// NewDWP is Start(K, IV) for belt-DWP.
func NewDWP(key, iv []byte) (*DWP, error) {
	c, err := newCore(key, iv, plusOne)
	if err != nil {
		return nil, err
	}
	return &DWP{c: c}, nil
}

// Close wipes cipher and MAC state.
func (d *DWP) Close() { d.c.Close() }

// StepI absorbs associated data. Rejected once StepE or StepA has run.
func (d *DWP) StepI(ad []byte) error {
	if d.c.ph != phaseAD {
		return ErrDwpStepiAfterAssociatedDataFinished
	}
	d.c.absorb(ad)
	d.c.adLen += uint64(len(ad))
	return nil
}

// transitionToCT flushes any pending AD partial block and moves to the
// ciphertext-absorbing phase; idempotent if already past phaseAD.
func (d *DWP) transitionToCT() {
	if d.c.ph == phaseAD {
		d.c.flushPartial()
		d.c.ph = phaseCT
	}
}

// StepE encrypts src into dst via the CTR keystream. Does not itself
// absorb anything into the MAC; call StepA on the ciphertext afterward.
func (d *DWP) StepE(dst, src []byte) error {
	if d.c.ph == phaseDone {
		return ErrDwpStepeAfterTagFinalized
	}
	d.transitionToCT()
	d.c.xorStream(dst, src)
	return nil
}

// StepD decrypts src into dst; identical keystream operation to StepE.
func (d *DWP) StepD(dst, src []byte) error { return d.StepE(dst, src) }

// StepA absorbs ciphertext octets into the running tag. Rejected once the
// tag has been read via StepG/StepV.
func (d *DWP) StepA(ct []byte) error {
	if d.c.ph == phaseDone {
		return ErrDwpStepaAfterTagFinalized
	}
	d.transitionToCT()
	d.c.absorb(ct)
	d.c.ctLen += uint64(len(ct))
	return nil
}

// StepG finalizes and returns the TagLen-octet tag.
func (d *DWP) StepG() []byte {
	d.transitionToCT()
	tag := d.c.finalize()
	d.c.ph = phaseDone
	out := make([]byte, TagLen)
	copy(out, tag[:TagLen])
	return out
}

// StepV finalizes and compares against an expected tag in constant time.
func (d *DWP) StepV(expected []byte) bool {
	got := d.StepG()
	return bytesx.ConstantTimeCompare(got, expected)
}

// Wrap is the one-shot AEAD encrypt: I, (move handled by caller not
// aliasing ad with dst), E, A, G, in that order, matching fused
// Wrap sequence.
func Wrap(key, iv, dst, src, ad []byte) ([]byte, error) {
	d, err := NewDWP(key, iv)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	if err := d.StepI(ad); err != nil {
		return nil, err
	}
	if err := d.StepE(dst, src); err != nil {
		return nil, err
	}
	if err := d.StepA(dst); err != nil {
		return nil, err
	}
	return d.StepG(), nil
}

// Unwrap is the one-shot AEAD decrypt: verify before decrypting, so a
// tag mismatch never exposes partial plaintext.
func Unwrap(key, iv, dst, src, ad, tag []byte) error {
	d, err := NewDWP(key, iv)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.StepI(ad); err != nil {
		return err
	}
	if err := d.StepA(src); err != nil {
		return err
	}
	if !d.StepV(tag) {
		return ErrDwpTagMismatch
	}

	d2, err := NewDWP(key, iv)
	if err != nil {
		return err
	}
	defer d2.Close()
	return d2.StepD(dst, src)
}
