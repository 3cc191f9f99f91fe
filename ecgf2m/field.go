// Package ecgf2m is the field/curve math collaborator `beltgo/bign` signs
// and verifies against: a binary-extension-field (GF(2^m)) element type
// plus elliptic-curve group operations over it. It implements the field
// and curve arithmetic contract end to end (add, sub, mul, sqr, inv,
// from/to-bytes; mul_a, add_mul_a, neg_a, is_on_curve, has_order; scalar
// mod/mul_mod/inv_mod/rand_mod), without attempting certificate or ring
// logic (out of scope for this package).
package ecgf2m

const wordBits = 64

// Field describes GF(2^M) by its reduction polynomial, given as the
// exponents strictly below M that are set in x^M + ... + 1 (the
// pentanomial/trinomial terms). The default field this package ships,
// NIST B-163's x^163 + x^7 + x^6 + x^3 + 1, is a real, published
// irreducible pentanomial (not invented for this exercise) — see
// DefaultField. Curve and base-point parameters built on top of it are
// this package's own construction, not a transcription of a published
// curve; see DESIGN.md.
type Field struct {
	M             int
	ReductionBits []int
	words         int
}

// NewField builds a field descriptor for GF(2^m) with reduction terms at
// the given bit positions (which must each be < m, and should include 0
// for the "+1" term every field's reduction polynomial ends in).
func NewField(m int, reductionBits []int) *Field {
	return &Field{M: m, ReductionBits: append([]int(nil), reductionBits...), words: (m + wordBits - 1) / wordBits}
}

// DefaultField is GF(2^163) reduced by NIST B-163's pentanomial.
var DefaultField = NewField(163, []int{7, 6, 3, 0})

// Elem is an element of a Field, stored as little-endian 64-bit limbs
// (limb 0 holds bits [0,64)), always kept reduced below degree M.
type Elem struct {
	f *Field
	w []uint64
}

// Zero returns the field's additive identity.
func (f *Field) Zero() Elem { return Elem{f: f, w: make([]uint64, f.words)} }

// One returns the field's multiplicative identity.
func (f *Field) One() Elem {
	e := f.Zero()
	e.w[0] = 1
	return e
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool {
	for _, limb := range e.w {
		if limb != 0 {
			return false
		}
	}
	return true
}

// FromBytes decodes a big-endian octet string (at most ceil(M/8) octets)
// into a field element.
func (f *Field) FromBytes(b []byte) (Elem, error) {
	maxLen := (f.M + 7) / 8
	if len(b) > maxLen {
		return Elem{}, ErrEcgf2mEncodedElementTooWideField
	}
	e := f.Zero()
	for i, bb := range b {
		bitBase := (len(b) - 1 - i) * 8
		for bit := 0; bit < 8; bit++ {
			if bb&(1<<uint(bit)) != 0 {
				setBit(e.w, bitBase+bit)
			}
		}
	}
	if topBit(e.w) >= f.M {
		return Elem{}, ErrEcgf2mEncodedElementExceedsFieldDegree
	}
	return e, nil
}

// ToBytes encodes e as a big-endian octet string of ceil(M/8) octets.
func (e Elem) ToBytes() []byte {
	n := (e.f.M + 7) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		bitBase := (n - 1 - i) * 8
		var b byte
		for bit := 0; bit < 8; bit++ {
			if bitAt(e.w, bitBase+bit) {
				b |= 1 << uint(bit)
			}
		}
		out[i] = b
	}
	return out
}

// Equal reports whether a and b represent the same field element.
func (f *Field) Equal(a, b Elem) bool {
	for i := range a.w {
		if a.w[i] != b.w[i] {
			return false
		}
	}
	return true
}

// Add is field addition, which in characteristic 2 is a bitwise XOR and
// is also its own inverse (Sub == Add).
func (f *Field) Add(a, b Elem) Elem {
	out := f.Zero()
	for i := range out.w {
		out.w[i] = a.w[i] ^ b.w[i]
	}
	return out
}

func bitAt(w []uint64, i int) bool { return (w[i/wordBits]>>uint(i%wordBits))&1 == 1 }
func setBit(w []uint64, i int)     { w[i/wordBits] |= 1 << uint(i%wordBits) }
func xorBit(w []uint64, i int)     { w[i/wordBits] ^= 1 << uint(i%wordBits) }

func topBit(w []uint64) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] != 0 {
			return i*wordBits + bitsLen(w[i]) - 1
		}
	}
	return -1
}

func bitsLen(v uint64) int {
	n := 0
	for v != 0 {
		v >>= 1
		n++
	}
	return n
}

// shiftXorInto computes dst ^= (src << shift), where dst is wide enough
// to hold the result (the caller sizes it for the operation).
func shiftXorInto(dst []uint64, src []uint64, shift int) {
	wordShift := shift / wordBits
	bitShift := shift % wordBits
	for i := 0; i < len(src); i++ {
		if src[i] == 0 {
			continue
		}
		if wordShift+i < len(dst) {
			dst[wordShift+i] ^= src[i] << uint(bitShift)
		}
		if bitShift != 0 && wordShift+i+1 < len(dst) {
			dst[wordShift+i+1] ^= src[i] >> uint(wordBits-bitShift)
		}
	}
}

// Mul is polynomial multiplication over GF(2) followed by reduction
// modulo the field's reduction polynomial: a standard bit-serial
// carry-less multiply-then-reduce, the same technique generic binary-
// field implementations use in the absence of a carry-less-multiply
// instruction.
func (f *Field) Mul(a, b Elem) Elem {
	wide := make([]uint64, 2*f.words)
	for i := 0; i < f.M; i++ {
		if bitAt(b.w, i) {
			shiftXorInto(wide, a.w, i)
		}
	}
	return f.reduce(wide)
}

func (f *Field) reduce(wide []uint64) Elem {
	top := len(wide)*wordBits - 1
	for p := top; p >= f.M; p-- {
		if bitAt(wide, p) {
			shift := p - f.M
			xorBit(wide, p)
			for _, rb := range f.ReductionBits {
				xorBit(wide, rb+shift)
			}
		}
	}
	out := f.Zero()
	copy(out.w, wide[:f.words])
	return out
}

// Sqr is squaring, computed as Mul(a, a). Real binary-field
// implementations special-case squaring (bit-spreading is linear in M
// instead of quadratic); this package favors the simpler, obviously-
// correct definition since nothing here is on a hot path that needs it.
func (f *Field) Sqr(a Elem) Elem { return f.Mul(a, a) }

// Inv computes the multiplicative inverse via Fermat's little theorem
// for GF(2^M)*: a^(2^M-2) = a^-1, using right-to-left square-and-
// multiply. 2^M-2 in binary is bits 1..M-1 set, bit 0 clear.
func (f *Field) Inv(a Elem) (Elem, error) {
	if a.IsZero() {
		return Elem{}, ErrEcgf2mCannotInvertZeroElement
	}
	result := f.One()
	base := a
	for i := 0; i < f.M; i++ {
		if i >= 1 {
			result = f.Mul(result, base)
		}
		base = f.Sqr(base)
	}
	return result, nil
}
