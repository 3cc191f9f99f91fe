package wbl

import (
	"encoding/binary"
	"math/big"

	"github.com/stb34101/beltgo"
	"github.com/stb34101/beltgo/belthash"
	"github.com/stb34101/beltgo/mode"
)

// Modulus and digit-count bounds for belt-FMT.
const (
	MinModulus = 2
	MaxModulus = 1 << 16
	MinCount   = 2
	MaxCount   = 600
)

// FMT is belt's format-preserving Feistel cipher: a 3-round unbalanced
// Feistel network over count-long strings of base-modulus digits, split
// into a ceil(count/2)-digit left half and a floor(count/2)-digit right
// half. Each round folds a belt-keyed pseudorandom block (sized to the
// source half via the b-block closed form) into the other half: the half,
// read as a little-endian base-modulus integer, has the block (read as a
// little-endian integer) added to it modulo modulus^len(half).
type FMT struct {
	key     []byte
	ks      beltgo.KeySchedule
	modulus uint32
	count   int
	n1, n2  int
	iv      uint32
}

// NewFMT starts an FMT session. iv is the caller-supplied 32-bit tweak
// folded into every round's pseudorandom block (distinct ivs give
// independent permutations for the same key/modulus/count).
func NewFMT(key []byte, modulus uint32, count int, iv uint32) (*FMT, error) {
	if modulus < MinModulus || modulus > MaxModulus {
		return nil, ErrFmtModulusOutRange
	}
	if count < MinCount || count > MaxCount {
		return nil, ErrFmtCountOutRange
	}
	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &FMT{
		key:     append([]byte(nil), key...),
		ks:      ks,
		modulus: modulus,
		count:   count,
		n1:      (count + 1) / 2,
		n2:      count / 2,
		iv:      iv,
	}, nil
}

// Close wipes the retained key schedule and key copy.
func (f *FMT) Close() {
	f.ks.Wipe()
	for i := range f.key {
		f.key[i] = 0
	}
}

// numBlocks computes b, the number of 64-bit words needed to hold an
// n-digit base-m integer exactly (the "rational approximation of
// log2(m)*n/64" , computed here as an exact bit length via
// modular exponentiation rather than a floating-point log so encrypt and
// decrypt never disagree on b due to rounding).
func numBlocks(n int, m uint32) int {
	upper := new(big.Int).Exp(big.NewInt(int64(m)), big.NewInt(int64(n)), nil)
	bits := upper.BitLen()
	if bits == 0 {
		bits = 1
	}
	b := (bits + 63) / 64
	if b < 1 {
		b = 1
	}
	return b
}

// digitsToInt evaluates a little-endian (least-significant-first) base-m
// digit string as a big integer.
func digitsToInt(digits []uint16, m uint32) *big.Int {
	v := new(big.Int)
	base := big.NewInt(int64(m))
	for i := len(digits) - 1; i >= 0; i-- {
		v.Mul(v, base)
		v.Add(v, big.NewInt(int64(digits[i])))
	}
	return v
}

// intToDigits reduces v modulo m^n and expands it into n little-endian
// base-m digits.
func intToDigits(v *big.Int, n int, m uint32) []uint16 {
	mod := new(big.Int).Exp(big.NewInt(int64(m)), big.NewInt(int64(n)), nil)
	rv := new(big.Int).Mod(v, mod)
	base := big.NewInt(int64(m))
	rem := new(big.Int)
	digits := make([]uint16, n)
	for i := 0; i < n; i++ {
		rv.DivMod(rv, base, rem)
		digits[i] = uint16(rem.Int64())
	}
	return digits
}

// bigIntToBytesLE renders v as a little-endian byte buffer of exactly
// byteLen octets (v must fit; callers size byteLen from numBlocks).
func bigIntToBytesLE(v *big.Int, byteLen int) []byte {
	be := v.Bytes()
	out := make([]byte, byteLen)
	copy(out[byteLen-len(be):], be)
	for i, j := 0, byteLen-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// bytesToBigIntLE is the inverse of bigIntToBytesLE.
func bytesToBigIntLE(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(rev)
}

// roundConstant derives 4 round-constant octets from belt-H, one value per
// round index ("4 octets of round constant from belt-H").
func roundConstant(round int) [4]byte {
	digest := belthash.Sum256([]byte{byte(round)})
	var rc [4]byte
	copy(rc[:], digest[:4])
	return rc
}

// roundFunc computes the pseudorandom block folded into the other half
// this round: convert src (length n digits) to a b-block binary buffer,
// append the round constant and IV, and encrypt with belt-ECB (b==1),
// belt-ECB's ciphertext-stealing path (b==2, a non-block-aligned length),
// or WBL (b>=3).
func (f *FMT) roundFunc(src []uint16, n, round int) ([]byte, error) {
	b := numBlocks(n, f.modulus)
	v := digitsToInt(src, f.modulus)
	buf := bigIntToBytesLE(v, 8*b)

	rc := roundConstant(round)
	var ivBytes [4]byte
	binary.LittleEndian.PutUint32(ivBytes[:], f.iv)

	buf = append(buf, rc[:]...)
	buf = append(buf, ivBytes[:]...)

	switch {
	case len(buf) == BlockSize:
		out := append([]byte(nil), buf...)
		f.ks.EncryptBlock(out)
		return out[:8*b], nil
	case len(buf) < MinLen:
		ecb, err := mode.NewECB(f.key)
		if err != nil {
			return nil, err
		}
		defer ecb.Close()
		out := make([]byte, len(buf))
		if err := ecb.Encrypt(out, buf); err != nil {
			return nil, err
		}
		return out[:8*b], nil
	default:
		out := append([]byte(nil), buf...)
		if err := Encrypt(&f.ks, out); err != nil {
			return nil, err
		}
		return out[:8*b], nil
	}
}

// roundPlan describes which half a round reads from and writes to: round
// indices alternate dst=left,src=right and dst=right,src=left.
func (f *FMT) roundPlan(round int) (srcIsLeft bool, dstLen int) {
	if round%2 == 0 {
		return false, f.n1 // src = right (B), dst = left (A)
	}
	return true, f.n2 // src = left (A), dst = right (B)
}

const rounds = 3

// Encrypt runs the forward Feistel schedule over the count digits in
// digits (little-endian, each in [0, modulus)), in place.
func (f *FMT) Encrypt(digits []uint16) error {
	if err := f.validateDigits(digits); err != nil {
		return err
	}
	a := append([]uint16(nil), digits[:f.n1]...)
	b := append([]uint16(nil), digits[f.n1:]...)

	for r := 0; r < rounds; r++ {
		srcIsLeft, dstLen := f.roundPlan(r)
		var src []uint16
		if srcIsLeft {
			src = a
		} else {
			src = b
		}
		fb, err := f.roundFunc(src, len(src), r)
		if err != nil {
			return err
		}

		if srcIsLeft {
			newB := digitsToInt(b, f.modulus)
			newB.Add(newB, bytesToBigIntLE(fb))
			b = intToDigits(newB, dstLen, f.modulus)
		} else {
			newA := digitsToInt(a, f.modulus)
			newA.Add(newA, bytesToBigIntLE(fb))
			a = intToDigits(newA, dstLen, f.modulus)
		}
	}

	copy(digits[:f.n1], a)
	copy(digits[f.n1:], b)
	return nil
}

// Decrypt runs the Feistel schedule in reverse, subtracting instead of
// adding, undoing Encrypt.
func (f *FMT) Decrypt(digits []uint16) error {
	if err := f.validateDigits(digits); err != nil {
		return err
	}
	a := append([]uint16(nil), digits[:f.n1]...)
	b := append([]uint16(nil), digits[f.n1:]...)

	for r := rounds - 1; r >= 0; r-- {
		srcIsLeft, dstLen := f.roundPlan(r)
		var src []uint16
		if srcIsLeft {
			src = a
		} else {
			src = b
		}
		fb, err := f.roundFunc(src, len(src), r)
		if err != nil {
			return err
		}

		if srcIsLeft {
			newB := digitsToInt(b, f.modulus)
			newB.Sub(newB, bytesToBigIntLE(fb))
			b = intToDigits(newB, dstLen, f.modulus)
		} else {
			newA := digitsToInt(a, f.modulus)
			newA.Sub(newA, bytesToBigIntLE(fb))
			a = intToDigits(newA, dstLen, f.modulus)
		}
	}

	copy(digits[:f.n1], a)
	copy(digits[f.n1:], b)
	return nil
}

func (f *FMT) validateDigits(digits []uint16) error {
	if len(digits) != f.count {
		return ErrFmtDigitCountMismatch
	}
	for _, d := range digits {
		if uint32(d) >= f.modulus {
			return ErrFmtDigitOutRangeModulus
		}
	}
	return nil
}
