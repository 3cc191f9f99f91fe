package wbl

import (
	"github.com/stb34101/beltgo"
	"github.com/stb34101/beltgo/internal/bytesx"
)

// headerLen is the width of the implicit/explicit KWP header and trailer.
const headerLen = BlockSize

// Wrap implements belt-KWP wrap: dest receives src||header run
// through WBL, dest must be len(src)+headerLen octets. If header is nil,
// the all-zero header is used. len(src) must be >= headerLen so the
// combined buffer meets WBL's MinLen.
func Wrap(key, dest, src, header []byte) error {
	if len(src) < headerLen {
		return ErrKwpSrcShorterThanHeaderLength
	}
	if len(dest) != len(src)+headerLen {
		return ErrKwpDestLengthMismatch
	}

	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return err
	}
	defer ks.Wipe()

	copy(dest, src)
	if header == nil {
		for i := len(src); i < len(dest); i++ {
			dest[i] = 0
		}
	} else {
		if len(header) != headerLen {
			return ErrKwpHeaderMustBe16Octets
		}
		copy(dest[len(src):], header)
	}

	return Encrypt(&ks, dest)
}

// Unwrap implements belt-KWP unwrap: dest receives src[:len(src)-headerLen]
// decrypted, after verifying the trailing header octets match header (or the
// all-zero header, if header is nil). Mismatch returns BadKeyToken. len(src)
// must be >= 2*headerLen (the unwrap side's WBL MinLen).
func Unwrap(key, dest, src, header []byte) error {
	if len(src) < 2*headerLen {
		return ErrKwpSrcShorterThanMinimumWrapped
	}
	if len(dest) != len(src)-headerLen {
		return ErrKwpDestLengthMismatch
	}

	ks, err := beltgo.ExpandKey(key)
	if err != nil {
		return err
	}
	defer ks.Wipe()

	buf := make([]byte, len(src))
	copy(buf, src)
	if err := Decrypt(&ks, buf); err != nil {
		return err
	}

	gotHeader := buf[len(dest):]
	var wantHeader [headerLen]byte
	if header != nil {
		if len(header) != headerLen {
			return ErrKwpHeaderMustBe16Octets
		}
		copy(wantHeader[:], header)
	}

	if !bytesx.ConstantTimeCompare(gotHeader, wantHeader[:]) {
		return ErrKwpHeaderMismatch
	}

	copy(dest, buf[:len(dest)])
	return nil
}
