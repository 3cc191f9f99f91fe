// Package otp implements one-time-password derivation over belt-hmac:
// HOTP (RFC 4226), TOTP (RFC 6238), and an OCRA (RFC 6287) suite parser
// and challenge-response generator. The mechanics here follow the RFCs
// directly, with belt-hmac standing in for HMAC-SHA-1 as the PRF — the
// RFC test vectors apply only to the dynamic-truncation mapping, not to
// the digest itself.
package otp

import (
	"encoding/binary"
	"fmt"

	"github.com/stb34101/beltgo/belthash"
)

// MinDigits and MaxDigits bound the decimal password length HOTP/TOTP can
// produce, per RFC 4226 §5.3.
const (
	MinDigits = 6
	MaxDigits = 8
)

var digitsPow = [...]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
}

// dynamicTruncate is RFC 4226 §5.3's DT function: take the low nibble of
// the digest's last octet as an offset, read four octets from there with
// the top bit masked off, and reduce mod 10^digits.
func dynamicTruncate(digest []byte, digits int) uint32 {
	offset := digest[len(digest)-1] & 0x0F
	code := (uint32(digest[offset]&0x7F) << 24) |
		(uint32(digest[offset+1]) << 16) |
		(uint32(digest[offset+2]) << 8) |
		uint32(digest[offset+3])
	return code % digitsPow[digits]
}

func checkDigits(digits int) error {
	if digits < MinDigits || digits > MaxDigits {
		return ErrOtpDigitsOutRange
	}
	return nil
}

// HOTP computes an RFC 4226 one-time password over belt-hmac(key, counter
// big-endian 8 octets), returning it zero-padded to digits decimal digits.
func HOTP(key []byte, counter uint64, digits int) (string, error) {
	if err := checkDigits(digits); err != nil {
		return "", err
	}
	var ctrBytes [8]byte
	binary.BigEndian.PutUint64(ctrBytes[:], counter)
	digest := belthash.Sum256HMAC(key, ctrBytes[:])
	code := dynamicTruncate(digest[:], digits)
	return fmt.Sprintf("%0*d", digits, code), nil
}
