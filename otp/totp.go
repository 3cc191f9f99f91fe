package otp

import (
	"time"

	"github.com/stb34101/beltgo/internal/bytesx"
)

// DefaultStep is RFC 6238's default time-step window.
const DefaultStep = 30 * time.Second

func timeCounter(t time.Time, step time.Duration) uint64 {
	return uint64(t.Unix()) / uint64(step.Seconds())
}

// TOTP is HOTP keyed by the Unix-time step counter rather than a caller-
// supplied counter (RFC 6238 §4).
func TOTP(key []byte, t time.Time, step time.Duration, digits int) (string, error) {
	return HOTP(key, timeCounter(t, step), digits)
}

// ValidateTOTP checks code against the time steps in [-window, window]
// around t, tolerating clock skew the way RFC 6238 §5.2 recommends. It
// compares candidates in constant time to avoid leaking which step, if
// any, matched.
func ValidateTOTP(key []byte, code string, t time.Time, step time.Duration, digits, window int) (bool, error) {
	if err := checkDigits(digits); err != nil {
		return false, err
	}
	center := timeCounter(t, step)
	ok := false
	for i := -window; i <= window; i++ {
		var counter uint64
		if i < 0 && uint64(-i) > center {
			continue
		}
		counter = uint64(int64(center) + int64(i))
		candidate, err := HOTP(key, counter, digits)
		if err != nil {
			return false, err
		}
		if bytesx.ConstantTimeCompare([]byte(candidate), []byte(code)) {
			ok = true
		}
	}
	return ok, nil
}
