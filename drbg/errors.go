package drbg

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrDrbgBrngHmacIvMustBe      = beltgo.NewError(beltgo.BadLength, "drbg: brng-hmac iv must be 32 octets")
	ErrDrbgKeySizeMustBePositive = beltgo.NewError(beltgo.BadLength, "drbg: key size must be positive")
	ErrDrbgBrngCtrIvMustBe       = beltgo.NewError(beltgo.BadLength, "drbg: brng-ctr iv must be 32 octets")
)
