package otp

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrOtpDigitsOutRange                     = beltgo.NewError(beltgo.BadParams, "otp: digits out of range")
	ErrOtpMalformedOcraSuiteString           = beltgo.NewError(beltgo.BadFormat, "otp: malformed OCRA suite string")
	ErrOtpOcraSuiteDigitCountOut             = beltgo.NewError(beltgo.BadFormat, "otp: OCRA suite digit count out of range")
	ErrOtpOcraChallengeLengthOutRange        = beltgo.NewError(beltgo.BadFormat, "otp: OCRA challenge length out of range")
	ErrOtpOcraSuiteMissingChallengeComponent = beltgo.NewError(beltgo.BadFormat, "otp: OCRA suite missing challenge component")
	ErrOtpOcraNumericChallengeNotDecimal     = beltgo.NewError(beltgo.BadFormat, "otp: OCRA numeric challenge is not decimal")
	ErrOtpOcraNumericChallengeEncodingFailed = beltgo.NewError(beltgo.BadFormat, "otp: OCRA numeric challenge encoding failed")
	ErrOtpOcraHexChallengeNotValid           = beltgo.NewError(beltgo.BadFormat, "otp: OCRA hex challenge is not valid hex")
	ErrOtpOcraChallengeExceeds128Octets      = beltgo.NewError(beltgo.BadLength, "otp: OCRA challenge exceeds 128 octets encoded")
)
