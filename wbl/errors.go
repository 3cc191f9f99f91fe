package wbl

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrFmtModulusOutRange               = beltgo.NewError(beltgo.BadParams, "fmt: modulus out of range")
	ErrFmtCountOutRange                 = beltgo.NewError(beltgo.BadParams, "fmt: count out of range")
	ErrFmtDigitCountMismatch            = beltgo.NewError(beltgo.BadInput, "fmt: digit count mismatch")
	ErrFmtDigitOutRangeModulus          = beltgo.NewError(beltgo.BadInput, "fmt: digit out of range for modulus")
	ErrWblBufferShorterThanMinlen       = beltgo.NewError(beltgo.BadInput, "wbl: buffer shorter than MinLen")
	ErrKrpKeyMustBe1624                 = beltgo.NewError(beltgo.BadLength, "krp: key must be 16, 24 or 32 octets")
	ErrKrpDerivedKeyLengthMustBe        = beltgo.NewError(beltgo.BadLength, "krp: derived key length must be 16, 24 or 32 octets")
	ErrKrpKeyoutLengthMismatch          = beltgo.NewError(beltgo.BadInput, "krp: keyOut length mismatch")
	ErrKrpLevelMustBe12Octets           = beltgo.NewError(beltgo.BadInput, "krp: level must be 12 octets")
	ErrKrpHeaderMustBe16Octets          = beltgo.NewError(beltgo.BadInput, "krp: header must be 16 octets")
	ErrKrpDerivedKeyLengthExceedsDigest = beltgo.NewError(beltgo.BadLogic, "krp: derived key length exceeds digest size")
	ErrKwpSrcShorterThanHeaderLength    = beltgo.NewError(beltgo.BadInput, "kwp: src shorter than header length")
	ErrKwpDestLengthMismatch            = beltgo.NewError(beltgo.BadInput, "kwp: dest length mismatch")
	ErrKwpHeaderMustBe16Octets          = beltgo.NewError(beltgo.BadInput, "kwp: header must be 16 octets")
	ErrKwpSrcShorterThanMinimumWrapped  = beltgo.NewError(beltgo.BadInput, "kwp: src shorter than minimum wrapped length")
	ErrKwpHeaderMismatch                = beltgo.NewError(beltgo.BadKeyToken, "kwp: header mismatch")
)
