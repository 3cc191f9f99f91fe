package sm

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrSmCounterParityMismatchThisDirection = beltgo.NewError(beltgo.BadLogic, "sm: counter parity mismatch for this direction")
	ErrSmTruncatedTlvLength                 = beltgo.NewError(beltgo.BadApdu, "sm: truncated TLV length")
	ErrSmUnsupportedTlvLengthForm           = beltgo.NewError(beltgo.BadApdu, "sm: unsupported TLV length form")
	ErrSmExpectedDo87Tag                    = beltgo.NewError(beltgo.BadApdu, "sm: expected DO87 tag")
	ErrSmTruncatedDo87Body                  = beltgo.NewError(beltgo.BadApdu, "sm: truncated DO87 body")
	ErrSmBadDo87PaddingIndicator            = beltgo.NewError(beltgo.BadApdu, "sm: bad DO87 padding indicator")
	ErrSmExpectedDo97Tag                    = beltgo.NewError(beltgo.BadApdu, "sm: expected DO97 tag")
	ErrSmTruncatedDo97Body                  = beltgo.NewError(beltgo.BadApdu, "sm: truncated DO97 body")
	ErrSmExpectedDo8eTag                    = beltgo.NewError(beltgo.BadApdu, "sm: expected DO8E tag")
	ErrSmBadDo8eLength                      = beltgo.NewError(beltgo.BadApdu, "sm: bad DO8E length")
	ErrSmCommandApduShorterThanHeader       = beltgo.NewError(beltgo.BadApdu, "sm: command APDU shorter than header")
	ErrSmMalformedShortFormCommandApdu      = beltgo.NewError(beltgo.BadApdu, "sm: malformed short-form command APDU")
	ErrSmMalformedExtendedFormCommandApdu   = beltgo.NewError(beltgo.BadApdu, "sm: malformed extended-form command APDU")
	ErrSmCommandApduAlreadyProtected        = beltgo.NewError(beltgo.BadInput, "sm: command APDU already protected")
	ErrSmCommandApduNotProtected            = beltgo.NewError(beltgo.BadApdu, "sm: command APDU is not protected")
	ErrSmMissingDo8eTag                     = beltgo.NewError(beltgo.BadApdu, "sm: missing DO8E tag")
	ErrSmTrailingBytesAfterDo8e             = beltgo.NewError(beltgo.BadApdu, "sm: trailing bytes after DO8E")
	ErrSmCommandMacMismatch                 = beltgo.NewError(beltgo.BadMac, "sm: command MAC mismatch")
	ErrSmProtectedResponseShorterThanStatus = beltgo.NewError(beltgo.BadApdu, "sm: protected response shorter than status bytes")
	ErrSmResponseMacMismatch                = beltgo.NewError(beltgo.BadMac, "sm: response MAC mismatch")
)
