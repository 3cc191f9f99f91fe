package mode

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrCfbIvMustBe16Octets      = beltgo.NewError(beltgo.BadLength, "cfb iv must be 16 octets")
	ErrMacTagLengthMustBe1      = beltgo.NewError(beltgo.BadInput, "mac tag length must be 1..16")
	ErrEcbRequiresLeastOneBlock = beltgo.NewError(beltgo.BadLength, "ecb requires at least one block")
	ErrDstSrcLengthMismatch     = beltgo.NewError(beltgo.BadInput, "dst/src length mismatch")
	ErrCbcIvMustBe16Octets      = beltgo.NewError(beltgo.BadLength, "cbc iv must be 16 octets")
	ErrCbcRequiresLeastOneBlock = beltgo.NewError(beltgo.BadLength, "cbc requires at least one block")
	ErrCtrIvMustBe16Octets      = beltgo.NewError(beltgo.BadLength, "ctr iv must be 16 octets")
)
