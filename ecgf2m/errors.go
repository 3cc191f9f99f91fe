package ecgf2m

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrEcgf2mScalarHasNoInverseMod            = beltgo.NewError(beltgo.BadParams, "ecgf2m: scalar has no inverse mod n")
	ErrEcgf2mScalarFieldOrderMustBe           = beltgo.NewError(beltgo.BadParams, "ecgf2m: scalar field order must be positive")
	ErrEcgf2mRandModSourceReadFailed          = beltgo.NewError(beltgo.BadSeed, "ecgf2m: rand_mod source read failed")
	ErrEcgf2mRandModFailedSampleAfter         = beltgo.NewError(beltgo.BadSeed, "ecgf2m: rand_mod failed to sample after retry budget")
	ErrEcgf2mEncodedElementTooWideField       = beltgo.NewError(beltgo.BadLength, "ecgf2m: encoded element too wide for field")
	ErrEcgf2mEncodedElementExceedsFieldDegree = beltgo.NewError(beltgo.BadFormat, "ecgf2m: encoded element exceeds field degree")
	ErrEcgf2mCannotInvertZeroElement          = beltgo.NewError(beltgo.BadParams, "ecgf2m: cannot invert the zero element")
)
