package pbkdf

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrPbkdfIterationCountBelowMinimum = beltgo.NewError(beltgo.BadParams, "pbkdf: iteration count below minimum")
	ErrPbkdfKeylenMustBePositive       = beltgo.NewError(beltgo.BadLength, "pbkdf: keyLen must be positive")
)
