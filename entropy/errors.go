package entropy

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrEntropyFewerThan32OctetsHarvested    = beltgo.NewError(beltgo.NotEnoughEntropy, "entropy: fewer than 32 octets harvested across all sources")
	ErrEntropyRngsteprCalledBeforeRngcreate = beltgo.NewError(beltgo.BadRng, "entropy: rngStepR called before rngCreate")
	ErrEntropyHealthPolicyNotSatisfied      = beltgo.NewError(beltgo.NotEnoughEntropy, "entropy: health policy not satisfied")
)
