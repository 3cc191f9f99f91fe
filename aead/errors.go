package aead

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrSdeMasterKeyMustBe16                = beltgo.NewError(beltgo.BadLength, "sde: master key must be 16, 24 or 32 octets")
	ErrSdeSectorTagMismatch                = beltgo.NewError(beltgo.BadMac, "sde: sector tag mismatch")
	ErrCheStepiAfterAssociatedDataFinished = beltgo.NewError(beltgo.BadLogic, "che: StepI after associated data finished")
	ErrCheStepeAfterTagFinalized           = beltgo.NewError(beltgo.BadLogic, "che: StepE after tag finalized")
	ErrCheStepaAfterTagFinalized           = beltgo.NewError(beltgo.BadLogic, "che: StepA after tag finalized")
	ErrCheTagMismatch                      = beltgo.NewError(beltgo.BadMac, "che: tag mismatch")
	ErrBdeMasterKeyMustBe16                = beltgo.NewError(beltgo.BadLength, "bde: master key must be 16, 24 or 32 octets")
	ErrAeadIvMustBe16Octets                = beltgo.NewError(beltgo.BadInput, "aead: iv must be 16 octets")
	ErrDwpStepiAfterAssociatedDataFinished = beltgo.NewError(beltgo.BadLogic, "dwp: StepI after associated data finished")
	ErrDwpStepeAfterTagFinalized           = beltgo.NewError(beltgo.BadLogic, "dwp: StepE after tag finalized")
	ErrDwpStepaAfterTagFinalized           = beltgo.NewError(beltgo.BadLogic, "dwp: StepA after tag finalized")
	ErrDwpTagMismatch                      = beltgo.NewError(beltgo.BadMac, "dwp: tag mismatch")
)
