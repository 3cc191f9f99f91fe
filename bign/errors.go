package bign

import "github.com/stb34101/beltgo"

// Sentinel errors for this package's failure modes, so callers can use
// errors.Is(err, pkg.ErrXxx) instead of parsing message text.
var (
	ErrBignPublicKeyPointInfinity           = beltgo.NewError(beltgo.BadPubKey, "bign: public key is the point at infinity")
	ErrBignPublicKeyPointNotOn              = beltgo.NewError(beltgo.BadPubKey, "bign: public key point is not on the curve")
	ErrBignPublicKeyPointSOrder             = beltgo.NewError(beltgo.BadPubKey, "bign: public key point's order does not divide the group order")
	ErrBignFailedProduceValidSignatureAfter = beltgo.NewError(beltgo.BadSig, "bign: failed to produce a valid signature after retry budget")
	ErrBignSignatureROutRange               = beltgo.NewError(beltgo.BadSig, "bign: signature r out of range")
	ErrBignSignatureSOutRange               = beltgo.NewError(beltgo.BadSig, "bign: signature s out of range")
	ErrBignSignatureSHasNoInverse           = beltgo.NewError(beltgo.BadSig, "bign: signature s has no inverse mod n")
	ErrBignVerificationPointPointInfinity   = beltgo.NewError(beltgo.BadSig, "bign: verification point is the point at infinity")
	ErrBignSignatureDoesNotVerify           = beltgo.NewError(beltgo.BadSig, "bign: signature does not verify")
)
