// Package beltgo implements the belt block cipher (STB 34.101.31): key
// schedule, round function, and the constant-time byte-level primitives the
// rest of the suite builds on.
package beltgo

import "fmt"

// Code is a surface error code shared by every package in the module. It
// mirrors the error taxonomy a conformant belt implementation is expected to
// expose, independent of Go's own error-wrapping mechanics.
type Code int

// Error codes, grouped the way the taxonomy groups them: input validation,
// cryptographic failures, RNG failures, APDU failures, and everything else.
const (
	Ok Code = iota

	// Input.
	BadInput
	BadLength
	Overflow
	OutOfMemory
	BadFormat

	// Crypto.
	BadParams
	BadPubKey
	BadPrivKey
	BadKeyPair
	BadSharedKey
	BadHash
	BadSig
	BadMac
	BadCrc
	BadKeyToken
	BadCert
	BadAnchor
	BadCertRing
	BadLogic
	BadPwd

	// RNG.
	BadRng
	BadAng
	BadEntropy
	NotEnoughEntropy
	StatTest
	BadSeed

	// APDU.
	BadApdu

	// Other.
	Timeout
	Busy
	NotFound
	AlreadyExists
	AccessDenied
	NotImplemented
	AuthFail
)

var codeNames = map[Code]string{
	Ok:               "ok",
	BadInput:         "bad input",
	BadLength:        "bad length",
	Overflow:         "overflow",
	OutOfMemory:      "out of memory",
	BadFormat:        "bad format",
	BadParams:        "bad params",
	BadPubKey:        "bad public key",
	BadPrivKey:       "bad private key",
	BadKeyPair:       "bad key pair",
	BadSharedKey:     "bad shared key",
	BadHash:          "bad hash",
	BadSig:           "bad signature",
	BadMac:           "bad mac",
	BadCrc:           "bad crc",
	BadKeyToken:      "bad key token",
	BadCert:          "bad certificate",
	BadAnchor:        "bad anchor",
	BadCertRing:      "bad certificate ring",
	BadLogic:         "bad logic",
	BadPwd:           "bad password",
	BadRng:           "bad rng",
	BadAng:           "bad generator",
	BadEntropy:       "bad entropy",
	NotEnoughEntropy: "not enough entropy",
	StatTest:         "statistical test failed",
	BadSeed:          "bad seed",
	BadApdu:          "bad apdu",
	Timeout:          "timeout",
	Busy:             "busy",
	NotFound:         "not found",
	AlreadyExists:    "already exists",
	AccessDenied:     "access denied",
	NotImplemented:   "not implemented",
	AuthFail:         "authentication failed",
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error is the concrete error type every package in the module returns. It
// carries a Code so callers can branch on the failure taxonomy without
// parsing message text, plus an optional human-readable detail.
type Error struct {
	Code   Code
	Detail string
}

// NewError constructs an *Error with the given code and detail message.
func NewError(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Is reports whether target is an *Error with the same Code, so callers can
// use errors.Is(err, beltgo.ErrBeltKeyMustBe1624) or any other package-level
// sentinel built on top of NewError, without caring whether the Detail text
// matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the Code carried by err, or Ok if err is nil and BadLogic
// if err does not originate from this module.
func CodeOf(err error) Code {
	if err == nil {
		return Ok
	}
	var e *Error
	if as(err, &e) {
		return e.Code
	}
	return BadLogic
}

// as is a tiny errors.As shim kept local so this file has no dependency
// beyond fmt; it only ever needs to unwrap *Error, never arbitrary chains.
func as(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// ErrBeltKeyMustBe1624 is returned by ExpandKey for any key length other
// than 16, 24, or 32 octets. Callers can compare against it directly with
// errors.Is instead of inspecting Code or message text.
var ErrBeltKeyMustBe1624 = NewError(BadInput, "belt key must be 16, 24, or 32 octets")
