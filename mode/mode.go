// Package mode implements the belt streaming block-cipher modes: ECB, CBC,
// CFB, and CTR, plus the CMAC-like belt-MAC. Each mode is a small state
// machine with a Start/Step/Finish lifecycle rather than a single
// all-at-once call, keeping key and counter state across repeated calls
// instead of re-deriving it every time.
//
// Not every mode implements every capability: ECB/CBC only stream full
// blocks plus one ciphertext-stealing tail, CFB/CTR are byte-granular
// stream ciphers, and MAC has no decrypt direction at all. This package
// models that with one concrete type per mode rather than a single shared
// interface every mode would have to partially implement.
package mode

import (
	"github.com/stb34101/beltgo"
)

// blockSize is belt's 128-bit block, reused under a short local name since
// every mode in this package references it constantly.
const blockSize = beltgo.BlockSize

// minStealLen is the shortest input length the ciphertext-stealing tail
// needs to steal from; below it ECB/CBC simply reject with BadLength.
const minStealLen = blockSize
