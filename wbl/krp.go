package wbl

import (
	"github.com/stb34101/beltgo/belthash"
)

// LevelLen is the width of the KRP level tag ("a 96-bit level tag").
const LevelLen = 12

// HeaderLen is the width of the KRP header.
const HeaderLen = BlockSize

// KRP is the streaming state for belt's key-diversification primitive:
// a master key plus its original length, from which StepG derives
// subkeys tagged by a level and a header. It is the key-derivation
// primitive Secure Messaging and the supplemented BDE/SDE disk modes build
// their session/sector subkeys from.
type KRP struct {
	key        []byte
	origKeyLen int
}

// Start begins a KRP session keyed by key (16/24/32 octets).
func Start(key []byte) (*KRP, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrKrpKeyMustBe1624
	}
	k := &KRP{key: append([]byte(nil), key...), origKeyLen: len(key)}
	return k, nil
}

// keyLenConst encodes the (origKeyLen, derivedKeyLen) pair into a stable
// 2-octet constant, so keys derived at different output lengths or from
// different master-key lengths never collide.
func keyLenConst(origKeyLen, derivedKeyLen int) [2]byte {
	return [2]byte{byte(origKeyLen), byte(derivedKeyLen)}
}

// StepG derives a key of keyLen octets (16, 24 or 32) tagged by level
// (LevelLen octets) and header (HeaderLen octets), writing it into keyOut.
func (k *KRP) StepG(keyOut []byte, keyLen int, level, header []byte) error {
	switch keyLen {
	case 16, 24, 32:
	default:
		return ErrKrpDerivedKeyLengthMustBe
	}
	if len(keyOut) != keyLen {
		return ErrKrpKeyoutLengthMismatch
	}
	if len(level) != LevelLen {
		return ErrKrpLevelMustBe12Octets
	}
	if len(header) != HeaderLen {
		return ErrKrpHeaderMustBe16Octets
	}

	lc := keyLenConst(k.origKeyLen, keyLen)

	h := belthash.NewHMAC(k.key)
	_, _ = h.Write(level)
	_, _ = h.Write(header)
	_, _ = h.Write(lc[:])
	digest := h.Sum()

	if keyLen <= belthash.Size {
		copy(keyOut, digest[:keyLen])
		return nil
	}

	// unreachable given the 16/24/32 cap above (<=32==belthash.Size), kept
	// so a future larger derived-key size fails loudly instead of silently
	// truncating.
	return ErrKrpDerivedKeyLengthExceedsDigest
}

// Wipe zeroes the retained master key.
func (k *KRP) Wipe() {
	for i := range k.key {
		k.key[i] = 0
	}
}
