package belthash

// HMAC implements belt-hmac: the standard HMAC construction over
// belt-hash, block size 32 octets, ipad 0x36 / opad 0x5C. Keys longer than
// the block size are hashed down to Size octets first.
type HMAC struct {
	outer, inner *Hash
	opadKey      [BlockSize]byte
}

// NewHMAC derives the padded inner/outer keys from key and starts the
// inner hash absorbing ipad-xor-key, i.e. Start(K) for belt-hmac.
func NewHMAC(key []byte) *HMAC {
	var blockKey [BlockSize]byte
	if len(key) > BlockSize {
		d := Sum256(key)
		copy(blockKey[:], d[:])
	} else {
		copy(blockKey[:], key)
	}

	h := &HMAC{}
	var ipadKey [BlockSize]byte
	for i := 0; i < BlockSize; i++ {
		ipadKey[i] = blockKey[i] ^ 0x36
		h.opadKey[i] = blockKey[i] ^ 0x5C
	}

	h.inner = New()
	_, _ = h.inner.Write(ipadKey[:])
	return h
}

// Write absorbs message data into the inner hash.
func (h *HMAC) Write(p []byte) (int, error) { return h.inner.Write(p) }

// Sum finalizes: opad-key || inner-digest, hashed once more.
func (h *HMAC) Sum() [Size]byte {
	innerDigest := h.inner.Sum()

	outer := New()
	_, _ = outer.Write(h.opadKey[:])
	_, _ = outer.Write(innerDigest[:])
	return outer.Sum()
}

// Sum256HMAC is the one-shot convenience wrapper for belt-hmac(key, msg).
func Sum256HMAC(key, msg []byte) [Size]byte {
	h := NewHMAC(key)
	_, _ = h.Write(msg)
	return h.Sum()
}
