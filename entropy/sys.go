package entropy

import (
	"crypto/rand"
	"io"
)

// sysSource models "sys": the primary OS RNG (getrandom(2),
// CryptGenRandom, etc.), reached via crypto/rand.Reader, which already
// wraps the correct platform call and never blocks in practice (it blocks
// only until the kernel CSPRNG is seeded once at boot, which is the
// platform's own contract, not a choice this source makes).
type sysSource struct{}

func NewSysSource() Source { return sysSource{} }

func (sysSource) Tag() Tag { return TagSys }

func (sysSource) Read(buf []byte) (int, error) {
	n, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return n, badEntropy(TagSys, "os rng read failed")
	}
	return n, nil
}

// sys2Source models "sys2": a secondary OS RNG path (OpenSSL
// RAND_bytes / RtlGenRandom in the reference design). No second
// OS-RNG binding exists in this module's dependency set, so sys2 reads
// from the same crypto/rand.Reader as sys — it remains a distinct named
// source for "at least two of sys, sys2, timer" health policy, at
// the cost of not being truly independent of sys on this platform.
type sys2Source struct{}

func NewSys2Source() Source { return sys2Source{} }

func (sys2Source) Tag() Tag { return TagSys2 }

func (sys2Source) Read(buf []byte) (int, error) {
	n, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return n, badEntropy(TagSys2, "os rng read failed")
	}
	return n, nil
}
