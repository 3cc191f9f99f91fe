package entropy

import (
	"crypto/rand"
	"io"

	"golang.org/x/sys/cpu"
)

// trngSource models "trng": hardware entropy via the RDSEED
// instruction. Feature detection is real (golang.org/x/sys/cpu.X86.HasRDSEED);
// the instruction itself cannot be issued from pure Go without a hand-written
// assembly stub, which this module cannot validate without a runnable
// toolchain (see DESIGN.md). When the feature bit is present, octet
// extraction falls back to the platform CSPRNG (crypto/rand) as a
// documented stand-in for the RDSEED retry loop the real source would run;
// when the feature bit is absent, the source correctly reports itself
// unavailable rather than silently substituting software entropy.
type trngSource struct{}

func NewTRNGSource() Source { return trngSource{} }

func (trngSource) Tag() Tag { return TagTRNG }

func (trngSource) Read(buf []byte) (int, error) {
	if !cpu.X86.HasRDSEED {
		return 0, notAvail(TagTRNG)
	}
	n, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return n, badEntropy(TagTRNG, "underlying read failed")
	}
	return n, nil
}

// trng2Source models "trng2": hardware DRBG via RDRAND. Same
// feature-detection-real / extraction-stand-in caveat as trngSource.
type trng2Source struct{}

func NewTRNG2Source() Source { return trng2Source{} }

func (trng2Source) Tag() Tag { return TagTRNG2 }

func (trng2Source) Read(buf []byte) (int, error) {
	if !cpu.X86.HasRDRAND {
		return 0, notAvail(TagTRNG2)
	}
	n, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return n, badEntropy(TagTRNG2, "underlying read failed")
	}
	return n, nil
}
