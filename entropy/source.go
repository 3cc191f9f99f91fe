// Package entropy implements : named entropy sources, the FIPS-140-1
// statistical health tests over them, and the process-wide RNG singleton
// that seeds a brng-ctr generator from whatever octets the sources yield
// (Create does not run the health tests).
package entropy

import "github.com/stb34101/beltgo"

// Tag names a source exactly as identifies it.
type Tag string

const (
	TagTRNG  Tag = "trng"  // hardware entropy instruction (RDSEED)
	TagTRNG2 Tag = "trng2" // hardware DRBG instruction (RDRAND)
	TagSys   Tag = "sys"   // primary OS RNG
	TagSys2  Tag = "sys2"  // secondary OS RNG
	TagTimer Tag = "timer" // high-resolution timer jitter
)

// Source is a named entropy source. Read fills buf with as many
// octets as the source can supply in one call and reports how many that
// was; a source that cannot supply any entropy at all returns NotAvail.
type Source interface {
	Tag() Tag
	Read(buf []byte) (int, error)
}

// Sources returns every source built into this package, in the priority
// order rngStepR reads them: hardware sources first, OS sources
// next, jitter timer last (the slowest, used only to round out a
// multi-source seed when faster sources are thin).
func Sources() []Source {
	return []Source{
		NewTRNGSource(),
		NewTRNG2Source(),
		NewSysSource(),
		NewSys2Source(),
		NewTimerSource(),
	}
}

func notAvail(tag Tag) error {
	return beltgo.NewError(beltgo.NotFound, string(tag)+": source not available on this platform")
}

func badEntropy(tag Tag, detail string) error {
	return beltgo.NewError(beltgo.BadEntropy, string(tag)+": "+detail)
}
