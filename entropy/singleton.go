package entropy

import (
	"sync"

	"github.com/stb34101/beltgo/belthash"
	"github.com/stb34101/beltgo/drbg"
)

var (
	rngMu   sync.Mutex
	rngRef  int
	rngGen  *drbg.CTR
	rngSrcs = Sources()
)

// Handle is the caller-visible acquire/release token "explicit
// builder returns either a handle or an error, no implicit init" design
// note asks for. It carries no exported state; Close is the only
// operation, mirroring the RNG singleton's refcounted lifetime.
type Handle struct {
	closed bool
}

func harvest(h *belthash.Hash, src Source) int {
	buf := make([]byte, 32)
	n, err := src.Read(buf)
	if err != nil || n == 0 {
		return 0
	}
	_, _ = h.Write(buf[:n])
	return n
}

// Create is rngCreate: on first call, polls every built-in source
// for 32 octets, absorbs each into a hash, optionally stirs in userSource,
// and if at least 32 octets total were absorbed, seeds brng-ctr from the
// resulting digest. Subsequent calls (while already initialized) only stir
// in userSource, if provided, and bump the refcount.
func Create(userSource Source) (*Handle, error) {
	rngMu.Lock()
	defer rngMu.Unlock()

	if rngGen != nil {
		if userSource != nil {
			extra := make([]byte, 32)
			if n, err := userSource.Read(extra); err == nil && n > 0 {
				rngGen.Reseed(extra[:n])
			}
		}
		rngRef++
		return &Handle{}, nil
	}

	h := belthash.New()
	absorbed := 0
	for _, src := range rngSrcs {
		absorbed += harvest(h, src)
	}
	if userSource != nil {
		absorbed += harvest(h, userSource)
	}
	if absorbed < 32 {
		return nil, ErrEntropyFewerThan32OctetsHarvested
	}

	key := h.Sum()
	ivHMAC := belthash.NewHMAC(key[:])
	_, _ = ivHMAC.Write([]byte("belt-rng-iv"))
	iv := ivHMAC.Sum()

	gen, err := drbg.NewCTR(key[:], iv[:])
	if err != nil {
		return nil, err
	}
	rngGen = gen
	rngRef = 1
	return &Handle{}, nil
}

// Close is rngClose: decrements the refcount; reaching zero wipes and
// destroys the brng-ctr generator.
func (hdl *Handle) Close() {
	rngMu.Lock()
	defer rngMu.Unlock()

	if hdl.closed {
		return
	}
	hdl.closed = true
	rngRef--
	if rngRef <= 0 && rngGen != nil {
		rngGen.Close()
		rngGen = nil
		rngRef = 0
	}
}

func stepR(dst []byte, reseed bool) error {
	rngMu.Lock()
	defer rngMu.Unlock()

	if rngGen == nil {
		return ErrEntropyRngsteprCalledBeforeRngcreate
	}

	if reseed {
		extra := make([]byte, len(dst))
		filled := 0
		for _, src := range rngSrcs {
			if filled >= len(extra) {
				break
			}
			n, err := src.Read(extra[filled:])
			if err != nil {
				continue
			}
			filled += n
		}
		if filled > 0 {
			rngGen.Reseed(extra[:filled])
		}
	}

	rngGen.StepR(dst)
	return nil
}

// StepR is rngStepR: stirs fresh source octets into the generator, then
// fills dst from brng-ctr — the delivered stream is always DRBG output,
// never raw source data.
func StepR(dst []byte) error { return stepR(dst, true) }

// StepR2 is rngStepR2: identical to StepR but skips the reseed step.
func StepR2(dst []byte) error { return stepR(dst, false) }
