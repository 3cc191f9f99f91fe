package drbg

import (
	"crypto/rand"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Reader is a package-level, cryptographically secure random source backed
// by a pool of brng-ctr generators, initialized at load time. It panics at
// init if no generator can be seeded, since a failure to obtain entropy
// here should be caught immediately rather than surfacing as a mysterious
// later failure.
var Reader io.Reader

func init() {
	r, err := NewReader()
	if err != nil {
		panic(fmt.Sprintf("drbg: package Reader init failed: %v", err))
	}
	Reader = r
}

// Interface is the contract a pooled brng-ctr Reader satisfies.
type Interface interface {
	io.Reader
	Config() Config
}

type pooledReader struct {
	pools []*sync.Pool
}

// NewReader constructs a pooled brng-ctr Reader. Each shard lazily
// constructs generator instances seeded from crypto/rand, folding in
// Personalization if set.
func NewReader(opts ...Option) (Interface, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.KeySize <= 0 {
		return nil, ErrDrbgKeySizeMustBePositive
	}
	if cfg.Shards <= 0 {
		cfg.Shards = 1
	}

	pools := make([]*sync.Pool, cfg.Shards)
	for i := range pools {
		cfg := cfg
		pools[i] = &sync.Pool{
			New: func() interface{} {
				var (
					g   *shard
					err error
				)
				for r := 0; r < cfg.MaxInitRetries; r++ {
					if g, err = newShard(&cfg); err == nil {
						return g
					}
				}
				panic(fmt.Sprintf("drbg pool init failed after %d retries: %v", cfg.MaxInitRetries, err))
			},
		}

		var panicErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					panicErr = fmt.Errorf("drbg pool initialization failed: %v", r)
				}
			}()
			item := pools[i].Get()
			pools[i].Put(item)
		}()
		if panicErr != nil {
			return nil, panicErr
		}
	}

	return &pooledReader{pools: pools}, nil
}

func (r *pooledReader) Config() Config {
	s := r.pools[0].Get().(*shard)
	cfg := *s.config
	r.pools[0].Put(s)
	return cfg
}

func shardIndex(n int) int { return mrand.IntN(n) }

func (r *pooledReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n := len(r.pools)
	idx := 0
	if n > 1 {
		idx = shardIndex(n)
	}

	s := r.pools[idx].Get().(*shard)
	defer r.pools[idx].Put(s)

	s.mu.Lock()
	s.gen.StepR(b)
	s.mu.Unlock()

	if s.config.EnableKeyRotation {
		atomic.AddUint64(&s.usage, uint64(len(b)))
		if atomic.LoadUint64(&s.usage) >= s.config.MaxBytesPerKey {
			if atomic.CompareAndSwapUint32(&s.rekeying, 0, 1) {
				go s.asyncRekey()
			}
		}
	}
	return len(b), nil
}

// shard owns one brng-ctr generator plus its rekey bookkeeping. The
// generator's StepR must mutate s/r/buf in place for every extraction, so
// the whole generator is held behind one mutex rather than splitting
// "immutable state" from "evolving counter". Rekey swaps the generator
// wholesale under the same lock, which is cheap since it only happens once
// every MaxBytesPerKey.
type shard struct {
	config *Config
	mu     sync.Mutex
	gen    *CTR

	usage    uint64
	rekeying uint32
}

func seedKeyIV(cfg *Config) (key, iv []byte, err error) {
	key = make([]byte, cfg.KeySize)
	if _, err = io.ReadFull(rand.Reader, key); err != nil {
		return nil, nil, err
	}
	iv = make([]byte, StateLen)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, err
	}
	if cfg.Personalization != nil {
		for i := range cfg.Personalization {
			key[i%len(key)] ^= cfg.Personalization[i]
		}
	}
	return key, iv, nil
}

func newShard(cfg *Config) (*shard, error) {
	key, iv, err := seedKeyIV(cfg)
	if err != nil {
		return nil, err
	}
	gen, err := NewCTR(key, iv)
	if err != nil {
		return nil, err
	}
	return &shard{config: cfg, gen: gen}, nil
}

func (s *shard) asyncRekey() {
	defer atomic.StoreUint32(&s.rekeying, 0)

	base := s.config.RekeyBackoff
	maxBackoff := s.config.MaxRekeyBackoff
	if maxBackoff == 0 {
		maxBackoff = defaultMaxBackoff
	}

	for i := 0; i < s.config.MaxRekeyAttempts; i++ {
		key, iv, err := seedKeyIV(s.config)
		if err == nil {
			gen, err := NewCTR(key, iv)
			if err == nil {
				s.mu.Lock()
				s.gen.Close()
				s.gen = gen
				s.mu.Unlock()
				atomic.StoreUint64(&s.usage, 0)
				return
			}
		}
		time.Sleep(base)
		base *= 2
		if base > maxBackoff {
			base = maxBackoff
		}
	}
}
