package drbg

import "time"

// Config tunes the pooled brng-ctr Reader: key size, rekey policy, and pool
// shard count, sized for brng-ctr's 32-octet key/iv.
type Config struct {
	// Personalization is XOR-folded into the seed before it becomes the
	// generator's key, for domain separation between independently
	// constructed readers sharing the same entropy source.
	Personalization []byte

	// RekeyBackoff is the initial delay before retrying a failed rekey.
	RekeyBackoff time.Duration

	// MaxRekeyBackoff caps the exponential backoff growth.
	MaxRekeyBackoff time.Duration

	// MaxBytesPerKey is the output budget before an automatic rekey.
	MaxBytesPerKey uint64

	// KeySize is the brng-ctr key length in octets. Any length accepted by
	// belt-hash's Write is valid; 32 matches the suite's other 256-bit keys.
	KeySize int

	// MaxRekeyAttempts bounds asynchronous rekey retries.
	MaxRekeyAttempts int

	// MaxInitRetries bounds pool-entry initialization retries before panic.
	MaxInitRetries int

	// Shards is the number of independent pool shards (reduces contention
	// under concurrent Read, same rationale as ctrdrbg's shard slice).
	Shards int

	// EnableKeyRotation turns on the MaxBytesPerKey-triggered async rekey.
	EnableKeyRotation bool
}

const (
	defaultKeySize      = 32
	defaultMaxBytes     = 1 << 30
	defaultInitRetries  = 3
	defaultRekeyRetries = 5
	defaultMaxBackoff   = 2 * time.Second
	defaultRekeyBackoff = 100 * time.Millisecond
	defaultShards       = 4
)

// DefaultConfig returns production-safe defaults.
func DefaultConfig() Config {
	return Config{
		KeySize:           defaultKeySize,
		MaxBytesPerKey:    defaultMaxBytes,
		MaxInitRetries:    defaultInitRetries,
		MaxRekeyAttempts:  defaultRekeyRetries,
		MaxRekeyBackoff:   defaultMaxBackoff,
		RekeyBackoff:      defaultRekeyBackoff,
		Shards:            defaultShards,
		EnableKeyRotation: true,
	}
}

// Option is a functional option mutating a Config.
type Option func(*Config)

func WithKeySize(n int) Option           { return func(c *Config) { c.KeySize = n } }
func WithMaxBytesPerKey(n uint64) Option { return func(c *Config) { c.MaxBytesPerKey = n } }
func WithMaxInitRetries(n int) Option    { return func(c *Config) { c.MaxInitRetries = n } }
func WithMaxRekeyAttempts(n int) Option  { return func(c *Config) { c.MaxRekeyAttempts = n } }
func WithShards(n int) Option            { return func(c *Config) { c.Shards = n } }

func WithMaxRekeyBackoff(d time.Duration) Option {
	return func(c *Config) { c.MaxRekeyBackoff = d }
}
func WithRekeyBackoff(d time.Duration) Option {
	return func(c *Config) { c.RekeyBackoff = d }
}
func WithEnableKeyRotation(enable bool) Option {
	return func(c *Config) { c.EnableKeyRotation = enable }
}
func WithPersonalization(p []byte) Option {
	return func(c *Config) { c.Personalization = p }
}
