// Package backoff computes exponential retry delays with jitter.
//
// The device server uses it to retry mDNS advertisement when no multicast
// interface is up yet at start time:
//
//	b := backoff.New(backoff.Config{})
//	for {
//		if err := try(); err == nil {
//			break
//		}
//		time.Sleep(b.Next())
//	}
package backoff

import (
	"math/rand"
	"sync"
	"time"
)

// Defaults used for zero Config fields.
const (
	DefaultInitial    = 1 * time.Second
	DefaultMax        = 60 * time.Second
	DefaultMultiplier = 2.0
	DefaultJitter     = 0.25
)

// Config customizes a Backoff. Zero fields take the defaults; a negative
// Jitter disables jitter.
type Config struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

func (c Config) withDefaults() Config {
	if c.Initial <= 0 {
		c.Initial = DefaultInitial
	}
	if c.Max <= 0 {
		c.Max = DefaultMax
	}
	if c.Max < c.Initial {
		c.Max = c.Initial
	}
	if c.Multiplier <= 1 {
		c.Multiplier = DefaultMultiplier
	}
	switch {
	case c.Jitter < 0:
		c.Jitter = 0
	case c.Jitter == 0:
		c.Jitter = DefaultJitter
	}
	return c
}

// Backoff produces growing delays: Initial, Initial*Multiplier, ... capped
// at Max, each extended by up to Jitter of itself. It is safe for
// concurrent use.
type Backoff struct {
	cfg Config

	mu       sync.Mutex
	current  time.Duration
	attempts int
	rng      *rand.Rand
}

// New creates a Backoff.
func New(cfg Config) *Backoff {
	cfg = cfg.withDefaults()
	return &Backoff{
		cfg:     cfg,
		current: cfg.Initial,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the next delay and advances the backoff.
func (b *Backoff) Next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	delay := b.current
	if b.cfg.Jitter > 0 {
		delay += time.Duration(float64(delay) * b.cfg.Jitter * b.rng.Float64())
	}

	b.attempts++
	b.current = min(time.Duration(float64(b.current)*b.cfg.Multiplier), b.cfg.Max)

	return delay
}

// Reset returns to the initial delay.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = b.cfg.Initial
	b.attempts = 0
}

// Attempts returns the number of delays handed out since the last Reset.
func (b *Backoff) Attempts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempts
}

// Current returns the next base delay, without jitter.
func (b *Backoff) Current() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}
