package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source yields uniform draws in [0,1). A single catch attempt consumes up
// to three draws in a fixed order, so a seeded Source replays outcomes
// exactly. Implementations need not be safe for concurrent use; callers
// share one Source per goroutine or wrap their own locking.
type Source interface {
	Float64() float64
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
	}
	// Top 53 bits give a uniform float in [0,1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// Default returns the crypto-backed source used in production.
func Default() Source { return cryptoSource{} }

// Seeded returns a deterministic PCG-backed source for tests and replays.
func Seeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

type seededSource struct {
	r *rand.Rand
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
