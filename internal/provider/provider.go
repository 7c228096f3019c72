// Package provider implements the engines the arbiter fans out to: a
// uniform random baseline, a greedy capture hunter, a fixed-depth
// negamax search and an adapter for external UCI binaries. Providers
// work only on the position snapshot they are handed and are safe for
// concurrent use across games.
package provider

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRand serializes a rand.Rand so one provider instance can serve
// concurrently running games.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand() *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
