package gacha

import (
	"math/rand"
	"sync"
)

// lockedRand serializes access to a math/rand source so one engine source
// can be shared by concurrent shop operations.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand returns a goroutine-safe Rand seeded with the given seed.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
