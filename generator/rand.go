package generator

import (
	"math/rand/v2"
	"sync"
)

// Rand is the randomness the composer draws from.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand uses the process-wide math/rand/v2 source, which is safe for
// concurrent use.
var DefaultRand Rand = globalRand{}

// lockedRand 包装 *rand.Rand，使同一个带种子的实例可被并发请求共享。
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRand returns a reproducible source: two sources with the same
// seed yield the same sequence.
func NewSeededRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}
