package counter

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Randomizer returns a value in [0, 1).
type Randomizer = func() float64

func PseudoRandomizer() Randomizer {
	var mu sync.Mutex
	source := rand.New(rand.NewSource(time.Now().UnixNano()))

	return func() float64 {
		mu.Lock()
		defer mu.Unlock()

		return source.Float64()
	}
}

// Draw returns floor(random() * bound) + 1. A zero bound always yields 1.
func Draw(random Randomizer, bound Bound) int {
	return int(math.Floor(random()*float64(bound))) + 1
}
