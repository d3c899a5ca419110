package gacha

import (
	"math/rand/v2"

	"github.com/noctale/noctale/internal/errors"
)

// Rand is the randomness source for pulls, injectable for tests.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.IntN(n) }

// NewRand returns the system randomness source.
func NewRand() Rand {
	return systemRand{}
}

// Weighted pairs a value with its percentage chance.
type Weighted[T any] struct {
	Chance int
	Value  T
}

// WeightedTable draws values by percentage. The chances must sum to
// exactly 100; anything else is a configuration error.
type WeightedTable[T any] []Weighted[T]

// Draw picks one value according to the table's chances.
func (t WeightedTable[T]) Draw(r Rand) (T, error) {
	var zero T

	sum := 0
	for _, w := range t {
		sum += w.Chance
	}
	if sum != 100 {
		return zero, errors.Internalf("sum of weighted chances is %d when it should be 100", sum)
	}

	slots := make([]int, 0, 100)
	for i, w := range t {
		for n := 0; n < w.Chance; n++ {
			slots = append(slots, i)
		}
	}

	return t[slots[r.Intn(len(slots))]].Value, nil
}
