package fft

import (
	"math"
	"sync"
)

// twiddleTable holds the three twiddle harmonics consumed by a radix-4
// combine stage of the given size: t1[i] = w^i, t2[i] = w^2i, t3[i] = w^3i
// with w = exp(2*pi*i*dir/size). Each slice has size/4 entries, one per
// butterfly in a block.
type twiddleTable[T Complex] struct {
	t1 []T
	t2 []T
	t3 []T
}

type twiddleKey struct {
	size int
	dir  int
}

// twiddleCache memoizes twiddle tables per (size, direction). Concurrent
// first use of a size may build the table twice; LoadOrStore keeps exactly
// one and later lookups are lock-free reads of immutable slices.
type twiddleCache[T Complex] struct {
	tables sync.Map // twiddleKey -> *twiddleTable[T]
}

func (c *twiddleCache[T]) get(size, dir int) *twiddleTable[T] {
	key := twiddleKey{size: size, dir: dir}
	if cached, ok := c.tables.Load(key); ok {
		return cached.(*twiddleTable[T])
	}

	table := computeTwiddleTable[T](size, dir)
	actual, _ := c.tables.LoadOrStore(key, table)

	return actual.(*twiddleTable[T])
}

func computeTwiddleTable[T Complex](size, dir int) *twiddleTable[T] {
	quarter := size / 4
	table := &twiddleTable[T]{
		t1: make([]T, quarter),
		t2: make([]T, quarter),
		t3: make([]T, quarter),
	}

	theta := 2 * math.Pi * float64(dir) / float64(size)
	for i := 0; i < quarter; i++ {
		phi := float64(i) * theta
		sin1, cos1 := math.Sincos(phi)
		sin2, cos2 := math.Sincos(2 * phi)
		sin3, cos3 := math.Sincos(3 * phi)
		table.t1[i] = T(complex(cos1, sin1))
		table.t2[i] = T(complex(cos2, sin2))
		table.t3[i] = T(complex(cos3, sin3))
	}

	return table
}

var (
	twiddleCache64  twiddleCache[complex64]
	twiddleCache128 twiddleCache[complex128]
)

// twiddles returns the shared twiddle table for the element type, stage
// size and direction. size must be a multiple of 4.
func twiddles[T Complex](size, dir int) *twiddleTable[T] {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(twiddleCache64.get(size, dir)).(*twiddleTable[T])
	default:
		return any(twiddleCache128.get(size, dir)).(*twiddleTable[T])
	}
}
