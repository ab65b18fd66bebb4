package fft

import (
	"math"
	"sync"
)

// chirpPlan carries the precomputed state for a Bluestein transform of one
// logical length: the chirp sequence exp(-i*pi*k^2/n) and the forward
// transform of the zero-padded chirp filter, pre-scaled by 1/padded so the
// convolution needs no separate normalization. padded is the convolution
// length, the next power of two >= 2n-1. Plans are always built in
// complex128 and narrowed, so the complex64 tables carry full-precision
// values rounded once.
type chirpPlan[T Complex] struct {
	chirp  []T
	filter []T
	padded int
}

type chirpCache[T Complex] struct {
	plans sync.Map // int -> *chirpPlan[T]
}

func (c *chirpCache[T]) get(n int) *chirpPlan[T] {
	if cached, ok := c.plans.Load(n); ok {
		return cached.(*chirpPlan[T])
	}

	plan := computeChirpPlan[T](n)
	actual, _ := c.plans.LoadOrStore(n, plan)

	return actual.(*chirpPlan[T])
}

func computeChirpPlan[T Complex](n int) *chirpPlan[T] {
	padded := 1
	for padded < 2*n-1 {
		padded <<= 1
	}

	// k^2 is reduced mod 2n before the divide; exp(-i*pi*k^2/n) has period
	// 2n in k^2, and the reduction keeps the argument small for large n.
	chirp := make([]complex128, n)
	theta := -math.Pi / float64(n)
	for k := 0; k < n; k++ {
		sq := k * k % (2 * n)
		sin, cos := math.Sincos(theta * float64(sq))
		chirp[k] = complex(cos, sin)
	}

	// The filter is the conjugate chirp laid out for circular convolution:
	// index k and index padded-k both hold conj(chirp[k]). Its transform
	// absorbs the 1/padded factor of the inverse transform to come.
	filter := make([]complex128, padded)
	filter[0] = chirp[0]
	for k := 1; k < n; k++ {
		c := complex(real(chirp[k]), -imag(chirp[k]))
		filter[k] = c
		filter[padded-k] = c
	}
	transform(filter, forward)
	scale := complex(1/float64(padded), 0)
	for i := range filter {
		filter[i] *= scale
	}

	plan := &chirpPlan[T]{
		chirp:  make([]T, n),
		filter: make([]T, padded),
		padded: padded,
	}
	for k, v := range chirp {
		plan.chirp[k] = T(v)
	}
	for i, v := range filter {
		plan.filter[i] = T(v)
	}

	return plan
}

var (
	chirpCache64  chirpCache[complex64]
	chirpCache128 chirpCache[complex128]
)

func chirpPlanFor[T Complex](n int) *chirpPlan[T] {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(chirpCache64.get(n)).(*chirpPlan[T])
	default:
		return any(chirpCache128.get(n)).(*chirpPlan[T])
	}
}

func conjOf[T Complex](z T) T {
	c := complex128(z)

	return T(complex(real(c), -imag(c)))
}

// CZT computes the forward discrete Fourier transform of data in place for
// any length, using Bluestein's chirp-Z algorithm. Power-of-two lengths
// take the native path and produce identical results to DFT.
func CZT[T Complex](data []T) {
	n := len(data)
	if n < 2 {
		return
	}
	if isPowerOf2(n) {
		transform(data, forward)
		return
	}

	plan := chirpPlanFor[T](n)
	work := make([]T, plan.padded)
	for k := 0; k < n; k++ {
		work[k] = data[k] * plan.chirp[k]
	}

	transform(work, forward)
	for i := range work {
		work[i] *= plan.filter[i]
	}
	transform(work, inverse)

	for k := 0; k < n; k++ {
		data[k] = work[k] * plan.chirp[k]
	}
}
