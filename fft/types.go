// Package fft provides power-of-two complex DFT/IDFT kernels, a packed
// real-valued transform, and an arbitrary-length chirp-Z transform built
// on top of them.
//
// Transforms follow the exp(-2*pi*i*j*k/n) sign convention for the forward
// direction and do not normalize: a forward transform followed by an
// inverse transform scales the input by n (or n/2 for the packed real
// pair), and the caller applies the 1/n (or 2/n) factor.
//
// Twiddle factors, bit-reversal permutations and chirp filters are
// computed lazily on first use of a given size and cached for the lifetime
// of the process. Construction is synchronized; once built, the tables are
// immutable and shared by all goroutines without locking.
package fft

// Complex is the type constraint for complex sample buffers.
type Complex interface {
	complex64 | complex128
}

// Float is the type constraint for real sample buffers and window
// coefficients.
type Float interface {
	float32 | float64
}

// transform directions. The sign is baked into the twiddle tables, so it
// must be carried consistently through every stage.
const (
	forward = -1
	inverse = 1
)

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

func checkSize(n int) {
	if n != 0 && !isPowerOf2(n) {
		panic("dspp/fft: transform size must be a power of two")
	}
}

func checkEqualLen(dst, src int) {
	if dst != src {
		panic("dspp/fft: input and output buffers must have equal length")
	}
}
