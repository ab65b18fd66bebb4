// Package denormal deals with subnormal floating point values, which many
// CPUs process orders of magnitude slower than normal values.
//
// Go offers no portable way to set the hardware flush-to-zero and
// denormals-are-zero modes, so flushing is explicit: report whether the
// host could do it in hardware, and scrub buffers in software at the
// points where a pipeline decays into the subnormal range (feedback
// filters, reverb tails, decaying oscillators).
package denormal

import (
	"math"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/AE9RB/dspp/fft"
)

// HardwareFlushAvailable reports whether the host CPU has flush-to-zero
// and denormals-are-zero modes (FTZ/DAZ on x86). It reports capability
// only; the modes are per-thread control register bits that native code
// linked into the process may enable.
func HardwareFlushAvailable() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasSSE2 && cpu.X86.HasSSE3
	case "arm64":
		return true // FPCR.FZ is architectural on AArch64
	default:
		return false
	}
}

// IsSubnormal reports whether x is a subnormal value: nonzero, but with
// magnitude below the smallest normal value of F.
func IsSubnormal[F fft.Float](x F) bool {
	switch v := any(x).(type) {
	case float32:
		bits := math.Float32bits(v)
		return bits&0x7f800000 == 0 && bits&0x007fffff != 0
	default:
		bits := math.Float64bits(float64(x))
		return bits&0x7ff0000000000000 == 0 && bits&0x000fffffffffffff != 0
	}
}

// Flush zeroes every subnormal value in data, preserving signed zeros and
// all normal values. It returns the number of values flushed.
func Flush[F fft.Float](data []F) int {
	flushed := 0
	for i, v := range data {
		if IsSubnormal(v) {
			data[i] = 0
			flushed++
		}
	}

	return flushed
}

// FlushComplex zeroes subnormal components of complex samples in place
// and returns the number of components flushed.
func FlushComplex[T fft.Complex](data []T) int {
	flushed := 0
	for i, v := range data {
		c := complex128(v)
		re, im := real(c), imag(c)
		dirty := false
		if isSubnormal64or32[T](re) {
			re = 0
			dirty = true
			flushed++
		}
		if isSubnormal64or32[T](im) {
			im = 0
			dirty = true
			flushed++
		}
		if dirty {
			data[i] = T(complex(re, im))
		}
	}

	return flushed
}

// isSubnormal64or32 tests a component against the precision of the
// complex type it came from.
func isSubnormal64or32[T fft.Complex](x float64) bool {
	var zero T
	if _, ok := any(zero).(complex64); ok {
		return IsSubnormal(float32(x))
	}

	return IsSubnormal(x)
}
