package window

import (
	"math"

	"github.com/AE9RB/dspp/fft"
)

// chebyshevCoefficients builds the symmetric length-n Dolph-Chebyshev
// window with equiripple sidelobes at -attenuation dB, peak normalized
// to 1. The window is the inverse spectrum of a Chebyshev polynomial
// sampled on the unit circle; even lengths need a half-sample phase shift
// before the transform to land on integer taps.
func chebyshevCoefficients(n int, attenuation float64) []float64 {
	if n == 1 {
		return []float64{1}
	}

	order := float64(n - 1)
	ripple := math.Pow(10, attenuation/20)
	beta := math.Cosh(math.Acosh(ripple) / order)

	spectrum := make([]complex128, n)
	for k := 0; k < n; k++ {
		x := beta * math.Cos(math.Pi*float64(k)/float64(n))
		p := chebyshevPoly(order, x, n)
		if n%2 == 0 {
			sin, cos := math.Sincos(math.Pi * float64(k) / float64(n))
			spectrum[k] = complex(p*cos, p*sin)
		} else {
			spectrum[k] = complex(p, 0)
		}
	}

	fft.CZT(spectrum)

	// Unfold the half spectrum into the symmetric window.
	out := make([]float64, n)
	if n%2 == 0 {
		half := n / 2
		for i := 0; i < half; i++ {
			v := real(spectrum[half-i])
			out[i] = v
			out[n-1-i] = v
		}
	} else {
		half := (n + 1) / 2
		for i := 0; i < half; i++ {
			v := real(spectrum[half-1-i])
			out[i] = v
			out[n-1-i] = v
		}
	}

	peak := out[(n-1)/2]
	for i := range out {
		out[i] /= peak
	}

	return out
}

// chebyshevPoly evaluates the Chebyshev polynomial of the given order at
// x, extended past [-1,1] with the cosh form. Outside the ripple band the
// sign of the mirror branch depends on the parity of the window length.
func chebyshevPoly(order, x float64, n int) float64 {
	switch {
	case x > 1:
		return math.Cosh(order * math.Acosh(x))
	case x < -1:
		sign := 1.0
		if n%2 == 0 {
			sign = -1
		}
		return sign * math.Cosh(order*math.Acosh(-x))
	default:
		return math.Cos(order * math.Acos(x))
	}
}
