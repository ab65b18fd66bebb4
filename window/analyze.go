package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin
	// signal, expressed as signed gain relative to the DC response: a
	// loss reads negative (rectangular is about -3.92 dB).
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	squares := make([]float64, n)
	vecmath.MulBlock(squares, coeffs, coeffs)

	sum := 0.0
	sumSq := 0.0
	for i, c := range coeffs {
		sum += c
		sumSq += squares[i]
	}
	if sum == 0 {
		return Analysis{}
	}

	dcRef := dftMagSq(coeffs, 0)
	halfBin := dftMagSq(coeffs, 0.5/float64(n))
	scallop := 0.0
	if dcRef > 0 && halfBin > 0 {
		scallop = 10 * math.Log10(halfBin/dcRef)
	}

	return Analysis{
		CoherentGain:  sum / float64(n),
		ENBW:          float64(n) * sumSq / (sum * sum),
		ScallopLossdB: scallop,
	}
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0
	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}
	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients into a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalized frequency in [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		sin, cos := math.Sincos(w * float64(k))
		re += c * cos
		im -= c * sin
	}

	return re*re + im*im
}
