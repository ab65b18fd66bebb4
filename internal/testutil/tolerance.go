// Package testutil holds shared test helpers for comparing sample buffers
// against references with explicit tolerances.
package testutil

import (
	"math"
	"testing"

	"github.com/AE9RB/dspp/fft"
)

// Eps returns the machine epsilon of the float type F.
func Eps[F fft.Float]() float64 {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return 0x1p-23
	}

	return 0x1p-52
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[F fft.Float](t *testing.T, got, want []F, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps in either component.
func RequireComplexNearlyEqual[T fft.Complex](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g := complex128(got[i])
		w := complex128(want[i])
		if math.Abs(real(g)-real(w)) > eps || math.Abs(imag(g)-imag(w)) > eps {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// MaxMagnitude returns the largest component magnitude in data, used to
// scale relative tolerances.
func MaxMagnitude[T fft.Complex](data []T) float64 {
	maxMag := 0.0
	for _, v := range data {
		c := complex128(v)
		if m := math.Abs(real(c)); m > maxMag {
			maxMag = m
		}
		if m := math.Abs(imag(c)); m > maxMag {
			maxMag = m
		}
	}

	return maxMag
}
