package window_test

import (
	"testing"

	"github.com/AE9RB/dspp/fft"
	"github.com/AE9RB/dspp/internal/testutil"
	"github.com/AE9RB/dspp/window"
)

func checkChebyshev[F fft.Float](t *testing.T) {
	t.Helper()
	eps := testutil.Eps[F]() * 32

	one := window.Generate[F](window.TypeChebyshev, 1)
	if one[0] != 1 {
		t.Fatalf("size-1 window must be [1], got %v", one)
	}

	even := window.Generate[F](window.TypeChebyshev, 8)
	near(t, "even last", float64(even[7]), 0.03638368090334488, eps)
	if even[3] != 1 || even[4] != 1 {
		t.Errorf("even center pair must be exactly 1, got %v and %v", even[3], even[4])
	}

	odd := window.Generate[F](window.TypeChebyshev, 9)
	near(t, "odd last", float64(odd[8]), 0.021827407475211173, eps)
	if odd[4] != 1 {
		t.Errorf("odd center must be exactly 1, got %v", odd[4])
	}

	for i := 0; i < 4; i++ {
		near(t, "even symmetry", float64(even[i]), float64(even[7-i]), 0)
		near(t, "odd symmetry", float64(odd[i]), float64(odd[8-i]), 0)
	}
}

func TestChebyshev(t *testing.T) {
	t.Parallel()
	t.Run("float32", checkChebyshev[float32])
	t.Run("float64", checkChebyshev[float64])
}

// The odd-length construction runs through the chirp-Z path; a prime size
// exercises it at a length with no small factors.
func TestChebyshevPrimeSize(t *testing.T) {
	t.Parallel()

	w := window.Generate[float64](window.TypeChebyshev, 31, window.WithAttenuation(80))
	if w[15] != 1 {
		t.Fatalf("center must be exactly 1, got %v", w[15])
	}
	for i := range w {
		if w[i] <= 0 || w[i] > 1 {
			t.Fatalf("index %d: coefficient %v outside (0,1]", i, w[i])
		}
	}
	for i := 0; i < 15; i++ {
		near(t, "symmetry", w[i], w[30-i], 0)
	}
}
