package window_test

import (
	"math"
	"testing"

	"github.com/AE9RB/dspp/fft"
	"github.com/AE9RB/dspp/internal/testutil"
	"github.com/AE9RB/dspp/window"
)

// Endpoint values gathered from independent implementations pin the math;
// symmetry and boundary checks catch everything else.
type endpointCase struct {
	name string
	typ  window.Type
	opts []window.Option
	s8   float64 // symmetric size 8, last sample
	s9   float64 // symmetric size 9, last sample
	p8   float64 // periodic size 8, last sample
	p9   float64 // periodic size 9, last sample
}

var endpointCases = []endpointCase{
	{name: "rectangular", typ: window.TypeRectangular, s8: 1, s9: 1, p8: 1, p9: 1},
	{name: "triangular", typ: window.TypeTriangular, s8: 0.125, s9: 0.2, p8: 0.4, p9: 0.2},
	{name: "bartlett", typ: window.TypeBartlett, s8: 0, s9: 0, p8: 0.25, p9: 0},
	{name: "hann", typ: window.TypeHann, s8: 0, s9: 0, p8: 0.14644660940672627, p9: 0},
	{name: "welch", typ: window.TypeWelch,
		s8: 0.39506172839506171, s9: 0.36, p8: 0.64, p9: 0.36},
	{name: "parzen", typ: window.TypeParzen,
		s8: 0.00390625, s9: 0.0027434842249657101,
		p8: 0.074074074074074098, p9: 0.0027434842249657101},
	{name: "bohman", typ: window.TypeBohman, s8: 0, s9: 0, p8: 0.048302383742639676, p9: 0},
	{name: "blackman", typ: window.TypeBlackman, s8: 0, s9: 0, p8: 0.066446609406726226, p9: 0},
	{name: "nuttall", typ: window.TypeNuttall, s8: 0, s9: 0, p8: 0.020039357146876685, p9: 0},
	{name: "blackmannuttall", typ: window.TypeBlackmanNuttall,
		s8: 0.0003628, s9: 0.0003628, p8: 0.025205566515401786, p9: 0.0003628},
	{name: "blackmanharris", typ: window.TypeBlackmanHarris,
		s8: 6e-5, s9: 6e-5, p8: 0.02173583701867959, p9: 6e-5},
	{name: "flattop", typ: window.TypeFlatTop,
		s8: -0.000421051, s9: -0.000421051, p8: -0.026872193286334629, p9: -0.000421051},
	{name: "barthann", typ: window.TypeBarthann, s8: 0, s9: 0, p8: 0.17129942314911195, p9: 0},
	{name: "hamming", typ: window.TypeHamming,
		s8: 0.08, s9: 0.08, p8: 0.21473088065418822, p9: 0.08},
	{name: "kaiser", typ: window.TypeKaiser, opts: []window.Option{window.WithBeta(0.5)},
		s8: 0.94030621696795536, s9: 0.94030621696795536,
		p8: 0.96619399887124036, p9: 0.94030621696795536},
	{name: "gaussian", typ: window.TypeGaussian, opts: []window.Option{window.WithAlpha(2.5)},
		s8: 0.09139375535604724, s9: 0.084657988622529934,
		p8: 0.24935220877729616, p9: 0.084657988622529934},
}

func near(t *testing.T, what string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s: got %v, want %v (eps %v)", what, got, want, eps)
	}
}

// checkWindow validates symmetry, boundary behavior and pinned endpoint
// values for the even/odd and symmetric/periodic combinations.
func checkWindow[F fft.Float](t *testing.T, tc endpointCase) {
	t.Helper()
	eps := testutil.Eps[F]() * 32

	symm8 := window.Generate[F](tc.typ, 8, tc.opts...)
	near(t, "symm8 mid", float64(symm8[3]), float64(symm8[4]), eps)
	near(t, "symm8 ends", float64(symm8[0]), float64(symm8[7]), eps)
	near(t, "symm8 last", float64(symm8[7]), tc.s8, eps)

	symm9 := window.Generate[F](tc.typ, 9, tc.opts...)
	near(t, "symm9 mid", float64(symm9[3]), float64(symm9[5]), eps)
	near(t, "symm9 ends", float64(symm9[0]), float64(symm9[8]), eps)
	near(t, "symm9 last", float64(symm9[8]), tc.s9, eps)

	peri8 := window.Generate[F](tc.typ, 8, append(tc.opts, window.WithPeriodic())...)
	near(t, "peri8 mid", float64(peri8[3]), float64(peri8[5]), eps)
	near(t, "peri8 wrap", float64(peri8[1]), float64(peri8[7]), eps)
	near(t, "peri8 last", float64(peri8[7]), tc.p8, eps)

	peri9 := window.Generate[F](tc.typ, 9, append(tc.opts, window.WithPeriodic())...)
	near(t, "peri9 mid", float64(peri9[3]), float64(peri9[5]), eps)
	near(t, "peri9 ends", float64(peri9[0]), float64(peri9[8]), eps)
	near(t, "peri9 last", float64(peri9[8]), tc.p9, eps)

	for _, opts := range [][]window.Option{tc.opts, append(tc.opts, window.WithPeriodic())} {
		one := window.Generate[F](tc.typ, 1, opts...)
		if len(one) != 1 || one[0] != 1 {
			t.Errorf("size-1 window must be [1], got %v", one)
		}
	}
}

func TestEndpoints(t *testing.T) {
	t.Parallel()
	for _, tc := range endpointCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			checkWindow[float32](t, tc)
			checkWindow[float64](t, tc)
		})
	}
}

// Periodic windows of even size are the next odd symmetric window with the
// final sample dropped; odd sizes are unchanged.
func TestPeriodicTruncation(t *testing.T) {
	t.Parallel()

	for _, tc := range endpointCases {
		longer := window.Generate[float64](tc.typ, 17, tc.opts...)
		periodic := window.Generate[float64](tc.typ, 16, append(tc.opts, window.WithPeriodic())...)
		testutil.RequireSliceNearlyEqual(t, periodic, longer[:16], 0)

		symmetric := window.Generate[float64](tc.typ, 15, tc.opts...)
		odd := window.Generate[float64](tc.typ, 15, append(tc.opts, window.WithPeriodic())...)
		testutil.RequireSliceNearlyEqual(t, odd, symmetric, 0)
	}
}

func TestHannZerosAtEnds(t *testing.T) {
	t.Parallel()

	w := window.Generate[float64](window.TypeHann, 9)
	if w[0] != 0 || w[8] != 0 {
		t.Fatalf("symmetric hann must be zero at both ends, got %v and %v", w[0], w[8])
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	coeffs := window.Generate[float64](window.TypeHamming, 32)
	buf := make([]float64, 32)
	for i := range buf {
		buf[i] = float64(i) - 15.5
	}
	want := make([]float64, 32)
	for i := range want {
		want[i] = buf[i] * coeffs[i]
	}

	window.Apply(window.TypeHamming, buf)
	testutil.RequireSliceNearlyEqual(t, buf, want, 0)

	buf32 := make([]float32, 16)
	for i := range buf32 {
		buf32[i] = 1
	}
	window.Apply(window.TypeHann, buf32)
	testutil.RequireSliceNearlyEqual(t, buf32, window.Generate[float32](window.TypeHann, 16), 0)
}

func TestConstructorValidation(t *testing.T) {
	t.Parallel()

	if _, err := window.Kaiser[float64](0, 0.5); err == nil {
		t.Error("kaiser size 0 must fail")
	}
	if _, err := window.Kaiser[float64](8, -1); err == nil {
		t.Error("negative kaiser beta must fail")
	}
	if _, err := window.Gaussian[float64](8, 0); err == nil {
		t.Error("zero gaussian alpha must fail")
	}
	if _, err := window.Chebyshev[float64](8, -20); err == nil {
		t.Error("negative chebyshev attenuation must fail")
	}
	if w, err := window.Hann[float64](8); err != nil || len(w) != 8 {
		t.Errorf("hann constructor failed: %v %v", w, err)
	}
}

func TestAnalyzeRectangular(t *testing.T) {
	t.Parallel()

	a := window.Analyze(window.Generate[float64](window.TypeRectangular, 64))
	near(t, "coherent gain", a.CoherentGain, 1, 1e-12)
	near(t, "enbw", a.ENBW, 1, 1e-12)
	// Scallop loss is reported as signed gain: 20*log10(2/pi) for the
	// rectangular window, negative by convention.
	near(t, "scallop loss", a.ScallopLossdB, -3.9224, 2e-3)

	hann := window.Generate[float64](window.TypeHann, 4096, window.WithPeriodic())
	h := window.Analyze(hann)
	near(t, "hann coherent gain", h.CoherentGain, 0.5, 1e-3)
	near(t, "hann enbw", h.ENBW, 1.5, 1e-3)
}
