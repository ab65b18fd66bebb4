// Package window generates window (tapering) function coefficients for
// filter design and spectral analysis.
//
// Every window comes in a symmetric form (the default, for filter design)
// and a periodic form (for spectral analysis). Periodic windows of even
// size are computed as if the length were size+1 with the final sample
// dropped, which keeps a single maximum; for odd sizes the two forms are
// identical. A window of size 1 is always [1].
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/AE9RB/dspp/fft"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeTriangular
	TypeBartlett
	TypeHann
	TypeHamming
	TypeWelch
	TypeParzen
	TypeBohman
	TypeBlackman
	TypeNuttall
	TypeBlackmanNuttall
	TypeBlackmanHarris
	TypeFlatTop
	TypeBarthann
	TypeKaiser
	TypeGaussian
	TypeChebyshev
)

// Parameter defaults follow the classic MATLAB signatures so results line
// up with published window tables.
const (
	defaultBeta        = 0.5
	defaultAlpha       = 2.5
	defaultAttenuation = 100.0
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic    bool
	beta        float64
	alpha       float64
	attenuation float64
}

func defaultConfig() config {
	return config{
		beta:        defaultBeta,
		alpha:       defaultAlpha,
		attenuation: defaultAttenuation,
	}
}

// WithPeriodic selects the periodic (spectral analysis) form instead of
// the symmetric (filter design) form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithBeta sets the Kaiser shape parameter (>= 0).
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// WithAlpha sets the Gaussian width parameter (> 0); larger values narrow
// the window.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		if alpha > 0 {
			c.alpha = alpha
		}
	}
}

// WithAttenuation sets the Chebyshev sidelobe attenuation in dB (> 0).
func WithAttenuation(db float64) Option {
	return func(c *config) {
		if db > 0 {
			c.attenuation = db
		}
	}
}

// Generate returns window coefficients of the given length. A non-positive
// length returns nil.
func Generate[F fft.Float](t Type, size int, opts ...Option) []F {
	if size <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]F, size)
	if size == 1 {
		out[0] = 1
		return out
	}

	// Periodic even-size windows are the n+1 symmetric window truncated.
	n := size
	if cfg.periodic && size%2 == 0 {
		n++
	}

	if t == TypeChebyshev {
		coeffs := chebyshevCoefficients(n, cfg.attenuation)
		for i := range out {
			out[i] = F(coeffs[i])
		}
		return out
	}

	for i := range out {
		out[i] = F(eval(t, i, n, cfg))
	}

	return out
}

// Apply multiplies buf in place by the selected window.
func Apply[F fft.Float](t Type, buf []F, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate[F](t, len(buf), opts...)
	switch b := any(buf).(type) {
	case []float64:
		vecmath.MulBlockInPlace(b, any(coeffs).([]float64))
	default:
		for i := range buf {
			buf[i] *= coeffs[i]
		}
	}
}

// Hann returns Hann window coefficients.
func Hann[F fft.Float](size int, opts ...Option) ([]F, error) {
	return Generate[F](TypeHann, size, opts...), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming[F fft.Float](size int, opts ...Option) ([]F, error) {
	return Generate[F](TypeHamming, size, opts...), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman[F fft.Float](size int, opts ...Option) ([]F, error) {
	return Generate[F](TypeBlackman, size, opts...), validateLength(size)
}

// FlatTop returns 5-term flat-top window coefficients.
func FlatTop[F fft.Float](size int, opts ...Option) ([]F, error) {
	return Generate[F](TypeFlatTop, size, opts...), validateLength(size)
}

// Kaiser returns Kaiser window coefficients with the given beta.
func Kaiser[F fft.Float](size int, beta float64, opts ...Option) ([]F, error) {
	if size <= 0 || beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, validateKaiser(size, beta)
	}

	return Generate[F](TypeKaiser, size, append(opts, WithBeta(beta))...), nil
}

// Gaussian returns Gaussian window coefficients with the given width
// parameter alpha.
func Gaussian[F fft.Float](size int, alpha float64, opts ...Option) ([]F, error) {
	if size <= 0 || alpha <= 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, validateGaussian(size, alpha)
	}

	return Generate[F](TypeGaussian, size, append(opts, WithAlpha(alpha))...), nil
}

// Chebyshev returns Dolph-Chebyshev window coefficients with the given
// sidelobe attenuation in dB.
func Chebyshev[F fft.Float](size int, attenuation float64, opts ...Option) ([]F, error) {
	if size <= 0 || attenuation <= 0 || math.IsNaN(attenuation) || math.IsInf(attenuation, 0) {
		return nil, validateChebyshev(size, attenuation)
	}

	return Generate[F](TypeChebyshev, size, append(opts, WithAttenuation(attenuation))...), nil
}

// eval computes coefficient i of the symmetric length-n window (n >= 2).
func eval(t Type, i, n int, cfg config) float64 {
	x := float64(i)
	switch t {
	case TypeRectangular:
		return 1
	case TypeTriangular:
		midm := float64(n-1) / 2
		midp := float64(n) / 2
		if n%2 == 1 {
			midp = float64(n+1) / 2
		}
		return 1 - math.Abs((x-midm)/midp)
	case TypeBartlett:
		midm := float64(n-1) / 2
		return 1 - math.Abs(x-midm)/midm
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x/float64(n-1))
	case TypeWelch:
		midm := float64(n-1) / 2
		midp := float64(n+1) / 2
		d := (x - midm) / midp
		return 1 - d*d
	case TypeParzen:
		half := float64(n) / 2
		quad := half / 2
		dist := math.Abs(x + 0.5 - half)
		d := dist / half
		if dist <= quad {
			return 1 - 6*d*d + 6*d*d*d
		}
		return 2 * (1 - d) * (1 - d) * (1 - d)
	case TypeBohman:
		d := math.Abs(2*x/float64(n-1) - 1)
		return (1-d)*math.Cos(math.Pi*d) + math.Sin(math.Pi*d)/math.Pi
	case TypeBarthann:
		d := x/float64(n-1) - 0.5
		return 0.62 - 0.48*math.Abs(d) + 0.38*math.Cos(2*math.Pi*d)
	case TypeKaiser:
		r := 2*x/float64(n-1) - 1
		return besselI0(cfg.beta*math.Sqrt(1-r*r)) / besselI0(cfg.beta)
	case TypeGaussian:
		sigma := float64(n) / (2 * cfg.alpha)
		d := (x - float64(n-1)/2) / sigma
		return math.Exp(-0.5 * d * d)
	default:
		return cosineSum(t, 2*math.Pi*x/float64(n-1))
	}
}

// Cosine-sum coefficient tables; terms alternate in sign.
var cosineCoeffs = map[Type][]float64{
	TypeHamming:         {0.54, 0.46},
	TypeBlackman:        {0.42, 0.5, 0.08},
	TypeNuttall:         {0.355768, 0.487396, 0.144232, 0.012604},
	TypeBlackmanNuttall: {0.3635819, 0.4891775, 0.1365995, 0.0106411},
	TypeBlackmanHarris:  {0.35875, 0.48829, 0.14128, 0.01168},
	TypeFlatTop:         {0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368},
}

func cosineSum(t Type, theta float64) float64 {
	sum := 0.0
	sign := 1.0
	for k, a := range cosineCoeffs[t] {
		sum += sign * a * math.Cos(float64(k)*theta)
		sign = -sign
	}

	return sum
}

// besselI0 is the zeroth-order modified Bessel function of the first kind,
// via the Abramowitz & Stegun polynomial approximations (9.8.1, 9.8.2).
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y
		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+
			y*(0.2659732+y*(0.360768e-1+y*0.45813e-2)))))
	}
	y := 3.75 / ax
	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.1328592e-1+y*(0.225319e-2+y*(-0.157565e-2+
			y*(0.916281e-2+y*(-0.2057706e-1+y*(0.2635537e-1+
				y*(-0.1647633e-1+y*0.392377e-2))))))))
}
