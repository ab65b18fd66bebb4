// Package mixer shifts complex sample streams in frequency with a
// numerically controlled oscillator.
package mixer

import (
	"fmt"
	"math"

	"github.com/AE9RB/dspp/fft"
)

// fixupMask sets how often the oscillator is renormalized to counter
// rounding drift: every fixupMask+1 samples.
const fixupMask = 1<<4 - 1

// Mixer multiplies samples by successive points of a complex oscillator,
// shifting the stream by the configured frequency. Phase is continuous
// across Apply calls. Not safe for concurrent use.
type Mixer[T fft.Complex] struct {
	rate float64
	freq float64
	nco  T
	clk  T
}

// New creates a mixer for the given sample rate in Hz and initial
// frequency shift in Hz. Negative frequencies shift downward; the
// magnitude must not exceed rate/2.
func New[T fft.Complex](rate, freq float64) (*Mixer[T], error) {
	m := &Mixer[T]{nco: T(complex(1, 0))}
	if err := m.SetRate(rate); err != nil {
		return nil, err
	}
	if err := m.SetFrequency(freq); err != nil {
		return nil, err
	}

	return m, nil
}

// Apply mixes the oscillator into data in place, advancing the oscillator
// one rotation step per sample.
func (m *Mixer[T]) Apply(data []T) {
	counter := fixupMask
	for i := range data {
		counter++
		if counter&fixupMask == 0 {
			// |nco| drifts from 1 by a few ulps between fixups, so
			// 2-|nco|^2 is an adequate first-order correction.
			c := complex128(m.nco)
			gain := 2 - (real(c)*real(c) + imag(c)*imag(c))
			m.nco = T(complex(real(c)*gain, imag(c)*gain))
		}
		m.nco *= m.clk
		data[i] *= m.nco
	}
}

// SetRate updates the sample rate in Hz.
func (m *Mixer[T]) SetRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("mixer sample rate must be > 0 and finite: %f", rate)
	}
	m.rate = rate
	m.computeClk()

	return nil
}

// SetFrequency updates the frequency shift in Hz.
func (m *Mixer[T]) SetFrequency(freq float64) error {
	if math.IsNaN(freq) || math.Abs(freq) > m.rate/2 {
		return fmt.Errorf("mixer frequency must be within ±rate/2: %f", freq)
	}
	m.freq = freq
	m.computeClk()

	return nil
}

// Rate returns the sample rate in Hz.
func (m *Mixer[T]) Rate() float64 { return m.rate }

// Frequency returns the frequency shift in Hz.
func (m *Mixer[T]) Frequency() float64 { return m.freq }

func (m *Mixer[T]) computeClk() {
	sin, cos := math.Sincos(2 * math.Pi * m.freq / m.rate)
	m.clk = T(complex(cos, sin))
}
