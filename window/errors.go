package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	return fmt.Errorf("kaiser beta must be >= 0 and finite: %f", beta)
}

func validateGaussian(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	return fmt.Errorf("gaussian alpha must be > 0 and finite: %f", alpha)
}

func validateChebyshev(size int, attenuation float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	return fmt.Errorf("chebyshev attenuation must be > 0 dB and finite: %f", attenuation)
}
