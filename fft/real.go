package fft

import "unsafe"

// Packed real transforms. A buffer of n reals is viewed as n/2 complex
// samples, transformed with the half-size complex kernel, then split into
// the packed spectrum: data[0] holds X[0], data[1] holds X[n/2] (both are
// purely real), and data[2k],data[2k+1] hold X[k] for 0 < k < n/2. The
// upper half of the spectrum is the implied conjugate mirror.
//
// X follows the same exp(-2*pi*i*j*k/n) forward convention as the complex
// transforms, so the stored imaginary parts are the negation of packings
// that accumulate +sin sums, such as Ooura's fft4g rdft. The layout is the
// same; only the imaginary sign differs.

// RealDFT computes the forward transform of a real buffer in place,
// producing the packed spectrum described above. len(data) must be a
// power of two.
func RealDFT[F Float](data []F) {
	checkSize(len(data))
	if len(data) < 2 {
		return
	}
	switch d := any(data).(type) {
	case []float32:
		realForward(complex64View(d))
	default:
		realForward(complex128View(any(data).([]float64)))
	}
}

// RealIDFT computes the inverse transform of a packed spectrum in place.
// The result is scaled by n/2; multiplying by 2/len(data) after a
// RealDFT/RealIDFT round trip recovers the input.
func RealIDFT[F Float](data []F) {
	checkSize(len(data))
	if len(data) < 2 {
		return
	}
	switch d := any(data).(type) {
	case []float32:
		realInverse(complex64View(d))
	default:
		realInverse(complex128View(any(data).([]float64)))
	}
}

// RealDFTTo computes the packed forward transform of src into dst. The
// buffers must have equal power-of-two lengths; full aliasing is the
// in-place form.
func RealDFTTo[F Float](dst, src []F) {
	checkEqualLen(len(dst), len(src))
	if len(src) > 0 && &dst[0] != &src[0] {
		copy(dst, src)
	}
	RealDFT(dst)
}

// RealIDFTTo computes the packed inverse transform of src into dst, under
// the same rules as RealDFTTo.
func RealIDFTTo[F Float](dst, src []F) {
	checkEqualLen(len(dst), len(src))
	if len(src) > 0 && &dst[0] != &src[0] {
		copy(dst, src)
	}
	RealIDFT(dst)
}

// complex64View reinterprets adjacent float32 pairs as complex64 values.
// The layouts are identical (two machine floats, real first) and the
// alignment requirements match, so the view is a plain pointer cast.
func complex64View(f []float32) []complex64 {
	return unsafe.Slice((*complex64)(unsafe.Pointer(&f[0])), len(f)/2)
}

func complex128View(f []float64) []complex128 {
	return unsafe.Slice((*complex128)(unsafe.Pointer(&f[0])), len(f)/2)
}

func realForward[T Complex](z []T) {
	if len(z) == 1 {
		c := complex128(z[0])
		z[0] = T(complex(real(c)+imag(c), real(c)-imag(c)))
		return
	}
	transform(z, forward)
	splitPacked(z)
}

func realInverse[T Complex](z []T) {
	if len(z) == 1 {
		c := complex128(z[0])
		z[0] = T(complex((real(c)+imag(c))/2, (real(c)-imag(c))/2))
		return
	}
	mergePacked(z)
	transform(z, inverse)
}

// splitPacked converts the transform of the even/odd interleaved samples
// into the packed real spectrum. With Z the half-size transform and
// W^k = exp(-2*pi*i*k/n):
//
//	E[k] = (Z[k] + conj(Z[h-k])) / 2
//	O[k] = (Z[k] - conj(Z[h-k])) / 2i
//	X[k] = E[k] + W^k O[k]    X[h-k] = conj(E[k] - W^k O[k])
//
// The W^k factors for k < h/2 are the first harmonic of the size-n twiddle
// table, so the split shares the transform's cache.
func splitPacked[T Complex](z []T) {
	h := len(z)
	table := twiddles[T](2*h, forward).t1

	c0 := complex128(z[0])
	z[0] = T(complex(real(c0)+imag(c0), real(c0)-imag(c0)))

	half := T(complex(0.5, 0))
	negHalfI := T(complex(0, -0.5))
	for k := 1; k < h-k; k++ {
		m := h - k
		zk, zm := z[k], conjOf(z[m])
		e := (zk + zm) * half
		wo := (zk - zm) * negHalfI * table[k]
		z[k] = e + wo
		z[m] = conjOf(e - wo)
	}
	z[h/2] = conjOf(z[h/2])
}

// mergePacked is the exact inverse of splitPacked: it rebuilds the
// half-size complex spectrum Z from the packed X so that an inverse
// transform recovers the interleaved samples (scaled by h).
func mergePacked[T Complex](z []T) {
	h := len(z)
	table := twiddles[T](2*h, inverse).t1

	c0 := complex128(z[0])
	z[0] = T(complex((real(c0)+imag(c0))/2, (real(c0)-imag(c0))/2))

	half := T(complex(0.5, 0))
	halfI := T(complex(0, 0.5))
	for k := 1; k < h-k; k++ {
		m := h - k
		xk, xm := z[k], conjOf(z[m])
		e := (xk + xm) * half
		oi := (xk - xm) * halfI * table[k]
		z[k] = e + oi
		z[m] = conjOf(e - oi)
	}
	z[h/2] = conjOf(z[h/2])
}
