package fft

// DFT computes the forward discrete Fourier transform of data in place.
// len(data) must be a power of two (including 0 and 1, which are no-ops).
func DFT[T Complex](data []T) {
	checkSize(len(data))
	transform(data, forward)
}

// IDFT computes the inverse discrete Fourier transform of data in place.
// The result is not normalized; dividing by len(data) after a DFT/IDFT
// round trip recovers the input.
func IDFT[T Complex](data []T) {
	checkSize(len(data))
	transform(data, inverse)
}

// DFTTo computes the forward transform of src into dst. The buffers must
// have equal power-of-two lengths. dst may alias src completely, which is
// the in-place form; partial overlap is undefined.
func DFTTo[T Complex](dst, src []T) {
	checkEqualLen(len(dst), len(src))
	checkSize(len(src))
	transformTo(dst, src, forward)
}

// IDFTTo computes the unnormalized inverse transform of src into dst,
// under the same aliasing rules as DFTTo.
func IDFTTo[T Complex](dst, src []T) {
	checkEqualLen(len(dst), len(src))
	checkSize(len(src))
	transformTo(dst, src, inverse)
}

func transform[T Complex](data []T, dir int) {
	if len(data) < 2 {
		return
	}
	reindex(data)
	mix(data, dir)
}

func transformTo[T Complex](dst, src []T, dir int) {
	if len(src) < 2 {
		if len(src) == 1 {
			dst[0] = src[0]
		}
		return
	}
	if &dst[0] == &src[0] {
		transform(dst, dir)
		return
	}
	reindexTo(dst, src)
	mix(dst, dir)
}
