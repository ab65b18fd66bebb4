package fft

// mix runs the butterfly stages over a bit-reversed buffer, producing the
// transform in natural order. Stages are radix-4; when log2(n) is odd a
// single radix-2 pass over adjacent pairs brings the remaining stages back
// to multiples of four.
func mix[T Complex](data []T, dir int) {
	n := len(data)
	if n < 2 {
		return
	}

	blockSize := 1
	if log2(n)&1 == 1 {
		for i := 0; i < n; i += 2 {
			a, b := data[i], data[i+1]
			data[i], data[i+1] = a+b, a-b
		}
		blockSize = 2
	}

	// Forward rotates by -i, inverse by +i; the rotation components are
	// exactly 0 and ±1, so the complex multiply below is exact.
	var rot T
	if dir == forward {
		rot = T(complex(0, -1))
	} else {
		rot = T(complex(0, 1))
	}

	for blockSize < n {
		quarter := blockSize
		blockSize <<= 2
		table := twiddles[T](blockSize, dir)
		t1, t2, t3 := table.t1, table.t2, table.t3

		for base := 0; base < n; base += blockSize {
			// First butterfly of each block has unit twiddles.
			i0, i1, i2, i3 := base, base+quarter, base+2*quarter, base+3*quarter
			a0, a1, a2, a3 := data[i0], data[i2], data[i1], data[i3]
			b0 := a1 + a3
			b1 := (a1 - a3) * rot
			data[i0] = a0 + a2 + b0
			data[i1] = a0 - a2 + b1
			data[i2] = a0 + a2 - b0
			data[i3] = a0 - a2 - b1

			for k := 1; k < quarter; k++ {
				i0, i1, i2, i3 = i0+1, i1+1, i2+1, i3+1
				a0 = data[i0]
				a1 = data[i2] * t1[k]
				a2 = data[i1] * t2[k]
				a3 = data[i3] * t3[k]
				b0 = a1 + a3
				b1 = (a1 - a3) * rot
				data[i0] = a0 + a2 + b0
				data[i1] = a0 - a2 + b1
				data[i2] = a0 + a2 - b0
				data[i3] = a0 - a2 - b1
			}
		}
	}
}
