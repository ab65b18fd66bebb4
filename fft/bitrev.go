package fft

import "sync"

// bitrevPlan is the input permutation for one transform size: rev[i] is i
// with its log2(n) low bits reversed. Plans are type-independent and shared
// between complex64 and complex128 transforms of the same size.
type bitrevPlan struct {
	rev []int
}

var bitrevPlans sync.Map // int -> *bitrevPlan

func bitrevPlanFor(n int) *bitrevPlan {
	if cached, ok := bitrevPlans.Load(n); ok {
		return cached.(*bitrevPlan)
	}

	plan := &bitrevPlan{rev: computeBitrevIndices(n)}
	actual, _ := bitrevPlans.LoadOrStore(n, plan)

	return actual.(*bitrevPlan)
}

func computeBitrevIndices(n int) []int {
	bits := log2(n)
	rev := make([]int, n)
	for i := range rev {
		r := 0
		v := i
		for b := 0; b < bits; b++ {
			r = r<<1 | v&1
			v >>= 1
		}
		rev[i] = r
	}

	return rev
}

// reindex permutes data into bit-reversed order in place. Bit reversal is
// an involution, so swapping each i with rev[i] once (i < rev[i]) visits
// every displaced element exactly once.
func reindex[T Complex](data []T) {
	plan := bitrevPlanFor(len(data))
	for i, j := range plan.rev {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}
}

// reindexTo writes src into dst in bit-reversed order, fusing the
// out-of-place copy with the permutation.
func reindexTo[T Complex](dst, src []T) {
	plan := bitrevPlanFor(len(src))
	for i, j := range plan.rev {
		dst[i] = src[j]
	}
}
