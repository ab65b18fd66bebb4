package window_test

import (
	"testing"

	"github.com/AE9RB/dspp/window"
)

func BenchmarkGenerate(b *testing.B) {
	benchCases := []struct {
		name string
		typ  window.Type
	}{
		{"hann", window.TypeHann},
		{"blackmanharris", window.TypeBlackmanHarris},
		{"kaiser", window.TypeKaiser},
		{"chebyshev", window.TypeChebyshev},
	}
	for _, bc := range benchCases {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = window.Generate[float64](bc.typ, 1024)
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	buf := make([]float64, 4096)
	for i := range buf {
		buf[i] = 1
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		window.Apply(window.TypeHann, buf)
	}
}
