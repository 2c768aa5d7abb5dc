package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-euclid/matrix"
)

func BenchmarkNewEuclidean_1000(b *testing.B) {
	pts := randomPoints(1000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.NewEuclidean(pts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTriangular_At(b *testing.B) {
	m, err := matrix.NewEuclidean(randomPoints(1000, 2))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += m.At(i%1000, (i*7)%1000)
	}
	_ = sink
}
