// Package matrix_test provides benchmarks for KeyedMatrix access paths.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/maptable/matrix"
)

// benchSizes are the table sizes (n×n) to benchmark.
var benchSizes = []int{64, 256}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkV []int
	sinkS string
)

func benchTable(n int) *matrix.KeyedMatrix[string, int, int] {
	cols := make([]string, n)
	rows := make([]int, n)
	for i := 0; i < n; i++ {
		cols[i] = fmt.Sprintf("c%d", i)
		rows[i] = i
	}

	return matrix.New(cols, rows, 0)
}

func BenchmarkGet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchTable(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.Get("c1", i%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkI = v
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchTable(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.Set("c0", i%n, i); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkColumn(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchTable(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				col, err := m.Column("c0")
				if err != nil {
					b.Fatal(err)
				}
				sinkV = col
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	b.ReportAllocs()
	m := benchTable(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = m.String()
	}
}
