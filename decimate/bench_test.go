// SPDX-License-Identifier: MIT

package decimate_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/propslim/builder"
	"github.com/katalvlaran/propslim/decimate"
)

func benchmarkIcosphere(b *testing.B, subdivisions int, opts ...decimate.Option) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, err := builder.Build(nil, builder.Icosphere(subdivisions))
		if err != nil {
			b.Fatal(err)
		}
		target := m.ValidFaceCount() / 10
		b.StartTimer()

		d, err := decimate.New(m, opts...)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := d.Decimate(context.Background(), target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecimateIcosphere3(b *testing.B) { benchmarkIcosphere(b, 3) }
func BenchmarkDecimateIcosphere4(b *testing.B) { benchmarkIcosphere(b, 4) }

func BenchmarkDecimateIcosphere4NoTopology(b *testing.B) {
	benchmarkIcosphere(b, 4, decimate.WithPreserveTopology(false))
}

func BenchmarkDecimateTexturedGrid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, err := builder.Build([]builder.Option{builder.WithTexCoords()}, builder.Grid(64, 64))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		d, err := decimate.New(m, decimate.WithTexture(true))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := d.Decimate(context.Background(), 512); err != nil {
			b.Fatal(err)
		}
	}
}
