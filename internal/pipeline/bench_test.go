package pipeline

import (
	"testing"

	"github.com/procdash/procdash/internal/gen"
	"github.com/procdash/procdash/internal/source"
)

func BenchmarkLoadAll(b *testing.B) {
	dir := b.TempDir()
	if _, err := gen.WriteAll(dir); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ds, err := source.LoadAll(dir)
		if err != nil {
			b.Fatal(err)
		}
		_ = ds
	}
}

func BenchmarkDeriveKPIs(b *testing.B) {
	ds := gen.Dataset()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stats := DeriveKPIs(ds.KPIs)
		_ = stats
	}
}

func BenchmarkPeriodTotals(b *testing.B) {
	ds := gen.Dataset()
	periods := Periods(ds.Monthly)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		totals := PeriodTotals(ds.Monthly, periods)
		_ = totals
	}
}
