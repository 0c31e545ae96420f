package cumulfreqtable

import (
	"fmt"
	"math/rand"
	"testing"
)

// The benchmarks drive each implementation for table sizes 2^2 .. 2^16 under
// a fixed random-position distribution, mirroring the operation mixes an
// adaptive coder produces: mutations interleaved with cumulative queries.

func benchTables(length int) []struct {
	name  string
	table Table[uint]
} {
	return []struct {
		name  string
		table Table[uint]
	}{
		{"freq_table", NewFreqTable[uint](length)},
		{"cumsum_table", NewCumSumTable[uint](length)},
		{"binary_indexed_tree", NewBinaryIndexedTree[uint](length)},
	}
}

func benchLengths() []int {
	var lengths []int
	for i := 2; i <= 16; i += 2 {
		lengths = append(lengths, 1<<i)
	}
	return lengths
}

func BenchmarkInc(b *testing.B) {
	for _, length := range benchLengths() {
		for _, bt := range benchTables(length) {
			b.Run(fmt.Sprintf("%s/%d", bt.name, length), func(b *testing.B) {
				rng := rand.New(rand.NewSource(1))
				for n := 0; n < b.N; n++ {
					bt.table.Inc(rng.Intn(length))
				}
			})
		}
	}
}

func BenchmarkIncSum(b *testing.B) {
	for _, length := range benchLengths() {
		for _, bt := range benchTables(length) {
			b.Run(fmt.Sprintf("%s/%d", bt.name, length), func(b *testing.B) {
				rng := rand.New(rand.NewSource(1))
				var sink uint
				for n := 0; n < b.N; n++ {
					bt.table.Inc(rng.Intn(length))
					sink += bt.table.Sum(rng.Intn(length))
				}
				_ = sink
			})
		}
	}
}

func BenchmarkIncTotal(b *testing.B) {
	for _, length := range benchLengths() {
		for _, bt := range benchTables(length) {
			b.Run(fmt.Sprintf("%s/%d", bt.name, length), func(b *testing.B) {
				rng := rand.New(rand.NewSource(1))
				var sink uint
				for n := 0; n < b.N; n++ {
					bt.table.Inc(rng.Intn(length))
					sink += bt.table.Total()
				}
				_ = sink
			})
		}
	}
}

func BenchmarkIncSumTotal(b *testing.B) {
	for _, length := range benchLengths() {
		for _, bt := range benchTables(length) {
			b.Run(fmt.Sprintf("%s/%d", bt.name, length), func(b *testing.B) {
				rng := rand.New(rand.NewSource(1))
				var sink uint
				for n := 0; n < b.N; n++ {
					bt.table.Inc(rng.Intn(length))
					sink += bt.table.Sum(rng.Intn(length))
					sink += bt.table.Total()
				}
				_ = sink
			})
		}
	}
}

func BenchmarkFindBySum(b *testing.B) {
	for _, length := range benchLengths() {
		for _, bt := range benchTables(length) {
			b.Run(fmt.Sprintf("%s/%d", bt.name, length), func(b *testing.B) {
				for pos := 0; pos < length; pos++ {
					bt.table.Inc(pos)
				}
				total := bt.table.Total()
				rng := rand.New(rand.NewSource(1))
				var sink int
				b.ResetTimer()
				for n := 0; n < b.N; n++ {
					sink += bt.table.FindBySum(uint(rng.Int63n(int64(total))) + 1)
				}
				_ = sink
			})
		}
	}
}

func BenchmarkScale(b *testing.B) {
	for _, length := range benchLengths() {
		for _, bt := range benchTables(length) {
			b.Run(fmt.Sprintf("%s/%d", bt.name, length), func(b *testing.B) {
				for pos := 0; pos < length; pos++ {
					bt.table.Add(pos, 1024)
				}
				b.ResetTimer()
				for n := 0; n < b.N; n++ {
					bt.table.Scale(func(f uint) uint { return (f + 1) / 2 })
					bt.table.Scale(func(f uint) uint { return f * 2 })
				}
			})
		}
	}
}
