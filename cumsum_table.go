package cumulfreqtable

/*
BSD 3-Clause License

Copyright (c) François-Xavier Bourlet (bombela)

Please refer to the License file in the repository root.

*/

// CumSumTable stores the cumulative frequency of every position in an array.
// Adding to a position touches the whole suffix of the array; cumulative
// queries are O(1) reads.
//
// This implementation has no asymptotic advantage over the other two for any
// operation mix, but it is the simplest to prove correct: it exists
// primarily as an oracle against which the binary indexed tree is validated.
type CumSumTable[F Numeric] struct {
	sums []F
}

// NewCumSumTable creates a table with the given length and zero frequency
// for every position. Panics if length is zero.
func NewCumSumTable[F Numeric](length int) *CumSumTable[F] {
	assert(length > 0, "table must be non-empty")
	return &CumSumTable[F]{sums: make([]F, length)}
}

// NewCumSumTableWithFreq creates a table with the given length and init as
// the frequency of every position. Panics if length is zero.
func NewCumSumTableWithFreq[F Numeric](length int, init F) *CumSumTable[F] {
	t := NewCumSumTable[F](length)
	var run F
	for i := range t.sums {
		run += init
		t.sums[i] = run
	}
	return t
}

// Clone returns an independent deep copy of the table.
func (t *CumSumTable[F]) Clone() *CumSumTable[F] {
	sums := make([]F, len(t.sums))
	copy(sums, t.sums)
	return &CumSumTable[F]{sums: sums}
}

// Len returns the number of positions. O(1).
func (t *CumSumTable[F]) Len() int {
	return len(t.sums)
}

// Add adds val to the frequency of pos by adding val to the cumulative
// frequency of every position at or above it. O(len−pos).
func (t *CumSumTable[F]) Add(pos int, val F) {
	assert(0 <= pos && pos < len(t.sums), "pos out of bounds")
	for i := pos; i < len(t.sums); i++ {
		t.sums[i] += val
	}
}

// Sub subtracts val from the frequency of pos. O(len−pos).
func (t *CumSumTable[F]) Sub(pos int, val F) {
	assert(0 <= pos && pos < len(t.sums), "pos out of bounds")
	for i := pos; i < len(t.sums); i++ {
		t.sums[i] -= val
	}
}

// Inc adds one to the frequency of pos.
func (t *CumSumTable[F]) Inc(pos int) { t.Add(pos, 1) }

// Dec subtracts one from the frequency of pos.
func (t *CumSumTable[F]) Dec(pos int) { t.Sub(pos, 1) }

// Sum returns the cumulative frequency of pos. O(1).
func (t *CumSumTable[F]) Sum(pos int) F {
	assert(0 <= pos && pos < len(t.sums), "pos out of bounds")
	return t.sums[pos]
}

// Total returns the total cumulative frequency. O(1).
func (t *CumSumTable[F]) Total() F {
	return t.sums[len(t.sums)-1]
}

// Freq returns the absolute frequency of pos. O(1).
func (t *CumSumTable[F]) Freq(pos int) F {
	assert(0 <= pos && pos < len(t.sums), "pos out of bounds")
	if pos == 0 {
		return t.sums[0]
	}
	return t.sums[pos] - t.sums[pos-1]
}

// FindBySum returns the first position with a cumulative frequency equal to
// or greater than the given value. O(len).
func (t *CumSumTable[F]) FindBySum(sum F) int {
	for pos, cumul := range t.sums {
		if cumul >= sum {
			return pos
		}
	}
	return len(t.sums) - 1
}

// Scale replaces the frequency of every position with scaleFreq applied to
// it, recomputing the running sums left to right. scaleFreq receives the
// absolute frequency, never the cumulative one. O(len).
func (t *CumSumTable[F]) Scale(scaleFreq func(F) F) {
	var prev, run F
	for i, sum := range t.sums {
		run += scaleFreq(sum - prev)
		prev = sum
		t.sums[i] = run
	}
}

var _ Table[uint] = &CumSumTable[uint]{}
