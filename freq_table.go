package cumulfreqtable

/*
BSD 3-Clause License

Copyright (c) François-Xavier Bourlet (bombela)

Please refer to the License file in the repository root.

*/

// FreqTable stores the absolute frequency of every position in an array and
// maintains the total as a separate value. Updates are O(1); cumulative
// queries scan the prefix in O(len). Best for small tables.
type FreqTable[F Numeric] struct {
	freqs []F
	total F
}

// NewFreqTable creates a table with the given length and zero frequency for
// every position. Panics if length is zero.
func NewFreqTable[F Numeric](length int) *FreqTable[F] {
	assert(length > 0, "table must be non-empty")
	return &FreqTable[F]{freqs: make([]F, length)}
}

// NewFreqTableWithFreq creates a table with the given length and init as the
// frequency of every position. Panics if length is zero.
func NewFreqTableWithFreq[F Numeric](length int, init F) *FreqTable[F] {
	t := NewFreqTable[F](length)
	for i := range t.freqs {
		t.freqs[i] = init
		t.total += init
	}
	return t
}

// Clone returns an independent deep copy of the table.
func (t *FreqTable[F]) Clone() *FreqTable[F] {
	freqs := make([]F, len(t.freqs))
	copy(freqs, t.freqs)
	return &FreqTable[F]{freqs: freqs, total: t.total}
}

// Len returns the number of positions. O(1).
func (t *FreqTable[F]) Len() int {
	return len(t.freqs)
}

// Add adds val to the frequency of pos. O(1).
func (t *FreqTable[F]) Add(pos int, val F) {
	assert(0 <= pos && pos < len(t.freqs), "pos out of bounds")
	t.freqs[pos] += val
	t.total += val
}

// Sub subtracts val from the frequency of pos. O(1).
func (t *FreqTable[F]) Sub(pos int, val F) {
	assert(0 <= pos && pos < len(t.freqs), "pos out of bounds")
	t.freqs[pos] -= val
	t.total -= val
}

// Inc adds one to the frequency of pos.
func (t *FreqTable[F]) Inc(pos int) { t.Add(pos, 1) }

// Dec subtracts one from the frequency of pos.
func (t *FreqTable[F]) Dec(pos int) { t.Sub(pos, 1) }

// Sum returns the cumulative frequency of pos. O(pos).
func (t *FreqTable[F]) Sum(pos int) F {
	assert(0 <= pos && pos < len(t.freqs), "pos out of bounds")
	var sum F
	for _, freq := range t.freqs[:pos+1] {
		sum += freq
	}
	return sum
}

// Total returns the total cumulative frequency. O(1).
func (t *FreqTable[F]) Total() F {
	return t.total
}

// Freq returns the absolute frequency of pos. O(1).
func (t *FreqTable[F]) Freq(pos int) F {
	assert(0 <= pos && pos < len(t.freqs), "pos out of bounds")
	return t.freqs[pos]
}

// FindBySum returns the first position with a cumulative frequency equal to
// or greater than the given value. O(len).
func (t *FreqTable[F]) FindBySum(sum F) int {
	var run F
	for pos, freq := range t.freqs {
		run += freq
		if run >= sum {
			return pos
		}
	}
	return len(t.freqs) - 1
}

// Scale replaces the frequency of every position with scaleFreq applied to
// it, re-accumulating the total. O(len).
func (t *FreqTable[F]) Scale(scaleFreq func(F) F) {
	var sum F
	for i, freq := range t.freqs {
		scaled := scaleFreq(freq)
		t.freqs[i] = scaled
		sum += scaled
	}
	t.total = sum
}

var _ Table[uint] = &FreqTable[uint]{}
