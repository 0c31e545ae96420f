package cumulfreqtable

/*
BSD 3-Clause License

Copyright (c) François-Xavier Bourlet (bombela)

Please refer to the License file in the repository root.

*/

import "math/bits"

// BinaryIndexedTree stores the cumulative frequencies as partial sums in a
// binary indexed layout. Just as an integer is the sum of appropriate powers
// of two, so can a cumulative frequency be represented as the appropriate
// sum of sets of cumulative sub-frequencies.
//
// From Peter M. Fenwick, "A new data structure for cumulative frequency
// tables" (1994).
//
// Layout: tree[0] holds the frequency of position 0; for i > 0, tree[i]
// holds the sum of the frequencies over the half-open range
// (i−lowbit(i), i].
type BinaryIndexedTree[F Numeric] struct {
	tree []F
}

// lowbit returns the value of the least significant set bit of i.
// Two's complement: i & -i.
func lowbit(i int) int {
	return i & -i
}

// highbit returns the largest power of two not exceeding i, or 0 for i == 0.
func highbit(i int) int {
	if i == 0 {
		return 0
	}
	return 1 << (bits.Len(uint(i)) - 1)
}

// NewBinaryIndexedTree creates a table with the given length and zero
// frequency for every position. Panics if length is zero.
func NewBinaryIndexedTree[F Numeric](length int) *BinaryIndexedTree[F] {
	assert(length > 0, "table must be non-empty")
	return &BinaryIndexedTree[F]{tree: make([]F, length)}
}

// NewBinaryIndexedTreeWithFreq creates a table with the given length and
// init as the frequency of every position. Panics if length is zero.
func NewBinaryIndexedTreeWithFreq[F Numeric](length int, init F) *BinaryIndexedTree[F] {
	t := NewBinaryIndexedTree[F](length)
	for pos := 0; pos < length; pos++ {
		t.Add(pos, init)
	}
	return t
}

// Clone returns an independent deep copy of the table.
func (t *BinaryIndexedTree[F]) Clone() *BinaryIndexedTree[F] {
	tree := make([]F, len(t.tree))
	copy(tree, t.tree)
	return &BinaryIndexedTree[F]{tree: tree}
}

// Len returns the number of positions. O(1).
func (t *BinaryIndexedTree[F]) Len() int {
	return len(t.tree)
}

// Add adds val to the frequency of pos. Position 0 lives outside the tree
// proper and is updated directly; every other position walks up the tree by
// repeatedly adding its least significant bit. O(㏒₂ len).
func (t *BinaryIndexedTree[F]) Add(pos int, val F) {
	assert(0 <= pos && pos < len(t.tree), "pos out of bounds")
	if pos == 0 {
		t.tree[0] += val
		return
	}
	for pos < len(t.tree) {
		t.tree[pos] += val
		pos += lowbit(pos)
	}
}

// Sub subtracts val from the frequency of pos. Mirror of Add. O(㏒₂ len).
func (t *BinaryIndexedTree[F]) Sub(pos int, val F) {
	assert(0 <= pos && pos < len(t.tree), "pos out of bounds")
	if pos == 0 {
		t.tree[0] -= val
		return
	}
	for pos < len(t.tree) {
		t.tree[pos] -= val
		pos += lowbit(pos)
	}
}

// Inc adds one to the frequency of pos.
func (t *BinaryIndexedTree[F]) Inc(pos int) { t.Add(pos, 1) }

// Dec subtracts one from the frequency of pos.
func (t *BinaryIndexedTree[F]) Dec(pos int) { t.Sub(pos, 1) }

// Sum returns the cumulative frequency of pos by walking down the tree,
// clearing the least significant bit at each step. O(㏒₂ len).
func (t *BinaryIndexedTree[F]) Sum(pos int) F {
	assert(0 <= pos && pos < len(t.tree), "pos out of bounds")
	sum := t.tree[0]
	for pos > 0 {
		sum += t.tree[pos]
		pos -= lowbit(pos)
	}
	return sum
}

// Total returns the total cumulative frequency. O(㏒₂ len).
func (t *BinaryIndexedTree[F]) Total() F {
	return t.Sum(len(t.tree) - 1)
}

// Freq returns the absolute frequency of pos. The tree cell holds the sum
// over (parent, pos]; the cells covering (parent, pos−1] are subtracted off
// by walking down from pos−1 to the parent index. Bounded by the number of
// trailing one-bits of pos. O(㏒₂ len).
func (t *BinaryIndexedTree[F]) Freq(pos int) F {
	assert(0 <= pos && pos < len(t.tree), "pos out of bounds")
	freq := t.tree[pos]
	if pos > 0 {
		parent := pos - lowbit(pos)
		for i := pos - 1; i != parent; i -= lowbit(i) {
			freq -= t.tree[i]
		}
	}
	return freq
}

// FindBySum returns the first position with a cumulative frequency equal to
// or greater than the given value, via a tree-shaped binary search: peel off
// position 0, then descend by halving bit-width from the largest power of
// two within range, committing a midpoint only when the remaining value is
// strictly larger than the partial sum stored there. The committed index is
// then the last position whose cumulative frequency is strictly below the
// requested value. O(㏒₂ len).
//
// When the value exceeds Total, the last position is returned.
func (t *BinaryIndexedTree[F]) FindBySum(sum F) int {
	if sum <= t.tree[0] {
		return 0
	}
	rest := sum - t.tree[0]
	pos := 0
	for mid := highbit(len(t.tree) - 1); mid > 0; mid >>= 1 {
		// hi can step past the end when len is not a power of two.
		if hi := pos + mid; hi < len(t.tree) && rest > t.tree[hi] {
			pos = hi
			rest -= t.tree[hi]
		}
	}
	if pos+1 >= len(t.tree) {
		return len(t.tree) - 1
	}
	return pos + 1
}

// Scale replaces the frequency of every position with scaleFreq applied to
// it. Positions are walked from the last down to 1 so that the current
// absolute frequency of each can still be derived before its cells are
// overwritten; the delta between the scaled and the current frequency is
// then written back along the ordinary update path. Position 0 is rewritten
// directly at the end. scaleFreq runs exactly once per position.
// O(len·㏒₂ len).
func (t *BinaryIndexedTree[F]) Scale(scaleFreq func(F) F) {
	tracer().Debugf("binary indexed tree: rescaling %d positions", len(t.tree))
	for pos := len(t.tree) - 1; pos > 0; pos-- {
		freq := t.Freq(pos)
		delta := scaleFreq(freq) - freq
		for i := pos; i < len(t.tree); i += lowbit(i) {
			t.tree[i] += delta
		}
	}
	t.tree[0] = scaleFreq(t.tree[0])
}

var _ Table[uint] = &BinaryIndexedTree[uint]{}
