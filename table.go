package cumulfreqtable

/*
BSD 3-Clause License

Copyright (c) François-Xavier Bourlet (bombela)

Please refer to the License file in the repository root.

*/

// Numeric is the arithmetic capability a frequency type must provide:
// construction from small integer constants, copy semantics, addition,
// subtraction and ordering. Any fixed-width integer kind qualifies.
//
// Arithmetic on these kinds wraps on overflow, as ordinary Go integer
// arithmetic does. Consider the risk of overflow before choosing a narrow
// type for a long-lived table.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Table maintains the absolute frequency and the cumulative frequency for
// every position in a fixed-length table. Different implementations offer
// different performance characteristics; see the package documentation for
// the complexity table.
//
// Positions are zero-based. Every method taking a position panics if the
// position is out of range: an out-of-range index is a bug in the caller,
// and masking it would silently corrupt sums.
type Table[F Numeric] interface {
	// Len returns the number of positions in the table, fixed at
	// construction and never zero.
	Len() int

	// Add adds val to the frequency of the given position.
	Add(pos int, val F)

	// Sub subtracts val from the frequency of the given position.
	Sub(pos int, val F)

	// Inc adds one to the frequency of the given position.
	// A shortcut for Add(pos, 1).
	Inc(pos int)

	// Dec subtracts one from the frequency of the given position.
	// A shortcut for Sub(pos, 1).
	Dec(pos int)

	// Sum returns the cumulative frequency of the given position, i.e. the
	// sum of the frequencies of every position at or below it.
	Sum(pos int) F

	// Total returns the total cumulative frequency. This is the same as
	// Sum(Len()-1), but may be cheaper depending on the implementation.
	Total() F

	// Freq returns the absolute frequency of the given position.
	Freq(pos int) F

	// FindBySum returns the first position with a cumulative frequency equal
	// to or greater than the given value. When the value exceeds Total the
	// last position is returned.
	FindBySum(sum F) int

	// Scale replaces the frequency of every position with scaleFreq applied
	// to it. scaleFreq is given the absolute frequency, never the cumulative
	// frequency, and is called exactly once per position. Examples:
	//
	//	t.Scale(func(f F) F { return f / 2 })       // halve, rounding down
	//	t.Scale(func(f F) F { return (f + 1) / 2 }) // halve, rounding up
	Scale(scaleFreq func(F) F)
}
