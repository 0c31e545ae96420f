package cumulfreqtable

import "fmt"

// CheckTable validates the logical invariants every implementation must
// uphold: Sum(pos) equals the sum of the frequencies at or below pos,
// Total() equals Sum(len−1), and the cumulative sums are non-decreasing as
// long as every frequency is non-negative.
//
// The checker is intentionally strict and O(len·cost(Sum)); it is meant for
// tests and debugging, not for production paths.
func CheckTable[F Numeric](t Table[F]) error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidTable)
	}
	if t.Len() < 1 {
		return fmt.Errorf("%w: zero length", ErrInvalidTable)
	}
	var run, prev, zero F
	nonNegative := true
	for pos := 0; pos < t.Len(); pos++ {
		freq := t.Freq(pos)
		if freq < zero {
			nonNegative = false
		}
		run += freq
		sum := t.Sum(pos)
		if sum != run {
			return fmt.Errorf("%w: sum(%d) = %v, frequencies sum to %v",
				ErrSumMismatch, pos, sum, run)
		}
		if nonNegative && sum < prev {
			return fmt.Errorf("%w: sum(%d) = %v decreases below sum(%d) = %v",
				ErrSumMismatch, pos, sum, pos-1, prev)
		}
		prev = sum
	}
	if total := t.Total(); total != run {
		return fmt.Errorf("%w: total = %v, sum(%d) = %v",
			ErrSumMismatch, total, t.Len()-1, run)
	}
	return nil
}
