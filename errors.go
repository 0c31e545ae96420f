package cumulfreqtable

import "errors"

var (
	// ErrInvalidTable signals a nil or structurally unusable table.
	ErrInvalidTable = errors.New("cumulfreqtable: invalid table")
	// ErrSumMismatch signals that a table's cumulative sums disagree with
	// its per-position frequencies.
	ErrSumMismatch = errors.New("cumulfreqtable: cumulative sum mismatch")
)
