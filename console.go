package cumulfreqtable

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/fatih/color"
)

// Console dump helpers for debugging tables interactively. Output is
// colorized; set color.NoColor to suppress the escape sequences when writing
// to something other than a terminal.

var (
	dumpHeader = color.New(color.FgCyan, color.Bold)
	dumpTotal  = color.New(color.FgYellow)
	cellColors = []*color.Color{
		color.New(color.FgGreen),
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
		color.New(color.FgRed),
	}
)

// DumpTable prints one row per position with the absolute and the cumulative
// frequency, followed by the total.
func DumpTable[F Numeric](t Table[F], w io.Writer) {
	dumpHeader.Fprintf(w, "%5s %12s %12s\n", "pos", "freq", "sum")
	for pos := 0; pos < t.Len(); pos++ {
		fmt.Fprintf(w, "%5d %12v %12v\n", pos, t.Freq(pos), t.Sum(pos))
	}
	dumpTotal.Fprintf(w, "total %12v\n", t.Total())
}

// DumpTree prints the raw cells of a BinaryIndexedTree, one per line,
// colored by the level of the cell in the implicit tree (the bit-width of
// its least significant bit).
func DumpTree[F Numeric](t *BinaryIndexedTree[F], w io.Writer) {
	dumpHeader.Fprintf(w, "binary indexed tree, %d cells\n", len(t.tree))
	for i, cell := range t.tree {
		level := 0
		if i > 0 {
			level = bits.Len(uint(lowbit(i)))
		}
		c := cellColors[level%len(cellColors)]
		c.Fprintf(w, "%5d %*s%v\n", i, level, "", cell)
	}
}
