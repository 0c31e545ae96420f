package cumulfreqtable

import (
	"fmt"
	"io"
)

// TreeDot outputs the internal structure of a BinaryIndexedTree in Graphviz
// DOT format (for debugging purposes).
//
// Every tree cell is drawn with its index, the half-open range of positions
// it covers and its stored partial sum; edges point to the cell reached by
// clearing the least significant bit, i.e. the path walked by Sum.
func TreeDot[F Numeric](t *BinaryIndexedTree[F], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	fmt.Fprintf(w, "\t\"0\" [label=\"0 = %v\" shape=box];\n", t.tree[0])
	for i := 1; i < len(t.tree); i++ {
		lo := i - lowbit(i)
		fmt.Fprintf(w, "\t\"%d\" [label=\"%d (%d..%d] = %v\"];\n", i, i, lo, i, t.tree[i])
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", i, lo)
	}
	io.WriteString(w, "}\n")
}
