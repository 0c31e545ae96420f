/*
Package cumulfreqtable stores and/or computes the absolute frequency and the
cumulative frequency for every position in a table of fixed length.

Formal definition, from Wikipedia (https://en.wikipedia.org/wiki/Frequency_(statistics)):
In statistics, the frequency (or absolute frequency) of an event i is the
number nᵢ of times the observation has occurred/recorded in an experiment or
study. The cumulative frequency is the total of the absolute frequencies of
all events at or below a certain point in an ordered list of events.

Cumulative frequency tables are the core building block of adaptive
arithmetic/range coders and of weighted-sampling structures: the per-position
frequencies evolve continuously (one increment per observed symbol) while the
consumer needs fast prefix-sum and inverse-prefix-sum queries.

# Implementations

The package offers three implementations of the Table interface, trading off
the cost of updates against the cost of queries:

	Operation   |  FreqTable  |  CumSumTable  |  BinaryIndexedTree
	------------+-------------+---------------+-------------------
	Add/Sub     |  O(1)       |  O(len−pos)   |  O(㏒₂ len)
	Sum         |  O(pos)     |  O(1)         |  O(㏒₂ len)
	Total       |  O(1)       |  O(1)         |  O(㏒₂ len)
	Freq        |  O(1)       |  O(1)         |  O(㏒₂ len)
	FindBySum   |  O(len)     |  O(len)       |  O(㏒₂ len)
	Scale       |  O(len)     |  O(len)       |  O(len·㏒₂ len)

FreqTable is best for small tables: the linear scans stay within the CPU
cache and beat the index arithmetic of the tree. CumSumTable has no
asymptotic advantage for any operation mix but is trivial to prove correct
and serves as the oracle the tree is validated against. BinaryIndexedTree is
the general-purpose choice for large tables.

All implementations are plain mutable containers: single-threaded,
synchronous, no internal locking. Callers needing concurrent access must
synchronize externally.

# Example

	table := cumulfreqtable.NewBinaryIndexedTree[uint](16)
	table.Inc(0)
	table.Inc(3)
	table.Add(5, 3)

	table.Freq(5)      // => 3
	table.Sum(5)       // => 5
	table.Total()      // => 5
	table.FindBySum(5) // => 5

# BSD License

Copyright (c) François-Xavier Bourlet (bombela)

Please refer to the License file for details.
*/
package cumulfreqtable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cumulfreqtable'
func tracer() tracing.Trace {
	return tracing.Select("cumulfreqtable")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
