package frame

import (
	"sort"
)

// DefaultValueCountsLength is the maximum number of output rows per column
// pair when no explicit limit is given to ValueCounts.
const DefaultValueCountsLength = 10

// ValueCounts summarizes value frequencies for the selected columns (all
// columns when none are named). For each selected column C the result holds
// a pair of columns, C and C+"Count", listing C's distinct values with
// their occurrence counts, most frequent first; equal counts keep
// first-seen order. maxLen bounds the output row count; zero or negative
// means DefaultValueCountsLength.
//
// Every pair is aligned to min(maxLen, input row count) rows: shorter
// frequency tables are padded at the end with missing rows, longer ones are
// truncated to the most frequent values, so the pairs assemble into one
// rectangular table. Pairs appear in the order columns were requested.
// Missing entries in the input are not counted.
//
// An unknown column name fails with a not-found error before any counting.
func (t *Table) ValueCounts(maxLen int, cols ...string) (*Table, error) {
	if maxLen <= 0 {
		maxLen = DefaultValueCountsLength
	}
	effectiveMax := t.RowCount()
	if maxLen < effectiveMax {
		effectiveMax = maxLen
	}

	selected := make([]*Column, 0, len(cols))
	if len(cols) == 0 {
		selected = append(selected, t.columns...)
	} else {
		for _, name := range cols {
			col, err := t.Column(name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, col)
		}
	}

	out := make([]*Column, 0, 2*len(selected))
	for _, col := range selected {
		valueCol, countCol := frequencyPair(col, effectiveMax)
		out = append(out, valueCol, countCol)
	}

	return New(out...)
}

// frequencyPair computes one aligned (value, count) column pair, exactly
// rows entries long.
func frequencyPair(col *Column, rows int) (*Column, *Column) {
	values, counts := col.valueCounts()

	// Most frequent first; SliceStable keeps first-seen order on ties.
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	valueCol := NewColumn(col.name, col.typ)
	countCol := NewColumn(col.name+"Count", TypeInt)

	n := len(order)
	if n > rows {
		n = rows
	}
	for _, idx := range order[:n] {
		valueCol.values = append(valueCol.values, values[idx])
		countCol.values = append(countCol.values, Int(counts[idx]))
	}
	for i := n; i < rows; i++ {
		valueCol.AppendNull()
		countCol.AppendNull()
	}

	return valueCol, countCol
}
