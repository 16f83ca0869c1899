// Package table reads, writes and emits coefficient tables: one
// coefficient sequence per order of a single function.
package table

import (
	"fmt"
	"sort"

	"github.com/ufxr/minimax/coeffs"
)

// Row is the coefficient sequence of one order.
type Row struct {
	Order        int
	Coefficients []float64
}

// Table is the set of coefficient sequences of a function, sorted by order.
type Table struct {
	Function coeffs.Function
	Rows     []Row
}

// New returns the table of the results, which must all be of the function fn.
func New(fn coeffs.Function, results []coeffs.Result) Table {

	t := Table{Function: fn, Rows: make([]Row, len(results))}

	for i, res := range results {
		if res.Function != fn {
			panic(fmt.Errorf("cannot New: result of %s in a table of %s", res.Function, fn))
		}
		t.Rows[i] = Row{Order: res.Order, Coefficients: res.Coefficients}
	}

	sort.SliceStable(t.Rows, func(i, j int) bool { return t.Rows[i].Order < t.Rows[j].Order })

	return t
}

// Lookup returns the coefficients of the given order.
func (t Table) Lookup(order int) ([]float64, bool) {
	i := sort.Search(len(t.Rows), func(i int) bool { return t.Rows[i].Order >= order })
	if i < len(t.Rows) && t.Rows[i].Order == order {
		return t.Rows[i].Coefficients, true
	}
	return nil, false
}

// MaxOrder returns the largest order of the table, or -1 if it is empty.
func (t Table) MaxOrder() int {
	if len(t.Rows) == 0 {
		return -1
	}
	return t.Rows[len(t.Rows)-1].Order
}
