package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ufxr/minimax/coeffs"
)

// ErrMalformed is returned by ReadCSV for a line that is not a valid table row.
var ErrMalformed = errors.New("malformed table")

// WriteCSV writes one line "order,c0,c1,..." per row of t. Coefficients are
// written in the shortest form that parses back to the same float64.
func WriteCSV(w io.Writer, t Table) (err error) {

	cw := csv.NewWriter(w)

	for _, row := range t.Rows {

		record := make([]string, 1+len(row.Coefficients))
		record[0] = strconv.Itoa(row.Order)
		for i, c := range row.Coefficients {
			record[i+1] = strconv.FormatFloat(c, 'g', -1, 64)
		}

		if err = cw.Write(record); err != nil {
			return
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table of fn written by WriteCSV. Empty lines are skipped.
// Every other line must hold a non-negative order no smaller than the minimum
// order of fn, followed by exactly the number of finite coefficients fn produces
// for that order. Orders may appear in any order but at most once.
func ReadCSV(r io.Reader, fn coeffs.Function) (t Table, err error) {

	d, err := fn.Descriptor()
	if err != nil {
		return
	}

	t.Function = fn

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	seen := map[int]int{}

	for {

		var record []string
		if record, err = cr.Read(); err != nil {
			if err == io.EOF {
				break
			}
			return Table{}, fmt.Errorf("%w: %s: %w", ErrMalformed, d.Name, err)
		}

		line, _ := cr.FieldPos(0)

		malformed := func(format string, args ...interface{}) error {
			return fmt.Errorf("%w: %s: line %d: %s", ErrMalformed, d.Name, line, fmt.Sprintf(format, args...))
		}

		order, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return Table{}, malformed("invalid order %q", record[0])
		}

		if order < 0 {
			return Table{}, malformed("negative order %d", order)
		}

		if order < d.MinOrder {
			return Table{}, malformed("order %d is below the minimum order %d", order, d.MinOrder)
		}

		if prev, ok := seen[order]; ok {
			return Table{}, malformed("order %d already defined on line %d", order, prev)
		}
		seen[order] = line

		if want := 1 + d.Terms(order); len(record) != want {
			return Table{}, malformed("order %d: expected %d fields but got %d", order, want, len(record))
		}

		row := Row{Order: order, Coefficients: make([]float64, len(record)-1)}

		for i, field := range record[1:] {
			c, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Table{}, malformed("coefficient %d: invalid value %q", i, field)
			}
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return Table{}, malformed("coefficient %d: non-finite value %v", i, c)
			}
			row.Coefficients[i] = c
		}

		t.Rows = append(t.Rows, row)
	}

	sort.Slice(t.Rows, func(i, j int) bool { return t.Rows[i].Order < t.Rows[j].Order })

	return t, nil
}
