package table

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
)

// EmitOptions configures EmitGo.
type EmitOptions struct {
	// Package is the package clause of the emitted file.
	Package string
	// Var is the name of the emitted variable. It defaults to the
	// exported camel case name of the function followed by "Coeffs".
	Var string
	// MaxOrder drops the rows of larger order if positive.
	MaxOrder int
}

// VarName returns the default variable name for the table of the named function,
// e.g. "Sin1MinimaxCoeffs" for "sin1_minimax".
func VarName(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	b.WriteString("Coeffs")
	return b.String()
}

// EmitGo writes t as a gofmt'ed Go source file declaring a map from order to
// float32 coefficients, in ascending power order.
func EmitGo(w io.Writer, t Table, opts EmitOptions) (err error) {

	d, err := t.Function.Descriptor()
	if err != nil {
		return
	}

	if !token.IsIdentifier(opts.Package) {
		return fmt.Errorf("cannot EmitGo: invalid package name %q", opts.Package)
	}

	name := opts.Var
	if name == "" {
		name = VarName(d.Name)
	}

	if !token.IsIdentifier(name) {
		return fmt.Errorf("cannot EmitGo: invalid variable name %q", name)
	}

	if opts.MaxOrder > 0 {
		rows := make([]Row, 0, len(t.Rows))
		for _, row := range t.Rows {
			if row.Order <= opts.MaxOrder {
				rows = append(rows, row)
			}
		}
		t.Rows = rows
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by coeffgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// Function: %s on [%g, %g], %s error.\n", d.Name, d.Interval.A, d.Interval.B, d.Mode)
	fmt.Fprintf(&buf, "// Checksum: %s\n", Checksum(t))
	fmt.Fprintf(&buf, "\npackage %s\n\n", opts.Package)

	fmt.Fprintf(&buf, "// %s holds the polynomial coefficients of %s, indexed by order.\n", name, d.Name)
	fmt.Fprintf(&buf, "var %s = map[int][]float32{\n", name)
	for _, row := range t.Rows {
		fmt.Fprintf(&buf, "\t%d: {", row.Order)
		for i, c := range row.Coefficients {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(strconv.FormatFloat(float64(float32(c)), 'g', -1, 32))
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("cannot EmitGo: format: %w", err)
	}

	_, err = w.Write(formatted)
	return
}
