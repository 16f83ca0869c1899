package table

import (
	"bytes"
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ufxr/minimax/coeffs"
)

func testTable(t *testing.T, fn coeffs.Function, maxOrder int) Table {
	br, err := coeffs.Batch(context.Background(), fn, maxOrder, coeffs.BatchOptions{})
	require.NoError(t, err)
	return New(fn, br.Results)
}

func TestTable(t *testing.T) {

	tab := New(coeffs.Exp2, []coeffs.Result{
		{Function: coeffs.Exp2, Order: 3, Coefficients: []float64{1, 2, 3, 4}},
		{Function: coeffs.Exp2, Order: 2, Coefficients: []float64{1, 2, 3}},
	})

	require.Equal(t, 2, tab.Rows[0].Order)
	require.Equal(t, 3, tab.MaxOrder())

	c, ok := tab.Lookup(3)
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3, 4}, c)

	_, ok = tab.Lookup(4)
	require.False(t, ok)

	require.Equal(t, -1, Table{}.MaxOrder())

	require.Panics(t, func() {
		New(coeffs.Exp2, []coeffs.Result{{Function: coeffs.Sin1Smooth, Order: 1}})
	})
}

func TestCSV(t *testing.T) {

	t.Run("RoundTrip", func(t *testing.T) {
		for _, fn := range coeffs.Functions() {
			t.Run(fn.String(), func(t *testing.T) {
				tab := testTable(t, fn, 5)

				buf := new(bytes.Buffer)
				require.NoError(t, WriteCSV(buf, tab))

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				require.Len(t, lines, len(tab.Rows))

				other, err := ReadCSV(buf, fn)
				require.NoError(t, err)
				require.True(t, cmp.Equal(tab, other))
			})
		}
	})

	t.Run("Format", func(t *testing.T) {
		tab := Table{Function: coeffs.Sin1Smooth, Rows: []Row{
			{Order: 1, Coefficients: []float64{4}},
			{Order: 2, Coefficients: []float64{6, -32}},
			{Order: 3, Coefficients: []float64{0.1, 1e-20, -2.5}},
		}}
		buf := new(bytes.Buffer)
		require.NoError(t, WriteCSV(buf, tab))
		require.Equal(t, "1,4\n2,6,-32\n3,0.1,1e-20,-2.5\n", buf.String())
	})

	t.Run("EmptyLines", func(t *testing.T) {
		tab, err := ReadCSV(strings.NewReader("\n3,1,2,3\n\n2,1,2\n"), coeffs.Sin1Minimax)
		require.NoError(t, err)
		require.Equal(t, []Row{
			{Order: 2, Coefficients: []float64{1, 2}},
			{Order: 3, Coefficients: []float64{1, 2, 3}},
		}, tab.Rows)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, tc := range []struct {
			name  string
			input string
			line  string
		}{
			{"Order", "2,1,2,3\nx,1,2,3\n", "line 2"},
			{"Negative", "-1,1\n", "line 1"},
			{"BelowMinimum", "2,1,2,3\n1,1,2\n", "line 2"},
			{"Duplicate", "2,1,2,3\n\n2,1,2,3\n", "line 3"},
			{"FieldCount", "2,1,2,3\n3,1,2,3\n", "line 2"},
			{"Coefficient", "2,1,abc,3\n", "line 1"},
			{"NonFinite", "2,1,NaN,3\n", "line 1"},
			{"Infinite", "2,1,2,+Inf\n", "line 1"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ReadCSV(strings.NewReader(tc.input), coeffs.Exp2)
				require.ErrorIs(t, err, ErrMalformed)
				require.Contains(t, err.Error(), tc.line)
			})
		}
	})

	t.Run("UnknownFunction", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""), coeffs.Function(9))
		require.ErrorIs(t, err, coeffs.ErrUnknownFunction)
	})
}

func TestChecksum(t *testing.T) {

	tab := Table{Function: coeffs.Exp2, Rows: []Row{{Order: 2, Coefficients: []float64{1, 0.5, 0.25}}}}

	sum := Checksum(tab)
	require.Len(t, sum, 64)
	require.Equal(t, sum, Checksum(tab))

	other := Table{Function: coeffs.Exp2, Rows: []Row{{Order: 2, Coefficients: []float64{1, 0.5, 0.125}}}}
	require.NotEqual(t, sum, Checksum(other))

	require.Equal(t, Checksum(testTable(t, coeffs.Exp2, 4)), Checksum(testTable(t, coeffs.Exp2, 4)))
}

func TestEmitGo(t *testing.T) {

	tab := testTable(t, coeffs.Sin1Minimax, 6)

	buf := new(bytes.Buffer)
	require.NoError(t, EmitGo(buf, tab, EmitOptions{Package: "poly", MaxOrder: 4}))

	src := buf.String()
	require.True(t, strings.HasPrefix(src, "// Code generated by coeffgen. DO NOT EDIT.\n"))

	var trimmed Table
	trimmed.Function = tab.Function
	trimmed.Rows = tab.Rows[:3]
	require.Contains(t, src, Checksum(trimmed))

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "coeffs.go", src, parser.ParseComments)
	require.NoError(t, err)
	require.Equal(t, "poly", f.Name.Name)

	require.Len(t, f.Decls, 1)
	spec := f.Decls[0].(*ast.GenDecl).Specs[0].(*ast.ValueSpec)
	require.Equal(t, "Sin1MinimaxCoeffs", spec.Names[0].Name)

	lit := spec.Values[0].(*ast.CompositeLit)
	require.Len(t, lit.Elts, 3)
	for i, elt := range lit.Elts {
		kv := elt.(*ast.KeyValueExpr)
		order, err := strconv.Atoi(kv.Key.(*ast.BasicLit).Value)
		require.NoError(t, err)
		require.Equal(t, tab.Rows[i].Order, order)
		require.Len(t, kv.Value.(*ast.CompositeLit).Elts, len(tab.Rows[i].Coefficients))
	}

	t.Run("InvalidPackage", func(t *testing.T) {
		require.Error(t, EmitGo(new(bytes.Buffer), tab, EmitOptions{Package: "sin1-minimax"}))
	})

	t.Run("VarName", func(t *testing.T) {
		require.Equal(t, "Exp2Coeffs", VarName("exp2"))
		require.Equal(t, "Sin1SmoothCoeffs", VarName("sin1_smooth"))
	})
}
