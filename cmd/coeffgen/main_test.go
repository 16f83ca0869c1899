package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ufxr/minimax/coeffs"
	"github.com/ufxr/minimax/table"
)

func TestGenerate(t *testing.T) {

	dir := t.TempDir()
	ctx := context.Background()

	csvPath := filepath.Join(dir, "exp2.csv")
	require.NoError(t, generate(ctx, coeffs.Exp2, config{Output: csvPath, MaxOrder: 4, Format: "csv"}))

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	tab, err := table.ReadCSV(f, coeffs.Exp2)
	require.NoError(t, err)
	require.Len(t, tab.Rows, 3)

	t.Run("Go", func(t *testing.T) {
		goPath := filepath.Join(dir, "exp2_table.go")
		require.NoError(t, generate(ctx, coeffs.Exp2, config{Output: goPath, Input: csvPath, Format: "go", Package: "poly", Audit: true}))
		src, err := os.ReadFile(goPath)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(src), "// Code generated by coeffgen. DO NOT EDIT."))
		require.Contains(t, string(src), table.Checksum(tab))
		require.Contains(t, string(src), "package poly")
	})

	t.Run("JSON", func(t *testing.T) {
		jsonPath := filepath.Join(dir, "sin1_minimax.json")
		require.NoError(t, generate(ctx, coeffs.Sin1Minimax, config{Output: jsonPath, MaxOrder: 3, Format: "json"}))

		b, err := os.ReadFile(jsonPath)
		require.NoError(t, err)

		var out jsonTable
		require.NoError(t, json.Unmarshal(b, &out))
		require.Equal(t, "sin1_minimax", out.Function)
		require.Len(t, out.Rows, 2)
		require.Equal(t, 2, out.Rows[0].Order)
		require.Len(t, out.Rows[0].Coefficients, 2)
		require.NotEmpty(t, out.Rows[0].Status)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		require.Error(t, generate(ctx, coeffs.Exp2, config{MaxOrder: 4, Format: "xml"}))
	})

	t.Run("MissingInput", func(t *testing.T) {
		require.Error(t, generate(ctx, coeffs.Exp2, config{Input: filepath.Join(dir, "missing.csv"), Format: "csv", Output: "-"}))
	})
}
