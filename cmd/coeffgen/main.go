// Command coeffgen computes the polynomial coefficient tables of the
// approximated functions for every order up to a maximum.
//
// Usage:
//
//	coeffgen [-flags] exp2|sin1_smooth|sin1_minimax
//	coeffgen -n 6 -format go -pkg poly -o exp2_table.go exp2
//	coeffgen -in exp2.csv -audit exp2    # audits an existing table
//
// The CSV format has one line per order: "order,c0,c1,...", coefficients
// in ascending power order.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ufxr/minimax/audit"
	"github.com/ufxr/minimax/coeffs"
	"github.com/ufxr/minimax/table"
)

var (
	output     = flag.String("o", "", "Output file, '-' for stdout (default: <function>.<format>)")
	maxOrder   = flag.Int("n", 8, "Maximum order")
	format     = flag.String("format", "csv", "Output format (csv, go, json)")
	input      = flag.String("in", "", "Read the table from this CSV file instead of computing it")
	workers    = flag.Int("workers", 0, "Number of orders computed concurrently (default: GOMAXPROCS)")
	skipFailed = flag.Bool("skip-failed", false, "Skip the orders whose computation fails instead of aborting")
	runAudit   = flag.Bool("audit", false, "Log the accuracy of every order against a high precision reference")
	packageOut = flag.String("pkg", "coeffs", "Package name of the emitted Go source")
	debug      = flag.Bool("debug", false, "Log every iteration of the exchange algorithm")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: coeffgen [-flags] %s\n", strings.Join(functionNames(), "|"))
	flag.PrintDefaults()
}

func main() {

	log.SetFlags(0)
	log.SetPrefix("coeffgen: ")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	fn, err := coeffs.ParseFunction(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config{
		Output:     *output,
		MaxOrder:   *maxOrder,
		Format:     *format,
		Input:      *input,
		Workers:    *workers,
		SkipFailed: *skipFailed,
		Audit:      *runAudit,
		Package:    *packageOut,
		Debug:      *debug,
	}

	if err := generate(ctx, fn, cfg); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	Output     string
	MaxOrder   int
	Format     string
	Input      string
	Workers    int
	SkipFailed bool
	Audit      bool
	Package    string
	Debug      bool
}

func generate(ctx context.Context, fn coeffs.Function, cfg config) (err error) {

	switch cfg.Format {
	case "csv", "go", "json":
	default:
		return fmt.Errorf("invalid format %q: valid formats are csv, go and json", cfg.Format)
	}

	var t table.Table
	var results []coeffs.Result

	if cfg.Input != "" {
		if t, err = readTable(cfg.Input, fn); err != nil {
			return
		}
		log.Printf("read %d orders of %s from %s", len(t.Rows), fn, cfg.Input)
	} else {

		var br coeffs.BatchResult
		if br, err = coeffs.Batch(ctx, fn, cfg.MaxOrder, coeffs.BatchOptions{
			Workers:    cfg.Workers,
			SkipFailed: cfg.SkipFailed,
			Debug:      cfg.Debug,
		}); err != nil {
			return
		}

		for _, f := range br.Failures {
			log.Printf("skipped %s order %d: %v", fn, f.Order, f.Err)
		}

		for _, res := range br.Results {
			log.Println(res)
		}

		results = br.Results
		t = table.New(fn, results)
	}

	if cfg.Audit {
		var reports []audit.Report
		if reports, err = audit.RunTable(t, audit.Options{}); err != nil {
			return
		}
		for _, r := range reports {
			log.Println(r)
		}
	}

	path := cfg.Output
	if path == "" {
		path = fmt.Sprintf("%s.%s", fn, cfg.Format)
	}

	var w io.Writer = os.Stdout
	if path != "-" {
		log.Printf("writing %s", path)
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch cfg.Format {
	case "csv":
		return table.WriteCSV(w, t)
	case "go":
		return table.EmitGo(w, t, table.EmitOptions{Package: cfg.Package})
	default:
		return writeJSON(w, t, results)
	}
}

func readTable(path string, fn coeffs.Function) (t table.Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	return table.ReadCSV(f, fn)
}

type jsonRow struct {
	Order        int       `json:"order"`
	Coefficients []float64 `json:"coefficients"`
	Status       string    `json:"status,omitempty"`
	MaxError     float64   `json:"max_error,omitempty"`
	Iterations   int       `json:"iterations,omitempty"`
}

type jsonTable struct {
	Function string    `json:"function"`
	Checksum string    `json:"checksum"`
	Rows     []jsonRow `json:"rows"`
}

func writeJSON(w io.Writer, t table.Table, results []coeffs.Result) error {

	out := jsonTable{
		Function: t.Function.String(),
		Checksum: table.Checksum(t),
		Rows:     make([]jsonRow, len(t.Rows)),
	}

	for i, row := range t.Rows {
		out.Rows[i] = jsonRow{Order: row.Order, Coefficients: row.Coefficients}
	}

	// results and t.Rows are both sorted by order
	for i, res := range results {
		out.Rows[i].Status = res.Status.String()
		out.Rows[i].MaxError = res.MaxError
		out.Rows[i].Iterations = res.Iterations
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func functionNames() (names []string) {
	for _, f := range coeffs.Functions() {
		names = append(names, f.String())
	}
	return
}
