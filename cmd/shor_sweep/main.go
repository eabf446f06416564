// Command shor_sweep estimates the quantum resources of Shor's
// algorithm across elliptic curve sizes and writes the per-objective
// result tables. It always runs the generic-curve sweep; supplying a
// Q# estimate table directory adds the fixed-modulus sweep.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/microsoft/QuantumEllipticCurves/config"
	"github.com/microsoft/QuantumEllipticCurves/internal/logging"
	"github.com/microsoft/QuantumEllipticCurves/prof"
	"github.com/microsoft/QuantumEllipticCurves/qsharp"
	"github.com/microsoft/QuantumEllipticCurves/report"
	"github.com/microsoft/QuantumEllipticCurves/shor"
	"github.com/microsoft/QuantumEllipticCurves/sweep"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (flags override file values)")
	rangeSpec := flag.String("range", "", "generic sweep sizes (comma list or lo..hi[:step]), default 10..521")
	sizesSpec := flag.String("sizes", "", "fixed-modulus sizes (comma list or lo..hi[:step]), default 256,384,521")
	tableDir := flag.String("tables", "", "directory with fixed-modulus Q# estimate tables (enables the fixed sweep)")
	outDir := flag.String("out", "", "output directory for result tables")
	jsonlPath := flag.String("jsonl", "", "optional JSONL sidecar recording every result")
	workers := flag.Int("workers", 0, "parallel workers (0 = one per CPU)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	verbose := flag.Bool("v", false, "print the summary table for the generic sweep and per-size counters for the fixed sweep")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			exitErr("%v", err)
		}
		cfg = loaded
	}
	if *tableDir != "" {
		cfg.Fixed.TableDir = *tableDir
	}
	if *outDir != "" {
		cfg.Sweep.OutDir = *outDir
	}
	if *workers != 0 {
		cfg.Sweep.Workers = *workers
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		exitErr("%v", err)
	}

	slog.SetDefault(logging.NewText(cfg.LogLevel, os.Stderr))
	slog.Info("generic model", "fits", shor.FitsVersion)

	genericSizes := sweep.Range(cfg.Sweep.MinBits, cfg.Sweep.MaxBits)
	if *rangeSpec != "" {
		var err error
		if genericSizes, err = parseIntList(*rangeSpec); err != nil {
			exitErr("bad -range: %v", err)
		}
	}
	fixedSizes := cfg.Fixed.Sizes
	if *sizesSpec != "" {
		var err error
		if fixedSizes, err = parseIntList(*sizesSpec); err != nil {
			exitErr("bad -sizes: %v", err)
		}
	}

	var jsonl *jsonlWriter
	if *jsonlPath != "" {
		var err error
		if jsonl, err = newJSONLWriter(*jsonlPath); err != nil {
			exitErr("%v", err)
		}
		defer jsonl.Close()
	}

	ctx := context.Background()

	fmt.Printf("Generic curves: %d sizes\n", len(genericSizes))
	generic := runPhase(ctx, shor.GenericCurves{}, genericSizes, cfg.Sweep.Workers, "generic sweep")
	writePhase(cfg.Sweep.OutDir, report.LowTName, report.LowDepthName, report.LowWidthName, generic)
	jsonl.WriteAll("generic", generic)
	if *verbose {
		printSummary(generic)
	}

	if cfg.Fixed.TableDir != "" {
		tables, err := qsharp.Load(cfg.Fixed.TableDir)
		if err != nil {
			exitErr("%v", err)
		}
		for _, fd := range tables.Files() {
			slog.Info("loaded estimate table", "file", fd.Path, "rows", fd.Rows, "shake256", fd.Digest)
		}
		slog.Debug("fixed-modulus sizes available", "sizes", tables.Sizes())

		fmt.Printf("Fixed-modulus curves: %d sizes\n", len(fixedSizes))
		fixed := runPhase(ctx, tables, fixedSizes, cfg.Sweep.Workers, "fixed-modulus sweep")
		writePhase(cfg.Sweep.OutDir, report.LowTFixedName, report.LowDepthFixedName, report.LowWidthFixedName, fixed)
		jsonl.WriteAll("fixed", fixed)
		printSummary(fixed)
		if *verbose {
			for _, r := range fixed {
				fmt.Println(r.Summary())
			}
		}
	}

	fmt.Println()
	fmt.Println(prof.Summary(prof.SnapshotAndReset()))
}

// jsonlWriter appends one JSON record per result to a sidecar file, so
// downstream tooling gets the full counter set without re-parsing the
// three CSV tables.
type jsonlWriter struct {
	f   *os.File
	buf *bufio.Writer
	enc *json.Encoder
}

type resultRecord struct {
	Phase  string      `json:"phase"`
	Result shor.Result `json:"result"`
}

func newJSONLWriter(path string) (*jsonlWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create jsonl dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open jsonl output: %w", err)
	}
	buf := bufio.NewWriter(f)
	return &jsonlWriter{f: f, buf: buf, enc: json.NewEncoder(buf)}, nil
}

func (w *jsonlWriter) WriteAll(phase string, results []shor.Result) {
	if w == nil {
		return
	}
	for _, r := range results {
		if err := w.enc.Encode(resultRecord{Phase: phase, Result: r}); err != nil {
			fmt.Fprintf(os.Stderr, "jsonl encode: %v\n", err)
			return
		}
	}
	if err := w.buf.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "jsonl flush: %v\n", err)
	}
}

func (w *jsonlWriter) Close() {
	if w == nil {
		return
	}
	_ = w.buf.Flush()
	_ = w.f.Close()
}

func runPhase(ctx context.Context, src shor.AdditionSource, sizes []int, workers int, label string) []shor.Result {
	results, err := sweep.Run(ctx, src, sizes, sweep.Options{
		Workers:  workers,
		Progress: sweep.NewProgress(len(sizes), os.Stdout),
		Label:    label,
	})
	if err != nil {
		fmt.Fprint(os.Stderr, "\n")
		var miss *qsharp.SizeError
		if errors.As(err, &miss) {
			exitErr("%v (available sizes come from the loaded tables; pass -sizes to match)", err)
		}
		exitErr("%v", err)
	}
	return results
}

func writePhase(dir, tName, depthName, widthName string, results []shor.Result) {
	start := time.Now()
	w, err := report.NewWriter(
		filepath.Join(dir, tName),
		filepath.Join(dir, depthName),
		filepath.Join(dir, widthName),
	)
	if err != nil {
		exitErr("%v", err)
	}
	if err := w.WriteHeaders(); err != nil {
		w.Close()
		exitErr("%v", err)
	}
	for _, r := range results {
		if err := w.WriteResult(r); err != nil {
			w.Close()
			exitErr("%v", err)
		}
	}
	if err := w.Close(); err != nil {
		exitErr("%v", err)
	}
	prof.Track(start, "write tables")
	slog.Info("wrote result tables", "dir", dir, "rows", len(results))
}

func printSummary(results []shor.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Println("Size | T-opt window    T gates | depth-opt window  full depth | width-opt window      width")
	for _, r := range results {
		fmt.Printf("%4d | %12d %10.4g | %16d %11.4g | %16d %10.4g\n",
			r.Bits,
			r.T.Window, r.T.Cost.TCount,
			r.Depth.Window, r.Depth.Cost.FullDepth,
			r.Width.Window, r.Width.Cost.Width,
		)
	}
}

// parseIntList accepts "a,b,c" lists and "lo..hi[:step]" ranges, or a
// mix, returning a sorted deduplicated size list.
func parseIntList(spec string) ([]int, error) {
	values := map[int]struct{}{}
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.Contains(tok, "..") {
			vals, err := expandRange(tok)
			if err != nil {
				return nil, err
			}
			for _, v := range vals {
				values[v] = struct{}{}
			}
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", tok)
		}
		values[v] = struct{}{}
	}
	if len(values) == 0 {
		return nil, errors.New("empty size list")
	}
	out := make([]int, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

func expandRange(rng string) ([]int, error) {
	step := 1
	rangePart := rng
	if strings.Contains(rng, ":") {
		parts := strings.SplitN(rng, ":", 2)
		rangePart = parts[0]
		s, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("invalid step in %q", rng)
		}
		step = s
	}
	bounds := strings.SplitN(rangePart, "..", 2)
	if len(bounds) != 2 {
		return nil, fmt.Errorf("invalid range %q", rng)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid range %q", rng)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid range %q", rng)
	}
	if hi < lo {
		return nil, fmt.Errorf("range %q is descending", rng)
	}
	var out []int
	for v := lo; v <= hi; v += step {
		out = append(out, v)
	}
	return out, nil
}

func exitErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
