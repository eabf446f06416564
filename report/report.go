// Package report appends window-search results to per-objective CSV
// tables in the published estimate-table layout: one file for the
// T-optimal schedule, one for depth-optimal, one for width-optimal, one
// row per curve size.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/microsoft/QuantumEllipticCurves/cost"
	"github.com/microsoft/QuantumEllipticCurves/shor"
)

// Published output table names: one trio for the generic-curve sweep,
// one for the fixed-modulus sweep.
const (
	LowTName          = "shor_low_t.csv"
	LowDepthName      = "shor_low_depth.csv"
	LowWidthName      = "shor_low_width.csv"
	LowTFixedName     = "shor_low_t_fixed.csv"
	LowDepthFixedName = "shor_low_depth_fixed.csv"
	LowWidthFixedName = "shor_low_width_fixed.csv"
)

// Header mirrors the column layout of the Q# estimator output tables.
// R gates and Initial Width stay blank: the model tracks neither
// rotation gates nor a separate initial register, and peak width lands
// in the Extra Width column.
func Header() []string {
	return []string{
		"CNOT", "Single Qubit", "T gates", "R gates", "Measurements",
		"T-depth", "Initial Width", "Extra Width", "Full Depth",
		"Window Size", "Size",
	}
}

// Writer appends rows to the three objective tables. Files are opened
// in append mode so successive sweeps accumulate, matching how the
// published tables were produced.
type Writer struct {
	t     *objectiveWriter
	depth *objectiveWriter
	width *objectiveWriter
}

type objectiveWriter struct {
	path string
	f    *os.File
	cw   *csv.Writer
}

// NewWriter opens (or creates) the three objective tables for append.
func NewWriter(tPath, depthPath, widthPath string) (*Writer, error) {
	w := &Writer{}
	for _, o := range []struct {
		dst  **objectiveWriter
		path string
	}{
		{&w.t, tPath},
		{&w.depth, depthPath},
		{&w.width, widthPath},
	} {
		f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("report: open %s: %w", o.path, err)
		}
		*o.dst = &objectiveWriter{path: o.path, f: f, cw: csv.NewWriter(f)}
	}
	return w, nil
}

// WriteHeaders writes the column header to each of the three tables.
func (w *Writer) WriteHeaders() error {
	for _, o := range w.writers() {
		if err := o.cw.Write(Header()); err != nil {
			return fmt.Errorf("report: %s: %w", o.path, err)
		}
	}
	return nil
}

// WriteResult appends one row per objective: the T-optimal selection to
// the T table, and likewise for depth and width.
func (w *Writer) WriteResult(r shor.Result) error {
	for _, o := range []struct {
		ow  *objectiveWriter
		sel shor.Selection
	}{
		{w.t, r.T},
		{w.depth, r.Depth},
		{w.width, r.Width},
	} {
		if err := o.ow.cw.Write(row(o.sel.Cost, o.sel.Window, r.Bits)); err != nil {
			return fmt.Errorf("report: %s: %w", o.ow.path, err)
		}
	}
	return nil
}

// Close flushes and closes all three tables, reporting the first error.
func (w *Writer) Close() error {
	var first error
	for _, o := range w.writers() {
		o.cw.Flush()
		if err := o.cw.Error(); err != nil && first == nil {
			first = fmt.Errorf("report: flush %s: %w", o.path, err)
		}
		if err := o.f.Close(); err != nil && first == nil {
			first = fmt.Errorf("report: close %s: %w", o.path, err)
		}
	}
	return first
}

func (w *Writer) writers() []*objectiveWriter {
	var ws []*objectiveWriter
	for _, o := range []*objectiveWriter{w.t, w.depth, w.width} {
		if o != nil {
			ws = append(ws, o)
		}
	}
	return ws
}

func row(c cost.Counts, window, size int) []string {
	return []string{
		formatCount(c.CNOT),
		formatCount(c.SingleQubit),
		formatCount(c.TCount),
		"",
		formatCount(c.Measurements),
		formatCount(c.TDepth),
		"",
		formatCount(c.Width),
		formatCount(c.FullDepth),
		strconv.Itoa(window),
		strconv.Itoa(size),
	}
}

// formatCount renders counts as plain decimals: integral values without
// a fraction, fitted values with their full precision, never an
// exponent.
func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
