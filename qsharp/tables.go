// Package qsharp loads fixed-modulus point addition estimates produced
// by the Q# resource estimator. Each optimization objective has a base
// table with the gate counts and a companion "all gates" table with the
// full circuit depth; rows are keyed by curve size. Loaded tables
// implement shor.AdditionSource.
package qsharp

import (
	"bytes"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/microsoft/QuantumEllipticCurves/cost"
)

// File names within each objective directory, as published.
const (
	BaseFile     = "Fixed-modulus-signed.csv"
	AllGatesFile = "Fixed-modulus-signed-all-gates.csv"
)

// Objective directory names, as published.
const (
	LowTDir     = "LowT"
	LowWidthDir = "LowWidth"
	LowDepthDir = "LowDepth"
)

// ErrSizeMissing reports a curve size absent from a loaded table.
var ErrSizeMissing = errors.New("qsharp: size not in table")

// SizeError carries the table and curve size of a failed row lookup.
// It unwraps to ErrSizeMissing.
type SizeError struct {
	Table string
	Size  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("qsharp: table %s has no row for size %d", e.Table, e.Size)
}

func (e *SizeError) Unwrap() error { return ErrSizeMissing }

// FileDigest records the provenance of one loaded table file: its path,
// the SHAKE-256 digest (16 bytes, hex) of its raw bytes and how many
// data rows it carried.
type FileDigest struct {
	Path   string
	Digest string
	Rows   int
}

// Tables holds the six fixed-modulus estimate tables for one directory
// tree, indexed by curve size. The zero value is not usable; call Load.
type Tables struct {
	objectives [3]objectiveTable
	files      []FileDigest
}

type objectiveTable struct {
	dir       string
	counts    map[int]cost.Counts
	fullDepth map[int]float64
}

// Indices into Tables.objectives.
const (
	objLowDepth = iota
	objLowT
	objLowWidth
)

// Load reads the six estimate tables under dir, which must contain the
// published layout: LowT, LowWidth and LowDepth subdirectories, each
// with Fixed-modulus-signed.csv and Fixed-modulus-signed-all-gates.csv.
func Load(dir string) (*Tables, error) {
	t := &Tables{}
	for _, o := range []struct {
		idx int
		sub string
	}{
		{objLowDepth, LowDepthDir},
		{objLowT, LowTDir},
		{objLowWidth, LowWidthDir},
	} {
		base := filepath.Join(dir, o.sub, BaseFile)
		counts, d, err := parseEstimates(base)
		if err != nil {
			return nil, err
		}
		t.files = append(t.files, d)

		all := filepath.Join(dir, o.sub, AllGatesFile)
		fullDepth, d, err := parseFullDepth(all)
		if err != nil {
			return nil, err
		}
		t.files = append(t.files, d)

		t.objectives[o.idx] = objectiveTable{dir: o.sub, counts: counts, fullDepth: fullDepth}
	}
	return t, nil
}

// PointAddition assembles the three-objective cost profile of one point
// addition on a fixed-modulus curve of the given size. Every one of the
// six tables must carry a row for the size; a miss in any of them is a
// *SizeError, never a zero-filled default.
func (t *Tables) PointAddition(bits int) (cost.Profile, error) {
	lowDepth, err := t.objectives[objLowDepth].row(bits)
	if err != nil {
		return cost.Profile{}, err
	}
	lowT, err := t.objectives[objLowT].row(bits)
	if err != nil {
		return cost.Profile{}, err
	}
	lowWidth, err := t.objectives[objLowWidth].row(bits)
	if err != nil {
		return cost.Profile{}, err
	}
	return cost.Profile{LowDepth: lowDepth, LowT: lowT, LowWidth: lowWidth}, nil
}

func (o objectiveTable) row(bits int) (cost.Counts, error) {
	c, ok := o.counts[bits]
	if !ok {
		return cost.Counts{}, &SizeError{Table: filepath.Join(o.dir, BaseFile), Size: bits}
	}
	fd, ok := o.fullDepth[bits]
	if !ok {
		return cost.Counts{}, &SizeError{Table: filepath.Join(o.dir, AllGatesFile), Size: bits}
	}
	c.FullDepth = fd
	return c, nil
}

// Sizes returns, sorted, the curve sizes present in all six tables.
func (t *Tables) Sizes() []int {
	var sizes []int
	for size := range t.objectives[0].counts {
		ok := true
		for _, o := range t.objectives {
			if _, in := o.counts[size]; !in {
				ok = false
				break
			}
			if _, in := o.fullDepth[size]; !in {
				ok = false
				break
			}
		}
		if ok {
			sizes = append(sizes, size)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// Files returns the provenance digests of the loaded table files, in
// load order.
func (t *Tables) Files() []FileDigest {
	return append([]FileDigest(nil), t.files...)
}

// Columns of the base estimate tables.
const (
	colSize        = "size"
	colCNOT        = "CNOT count"
	colSingleQubit = "1-qubit Clifford count"
	colTCount      = "T count"
	colMeasure     = "M count"
	colTDepth      = "T depth"
	colExtraWidth  = "extra width"
	colFullDepth   = "Full depth"
)

func parseEstimates(path string) (map[int]cost.Counts, FileDigest, error) {
	rows, digest, err := readTable(path)
	if err != nil {
		return nil, FileDigest{}, err
	}
	counts := make(map[int]cost.Counts, len(rows))
	for _, row := range rows {
		size, err := row.intField(colSize)
		if err != nil {
			return nil, FileDigest{}, err
		}
		var c cost.Counts
		for _, f := range []struct {
			col string
			dst *float64
		}{
			{colCNOT, &c.CNOT},
			{colSingleQubit, &c.SingleQubit},
			{colTCount, &c.TCount},
			{colMeasure, &c.Measurements},
			{colTDepth, &c.TDepth},
			{colExtraWidth, &c.Width},
		} {
			v, err := row.floatField(f.col)
			if err != nil {
				return nil, FileDigest{}, err
			}
			*f.dst = v
		}
		// Later rows overwrite earlier ones for the same size.
		counts[size] = c
	}
	return counts, digest, nil
}

func parseFullDepth(path string) (map[int]float64, FileDigest, error) {
	rows, digest, err := readTable(path)
	if err != nil {
		return nil, FileDigest{}, err
	}
	depths := make(map[int]float64, len(rows))
	for _, row := range rows {
		size, err := row.intField(colSize)
		if err != nil {
			return nil, FileDigest{}, err
		}
		v, err := row.floatField(colFullDepth)
		if err != nil {
			return nil, FileDigest{}, err
		}
		depths[size] = v
	}
	return depths, digest, nil
}

type tableRow struct {
	path   string
	line   int
	fields map[string]string
}

func (r tableRow) intField(col string) (int, error) {
	s, ok := r.fields[col]
	if !ok {
		return 0, fmt.Errorf("qsharp: %s line %d: missing column %q", r.path, r.line, col)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("qsharp: %s line %d: column %q: %w", r.path, r.line, col, err)
	}
	return v, nil
}

func (r tableRow) floatField(col string) (float64, error) {
	s, ok := r.fields[col]
	if !ok {
		return 0, fmt.Errorf("qsharp: %s line %d: missing column %q", r.path, r.line, col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("qsharp: %s line %d: column %q: %w", r.path, r.line, col, err)
	}
	return v, nil
}

// readTable reads a header-keyed CSV and digests its raw bytes.
func readTable(path string) ([]tableRow, FileDigest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FileDigest{}, fmt.Errorf("qsharp: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, FileDigest{}, fmt.Errorf("qsharp: %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, FileDigest{}, fmt.Errorf("qsharp: %s: empty table", path)
	}
	header := records[0]
	rows := make([]tableRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(rec) {
				fields[strings.TrimSpace(name)] = rec[j]
			}
		}
		rows = append(rows, tableRow{path: path, line: i + 2, fields: fields})
	}
	digest := FileDigest{Path: path, Digest: shakeHex(data), Rows: len(rows)}
	return rows, digest, nil
}

func shakeHex(data []byte) string {
	h := sha3.NewShake256()
	h.Write(data)
	var sum [16]byte
	h.Read(sum[:])
	return hex.EncodeToString(sum[:])
}
