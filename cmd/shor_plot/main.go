// Command shor_plot renders the estimate tables produced by shor_sweep
// as an interactive HTML page: one chart per headline metric, one series
// per optimization objective. It reads the published 11-column CSV
// layout, so it works on the generic and the fixed-modulus tables alike.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type estimateRow struct {
	Size         int
	Window       int
	CNOT         float64
	SingleQubit  float64
	TGates       float64
	Measurements float64
	TDepth       float64
	ExtraWidth   float64
	FullDepth    float64
}

type series struct {
	name string
	rows []estimateRow
}

func main() {
	dir := flag.String("dir", ".", "directory containing the estimate tables")
	lowT := flag.String("low-t", "shor_low_t.csv", "T-optimized table (relative to -dir unless absolute)")
	lowDepth := flag.String("low-depth", "shor_low_depth.csv", "depth-optimized table")
	lowWidth := flag.String("low-width", "shor_low_width.csv", "width-optimized table")
	outPath := flag.String("out", "plot_shor.html", "output HTML file")
	flag.Parse()

	all := []series{
		{name: "T-optimized"},
		{name: "depth-optimized"},
		{name: "width-optimized"},
	}
	for i, path := range []string{*lowT, *lowDepth, *lowWidth} {
		resolved := path
		if !filepath.IsAbs(path) {
			resolved = filepath.Join(*dir, path)
		}
		rows, err := readEstimates(resolved)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "[debug] rows loaded from %s: %d\n", resolved, len(rows))
		all[i].rows = rows
	}

	page := components.NewPage().SetPageTitle("Shor resource estimates")
	page.AddCharts(
		buildChart("T gates vs curve size", "T gates", all, func(r estimateRow) float64 { return r.TGates }),
		buildChart("Full circuit depth vs curve size", "Full depth", all, func(r estimateRow) float64 { return r.FullDepth }),
		buildChart("Qubit width vs curve size", "Qubits", all, func(r estimateRow) float64 { return r.ExtraWidth }),
		buildChart("Chosen lookup window vs curve size", "Window size", all, func(r estimateRow) float64 { return float64(r.Window) }),
	)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s | series: %s\n", *outPath, seriesSummary(all))
}

func seriesSummary(all []series) string {
	parts := make([]string, 0, len(all))
	for _, s := range all {
		parts = append(parts, fmt.Sprintf("%s=%d", s.name, len(s.rows)))
	}
	return strings.Join(parts, ", ")
}

func buildChart(title, yName string, all []series, metric func(estimateRow) float64) components.Charter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			Formatter: opts.FuncOpts(`
function (p) {
  var v = p.value || [];
  function e(x){
    if (typeof x !== 'number') return x;
    return (x !== 0 && Math.abs(x) >= 1e6) ? x.toExponential(3) : x;
  }
  return [
    '<b>' + p.seriesName + '</b> · n=' + v[0],
    'window size: ' + v[2],
    'CNOT: ' + e(v[3]),
    'single-qubit: ' + e(v[4]),
    'T gates: ' + e(v[5]),
    'measurements: ' + e(v[6]),
    'T-depth: ' + e(v[7]),
    'width: ' + e(v[8]),
    'full depth: ' + e(v[9])
  ].join('<br/>');
}`),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Curve size (bits)",
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      yName,
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			},
		}),
	)

	for _, s := range all {
		items := make([]opts.ScatterData, 0, len(s.rows))
		for _, r := range s.rows {
			items = append(items, opts.ScatterData{Value: []interface{}{
				r.Size,
				metric(r),
				r.Window,
				r.CNOT,
				r.SingleQubit,
				r.TGates,
				r.Measurements,
				r.TDepth,
				r.ExtraWidth,
				r.FullDepth,
			}})
		}
		sc.AddSeries(s.name, items,
			charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 5}),
		)
	}
	return sc
}

// readEstimates parses one published-layout table. Appended runs repeat
// the header line mid-file; any row whose Size column is not an integer
// is skipped, and later rows win when a size appears twice.
func readEstimates(path string) ([]estimateRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	cols, err := columnIndex(records[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	bySize := make(map[int]estimateRow)
	for _, rec := range records[1:] {
		size, err := intAt(rec, cols["Size"])
		if err != nil {
			continue
		}
		row := estimateRow{Size: size}
		if row.Window, err = intAt(rec, cols["Window Size"]); err != nil {
			continue
		}
		ok := true
		for _, f := range []struct {
			col string
			dst *float64
		}{
			{"CNOT", &row.CNOT},
			{"Single Qubit", &row.SingleQubit},
			{"T gates", &row.TGates},
			{"Measurements", &row.Measurements},
			{"T-depth", &row.TDepth},
			{"Extra Width", &row.ExtraWidth},
			{"Full Depth", &row.FullDepth},
		} {
			v, err := floatAt(rec, cols[f.col])
			if err != nil {
				ok = false
				break
			}
			*f.dst = v
		}
		if !ok {
			continue
		}
		bySize[size] = row
	}
	if len(bySize) == 0 {
		return nil, fmt.Errorf("no estimate rows found in %s", path)
	}

	rows := make([]estimateRow, 0, len(bySize))
	for _, row := range bySize {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Size < rows[j].Size })
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{
		"CNOT", "Single Qubit", "T gates", "Measurements",
		"T-depth", "Extra Width", "Full Depth", "Window Size", "Size",
	} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

func intAt(rec []string, idx int) (int, error) {
	if idx >= len(rec) {
		return 0, fmt.Errorf("short row")
	}
	return strconv.Atoi(strings.TrimSpace(rec[idx]))
}

func floatAt(rec []string, idx int) (float64, error) {
	if idx >= len(rec) {
		return 0, fmt.Errorf("short row")
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
}
