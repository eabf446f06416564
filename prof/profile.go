// Package prof collects coarse wall-time measurements for estimator
// phases. Parallel tasks tracking the same label aggregate into one
// bucket.
package prof

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Entry is one aggregated timing bucket.
type Entry struct {
	Label string
	Count int
	Total time.Duration
}

var (
	mu      sync.Mutex
	buckets map[string]*Entry
	order   []string
)

// Track adds the duration since start to the labelled bucket.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	defer mu.Unlock()
	if buckets == nil {
		buckets = make(map[string]*Entry)
	}
	e, ok := buckets[label]
	if !ok {
		e = &Entry{Label: label}
		buckets[label] = e
		order = append(order, label)
	}
	e.Count++
	e.Total += elapsed
}

// SnapshotAndReset returns the buckets in first-use order and clears
// the registry.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, 0, len(order))
	for _, label := range order {
		out = append(out, *buckets[label])
	}
	buckets = nil
	order = nil
	return out
}

// Summary renders entries as aligned lines for terminal output.
func Summary(entries []Entry) string {
	var b strings.Builder
	width := 0
	for _, e := range entries {
		if len(e.Label) > width {
			width = len(e.Label)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s  %10s", width, e.Label, e.Total.Round(time.Millisecond))
		if e.Count > 1 {
			fmt.Fprintf(&b, "  (%d calls)", e.Count)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
