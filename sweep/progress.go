package sweep

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const progressWidth = 40

// Progress renders a single-line terminal progress bar with an ETA.
// Updates are serialized, so workers can report completions directly.
type Progress struct {
	mu    sync.Mutex
	total int
	last  int
	start time.Time
	out   io.Writer
}

// NewProgress returns a bar for total steps writing to out.
func NewProgress(total int, out io.Writer) *Progress {
	return &Progress{total: total, out: out}
}

// Update redraws the bar at done completed steps and prints a final
// newline when done reaches the total. Workers may report out of order;
// the bar never moves backwards.
func (p *Progress) Update(done int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.total <= 0 {
		return
	}
	if done > p.total {
		done = p.total
	}
	if done <= p.last {
		return
	}
	p.last = done
	if p.start.IsZero() {
		p.start = time.Now()
	}
	ratio := float64(done) / float64(p.total)
	filled := int(ratio * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat(" ", progressWidth-filled)
	elapsed := time.Since(p.start)
	var eta time.Duration
	if done > 0 && done < p.total {
		eta = time.Duration(float64(elapsed) * (float64(p.total-done) / float64(done)))
	}
	fmt.Fprintf(p.out, "\r\033[32m[%s]\033[0m %3.0f%% (%3d/%3d) ETA %s", bar, ratio*100, done, p.total, formatETA(eta))
	if done == p.total {
		fmt.Fprint(p.out, "\n")
	}
}

func formatETA(d time.Duration) string {
	if d <= 0 {
		return "--s"
	}
	return d.Round(time.Second).String()
}
