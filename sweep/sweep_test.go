package sweep

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/microsoft/QuantumEllipticCurves/cost"
	"github.com/microsoft/QuantumEllipticCurves/shor"
)

var errNoRow = errors.New("no row for size")

// tableSource fails for one size, like a fixed-modulus table with a
// missing row.
type tableSource struct {
	bad int
}

func (s tableSource) PointAddition(bits int) (cost.Profile, error) {
	if bits == s.bad {
		return cost.Profile{}, errNoRow
	}
	return shor.PointAdditionCost(bits), nil
}

func TestRunPreservesInputOrder(t *testing.T) {
	sizes := []int{64, 10, 256, 32, 11}
	results, err := Run(context.Background(), shor.GenericCurves{}, sizes, Options{Workers: 4})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != len(sizes) {
		t.Fatalf("result count: got=%d want=%d", len(results), len(sizes))
	}
	for i, size := range sizes {
		if results[i].Bits != size {
			t.Fatalf("result %d: bits got=%d want=%d", i, results[i].Bits, size)
		}
	}
}

func TestRunParallelMatchesSerial(t *testing.T) {
	sizes := Range(10, 40)
	serial, err := Run(context.Background(), shor.GenericCurves{}, sizes, Options{Workers: 1})
	if err != nil {
		t.Fatalf("serial run: %v", err)
	}
	parallel, err := Run(context.Background(), shor.GenericCurves{}, sizes, Options{Workers: 8})
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}
	for i := range sizes {
		if serial[i] != parallel[i] {
			t.Fatalf("size %d: serial and parallel disagree:\n%+v\n%+v", sizes[i], serial[i], parallel[i])
		}
	}
}

func TestRunAbortsOnSourceError(t *testing.T) {
	sizes := []int{10, 11, 12, 13}
	_, err := Run(context.Background(), tableSource{bad: 12}, sizes, Options{Workers: 2})
	if err == nil {
		t.Fatalf("expected run to abort")
	}
	if !errors.Is(err, errNoRow) {
		t.Fatalf("error does not wrap the source failure: %v", err)
	}
	if !strings.Contains(err.Error(), "size 12") {
		t.Fatalf("error does not name the failing size: %v", err)
	}
}

func TestRunRejectsEmptySizes(t *testing.T) {
	if _, err := Run(context.Background(), shor.GenericCurves{}, nil, Options{}); err == nil {
		t.Fatalf("expected error for empty size list")
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, shor.GenericCurves{}, []int{10, 11}, Options{Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error: got=%v want context.Canceled", err)
	}
}

func TestRange(t *testing.T) {
	got := Range(3, 5)
	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("range 3..5: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range 3..5: got=%v want=%v", got, want)
		}
	}
	if got := Range(4, 4); len(got) != 1 || got[0] != 4 {
		t.Fatalf("range 4..4: got=%v want=[4]", got)
	}
	if got := Range(5, 3); got != nil {
		t.Fatalf("range 5..3: got=%v want=nil", got)
	}
}

func TestProgressRendersAndNeverMovesBackwards(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(3, &buf)
	p.Update(1)
	p.Update(3)
	out := buf.String()
	if !strings.Contains(out, "100%") {
		t.Fatalf("final update missing 100%%: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("completed bar missing trailing newline: %q", out)
	}
	p.Update(2)
	if buf.String() != out {
		t.Fatalf("stale update redrew the bar: %q", buf.String())
	}
}
