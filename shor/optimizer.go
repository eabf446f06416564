package shor

import (
	"fmt"
	"strings"

	"github.com/microsoft/QuantumEllipticCurves/cost"
)

// ReferenceWindow is the window size the point-addition cost models
// embed: every addition profile carries the cost of its internal
// lookups at this window size.
const ReferenceWindow = 8

// lookupsPerAddition is how many table lookups one windowed point
// addition performs.
const lookupsPerAddition = 6

// Selection is one objective's winning window size and the total cost
// of the full algorithm under that objective.
type Selection struct {
	Window int
	Cost   cost.Counts
}

// Result is the outcome of the window search for one curve size.
//
// Depth is selected by full circuit depth and T by T count. Width is
// also selected by T count, not by width: the width-optimized formula
// family already minimizes width internally, and the published estimate
// tables were generated with this rule, so it is kept for compatibility
// even though it reads like a historical accident.
type Result struct {
	Bits  int
	Depth Selection
	T     Selection
	Width Selection
}

// BitWidthError reports a curve size outside the model's validated
// domain.
type BitWidthError struct {
	Bits int
}

func (e *BitWidthError) Error() string {
	return fmt.Sprintf("shor: bit-width %d outside the validated domain (need at least 2)", e.Bits)
}

// OptimizeWindows searches lookup window sizes for the best way to run
// Shor's algorithm against a bits-bit curve whose single point addition
// costs addition (at the reference window size). Candidates run from 0
// to bits/2-1; for each, the algorithm is recomposed as 2*floor(bits/(w+1))
// point additions at window w, plus two extra additions at the remainder
// window when w+1 does not divide bits. Each objective independently
// keeps the candidate that minimizes its own selection metric, seeded
// with the schoolbook fallback of 2*bits additions at the reference
// window.
func OptimizeWindows(addition cost.Profile, bits int) (Result, error) {
	if bits < 2 {
		return Result{}, &BitWidthError{Bits: bits}
	}

	refLookup := LookupCost(bits, ReferenceWindow).Scale(lookupsPerAddition)
	blank, err := addition.Subtract(refLookup)
	if err != nil {
		return Result{}, fmt.Errorf("shor: addition cost smaller than its embedded lookups: %w", err)
	}
	// Subtract keeps each objective's width, but the reference lookups'
	// ancillas sit on top of the bare addition, so they come off
	// explicitly.
	blank = widenEach(blank,
		-refLookup.LowDepth.Width,
		-refLookup.LowT.Width,
		-refLookup.LowWidth.Width)

	// Schoolbook fallback: one addition per bit, doubled for the
	// double-and-add structure.
	seed := addition.Scale(float64(2 * bits))
	best := Result{
		Bits:  bits,
		Depth: Selection{Window: ReferenceWindow, Cost: seed.LowDepth},
		T:     Selection{Window: ReferenceWindow, Cost: seed.LowT},
		Width: Selection{Window: ReferenceWindow, Cost: seed.LowWidth},
	}

	for w := 0; w < bits/2; w++ {
		numWindows := bits / (w + 1)
		remainder := max(bits-numWindows*(w+1), 0)

		mainLookup := LookupCost(bits, w).Scale(lookupsPerAddition)
		total := blank.Add(mainLookup).Scale(float64(2 * numWindows))

		if remainder > 0 {
			remLookup := LookupCost(bits, remainder).Scale(lookupsPerAddition)
			total = total.Add(blank.Add(remLookup).Scale(2))
			// Both window tables can be live at once; charge the wider
			// of the two, not their sum.
			total = widenEach(total,
				max(remLookup.LowDepth.Width, mainLookup.LowDepth.Width),
				max(remLookup.LowT.Width, mainLookup.LowT.Width),
				max(remLookup.LowWidth.Width, mainLookup.LowWidth.Width))
		} else {
			total = widenEach(total,
				mainLookup.LowDepth.Width,
				mainLookup.LowT.Width,
				mainLookup.LowWidth.Width)
		}

		// Strict inequality keeps the smallest winning window on ties.
		if total.LowT.TCount < best.T.Cost.TCount {
			best.T = Selection{Window: w, Cost: total.LowT}
		}
		if total.LowWidth.TCount < best.Width.Cost.TCount {
			best.Width = Selection{Window: w, Cost: total.LowWidth}
		}
		if total.LowDepth.FullDepth < best.Depth.Cost.FullDepth {
			best.Depth = Selection{Window: w, Cost: total.LowDepth}
		}
	}
	return best, nil
}

// widenEach raises each objective's width by its matching delta, leaving
// every other counter untouched.
func widenEach(p cost.Profile, lowDepth, lowT, lowWidth float64) cost.Profile {
	return cost.Profile{
		LowDepth: p.LowDepth.AddWidth(lowDepth),
		LowT:     p.LowT.AddWidth(lowT),
		LowWidth: p.LowWidth.AddWidth(lowWidth),
	}
}

// Summary renders the three selections for terminal output.
func (r Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "n=%d\n", r.Bits)
	fmt.Fprintf(&b, "Depth-optimal (window %d):\n%s\n", r.Depth.Window, indent(r.Depth.Cost.String()))
	fmt.Fprintf(&b, "T-optimal (window %d):\n%s\n", r.T.Window, indent(r.T.Cost.String()))
	fmt.Fprintf(&b, "Width-optimal (window %d):\n%s", r.Width.Window, indent(r.Width.Cost.String()))
	return b.String()
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
