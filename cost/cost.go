// Package cost implements the resource-count algebra used by the Shor
// estimator: immutable vectors of circuit resource counters and the
// three-objective bundles that carry depth-, T- and width-optimized
// renderings of the same circuit through every composition step.
package cost

import (
	"fmt"
	"strings"
)

// Counts records the resources of one quantum circuit under one
// optimization objective. All fields are model values: real-valued,
// accumulated as counts, physically integral but kept as float64
// because they come from regression fits.
type Counts struct {
	// Width is the peak number of qubits alive at any point. It does
	// not accumulate under sequential composition: two fragments run
	// one after another reuse qubits, so composition takes the max.
	Width float64

	// TDepth is the number of T-gate layers on the critical path.
	TDepth float64

	// FullDepth counts all gate layers, not just T layers.
	FullDepth float64

	// Measurements is the number of mid-circuit and final measurements.
	Measurements float64

	// TCount is the total number of T gates.
	TCount float64

	// SingleQubit is the number of single-qubit Clifford gates.
	SingleQubit float64

	// CNOT is the number of CNOT gates.
	CNOT float64
}

// Add composes two circuit fragments run sequentially. Every counter
// accumulates except Width, which takes the maximum of the operands:
// only one fragment is live at a time, so qubits are reused.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Width:        max(c.Width, o.Width),
		TDepth:       c.TDepth + o.TDepth,
		FullDepth:    c.FullDepth + o.FullDepth,
		Measurements: c.Measurements + o.Measurements,
		TCount:       c.TCount + o.TCount,
		SingleQubit:  c.SingleQubit + o.SingleQubit,
		CNOT:         c.CNOT + o.CNOT,
	}
}

// Subtract removes a sub-block's counters from c. Width is kept from c:
// the operation is only meaningful when the subtrahend's qubits are a
// subset of the minuend's. A negative result in any other field means
// that precondition was violated and is returned as a
// *NegativeResidualError rather than silently propagated.
func (c Counts) Subtract(o Counts) (Counts, error) {
	r := Counts{
		Width:        c.Width,
		TDepth:       c.TDepth - o.TDepth,
		FullDepth:    c.FullDepth - o.FullDepth,
		Measurements: c.Measurements - o.Measurements,
		TCount:       c.TCount - o.TCount,
		SingleQubit:  c.SingleQubit - o.SingleQubit,
		CNOT:         c.CNOT - o.CNOT,
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"T-depth", r.TDepth},
		{"full depth", r.FullDepth},
		{"measurements", r.Measurements},
		{"T count", r.TCount},
		{"single-qubit count", r.SingleQubit},
		{"CNOT count", r.CNOT},
	} {
		if f.value < 0 {
			return Counts{}, &NegativeResidualError{Field: f.name, Value: f.value}
		}
	}
	return r, nil
}

// Scale repeats a fragment k times sequentially. Width is unchanged:
// repetitions are not concurrent, so only one instance is live at a
// time. k must be non-negative.
func (c Counts) Scale(k float64) Counts {
	return Counts{
		Width:        c.Width,
		TDepth:       c.TDepth * k,
		FullDepth:    c.FullDepth * k,
		Measurements: c.Measurements * k,
		TCount:       c.TCount * k,
		SingleQubit:  c.SingleQubit * k,
		CNOT:         c.CNOT * k,
	}
}

// AddWidth returns c with Width shifted by delta and every other field
// unchanged. Add, Subtract and Scale deliberately never accumulate
// width; the window optimizer uses AddWidth for the few places where
// lookup ancillas genuinely are additive.
func (c Counts) AddWidth(delta float64) Counts {
	c.Width += delta
	return c
}

// String renders the counters one per line for terminal output.
func (c Counts) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CNOT: %v\n", c.CNOT)
	fmt.Fprintf(&b, "Single-qubit: %v\n", c.SingleQubit)
	fmt.Fprintf(&b, "Measurements: %v\n", c.Measurements)
	fmt.Fprintf(&b, "T gates: %v\n", c.TCount)
	fmt.Fprintf(&b, "T-depth: %v\n", c.TDepth)
	fmt.Fprintf(&b, "Full depth: %v\n", c.FullDepth)
	fmt.Fprintf(&b, "Width: %v", c.Width)
	return b.String()
}

// NegativeResidualError reports a Subtract whose subtrahend was not a
// sub-block of the minuend.
type NegativeResidualError struct {
	Field string
	Value float64
}

func (e *NegativeResidualError) Error() string {
	return fmt.Sprintf("cost: subtract produced negative %s (%v)", e.Field, e.Value)
}
