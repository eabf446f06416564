package cost

import "fmt"

// Profile bundles three independently optimized cost vectors for the
// same circuit: one produced by a depth-optimized compilation, one by a
// T-count-optimized compilation, one by a width-optimized compilation.
// The three vectors need not agree on any field and must never be mixed
// across bundles; all algebra goes through the Profile combinators,
// which apply the same Counts operation to all three in lockstep.
type Profile struct {
	LowDepth Counts
	LowT     Counts
	LowWidth Counts
}

// Add composes two profiles objective by objective.
func (p Profile) Add(o Profile) Profile {
	return Profile{
		LowDepth: p.LowDepth.Add(o.LowDepth),
		LowT:     p.LowT.Add(o.LowT),
		LowWidth: p.LowWidth.Add(o.LowWidth),
	}
}

// Subtract decomposes objective by objective. The first objective whose
// subtraction violates the sub-block precondition aborts the whole
// operation.
func (p Profile) Subtract(o Profile) (Profile, error) {
	lowDepth, err := p.LowDepth.Subtract(o.LowDepth)
	if err != nil {
		return Profile{}, fmt.Errorf("low-depth objective: %w", err)
	}
	lowT, err := p.LowT.Subtract(o.LowT)
	if err != nil {
		return Profile{}, fmt.Errorf("low-T objective: %w", err)
	}
	lowWidth, err := p.LowWidth.Subtract(o.LowWidth)
	if err != nil {
		return Profile{}, fmt.Errorf("low-width objective: %w", err)
	}
	return Profile{LowDepth: lowDepth, LowT: lowT, LowWidth: lowWidth}, nil
}

// Scale repeats all three objectives k times sequentially.
func (p Profile) Scale(k float64) Profile {
	return Profile{
		LowDepth: p.LowDepth.Scale(k),
		LowT:     p.LowT.Scale(k),
		LowWidth: p.LowWidth.Scale(k),
	}
}
