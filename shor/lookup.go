package shor

import (
	"math"

	"github.com/microsoft/QuantumEllipticCurves/cost"
)

// LookupCost returns the cost of one quantum table lookup among 2^window
// entries, each entry an elliptic curve point with bits-bit coordinates.
// Pure arithmetic on the fitted coefficient tables: identical inputs
// always produce identical output.
func LookupCost(bits, window int) cost.Profile {
	n := float64(bits)
	w := float64(window)
	entries := math.Exp2(w)
	return cost.Profile{
		LowDepth: lookupCounts(lookupLowDepth, n, w, entries),
		LowT:     lookupCounts(lookupLowT, n, w, entries),
		LowWidth: lookupCounts(lookupLowWidth, n, w, entries),
	}
}

func lookupCounts(fit lookupFit, n, w, entries float64) cost.Counts {
	return cost.Counts{
		Width:        fit.width.at(n, w, entries),
		TDepth:       fit.tDepth.at(n, w, entries),
		FullDepth:    fit.fullDepth.at(n, w, entries),
		Measurements: fit.measurements.at(n, w, entries),
		TCount:       fit.tCount.at(n, w, entries),
		SingleQubit:  fit.singleQubit.at(n, w, entries),
		CNOT:         fit.cnot.at(n, w, entries),
	}
}
