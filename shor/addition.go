package shor

import (
	"math"

	"github.com/microsoft/QuantumEllipticCurves/cost"
)

// AdditionSource supplies the per-bit-width cost of one windowed modular
// point addition at the reference window size. GenericCurves computes it
// from the fitted generic-curve model; fixed-modulus curves read Q#
// estimate tables instead (package qsharp). The window optimizer is
// indifferent to which source produced the profile.
type AdditionSource interface {
	PointAddition(bits int) (cost.Profile, error)
}

// PointAdditionCost returns the cost of one full windowed modular point
// addition on a generic bits-bit curve, with lookups at the reference
// window size already baked in. Pure arithmetic on the fitted
// coefficient tables.
func PointAdditionCost(bits int) cost.Profile {
	n := float64(bits)
	n2 := n * n
	lg := math.Log(n) / math.Log(2.0)
	n2lg := n2 * lg
	nlg := n * lg
	lgFloor := math.Floor(lg)
	return cost.Profile{
		LowDepth: additionCounts(additionLowDepth, n2, n2lg, nlg, n, lgFloor),
		LowT:     additionCounts(additionLowT, n2, n2lg, nlg, n, lgFloor),
		LowWidth: additionCounts(additionLowWidth, n2, n2lg, nlg, n, lgFloor),
	}
}

func additionCounts(fit additionFit, n2, n2lg, nlg, n, lgFloor float64) cost.Counts {
	return cost.Counts{
		Width:        fit.width.at(n2, n2lg, nlg, n, lgFloor),
		TDepth:       fit.tDepth.at(n2, n2lg, nlg, n, lgFloor),
		FullDepth:    fit.fullDepth.at(n2, n2lg, nlg, n, lgFloor),
		Measurements: fit.measurements.at(n2, n2lg, nlg, n, lgFloor),
		TCount:       fit.tCount.at(n2, n2lg, nlg, n, lgFloor),
		SingleQubit:  fit.singleQubit.at(n2, n2lg, nlg, n, lgFloor),
		CNOT:         fit.cnot.at(n2, n2lg, nlg, n, lgFloor),
	}
}

// GenericCurves is the AdditionSource backed by the fitted
// generic-curve model.
type GenericCurves struct{}

func (GenericCurves) PointAddition(bits int) (cost.Profile, error) {
	if bits < 2 {
		return cost.Profile{}, &BitWidthError{Bits: bits}
	}
	return PointAdditionCost(bits), nil
}
