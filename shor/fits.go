package shor

// The tables below transcribe the regression fits extrapolated from Q#
// resource estimates of the windowed elliptic curve point addition
// circuits. They are measured data, not derivations: the coefficients
// must not be altered or re-fitted here, or the produced estimates stop
// matching the published tables.

// FitsVersion tags the regression release the coefficient tables carry.
const FitsVersion = "qsharp-estimates-2020-06"

// lookupTerm evaluates one counter of the table-lookup cost as
//
//	(perEntry + perEntryBit*n)*2^w + perWindow*w + base + perBit*n
//
// for operand bit-width n and window size w. Each fitted counter uses a
// subset of the terms; the rest stay zero.
type lookupTerm struct {
	perEntry    float64 // scales with table size 2^w
	perEntryBit float64 // scales with n*2^w
	perWindow   float64 // scales with w
	perBit      float64 // scales with n
	base        float64
}

func (t lookupTerm) at(bits, window, entries float64) float64 {
	return (t.perEntry+t.perEntryBit*bits)*entries + t.perWindow*window + t.base + t.perBit*bits
}

type lookupFit struct {
	width        lookupTerm
	tDepth       lookupTerm
	fullDepth    lookupTerm
	measurements lookupTerm
	tCount       lookupTerm
	singleQubit  lookupTerm
	cnot         lookupTerm
}

var lookupLowT = lookupFit{
	width:        lookupTerm{perWindow: 2.678, base: 19.81, perBit: 2.01},
	tDepth:       lookupTerm{perEntry: 0.50733, base: 23.0},
	fullDepth:    lookupTerm{perEntry: 17.04, base: 101.04},
	measurements: lookupTerm{perEntry: 1.503, base: 4.071, perBit: 2.0},
	tCount:       lookupTerm{perEntry: 4.0, base: 24.0},
	singleQubit:  lookupTerm{perEntry: 7.74, base: 10.68, perBit: 2.0},
	cnot:         lookupTerm{perEntry: 115.13, base: 117.76},
}

var lookupLowWidth = lookupFit{
	width:        lookupTerm{perWindow: 2.657, base: 21.623, perBit: 2.0},
	tDepth:       lookupTerm{perEntry: 0.50733, base: 23.0},
	fullDepth:    lookupTerm{perEntry: 16.96, base: 97.98},
	measurements: lookupTerm{perEntry: 1.516, base: 2.288, perBit: 2.0},
	tCount:       lookupTerm{perEntry: 4.0, base: 24.0},
	singleQubit:  lookupTerm{perEntry: 7.793, base: 5.75, perBit: 2.0},
	cnot:         lookupTerm{perEntry: 110.73, perEntryBit: 0.016, base: 136.793},
}

var lookupLowDepth = lookupFit{
	width:        lookupTerm{perWindow: 2.657, base: 21.623, perBit: 2.0},
	tDepth:       lookupTerm{perEntry: 0.50733, base: 23.0},
	fullDepth:    lookupTerm{perEntry: 16.96, base: 97.63},
	measurements: lookupTerm{perEntry: 1.516, base: 2.185, perBit: 2.0},
	tCount:       lookupTerm{perEntry: 4.0, base: 24.0},
	singleQubit:  lookupTerm{perEntry: 7.793, base: 5.218, perBit: 2.0},
	cnot:         lookupTerm{perEntry: 110.74, perEntryBit: 0.016, base: 134.52},
}

// additionTerm evaluates one counter of the point-addition cost as
//
//	perN2*n^2 + perN2Lg*n^2*lg(n) + perNLg*n*lg(n) + perBit*n + perLgFloor*floor(lg(n)) + base
//
// with lg the base-2 logarithm. As above, each fitted counter uses a
// subset of the terms.
type additionTerm struct {
	perN2      float64
	perN2Lg    float64
	perNLg     float64
	perBit     float64
	perLgFloor float64
	base       float64
}

func (t additionTerm) at(n2, n2lg, nlg, bits, lgFloor float64) float64 {
	return t.perN2*n2 + t.perN2Lg*n2lg + t.perNLg*nlg + t.perBit*bits + t.perLgFloor*lgFloor + t.base
}

type additionFit struct {
	width        additionTerm
	tDepth       additionTerm
	fullDepth    additionTerm
	measurements additionTerm
	tCount       additionTerm
	singleQubit  additionTerm
	cnot         additionTerm
}

var additionLowT = additionFit{
	width:        additionTerm{perBit: 10.0, perLgFloor: 1.5, base: 18.9},
	tDepth:       additionTerm{perN2: 431.6, base: 17572},
	fullDepth:    additionTerm{perN2: 1562, base: 120830},
	measurements: additionTerm{perN2: 85, base: 19465},
	tCount:       additionTerm{perN2: 1182, base: 92166},
	singleQubit:  additionTerm{perN2: 648, base: 101890},
	cnot:         additionTerm{perN2: 2391, base: 473340},
}

var additionLowWidth = additionFit{
	width:        additionTerm{perBit: 7.99, perLgFloor: 3.81, base: 17.1},
	tDepth:       additionTerm{perN2Lg: 144.5, base: 626302},
	fullDepth:    additionTerm{perN2Lg: 464.6, base: 2074976},
	measurements: additionTerm{perN2Lg: 753.7, base: -21095},
	tCount:       additionTerm{perN2Lg: 503.4, base: 1318387},
	singleQubit:  additionTerm{perN2Lg: 167.7, base: 544865},
	cnot:         additionTerm{perN2Lg: 751.2, base: 2296571},
}

var additionLowDepth = additionFit{
	width:        additionTerm{perBit: 11.0, base: 28.6},
	tDepth:       additionTerm{perNLg: 226.1, base: 14469},
	fullDepth:    additionTerm{perNLg: 1485, base: 52413},
	measurements: additionTerm{perN2: 202.5, base: -14509},
	tCount:       additionTerm{perN2: 2745, base: -85878},
	singleQubit:  additionTerm{perN2: 1462, base: -35830},
	cnot:         additionTerm{perN2: 6481, base: 44882},
}
