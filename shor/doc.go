// Package shor estimates the quantum resources needed to run Shor's
// algorithm against elliptic curve discrete logarithms. It combines
// regression-fitted costs for the two dominant sub-circuits (windowed
// modular point addition and table lookup) into whole-algorithm costs,
// then searches the lookup window size for the cheapest schedule under
// three separate objectives: minimal depth, minimal T count and minimal
// width.
//
// Everything here is closed-form arithmetic over the fitted coefficient
// tables in fits.go; no circuit is ever built or simulated. Fixed-modulus
// curves replace the generic addition model with externally supplied Q#
// estimates through the AdditionSource interface.
package shor
