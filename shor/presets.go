package shor

// NISTSizes returns the standard curve sizes with published
// fixed-modulus estimate tables: P-256, P-384 and P-521.
func NISTSizes() []int {
	return []int{256, 384, 521}
}

// DefaultSweepRange returns the inclusive bit-width bounds of the
// published generic-curve sweep.
func DefaultSweepRange() (lo, hi int) {
	return 10, 521
}
