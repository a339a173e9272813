package region

// Operation identifies which of the three boolean set operations the band
// walker (combine) and its per-band producers (nonOverlap1, nonOverlap2,
// overlap) should perform. Xor is not a primitive Operation: it is built on
// top of Union and Subtract (see Region.Xor).
type Operation int

const (
	// OpUnion keeps everything covered by either input.
	OpUnion Operation = iota
	// OpIntersect keeps only what is covered by both inputs.
	OpIntersect
	// OpSubtract keeps what is covered by the first input and not the second.
	OpSubtract
)

// String returns a human-readable name for op, for debug printing and test
// failure messages.
func (op Operation) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpSubtract:
		return "subtract"
	default:
		return "unknown operation"
	}
}
