package ast

import "math"

// DhallDouble wraps float64 so that NaN compares equal to itself for
// definitional equality, per spec: "wrapped to make NaN equal to itself...
// DhallDouble uses bitwise equality." Ordinary IEEE-754 == would make NaN
// unequal to itself, which breaks the reflexivity judgmental equality needs.
type DhallDouble struct {
	Value float64
}

// Equal compares the two doubles bitwise rather than with Go's ==, so two
// NaNs with identical bit patterns compare equal.
func (d DhallDouble) Equal(other DhallDouble) bool {
	return math.Float64bits(d.Value) == math.Float64bits(other.Value)
}
