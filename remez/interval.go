package remez

import (
	"fmt"
	"math"
)

// Interval is the closed domain [A, B] of an approximation.
type Interval struct {
	A, B float64
}

// Validate checks that the interval has finite bounds and a non-zero width.
func (in Interval) Validate() error {
	if math.IsNaN(in.A) || math.IsNaN(in.B) || math.IsInf(in.A, 0) || math.IsInf(in.B, 0) {
		return fmt.Errorf("%w: [%v, %v] has non-finite bounds", ErrInvalidInterval, in.A, in.B)
	}
	if !(in.A < in.B) {
		return fmt.Errorf("%w: [%v, %v] has no width", ErrInvalidInterval, in.A, in.B)
	}
	return nil
}

// ContainsOpen returns true if A < x < B.
func (in Interval) ContainsOpen(x float64) bool {
	return in.A < x && x < in.B
}

func (in Interval) String() string {
	return fmt.Sprintf("[%v, %v]", in.A, in.B)
}
