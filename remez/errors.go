package remez

import (
	"errors"
	"fmt"
)

// Reason tags the mathematical precondition whose failure
// aborted a fitting run.
type Reason int

const (
	// ReasonSingularSystem: the linear system is singular or too ill-conditioned to be trusted.
	ReasonSingularSystem = Reason(iota + 1)
	// ReasonComplexRoots: the critical-point polynomial has complex roots.
	ReasonComplexRoots
	// ReasonRootCount: the critical-point polynomial does not have one root per interior sample.
	ReasonRootCount
	// ReasonRootsOutOfInterval: a critical point lies on or outside the interval bounds.
	ReasonRootsOutOfInterval
	// ReasonRootFinding: the companion matrix eigenvalue decomposition did not converge.
	ReasonRootFinding
	// ReasonNotAscending: the relocated sample set is not strictly ascending.
	ReasonNotAscending
	// ReasonNonFinite: the approximation error evaluated to NaN or infinity.
	ReasonNonFinite
)

func (r Reason) String() string {
	switch r {
	case ReasonSingularSystem:
		return "singular system"
	case ReasonComplexRoots:
		return "complex roots"
	case ReasonRootCount:
		return "wrong root count"
	case ReasonRootsOutOfInterval:
		return "roots out of interval"
	case ReasonRootFinding:
		return "root finding failed"
	case ReasonNotAscending:
		return "extrema not ascending"
	case ReasonNonFinite:
		return "non-finite error"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ErrDomain matches any *DomainError through errors.Is.
var ErrDomain = errors.New("domain error")

// DomainError is returned when a fitting run breaks one of the
// mathematical preconditions of the exchange algorithm. It is fatal
// for the run: no coefficients are produced and the run is not retried.
type DomainError struct {
	Reason Reason
	Detail string
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrDomain, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrDomain, e.Reason, e.Detail)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func newDomainError(reason Reason, format string, args ...interface{}) *DomainError {
	return &DomainError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Precondition errors. They are returned before any linear solve
// is attempted and denote invalid requests rather than numerical failures.
var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrTooFewSamples   = errors.New("too few samples")
	ErrShapeMismatch   = errors.New("shape mismatch")
)
