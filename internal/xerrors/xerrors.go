// Package xerrors implements the discriminated error taxonomy shared across
// the analysis pipeline: spectrum loading, preprocessing, template loading,
// and scoring wrap their failures in *Error instead of raw fmt.Errorf
// chains, so cmd/sage can map failures to exit codes without string
// matching. Clustering does not return errors.
package xerrors

import (
	"errors"
	"fmt"
)

// Kind discriminates the category of failure.
type Kind int

const (
	// Internal marks a bug; always includes context.
	Internal Kind = iota
	// BadInput marks an unparseable or malformed input file.
	BadInput
	// EmptySpectrum marks an input with no usable samples after trimming.
	EmptySpectrum
	// BadContinuum marks a degenerate continuum fit; recovered internally,
	// never returned from the top-level API, surfaced only in a Trace.
	BadContinuum
	// NoEligibleTemplates marks filters that left the library empty.
	NoEligibleTemplates
	// Cancelled marks a cancellation-token trip.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case BadInput:
		return "bad_input"
	case EmptySpectrum:
		return "empty_spectrum"
	case BadContinuum:
		return "bad_continuum"
	case NoEligibleTemplates:
		return "no_eligible_templates"
	case Cancelled:
		return "cancelled"
	default:
		return "internal"
	}
}

// Error is the wrapped error type returned across package boundaries.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error for the given kind and operation.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err carries the given Kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind of err, defaulting to Internal if err does not
// wrap an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
