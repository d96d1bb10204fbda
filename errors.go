package propfilter

import (
	"errors"
	"fmt"
)

var (
	// ErrNilConfig is returned by New and NewIndex when no configuration is
	// given. BuildPredicate treats a nil config as "filtering disabled"
	// instead and returns a nil predicate.
	ErrNilConfig = errors.New("propfilter: nil config")

	// ErrUnsupportedMatchType is the sentinel wrapped by UnsupportedMatchTypeError.
	ErrUnsupportedMatchType = errors.New("propfilter: unsupported match type")

	// ErrUnsupportedOperator is the sentinel wrapped by UnsupportedOperatorError.
	ErrUnsupportedOperator = errors.New("propfilter: unsupported operator")
)

// UnsupportedMatchTypeError indicates an operator descriptor whose match
// strategy is neither a recognized date mode nor a usable function. It
// reports a configuration defect, not a data problem, and propagates out of
// predicate evaluation wrapped with the offending property key.
//
// errors.Is(err, ErrUnsupportedMatchType) returns true for this error.
type UnsupportedMatchTypeError struct {
	Operator Operator
	Kind     MatchKind
}

func (e *UnsupportedMatchTypeError) Error() string {
	return fmt.Sprintf("unsupported match type %q for operator %q", e.Kind, e.Operator)
}

func (e *UnsupportedMatchTypeError) Unwrap() error { return ErrUnsupportedMatchType }

// UnsupportedOperatorError indicates the built-in comparison path received
// an operator symbol outside the supported set. The compiler only registers
// declared symbols, so this is reachable only through a configuration that
// declares a foreign symbol.
//
// errors.Is(err, ErrUnsupportedOperator) returns true for this error.
type UnsupportedOperatorError struct {
	Operator Operator
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q", e.Operator)
}

func (e *UnsupportedOperatorError) Unwrap() error { return ErrUnsupportedOperator }
