package symnorm

import (
	"github.com/cockroachdb/errors"
)

// ErrorKind classifies the errors which may occur during normalization. The set
// of kinds is closed; every error produced by this module's arithmetic and
// normalization code maps to exactly one of them.
type ErrorKind int8

// Error kinds.
const (
	Unclassified                  ErrorKind = iota // not produced by symnorm
	IncompatibleFiniteFields                       // mixing elements of different fields
	InvalidDomainMix                               // mixing a field element with a non-field value
	DivisionByZero                                 // zero raised to a negative power, inverse of zero
	ExponentTooLarge                               // exponent magnitude above MaxExponent
	UnsupportedPowerConfiguration                  // no rule for (base, exponent) domains
	LogicError                                     // invariant violation, unreachable in well-formed trees
)

func (k ErrorKind) String() string {
	switch k {
	case IncompatibleFiniteFields:
		return "IncompatibleFiniteFields"
	case InvalidDomainMix:
		return "InvalidDomainMix"
	case DivisionByZero:
		return "DivisionByZero"
	case ExponentTooLarge:
		return "ExponentTooLarge"
	case UnsupportedPowerConfiguration:
		return "UnsupportedPowerConfiguration"
	case LogicError:
		return "LogicError"
	}
	return "Unclassified"
}

// MaxExponent is the largest exponent magnitude accepted by coefficient powers.
const MaxExponent = 1<<32 - 1

// Sentinel errors, one per error kind. Use errors.Is to test for a kind, or KindOf.
var (
	ErrIncompatibleFiniteFields      = errors.New("incompatible finite fields")
	ErrInvalidDomainMix              = errors.New("invalid domain mix")
	ErrDivisionByZero                = errors.New("division by zero")
	ErrExponentTooLarge              = errors.New("exponent too large")
	ErrUnsupportedPowerConfiguration = errors.New("unsupported power configuration")
	ErrLogic                         = errors.New("logic error")
)

var sentinels = [...]struct {
	kind ErrorKind
	err  error
}{
	{IncompatibleFiniteFields, ErrIncompatibleFiniteFields},
	{InvalidDomainMix, ErrInvalidDomainMix},
	{DivisionByZero, ErrDivisionByZero},
	{ExponentTooLarge, ErrExponentTooLarge},
	{UnsupportedPowerConfiguration, ErrUnsupportedPowerConfiguration},
	{LogicError, ErrLogic},
}

// Errorf creates an error of kind k. The formatted message should name the
// operands involved.
//
// Logic errors are created as assertion failures, which carry a stack trace.
func Errorf(k ErrorKind, format string, args ...interface{}) error {
	if k == LogicError {
		return errors.Mark(errors.AssertionFailedf(format, args...), ErrLogic)
	}
	for _, s := range sentinels {
		if s.kind == k {
			return errors.Wrapf(s.err, format, args...)
		}
	}
	return errors.Newf(format, args...)
}

// KindOf returns the error kind of err. Errors not created by this module
// (including nil) are Unclassified.
func KindOf(err error) ErrorKind {
	if err == nil {
		return Unclassified
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	return Unclassified
}

// Raise panics with an error of kind k. It is used where an error cannot be
// returned, e.g. from within comparison callbacks during sorting. Public entry
// points catch these with Recover.
func Raise(k ErrorKind, format string, args ...interface{}) {
	panic(Errorf(k, format, args...))
}

// Recover is meant to be deferred by public entry points. It converts a panic
// carrying a classified error into an error return and re-panics on anything else.
//
//     func Entry(…) (result X, err error) {
//         defer symnorm.Recover(&err)
//         …
//     }
//
func Recover(errp *error) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok && KindOf(err) != Unclassified {
			*errp = err
			return
		}
		panic(r)
	}
}
