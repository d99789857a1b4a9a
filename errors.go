package nswitch

import (
	"fmt"

	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Error kinds that can be tested for with errors.Is.  Every error
// returned by Parse because of the command line itself also satisfies
// IsSyntaxError.
var (
	ErrUnknownSwitch    = errors.New("unknown switch")
	ErrMissingArgument  = errors.New("switch requires an argument")
	ErrInvalidValue     = errors.New("invalid value for switch")
	ErrMissingRequired  = errors.New("required switch is missing")
	ErrSwitchGroupTaken = errors.New("only one value may be selected for a switch group")

	// ErrInvalidOptionValue is the cause reported by option kinds when
	// Set rejects a raw value.
	ErrInvalidOptionValue = errors.New("invalid option value")
)

type syntaxError struct {
	cause error
}

// SyntaxError annotates an error as being caused by the command line
// that was parsed: an unknown switch, a missing argument, a bad value.
// When you have a syntax error, you should display the usage text.
func SyntaxError(err error) error {
	if err == nil {
		return nil
	}
	return syntaxError{
		cause: errors.WithStack(err),
	}
}

func (s syntaxError) Error() string { return s.cause.Error() }
func (s syntaxError) Unwrap() error { return s.cause }
func (s syntaxError) Cause() error  { return s.cause }
func (s syntaxError) Is(err error) bool {
	_, ok := err.(syntaxError)
	return ok
}

func IsSyntaxError(err error) bool {
	var s syntaxError
	return errors.Is(err, s)
}

type declarationError struct {
	cause error
}

// DeclarationError annotates an error as being a mistake in the
// option declarations rather than in the input.  Declaration errors
// never depend on the tokens being parsed.  The cause is also marked
// with commonerrors.ConfigurationError.
func DeclarationError(err error) error {
	if err == nil {
		return nil
	}
	return declarationError{
		cause: commonerrors.ConfigurationError(errors.WithStack(err)),
	}
}

func (d declarationError) Error() string { return d.cause.Error() }
func (d declarationError) Unwrap() error { return d.cause }
func (d declarationError) Cause() error  { return d.cause }
func (d declarationError) Is(err error) bool {
	_, ok := err.(declarationError)
	return ok
}

func IsDeclarationError(err error) bool {
	var d declarationError
	return errors.Is(err, d)
}

// SwitchError describes a problem with one switch on the command line.
type SwitchError struct {
	Switch string // name of the option, or the unknown token
	Value  string // the rejected value, for ErrInvalidValue
	Kind   error  // one of the Err* kinds
	Cause  error  // underlying rejection, if any
}

func (e *SwitchError) Error() string {
	var msg string
	switch e.Kind {
	case ErrUnknownSwitch:
		msg = fmt.Sprintf("unknown switch `%s'", e.Switch)
	case ErrMissingArgument:
		msg = fmt.Sprintf("switch `%s' requires an argument", e.Switch)
	case ErrInvalidValue:
		msg = fmt.Sprintf("the value %q is invalid for switch `%s'", e.Value, e.Switch)
	case ErrMissingRequired:
		msg = fmt.Sprintf("required switch `%s' is missing", e.Switch)
	default:
		msg = fmt.Sprintf("%s: `%s'", e.Kind, e.Switch)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *SwitchError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func switchError(kind error, name string) error {
	return SyntaxError(&SwitchError{
		Switch: name,
		Kind:   kind,
	})
}

type optionValueError struct {
	msg   string
	cause error
}

// InvalidOptionValue is what option kinds return from Set when they
// reject a raw value.  The result matches ErrInvalidOptionValue.
func InvalidOptionValue(cause error, format string, args ...interface{}) error {
	return errors.WithStack(optionValueError{
		msg:   fmt.Sprintf(format, args...),
		cause: cause,
	})
}

func (o optionValueError) Error() string { return o.msg }
func (o optionValueError) Unwrap() error { return o.cause }
func (o optionValueError) Is(err error) bool {
	return err == ErrInvalidOptionValue
}
