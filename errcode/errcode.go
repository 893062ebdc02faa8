// errcode/errcode.go
package errcode

import "errors"

// Code is a stable error identifier shared by callbacks, attach points and boards.
// It is a comparable string newtype and implements error, so it can be used both
// as a returned error and as a panic value without allocating.
type Code string

func (c Code) Error() string { return string(c) }

const (
	OK Code = "ok"

	// Unbound is the panic value raised when an empty callback is invoked.
	Unbound Code = "unbound_callback"

	InvalidParams Code = "invalid_params"
	UnknownDevice Code = "unknown_device"
	UnknownPin    Code = "unknown_pin"
	PinInUse      Code = "pin_in_use"
	Busy          Code = "busy"
	Timeout       Code = "timeout"
	Unsupported   Code = "unsupported"

	Error Code = "error" // generic fallback
)

// E keeps an operation and message alongside a Code and an optional cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, code) match an *E carrying that code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New builds an *E for op.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Wrap builds an *E for op around cause. A nil cause yields nil.
func Wrap(c Code, op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: cause}
}

// Of extracts a Code from an error chain, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Error
}
