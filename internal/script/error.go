// Package script models runtime failures raised by hosted, dynamically
// compiled script code, in the form the inspection layer consumes.
package script

import (
	"fmt"

	"vista/internal/inspect"
)

// ErrorCode identifies the type of script runtime error.
type ErrorCode int

// Stable error codes - do not change values.
const (
	ErrParse           ErrorCode = 2001 // SCR2001: source failed to parse
	ErrTypeMismatch    ErrorCode = 2002 // SCR2002: operand type mismatch
	ErrUndefinedName   ErrorCode = 2003 // SCR2003: unresolved identifier
	ErrIndexOutOfRange ErrorCode = 2004 // SCR2004: index out of range
	ErrDivisionByZero  ErrorCode = 2005 // SCR2005: division by zero
	ErrHostFault       ErrorCode = 2999 // SCR2999: failure inside the host itself
)

// String returns the code as "SCR2001" format.
func (c ErrorCode) String() string {
	return fmt.Sprintf("SCR%d", c)
}

// Error is a runtime failure raised while evaluating hosted script code. It
// carries the captured call stack, outermost frame first, with frames on the
// script side of the boundary marked.
type Error struct {
	Code   ErrorCode
	Msg    string
	Frames []inspect.StackFrame
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// StackFrames exposes the captured stack to the inspection layer.
func (e *Error) StackFrames() []inspect.StackFrame {
	return e.Frames
}

// StackTrace renders the captured stack, one frame per line, keeping only the
// frames down through the user's own deepest call.
func (e *Error) StackTrace() string {
	return inspect.FormatStack(e.Frames)
}

// Members exposes the displayable members of the error, in declaration order.
func (e *Error) Members() []inspect.Member {
	return []inspect.Member{
		{Name: "Code", Get: func() (any, error) { return e.Code, nil }},
		{Name: "Message", Get: func() (any, error) { return e.Msg, nil }},
		{Name: "StackTrace", Get: func() (any, error) { return e.StackTrace(), nil }},
	}
}

// Builder constructs Errors carrying the evaluation stack current at the time
// of the failure. capture is called once per constructed error.
type Builder struct {
	capture func() []inspect.StackFrame
}

// NewBuilder returns a Builder that snapshots stacks through capture. A nil
// capture produces errors without frames.
func NewBuilder(capture func() []inspect.StackFrame) *Builder {
	return &Builder{capture: capture}
}

// New constructs an Error with the given code and message.
func (b *Builder) New(code ErrorCode, msg string) *Error {
	e := &Error{Code: code, Msg: msg}
	if b.capture != nil {
		e.Frames = b.capture()
	}
	return e
}

// TypeMismatch reports an operand of the wrong type.
func (b *Builder) TypeMismatch(expected, got string) *Error {
	return b.New(ErrTypeMismatch, fmt.Sprintf("expected %s, got %s", expected, got))
}

// UndefinedName reports an unresolved identifier.
func (b *Builder) UndefinedName(name string) *Error {
	return b.New(ErrUndefinedName, fmt.Sprintf("name %q is not defined", name))
}

// IndexOutOfRange reports an out-of-bounds access.
func (b *Builder) IndexOutOfRange(index, length int) *Error {
	return b.New(ErrIndexOutOfRange, fmt.Sprintf("index %d out of range for length %d", index, length))
}

// DivisionByZero reports a division by zero.
func (b *Builder) DivisionByZero() *Error {
	return b.New(ErrDivisionByZero, "division by zero")
}
