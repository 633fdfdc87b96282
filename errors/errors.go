// This module implements errors that carry a message, an optional wrapped
// error and the stack trace captured at construction time.
//
// NOTE: This package intentionally mirrors the standard "errors" module.
package errors

import (
	"bytes"
	"fmt"
	"reflect"
	"runtime"
	"sync"
)

// Error exposes additional information about the error.
type Error interface {
	// This returns the error message without the stack trace.
	GetMessage() string

	// This returns the wrapped error.  This returns nil if this does not wrap
	// another error.
	GetInner() error

	// Implements the built-in error interface.
	Error() string

	// Returns stack frames.
	StackFrames() []StackFrame

	// Returns string representation of stack frames, one function per line
	// followed by its indented file:line location.
	GetStack() string
}

// Represents a single stack frame.
type StackFrame struct {
	PC         uintptr
	Func       *runtime.Func
	FuncName   string
	File       string
	LineNumber int
}

type baseError struct {
	msg   string
	inner error

	stack       []uintptr
	framesOnce  sync.Once
	stackFrames []StackFrame
}

// This returns the error string without stack trace information.
func GetMessage(err interface{}) string {
	switch e := err.(type) {
	case Error:
		return extractFullErrorMessage(e, false)
	case runtime.Error:
		return e.Error()
	case error:
		return e.Error()
	default:
		return "Passed a non-error to GetMessage"
	}
}

// This returns a string with all available error information, including inner
// errors that are wrapped by this errors.
func (e *baseError) Error() string {
	return extractFullErrorMessage(e, true)
}

func (e *baseError) GetMessage() string {
	return e.msg
}

func (e *baseError) GetInner() error {
	return e.inner
}

// Unwrap lets the standard errors.Is / errors.As walk the chain.
func (e *baseError) Unwrap() error {
	return e.inner
}

func (e *baseError) StackFrames() []StackFrame {
	e.framesOnce.Do(func() {
		e.stackFrames = make([]StackFrame, len(e.stack))
		for i, pc := range e.stack {
			frame := &e.stackFrames[i]
			frame.PC = pc
			frame.Func = runtime.FuncForPC(pc)
			if frame.Func != nil {
				frame.FuncName = frame.Func.Name()
				frame.File, frame.LineNumber = frame.Func.FileLine(frame.PC - 1)
			}
		}
	})
	return e.stackFrames
}

func (e *baseError) GetStack() string {
	buf := bytes.NewBuffer(make([]byte, 0, 256))
	for _, frame := range e.StackFrames() {
		_, _ = buf.WriteString(frame.FuncName)
		_, _ = buf.WriteString("\n")
		fmt.Fprintf(buf, "\t%s:%d +0x%x\n",
			frame.File, frame.LineNumber, frame.PC)
	}
	return buf.String()
}

// This returns a new error initialized with the given message and
// the current stack trace.
func New(msg string) Error {
	return newError(nil, msg)
}

// Same as New, but with fmt.Printf-style parameters.
func Newf(format string, args ...interface{}) Error {
	return newError(nil, fmt.Sprintf(format, args...))
}

// Wraps another error in a new error.
func Wrap(err error, msg string) Error {
	return newError(err, msg)
}

// Same as Wrap, but with fmt.Printf-style parameters.
func Wrapf(err error, format string, args ...interface{}) Error {
	return newError(err, fmt.Sprintf(format, args...))
}

// The stack is captured relative to the exported constructors; calling
// newError through another helper adds that helper's frame too.
func newError(err error, msg string) *baseError {
	stack := make([]uintptr, 200)
	stackLength := runtime.Callers(3, stack)
	return &baseError{
		msg:   msg,
		stack: stack[:stackLength],
		inner: err,
	}
}

// Builds the message for e by walking its inner errors. If includeStack is
// true, the stack of the deepest Error in the chain is appended.
func extractFullErrorMessage(e Error, includeStack bool) string {
	var ok bool
	var last Error
	errMsg := bytes.NewBuffer(make([]byte, 0, 1024))

	cur := e
	for {
		last = cur
		errMsg.WriteString(cur.GetMessage())

		innerErr := cur.GetInner()
		if innerErr == nil {
			break
		}
		cur, ok = innerErr.(Error)
		if !ok {
			errMsg.WriteString("\n")
			errMsg.WriteString(innerErr.Error())
			break
		}
		errMsg.WriteString("\n")
	}
	if includeStack {
		errMsg.WriteString("\nORIGINAL STACK TRACE:\n")
		errMsg.WriteString(last.GetStack())
	}
	return errMsg.String()
}

// Return a wrapped error or nil if there is none.
func unwrapError(ierr error) (nerr error) {
	if e, ok := ierr.(Error); ok {
		return e.GetInner()
	}

	// At this point, if anything goes wrong, just return nil.
	defer func() {
		if x := recover(); x != nil {
			nerr = nil
		}
	}()

	// Go system errors have a convention but paradoxically no
	// interface.  All of these panic on error.
	errV := reflect.ValueOf(ierr).Elem()
	errV = errV.FieldByName("Err")
	return errV.Interface().(error)
}

// Keep peeling away layers or context until a primitive error is revealed.
func RootError(ierr error) (nerr error) {
	nerr = ierr
	for i := 0; i < 20; i++ {
		terr := unwrapError(nerr)
		if terr == nil {
			return nerr
		}
		nerr = terr
	}
	return fmt.Errorf("too many iterations: %T", nerr)
}

// Perform a deep check, unwrapping errors as much as possible and
// comparing the string version of the error.
func IsError(err, errConst error) bool {
	if err == errConst {
		return true
	}
	// Must rely on string equivalence, otherwise a value is not equal
	// to its pointer value.
	rootErrStr := ""
	rootErr := RootError(err)
	if rootErr != nil {
		rootErrStr = rootErr.Error()
	}
	errConstStr := ""
	if errConst != nil {
		errConstStr = errConst.Error()
	}
	return rootErrStr == errConstStr
}
