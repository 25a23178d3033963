package surface

import (
	"errors"
	"fmt"
)

var (
	// ErrSurfaceUnavailable means no drawing surface or GPU context could be
	// obtained. The effect stays off; the rest of the program carries on.
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

	// ErrCompileFailure means the shader didn't build.
	ErrCompileFailure = errors.New("shader compile failed")
)

// CompileError carries the compiler's diagnostic for a failed shader build.
type CompileError struct {
	// Stage is what was being done: "generate", "compile" or "load".
	Stage  string
	Recipe string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrCompileFailure, e.Recipe, e.Stage, e.Err)
}

func (e *CompileError) Unwrap() []error {
	return []error{ErrCompileFailure, e.Err}
}
