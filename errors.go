// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"errors"
	"fmt"

	"github.com/gogpu/glstate/gl"
)

// Sentinel errors reported by the tracker. They are usually wrapped in a
// *ParameterError naming the offending parameter; test with errors.Is.
var (
	// ErrUnsupportedParameter is returned for keys and names that are not in
	// the descriptor table of the tracker's tier, and for composite names
	// used where only readable keys are allowed.
	ErrUnsupportedParameter = errors.New("glstate: unsupported parameter")

	// ErrCapabilityMismatch is returned when a key or value is recognized
	// but requires the extended tier.
	ErrCapabilityMismatch = errors.New("glstate: parameter requires extended tier")

	// ErrInvalidValueShape is returned when a value's type or arity does not
	// match the parameter's value domain.
	ErrInvalidValueShape = errors.New("glstate: invalid value shape")

	// ErrConflictingParameter is returned when two names in one batch set
	// the same key to different values.
	ErrConflictingParameter = errors.New("glstate: conflicting parameter values")

	// ErrScopeUnderflow is returned by PopState without a matching PushState.
	ErrScopeUnderflow = errors.New("glstate: state stack underflow")
)

// ParameterError describes a rejected parameter.
type ParameterError struct {
	Param  string // semantic name or key as given by the caller
	Err    error  // one of the sentinel errors
	Detail string // optional explanation
}

func (e *ParameterError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Param)
	}
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Param, e.Detail)
}

func (e *ParameterError) Unwrap() error { return e.Err }

func paramError(p Param, err error, format string, args ...any) *ParameterError {
	pe := &ParameterError{Param: p.String(), Err: err}
	if format != "" {
		pe.Detail = fmt.Sprintf(format, args...)
	}
	return pe
}

// DriverError reports a live write rejected by the context. It is only
// produced when error checking is enabled with WithErrorCheck.
type DriverError struct {
	Call string  // name of the live call, e.g. "BlendFuncSeparate"
	Code gl.Enum // GetError code
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("glstate: %s failed: %s", e.Call, gl.ErrorString(e.Code))
}
