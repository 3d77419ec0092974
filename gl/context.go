// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import "fmt"

// Handle is an opaque binding handle for a GPU resource (framebuffer,
// buffer, program, vertex array). NoHandle is the null binding that
// selects the default object.
type Handle uint32

// NoHandle is the null handle.
const NoHandle Handle = 0

// Valid reports whether h refers to an object other than the default.
func (h Handle) Valid() bool { return h != NoHandle }

func (h Handle) String() string {
	if h == NoHandle {
		return "null"
	}
	return fmt.Sprintf("Handle(%d)", uint32(h))
}

// Object is implemented by resource wrappers that expose their binding
// handle. State parameters accept an Object wherever a Handle is expected.
type Object interface {
	Handle() Handle
}

// Context is the live graphics context: the subset of the GLES/WebGL entry
// points that read and write the pipeline state tracked by glstate.
//
// Implementations follow GL error semantics: an invalid call records an
// error retrievable with GetError and leaves the state unchanged.
type Context interface {
	// Queries.
	IsEnabled(capability Enum) bool
	GetBoolean(pname Enum) bool
	GetBoolean4(pname Enum) [4]bool
	GetInteger(pname Enum) int
	GetInteger4(pname Enum) [4]int
	GetFloat(pname Enum) float32
	GetFloat2(pname Enum) [2]float32
	GetFloat4(pname Enum) [4]float32
	GetBinding(pname Enum) Handle
	GetError() Enum

	// Capabilities.
	Enable(capability Enum)
	Disable(capability Enum)

	// Fixed-function state.
	BlendColor(r, g, b, a float32)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	ClearColor(r, g, b, a float32)
	ClearDepthf(d float32)
	ClearStencil(s int)
	ColorMask(r, g, b, a bool)
	CullFace(mode Enum)
	DepthFunc(fn Enum)
	DepthMask(mask bool)
	DepthRangef(near, far float32)
	FrontFace(mode Enum)
	Hint(target, mode Enum)
	LineWidth(w float32)
	PolygonOffset(factor, units float32)
	SampleCoverage(value float32, invert bool)
	Scissor(x, y, width, height int)
	Viewport(x, y, width, height int)
	StencilFuncSeparate(face, fn Enum, ref int, mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	PixelStorei(pname Enum, param int)

	// Bindings.
	ActiveTexture(unit Enum)
	BindBuffer(target Enum, buf Handle)
	BindFramebuffer(target Enum, fb Handle)
	BindRenderbuffer(target Enum, rb Handle)
	BindVertexArray(va Handle)
	UseProgram(p Handle)
}
