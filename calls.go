// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import "github.com/gogpu/glstate/gl"

// The methods below mirror GL entry points. They route the call through the
// setter so the cache stays coherent and redundant calls are skipped; code
// that changes state directly on the context must call Invalidate instead.

// BindFramebuffer binds fb to target. On the extended tier FRAMEBUFFER
// binds both the draw and the read framebuffer, DRAW_FRAMEBUFFER and
// READ_FRAMEBUFFER bind one of them.
func (t *Tracker) BindFramebuffer(target gl.Enum, fb gl.Handle) error {
	switch target {
	case gl.FRAMEBUFFER:
		return t.SetParameters(Parameters{Framebuffer: fb})
	case gl.DRAW_FRAMEBUFFER:
		return t.SetParameters(Parameters{DrawFramebuffer: fb})
	case gl.READ_FRAMEBUFFER:
		return t.SetParameters(Parameters{ReadFramebuffer: fb})
	}
	return paramError(target, ErrUnsupportedParameter, "not a framebuffer target")
}

// Enable turns on a capability such as BLEND or DEPTH_TEST. Keys that
// are not capabilities return ErrUnsupportedParameter.
func (t *Tracker) Enable(capability gl.Enum) error {
	return t.setCapability(capability, true)
}

// Disable turns off a capability.
func (t *Tracker) Disable(capability gl.Enum) error {
	return t.setCapability(capability, false)
}

func (t *Tracker) setCapability(capability gl.Enum, on bool) error {
	d, err := t.table.writable(capability)
	if err != nil {
		return err
	}
	if d.Call != "Enable" {
		return paramError(capability, ErrUnsupportedParameter, "not a capability")
	}
	return t.SetParameters(Parameters{capability: on})
}

// BlendFunc sets the same source and destination factors for color and
// alpha.
func (t *Tracker) BlendFunc(src, dst gl.Enum) error {
	return t.SetParameters(Parameters{BlendFunc: []gl.Enum{src, dst}})
}

// BlendFuncSeparate sets color and alpha blend factors independently.
func (t *Tracker) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) error {
	return t.SetParameters(Parameters{BlendFunc: []gl.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha}})
}

// BlendEquation sets the blend operation for color and alpha. MIN and MAX
// require the extended tier.
func (t *Tracker) BlendEquation(mode gl.Enum) error {
	return t.SetParameters(Parameters{BlendEquation: mode})
}

// BlendEquationSeparate sets the color and alpha blend operations.
func (t *Tracker) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) error {
	return t.SetParameters(Parameters{BlendEquation: []gl.Enum{modeRGB, modeAlpha}})
}

// ClearColor sets COLOR_CLEAR_VALUE.
func (t *Tracker) ClearColor(r, g, b, a float32) error {
	return t.SetParameters(Parameters{gl.COLOR_CLEAR_VALUE: [4]float32{r, g, b, a}})
}

// Viewport sets the viewport box. Negative sizes are rejected.
func (t *Tracker) Viewport(x, y, width, height int) error {
	return t.SetParameters(Parameters{gl.VIEWPORT: [4]int{x, y, width, height}})
}

// Scissor sets the scissor box. It does not enable SCISSOR_TEST.
func (t *Tracker) Scissor(x, y, width, height int) error {
	return t.SetParameters(Parameters{gl.SCISSOR_BOX: [4]int{x, y, width, height}})
}

// DepthFunc sets the depth comparison function.
func (t *Tracker) DepthFunc(fn gl.Enum) error {
	return t.SetParameters(Parameters{gl.DEPTH_FUNC: fn})
}

// DepthMask enables or disables depth buffer writes.
func (t *Tracker) DepthMask(mask bool) error {
	return t.SetParameters(Parameters{gl.DEPTH_WRITEMASK: mask})
}

// UseProgram makes p the current program. NoHandle unbinds it.
func (t *Tracker) UseProgram(p gl.Handle) error {
	return t.SetParameters(Parameters{gl.CURRENT_PROGRAM: p})
}

// BindVertexArray binds va. Vertex array objects need the extended tier.
func (t *Tracker) BindVertexArray(va gl.Handle) error {
	return t.SetParameters(Parameters{gl.VERTEX_ARRAY_BINDING: va})
}

// PixelStorei sets a pixel store mode. Boolean modes treat any non-zero
// param as true.
func (t *Tracker) PixelStorei(pname gl.Enum, param int) error {
	d, err := t.table.writable(pname)
	if err != nil {
		return err
	}
	if d.Call != "PixelStorei" {
		return paramError(pname, ErrUnsupportedParameter, "not a pixel store mode")
	}
	return t.SetParameters(Parameters{pname: param})
}

// StencilFunc sets the stencil test function, reference value and mask
// for both faces.
func (t *Tracker) StencilFunc(fn gl.Enum, ref int, mask uint32) error {
	return t.SetParameters(Parameters{StencilFunc: []any{fn, ref, mask}})
}

// StencilOp sets the stencil actions for both faces.
func (t *Tracker) StencilOp(fail, zfail, zpass gl.Enum) error {
	return t.SetParameters(Parameters{StencilOp: []gl.Enum{fail, zfail, zpass}})
}

// StencilMask sets the stencil write mask for both faces.
func (t *Tracker) StencilMask(mask uint32) error {
	return t.SetParameters(Parameters{StencilMask: mask})
}
