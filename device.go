// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glstate/gl"
)

// DeviceParameters expresses pipeline state in WebGPU terms, the way render
// pipelines describe it. GLParameters translates it into parameter keys.
//
// Most nil pointer fields leave the corresponding state untouched. Blend,
// Scissor and the depth bias pair always set their capability: a nil Blend
// disables BLEND, a nil Scissor disables SCISSOR_TEST and a zero bias
// disables POLYGON_OFFSET_FILL.
type DeviceParameters struct {
	// Blend enables blending with the given factors and operations.
	// A nil Blend disables blending.
	Blend *gputypes.BlendState

	// BlendConstant sets the constant blend color.
	BlendConstant *gputypes.Color

	// WriteMask selects the color channels written. Nil leaves the mask
	// unchanged.
	WriteMask *gputypes.ColorWriteMask

	// DepthCompare enables the depth test with the given function.
	// CompareFunctionAlways with DepthWrite false disables it.
	DepthCompare *gputypes.CompareFunction
	DepthWrite   *bool

	// CullMode selects the culled faces. CullModeNone disables culling.
	CullMode  *gputypes.CullMode
	FrontFace *gputypes.FrontFace

	// DepthBias and DepthBiasSlopeScale enable polygon offset when either
	// is non-zero.
	DepthBias           float32
	DepthBiasSlopeScale float32

	// Viewport and Scissor boxes as [x, y, width, height].
	Viewport *[4]int
	Scissor  *[4]int
}

// GLParameters converts p into tracker parameters.
func (p DeviceParameters) GLParameters() (Parameters, error) {
	out := Parameters{gl.BLEND: p.Blend != nil}
	if p.Blend != nil {
		var factors [4]gl.Enum
		var modes [2]gl.Enum
		var err error
		for i, f := range []gputypes.BlendFactor{
			p.Blend.Color.SrcFactor, p.Blend.Color.DstFactor,
			p.Blend.Alpha.SrcFactor, p.Blend.Alpha.DstFactor,
		} {
			if factors[i], err = blendFactor(f); err != nil {
				return nil, err
			}
		}
		for i, op := range []gputypes.BlendOperation{p.Blend.Color.Operation, p.Blend.Alpha.Operation} {
			if modes[i], err = blendOperation(op); err != nil {
				return nil, err
			}
		}
		out[BlendFunc] = factors
		out[BlendEquation] = modes
	}
	if c := p.BlendConstant; c != nil {
		out[gl.BLEND_COLOR] = [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
	}
	if m := p.WriteMask; m != nil {
		out[gl.COLOR_WRITEMASK] = [4]bool{
			*m&gputypes.ColorWriteMaskRed != 0,
			*m&gputypes.ColorWriteMaskGreen != 0,
			*m&gputypes.ColorWriteMaskBlue != 0,
			*m&gputypes.ColorWriteMaskAlpha != 0,
		}
	}
	if p.DepthCompare != nil {
		fn, err := compareFunction(*p.DepthCompare)
		if err != nil {
			return nil, err
		}
		write := p.DepthWrite != nil && *p.DepthWrite
		out[gl.DEPTH_TEST] = fn != gl.ALWAYS || write
		out[gl.DEPTH_FUNC] = fn
	}
	if p.DepthWrite != nil {
		out[gl.DEPTH_WRITEMASK] = *p.DepthWrite
	}
	if p.CullMode != nil {
		switch *p.CullMode {
		case gputypes.CullModeNone:
			out[gl.CULL_FACE] = false
		case gputypes.CullModeFront:
			out[gl.CULL_FACE] = true
			out[gl.CULL_FACE_MODE] = gl.FRONT
		case gputypes.CullModeBack:
			out[gl.CULL_FACE] = true
			out[gl.CULL_FACE_MODE] = gl.BACK
		default:
			return nil, fmt.Errorf("glstate: unknown cull mode %d", *p.CullMode)
		}
	}
	if p.FrontFace != nil {
		switch *p.FrontFace {
		case gputypes.FrontFaceCCW:
			out[gl.FRONT_FACE] = gl.CCW
		case gputypes.FrontFaceCW:
			out[gl.FRONT_FACE] = gl.CW
		default:
			return nil, fmt.Errorf("glstate: unknown front face %d", *p.FrontFace)
		}
	}
	offset := p.DepthBias != 0 || p.DepthBiasSlopeScale != 0
	out[gl.POLYGON_OFFSET_FILL] = offset
	if offset {
		out[PolygonOffset] = [2]float32{p.DepthBiasSlopeScale, p.DepthBias}
	}
	if p.Viewport != nil {
		out[gl.VIEWPORT] = *p.Viewport
	}
	out[gl.SCISSOR_TEST] = p.Scissor != nil
	if p.Scissor != nil {
		out[gl.SCISSOR_BOX] = *p.Scissor
	}
	return out, nil
}

// SetDeviceParameters converts p and applies the result.
func (t *Tracker) SetDeviceParameters(p DeviceParameters) error {
	params, err := p.GLParameters()
	if err != nil {
		return err
	}
	return t.SetParameters(params)
}

func blendFactor(f gputypes.BlendFactor) (gl.Enum, error) {
	switch f {
	case gputypes.BlendFactorZero:
		return gl.ZERO, nil
	case gputypes.BlendFactorOne:
		return gl.ONE, nil
	case gputypes.BlendFactorSrc:
		return gl.SRC_COLOR, nil
	case gputypes.BlendFactorOneMinusSrc:
		return gl.ONE_MINUS_SRC_COLOR, nil
	case gputypes.BlendFactorSrcAlpha:
		return gl.SRC_ALPHA, nil
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA, nil
	case gputypes.BlendFactorDst:
		return gl.DST_COLOR, nil
	case gputypes.BlendFactorOneMinusDst:
		return gl.ONE_MINUS_DST_COLOR, nil
	case gputypes.BlendFactorDstAlpha:
		return gl.DST_ALPHA, nil
	case gputypes.BlendFactorOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA, nil
	case gputypes.BlendFactorSrcAlphaSaturated:
		return gl.SRC_ALPHA_SATURATE, nil
	case gputypes.BlendFactorConstant:
		return gl.CONSTANT_COLOR, nil
	case gputypes.BlendFactorOneMinusConstant:
		return gl.ONE_MINUS_CONSTANT_COLOR, nil
	}
	return 0, fmt.Errorf("glstate: unsupported blend factor %d", f)
}

func blendOperation(op gputypes.BlendOperation) (gl.Enum, error) {
	switch op {
	case gputypes.BlendOperationAdd:
		return gl.FUNC_ADD, nil
	case gputypes.BlendOperationSubtract:
		return gl.FUNC_SUBTRACT, nil
	case gputypes.BlendOperationReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT, nil
	case gputypes.BlendOperationMin:
		return gl.MIN, nil
	case gputypes.BlendOperationMax:
		return gl.MAX, nil
	}
	return 0, fmt.Errorf("glstate: unsupported blend operation %d", op)
}

func compareFunction(fn gputypes.CompareFunction) (gl.Enum, error) {
	switch fn {
	case gputypes.CompareFunctionNever:
		return gl.NEVER, nil
	case gputypes.CompareFunctionLess:
		return gl.LESS, nil
	case gputypes.CompareFunctionEqual:
		return gl.EQUAL, nil
	case gputypes.CompareFunctionLessEqual:
		return gl.LEQUAL, nil
	case gputypes.CompareFunctionGreater:
		return gl.GREATER, nil
	case gputypes.CompareFunctionNotEqual:
		return gl.NOTEQUAL, nil
	case gputypes.CompareFunctionGreaterEqual:
		return gl.GEQUAL, nil
	case gputypes.CompareFunctionAlways:
		return gl.ALWAYS, nil
	}
	return 0, fmt.Errorf("glstate: unsupported compare function %d", fn)
}
