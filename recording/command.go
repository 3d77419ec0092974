package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/glstate/gl"
)

// Op identifies a state-changing GL entry point.
type Op uint8

const (
	// Capabilities
	OpEnable Op = iota
	OpDisable

	// Fixed-function state
	OpBlendColor
	OpBlendEquationSeparate
	OpBlendFuncSeparate
	OpClearColor
	OpClearDepthf
	OpClearStencil
	OpColorMask
	OpCullFace
	OpDepthFunc
	OpDepthMask
	OpDepthRangef
	OpFrontFace
	OpHint
	OpLineWidth
	OpPolygonOffset
	OpSampleCoverage
	OpScissor
	OpViewport
	OpStencilFuncSeparate
	OpStencilMaskSeparate
	OpStencilOpSeparate
	OpPixelStorei

	// Bindings
	OpActiveTexture
	OpBindBuffer
	OpBindFramebuffer
	OpBindRenderbuffer
	OpBindVertexArray
	OpUseProgram

	opCount
)

var opNames = [...]string{
	OpEnable:                "Enable",
	OpDisable:               "Disable",
	OpBlendColor:            "BlendColor",
	OpBlendEquationSeparate: "BlendEquationSeparate",
	OpBlendFuncSeparate:     "BlendFuncSeparate",
	OpClearColor:            "ClearColor",
	OpClearDepthf:           "ClearDepthf",
	OpClearStencil:          "ClearStencil",
	OpColorMask:             "ColorMask",
	OpCullFace:              "CullFace",
	OpDepthFunc:             "DepthFunc",
	OpDepthMask:             "DepthMask",
	OpDepthRangef:           "DepthRangef",
	OpFrontFace:             "FrontFace",
	OpHint:                  "Hint",
	OpLineWidth:             "LineWidth",
	OpPolygonOffset:         "PolygonOffset",
	OpSampleCoverage:        "SampleCoverage",
	OpScissor:               "Scissor",
	OpViewport:              "Viewport",
	OpStencilFuncSeparate:   "StencilFuncSeparate",
	OpStencilMaskSeparate:   "StencilMaskSeparate",
	OpStencilOpSeparate:     "StencilOpSeparate",
	OpPixelStorei:           "PixelStorei",
	OpActiveTexture:         "ActiveTexture",
	OpBindBuffer:            "BindBuffer",
	OpBindFramebuffer:       "BindFramebuffer",
	OpBindRenderbuffer:      "BindRenderbuffer",
	OpBindVertexArray:       "BindVertexArray",
	OpUseProgram:            "UseProgram",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

// ParseOp returns the Op named s.
func ParseOp(s string) (Op, bool) {
	for i, name := range opNames {
		if name == s {
			return Op(i), true
		}
	}
	return 0, false
}

// Command is one recorded call. Args hold the call's arguments with their
// Go types from gl.Context (gl.Enum, gl.Handle, float32, int, uint32, bool).
type Command struct {
	Op   Op
	Args []any

	// Err is the error the context raised for this call, or gl.NO_ERROR.
	Err gl.Enum
}

// String formats the command as a call, e.g. "BlendFuncSeparate(SRC_ALPHA,
// ONE, SRC_ALPHA, ONE)".
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Op.String())
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch v := a.(type) {
		case gl.Enum:
			sb.WriteString(v.String())
		case uint32:
			fmt.Fprintf(&sb, "0x%X", v)
		default:
			fmt.Fprint(&sb, v)
		}
	}
	sb.WriteByte(')')
	if c.Err != gl.NO_ERROR {
		sb.WriteString(" -> ")
		sb.WriteString(gl.ErrorString(c.Err))
	}
	return sb.String()
}
