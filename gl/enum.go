// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is a native GL enumerant. Values match the constants of the
// WebGL 1/2 (GLES 2/3) headers so that state keys can be passed
// straight through to the driver.
type Enum uint32

// Error codes returned by GetError.
const (
	NO_ERROR                      Enum = 0x0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
	CONTEXT_LOST_WEBGL            Enum = 0x9242
)

// Capabilities toggled with Enable/Disable.
const (
	BLEND                    Enum = 0x0BE2
	CULL_FACE                Enum = 0x0B44
	DEPTH_TEST               Enum = 0x0B71
	DITHER                   Enum = 0x0BD0
	POLYGON_OFFSET_FILL      Enum = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE Enum = 0x809E
	SAMPLE_COVERAGE          Enum = 0x80A0
	SCISSOR_TEST             Enum = 0x0C11
	STENCIL_TEST             Enum = 0x0B90
	RASTERIZER_DISCARD       Enum = 0x8C89
)

// Blend factors.
const (
	ZERO                     Enum = 0x0
	ONE                      Enum = 0x1
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002
	CONSTANT_ALPHA           Enum = 0x8003
	ONE_MINUS_CONSTANT_ALPHA Enum = 0x8004
)

// Blend equations. MIN and MAX require WebGL2 (or EXT_blend_minmax).
const (
	FUNC_ADD              Enum = 0x8006
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800A
	FUNC_REVERSE_SUBTRACT Enum = 0x800B
)

// Comparison functions.
const (
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207
)

// Stencil operations.
const (
	KEEP      Enum = 0x1E00
	REPLACE   Enum = 0x1E01
	INCR      Enum = 0x1E02
	DECR      Enum = 0x1E03
	INVERT    Enum = 0x150A
	INCR_WRAP Enum = 0x8507
	DECR_WRAP Enum = 0x8508
)

// Faces, winding and hints.
const (
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901
	DONT_CARE      Enum = 0x1100
	FASTEST        Enum = 0x1101
	NICEST         Enum = 0x1102
)

// State query names.
const (
	LINE_WIDTH                      Enum = 0x0B21
	CULL_FACE_MODE                  Enum = 0x0B45
	FRONT_FACE                      Enum = 0x0B46
	DEPTH_RANGE                     Enum = 0x0B70
	DEPTH_WRITEMASK                 Enum = 0x0B72
	DEPTH_CLEAR_VALUE               Enum = 0x0B73
	DEPTH_FUNC                      Enum = 0x0B74
	STENCIL_CLEAR_VALUE             Enum = 0x0B91
	STENCIL_FUNC                    Enum = 0x0B92
	STENCIL_VALUE_MASK              Enum = 0x0B93
	STENCIL_FAIL                    Enum = 0x0B94
	STENCIL_PASS_DEPTH_FAIL         Enum = 0x0B95
	STENCIL_PASS_DEPTH_PASS         Enum = 0x0B96
	STENCIL_REF                     Enum = 0x0B97
	STENCIL_WRITEMASK               Enum = 0x0B98
	STENCIL_BACK_FUNC               Enum = 0x8800
	STENCIL_BACK_FAIL               Enum = 0x8801
	STENCIL_BACK_PASS_DEPTH_FAIL    Enum = 0x8802
	STENCIL_BACK_PASS_DEPTH_PASS    Enum = 0x8803
	STENCIL_BACK_REF                Enum = 0x8CA3
	STENCIL_BACK_VALUE_MASK         Enum = 0x8CA4
	STENCIL_BACK_WRITEMASK          Enum = 0x8CA5
	VIEWPORT                        Enum = 0x0BA2
	SCISSOR_BOX                     Enum = 0x0C10
	COLOR_CLEAR_VALUE               Enum = 0x0C22
	COLOR_WRITEMASK                 Enum = 0x0C23
	POLYGON_OFFSET_UNITS            Enum = 0x2A00
	POLYGON_OFFSET_FACTOR           Enum = 0x8038
	SAMPLE_COVERAGE_VALUE           Enum = 0x80AA
	SAMPLE_COVERAGE_INVERT          Enum = 0x80AB
	BLEND_COLOR                     Enum = 0x8005
	BLEND_EQUATION                  Enum = 0x8009
	BLEND_EQUATION_RGB              Enum = 0x8009
	BLEND_EQUATION_ALPHA            Enum = 0x883D
	BLEND_DST_RGB                   Enum = 0x80C8
	BLEND_SRC_RGB                   Enum = 0x80C9
	BLEND_DST_ALPHA                 Enum = 0x80CA
	BLEND_SRC_ALPHA                 Enum = 0x80CB
	GENERATE_MIPMAP_HINT            Enum = 0x8192
	FRAGMENT_SHADER_DERIVATIVE_HINT Enum = 0x8B8B
)

// Binding points and their queries.
const (
	ARRAY_BUFFER                Enum = 0x8892
	ELEMENT_ARRAY_BUFFER        Enum = 0x8893
	ARRAY_BUFFER_BINDING        Enum = 0x8894
	CURRENT_PROGRAM             Enum = 0x8B8D
	FRAMEBUFFER                 Enum = 0x8D40
	RENDERBUFFER                Enum = 0x8D41
	FRAMEBUFFER_BINDING         Enum = 0x8CA6
	DRAW_FRAMEBUFFER_BINDING    Enum = 0x8CA6
	RENDERBUFFER_BINDING        Enum = 0x8CA7
	READ_FRAMEBUFFER            Enum = 0x8CA8
	DRAW_FRAMEBUFFER            Enum = 0x8CA9
	READ_FRAMEBUFFER_BINDING    Enum = 0x8CAA
	VERTEX_ARRAY_BINDING        Enum = 0x85B5
	COPY_READ_BUFFER            Enum = 0x8F36
	COPY_WRITE_BUFFER           Enum = 0x8F37
	COPY_READ_BUFFER_BINDING    Enum = 0x8F36
	COPY_WRITE_BUFFER_BINDING   Enum = 0x8F37
	PIXEL_PACK_BUFFER           Enum = 0x88EB
	PIXEL_UNPACK_BUFFER         Enum = 0x88EC
	PIXEL_PACK_BUFFER_BINDING   Enum = 0x88ED
	PIXEL_UNPACK_BUFFER_BINDING Enum = 0x88EF
	ACTIVE_TEXTURE              Enum = 0x84E0
	TEXTURE0                    Enum = 0x84C0
)

// Pixel storage modes.
const (
	NONE                               Enum = 0x0
	PACK_ALIGNMENT                     Enum = 0x0D05
	UNPACK_ALIGNMENT                   Enum = 0x0CF5
	UNPACK_FLIP_Y_WEBGL                Enum = 0x9240
	UNPACK_PREMULTIPLY_ALPHA_WEBGL     Enum = 0x9241
	UNPACK_COLORSPACE_CONVERSION_WEBGL Enum = 0x9243
	BROWSER_DEFAULT_WEBGL              Enum = 0x9244
	PACK_ROW_LENGTH                    Enum = 0x0D02
	PACK_SKIP_ROWS                     Enum = 0x0D03
	PACK_SKIP_PIXELS                   Enum = 0x0D04
	UNPACK_ROW_LENGTH                  Enum = 0x0CF2
	UNPACK_SKIP_ROWS                   Enum = 0x0CF3
	UNPACK_SKIP_PIXELS                 Enum = 0x0CF4
	UNPACK_SKIP_IMAGES                 Enum = 0x806D
	UNPACK_IMAGE_HEIGHT                Enum = 0x806E
)

// enumNames lists every named constant. The first entry for a value is the
// name String reports; later entries with the same value are lookup aliases.
var enumNames = []struct {
	name string
	e    Enum
}{
	// ZERO comes first so that String reports blend factor zero by name.
	{"ZERO", ZERO},
	{"NO_ERROR", NO_ERROR},
	{"INVALID_ENUM", INVALID_ENUM},
	{"INVALID_VALUE", INVALID_VALUE},
	{"INVALID_OPERATION", INVALID_OPERATION},
	{"OUT_OF_MEMORY", OUT_OF_MEMORY},
	{"INVALID_FRAMEBUFFER_OPERATION", INVALID_FRAMEBUFFER_OPERATION},
	{"CONTEXT_LOST_WEBGL", CONTEXT_LOST_WEBGL},

	{"BLEND", BLEND},
	{"CULL_FACE", CULL_FACE},
	{"DEPTH_TEST", DEPTH_TEST},
	{"DITHER", DITHER},
	{"POLYGON_OFFSET_FILL", POLYGON_OFFSET_FILL},
	{"SAMPLE_ALPHA_TO_COVERAGE", SAMPLE_ALPHA_TO_COVERAGE},
	{"SAMPLE_COVERAGE", SAMPLE_COVERAGE},
	{"SCISSOR_TEST", SCISSOR_TEST},
	{"STENCIL_TEST", STENCIL_TEST},
	{"RASTERIZER_DISCARD", RASTERIZER_DISCARD},

	{"ONE", ONE},
	{"SRC_COLOR", SRC_COLOR},
	{"ONE_MINUS_SRC_COLOR", ONE_MINUS_SRC_COLOR},
	{"SRC_ALPHA", SRC_ALPHA},
	{"ONE_MINUS_SRC_ALPHA", ONE_MINUS_SRC_ALPHA},
	{"DST_ALPHA", DST_ALPHA},
	{"ONE_MINUS_DST_ALPHA", ONE_MINUS_DST_ALPHA},
	{"DST_COLOR", DST_COLOR},
	{"ONE_MINUS_DST_COLOR", ONE_MINUS_DST_COLOR},
	{"SRC_ALPHA_SATURATE", SRC_ALPHA_SATURATE},
	{"CONSTANT_COLOR", CONSTANT_COLOR},
	{"ONE_MINUS_CONSTANT_COLOR", ONE_MINUS_CONSTANT_COLOR},
	{"CONSTANT_ALPHA", CONSTANT_ALPHA},
	{"ONE_MINUS_CONSTANT_ALPHA", ONE_MINUS_CONSTANT_ALPHA},

	{"FUNC_ADD", FUNC_ADD},
	{"MIN", MIN},
	{"MAX", MAX},
	{"FUNC_SUBTRACT", FUNC_SUBTRACT},
	{"FUNC_REVERSE_SUBTRACT", FUNC_REVERSE_SUBTRACT},

	{"NEVER", NEVER},
	{"LESS", LESS},
	{"EQUAL", EQUAL},
	{"LEQUAL", LEQUAL},
	{"GREATER", GREATER},
	{"NOTEQUAL", NOTEQUAL},
	{"GEQUAL", GEQUAL},
	{"ALWAYS", ALWAYS},

	{"KEEP", KEEP},
	{"REPLACE", REPLACE},
	{"INCR", INCR},
	{"DECR", DECR},
	{"INVERT", INVERT},
	{"INCR_WRAP", INCR_WRAP},
	{"DECR_WRAP", DECR_WRAP},

	{"FRONT", FRONT},
	{"BACK", BACK},
	{"FRONT_AND_BACK", FRONT_AND_BACK},
	{"CW", CW},
	{"CCW", CCW},
	{"DONT_CARE", DONT_CARE},
	{"FASTEST", FASTEST},
	{"NICEST", NICEST},

	{"LINE_WIDTH", LINE_WIDTH},
	{"CULL_FACE_MODE", CULL_FACE_MODE},
	{"FRONT_FACE", FRONT_FACE},
	{"DEPTH_RANGE", DEPTH_RANGE},
	{"DEPTH_WRITEMASK", DEPTH_WRITEMASK},
	{"DEPTH_CLEAR_VALUE", DEPTH_CLEAR_VALUE},
	{"DEPTH_FUNC", DEPTH_FUNC},
	{"STENCIL_CLEAR_VALUE", STENCIL_CLEAR_VALUE},
	{"STENCIL_FUNC", STENCIL_FUNC},
	{"STENCIL_VALUE_MASK", STENCIL_VALUE_MASK},
	{"STENCIL_FAIL", STENCIL_FAIL},
	{"STENCIL_PASS_DEPTH_FAIL", STENCIL_PASS_DEPTH_FAIL},
	{"STENCIL_PASS_DEPTH_PASS", STENCIL_PASS_DEPTH_PASS},
	{"STENCIL_REF", STENCIL_REF},
	{"STENCIL_WRITEMASK", STENCIL_WRITEMASK},
	{"STENCIL_BACK_FUNC", STENCIL_BACK_FUNC},
	{"STENCIL_BACK_FAIL", STENCIL_BACK_FAIL},
	{"STENCIL_BACK_PASS_DEPTH_FAIL", STENCIL_BACK_PASS_DEPTH_FAIL},
	{"STENCIL_BACK_PASS_DEPTH_PASS", STENCIL_BACK_PASS_DEPTH_PASS},
	{"STENCIL_BACK_REF", STENCIL_BACK_REF},
	{"STENCIL_BACK_VALUE_MASK", STENCIL_BACK_VALUE_MASK},
	{"STENCIL_BACK_WRITEMASK", STENCIL_BACK_WRITEMASK},
	{"VIEWPORT", VIEWPORT},
	{"SCISSOR_BOX", SCISSOR_BOX},
	{"COLOR_CLEAR_VALUE", COLOR_CLEAR_VALUE},
	{"COLOR_WRITEMASK", COLOR_WRITEMASK},
	{"POLYGON_OFFSET_UNITS", POLYGON_OFFSET_UNITS},
	{"POLYGON_OFFSET_FACTOR", POLYGON_OFFSET_FACTOR},
	{"SAMPLE_COVERAGE_VALUE", SAMPLE_COVERAGE_VALUE},
	{"SAMPLE_COVERAGE_INVERT", SAMPLE_COVERAGE_INVERT},
	{"BLEND_COLOR", BLEND_COLOR},
	{"BLEND_EQUATION_RGB", BLEND_EQUATION_RGB},
	{"BLEND_EQUATION", BLEND_EQUATION},
	{"BLEND_EQUATION_ALPHA", BLEND_EQUATION_ALPHA},
	{"BLEND_DST_RGB", BLEND_DST_RGB},
	{"BLEND_SRC_RGB", BLEND_SRC_RGB},
	{"BLEND_DST_ALPHA", BLEND_DST_ALPHA},
	{"BLEND_SRC_ALPHA", BLEND_SRC_ALPHA},
	{"GENERATE_MIPMAP_HINT", GENERATE_MIPMAP_HINT},
	{"FRAGMENT_SHADER_DERIVATIVE_HINT", FRAGMENT_SHADER_DERIVATIVE_HINT},

	{"ARRAY_BUFFER", ARRAY_BUFFER},
	{"ELEMENT_ARRAY_BUFFER", ELEMENT_ARRAY_BUFFER},
	{"ARRAY_BUFFER_BINDING", ARRAY_BUFFER_BINDING},
	{"CURRENT_PROGRAM", CURRENT_PROGRAM},
	{"FRAMEBUFFER", FRAMEBUFFER},
	{"RENDERBUFFER", RENDERBUFFER},
	{"FRAMEBUFFER_BINDING", FRAMEBUFFER_BINDING},
	{"DRAW_FRAMEBUFFER_BINDING", DRAW_FRAMEBUFFER_BINDING},
	{"RENDERBUFFER_BINDING", RENDERBUFFER_BINDING},
	{"READ_FRAMEBUFFER", READ_FRAMEBUFFER},
	{"DRAW_FRAMEBUFFER", DRAW_FRAMEBUFFER},
	{"READ_FRAMEBUFFER_BINDING", READ_FRAMEBUFFER_BINDING},
	{"VERTEX_ARRAY_BINDING", VERTEX_ARRAY_BINDING},
	{"COPY_READ_BUFFER_BINDING", COPY_READ_BUFFER_BINDING},
	{"COPY_READ_BUFFER", COPY_READ_BUFFER},
	{"COPY_WRITE_BUFFER_BINDING", COPY_WRITE_BUFFER_BINDING},
	{"COPY_WRITE_BUFFER", COPY_WRITE_BUFFER},
	{"PIXEL_PACK_BUFFER", PIXEL_PACK_BUFFER},
	{"PIXEL_UNPACK_BUFFER", PIXEL_UNPACK_BUFFER},
	{"PIXEL_PACK_BUFFER_BINDING", PIXEL_PACK_BUFFER_BINDING},
	{"PIXEL_UNPACK_BUFFER_BINDING", PIXEL_UNPACK_BUFFER_BINDING},
	{"ACTIVE_TEXTURE", ACTIVE_TEXTURE},
	{"TEXTURE0", TEXTURE0},

	{"PACK_ALIGNMENT", PACK_ALIGNMENT},
	{"UNPACK_ALIGNMENT", UNPACK_ALIGNMENT},
	{"UNPACK_FLIP_Y_WEBGL", UNPACK_FLIP_Y_WEBGL},
	{"UNPACK_PREMULTIPLY_ALPHA_WEBGL", UNPACK_PREMULTIPLY_ALPHA_WEBGL},
	{"UNPACK_COLORSPACE_CONVERSION_WEBGL", UNPACK_COLORSPACE_CONVERSION_WEBGL},
	{"BROWSER_DEFAULT_WEBGL", BROWSER_DEFAULT_WEBGL},
	{"PACK_ROW_LENGTH", PACK_ROW_LENGTH},
	{"PACK_SKIP_ROWS", PACK_SKIP_ROWS},
	{"PACK_SKIP_PIXELS", PACK_SKIP_PIXELS},
	{"UNPACK_ROW_LENGTH", UNPACK_ROW_LENGTH},
	{"UNPACK_SKIP_ROWS", UNPACK_SKIP_ROWS},
	{"UNPACK_SKIP_PIXELS", UNPACK_SKIP_PIXELS},
	{"UNPACK_SKIP_IMAGES", UNPACK_SKIP_IMAGES},
	{"UNPACK_IMAGE_HEIGHT", UNPACK_IMAGE_HEIGHT},

	{"NONE", NONE},
}

var (
	nameOf = make(map[Enum]string, len(enumNames))
	byName = make(map[string]Enum, len(enumNames))
)

func init() {
	for _, n := range enumNames {
		if _, ok := nameOf[n.e]; !ok {
			nameOf[n.e] = n.name
		}
		byName[n.name] = n.e
	}
}

// String returns the constant name, or the hexadecimal value for enumerants
// without a registered name.
func (e Enum) String() string {
	if name, ok := nameOf[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}

// Lookup resolves a constant name ("SRC_ALPHA", optionally prefixed with
// "GL_") or a numeric literal ("0x0302", "770") to its Enum.
func Lookup(name string) (Enum, bool) {
	name = strings.TrimSpace(name)
	if e, ok := byName[strings.TrimPrefix(name, "GL_")]; ok {
		return e, true
	}
	if n, err := strconv.ParseUint(name, 0, 32); err == nil {
		return Enum(n), true
	}
	return 0, false
}

// ErrorString names a GetError code.
func ErrorString(code Enum) string {
	if code == NO_ERROR {
		return "NO_ERROR"
	}
	return code.String()
}
