// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"slices"

	"github.com/gogpu/glstate/gl"
)

// Param is a setter key: a gl.Enum for a single parameter key or a Func for
// a semantic name.
type Param interface {
	String() string
}

// Parameters maps setter keys to requested values.
//
//	glstate.Parameters{
//	    glstate.BlendFunc: []gl.Enum{gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA},
//	    gl.BLEND:          true,
//	}
type Parameters map[Param]any

// Func is a semantic (function-style) parameter name.
type Func string

func (f Func) String() string { return string(f) }

// Composite names. Each expands to several keys; see Table.Funcs for the
// argument counts accepted by each.
const (
	BlendFunc        Func = "blendFunc"        // (src, dst) or (srcRGB, dstRGB, srcAlpha, dstAlpha)
	BlendEquation    Func = "blendEquation"    // mode or (modeRGB, modeAlpha)
	StencilFunc      Func = "stencilFunc"      // (func, ref, mask) for both faces, or front then back
	StencilFuncFront Func = "stencilFuncFront" // (func, ref, mask)
	StencilFuncBack  Func = "stencilFuncBack"  // (func, ref, mask)
	StencilOp        Func = "stencilOp"        // (fail, zfail, zpass) for both faces, or front then back
	StencilOpFront   Func = "stencilOpFront"   // (fail, zfail, zpass)
	StencilOpBack    Func = "stencilOpBack"    // (fail, zfail, zpass)
	StencilMask      Func = "stencilMask"      // mask or (front, back)
	PolygonOffset    Func = "polygonOffset"    // (factor, units)
	SampleCoverage   Func = "sampleCoverage"   // value or (value, invert)
	Framebuffer      Func = "framebuffer"      // handle; draw and read on the extended tier
	DrawFramebuffer  Func = "drawFramebuffer"  // handle, extended tier only
	ReadFramebuffer  Func = "readFramebuffer"  // handle, extended tier only
)

// One-key aliases. They are also accepted by GetParameters through
// Table.Lookup.
const (
	Blend                      Func = "blend"
	Cull                       Func = "cull"
	DepthTest                  Func = "depthTest"
	Dither                     Func = "dither"
	PolygonOffsetFill          Func = "polygonOffsetFill"
	SampleAlphaToCoverage      Func = "sampleAlphaToCoverage"
	ScissorTest                Func = "scissorTest"
	StencilTest                Func = "stencilTest"
	RasterizerDiscard          Func = "rasterizerDiscard"
	BlendColor                 Func = "blendColor"
	ClearColor                 Func = "clearColor"
	ClearDepth                 Func = "clearDepth"
	ClearStencil               Func = "clearStencil"
	ColorMask                  Func = "colorMask"
	CullFace                   Func = "cullFace"
	DepthFunc                  Func = "depthFunc"
	DepthMask                  Func = "depthMask"
	DepthRange                 Func = "depthRange"
	FrontFace                  Func = "frontFace"
	MipmapHint                 Func = "mipmapHint"
	DerivativeHint             Func = "derivativeHint"
	LineWidth                  Func = "lineWidth"
	Scissor                    Func = "scissor"
	Viewport                   Func = "viewport"
	Program                    Func = "program"
	ArrayBuffer                Func = "arrayBuffer"
	Renderbuffer               Func = "renderbuffer"
	VertexArray                Func = "vertexArray"
	ActiveTexture              Func = "activeTexture"
	PackAlignment              Func = "packAlignment"
	UnpackAlignment            Func = "unpackAlignment"
	UnpackFlipY                Func = "unpackFlipY"
	UnpackPremultiplyAlpha     Func = "unpackPremultiplyAlpha"
	UnpackColorspaceConversion Func = "unpackColorspaceConversion"
)

// Composite describes a semantic name for tools and documentation.
type Composite struct {
	Name  Func
	Arity []int     // accepted argument counts; nil for one-key aliases
	Keys  []gl.Enum // keys written, in expansion order of the widest form
	Rule  string    // human-readable expansion rule
}

type composite struct {
	info   Composite
	direct bool
	alias  gl.Enum
	rules  map[int]expansion
}

// expansion assigns arguments to keys: keys[i] receives args[i%len(args)]
// after tail has been appended to args.
type expansion struct {
	keys []gl.Enum
	tail []any
}

type funcDef struct {
	name     Func
	extended bool
	alias    gl.Enum // set for one-key aliases
	rule     string
	rules    map[int]expansion
}

var (
	blendFactors   = []gl.Enum{gl.BLEND_SRC_RGB, gl.BLEND_DST_RGB, gl.BLEND_SRC_ALPHA, gl.BLEND_DST_ALPHA}
	blendEquations = []gl.Enum{gl.BLEND_EQUATION_RGB, gl.BLEND_EQUATION_ALPHA}
	stencilFront   = []gl.Enum{gl.STENCIL_FUNC, gl.STENCIL_REF, gl.STENCIL_VALUE_MASK}
	stencilBack    = []gl.Enum{gl.STENCIL_BACK_FUNC, gl.STENCIL_BACK_REF, gl.STENCIL_BACK_VALUE_MASK}
	stencilOpFront = []gl.Enum{gl.STENCIL_FAIL, gl.STENCIL_PASS_DEPTH_FAIL, gl.STENCIL_PASS_DEPTH_PASS}
	stencilOpBack  = []gl.Enum{gl.STENCIL_BACK_FAIL, gl.STENCIL_BACK_PASS_DEPTH_FAIL, gl.STENCIL_BACK_PASS_DEPTH_PASS}
	stencilMasks   = []gl.Enum{gl.STENCIL_WRITEMASK, gl.STENCIL_BACK_WRITEMASK}
)

func concat(lists ...[]gl.Enum) []gl.Enum {
	var out []gl.Enum
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// funcDefs returns the semantic names of tier t in documentation order.
func funcDefs(t Tier) []funcDef {
	stencil := concat(stencilFront, stencilBack)
	stencilOps := concat(stencilOpFront, stencilOpBack)
	defs := []funcDef{
		{name: BlendFunc, rule: "(src, dst) -> [src, dst, src, dst]; 4 arguments map 1:1",
			rules: map[int]expansion{2: {keys: blendFactors}, 4: {keys: blendFactors}}},
		{name: BlendEquation, rule: "mode -> [mode, mode]; 2 arguments map 1:1",
			rules: map[int]expansion{1: {keys: blendEquations}, 2: {keys: blendEquations}}},
		{name: StencilFunc, rule: "(func, ref, mask) -> front and back; 6 arguments: front then back",
			rules: map[int]expansion{3: {keys: stencil}, 6: {keys: stencil}}},
		{name: StencilFuncFront, rule: "(func, ref, mask) -> front face",
			rules: map[int]expansion{3: {keys: stencilFront}}},
		{name: StencilFuncBack, rule: "(func, ref, mask) -> back face",
			rules: map[int]expansion{3: {keys: stencilBack}}},
		{name: StencilOp, rule: "(fail, zfail, zpass) -> front and back; 6 arguments: front then back",
			rules: map[int]expansion{3: {keys: stencilOps}, 6: {keys: stencilOps}}},
		{name: StencilOpFront, rule: "(fail, zfail, zpass) -> front face",
			rules: map[int]expansion{3: {keys: stencilOpFront}}},
		{name: StencilOpBack, rule: "(fail, zfail, zpass) -> back face",
			rules: map[int]expansion{3: {keys: stencilOpBack}}},
		{name: StencilMask, rule: "mask -> [mask, mask]; 2 arguments: front, back",
			rules: map[int]expansion{1: {keys: stencilMasks}, 2: {keys: stencilMasks}}},
		{name: PolygonOffset, rule: "(factor, units)",
			rules: map[int]expansion{2: {keys: []gl.Enum{gl.POLYGON_OFFSET_FACTOR, gl.POLYGON_OFFSET_UNITS}}}},
		{name: SampleCoverage, rule: "value -> (value, false); 2 arguments: (value, invert)",
			rules: map[int]expansion{
				1: {keys: []gl.Enum{gl.SAMPLE_COVERAGE_VALUE, gl.SAMPLE_COVERAGE_INVERT}, tail: []any{false}},
				2: {keys: []gl.Enum{gl.SAMPLE_COVERAGE_VALUE, gl.SAMPLE_COVERAGE_INVERT}},
			}},
	}
	if t == TierBaseline {
		defs = append(defs, funcDef{name: Framebuffer, rule: "handle -> FRAMEBUFFER_BINDING",
			rules: map[int]expansion{1: {keys: []gl.Enum{gl.FRAMEBUFFER_BINDING}}}})
	} else {
		defs = append(defs, funcDef{name: Framebuffer, rule: "handle -> draw and read bindings",
			rules: map[int]expansion{1: {keys: []gl.Enum{gl.DRAW_FRAMEBUFFER_BINDING, gl.READ_FRAMEBUFFER_BINDING}}}})
	}
	defs = append(defs,
		funcDef{name: DrawFramebuffer, extended: true, alias: gl.DRAW_FRAMEBUFFER_BINDING},
		funcDef{name: ReadFramebuffer, extended: true, alias: gl.READ_FRAMEBUFFER_BINDING},

		funcDef{name: Blend, alias: gl.BLEND},
		funcDef{name: Cull, alias: gl.CULL_FACE},
		funcDef{name: DepthTest, alias: gl.DEPTH_TEST},
		funcDef{name: Dither, alias: gl.DITHER},
		funcDef{name: PolygonOffsetFill, alias: gl.POLYGON_OFFSET_FILL},
		funcDef{name: SampleAlphaToCoverage, alias: gl.SAMPLE_ALPHA_TO_COVERAGE},
		funcDef{name: ScissorTest, alias: gl.SCISSOR_TEST},
		funcDef{name: StencilTest, alias: gl.STENCIL_TEST},
		funcDef{name: RasterizerDiscard, extended: true, alias: gl.RASTERIZER_DISCARD},
		funcDef{name: BlendColor, alias: gl.BLEND_COLOR},
		funcDef{name: ClearColor, alias: gl.COLOR_CLEAR_VALUE},
		funcDef{name: ClearDepth, alias: gl.DEPTH_CLEAR_VALUE},
		funcDef{name: ClearStencil, alias: gl.STENCIL_CLEAR_VALUE},
		funcDef{name: ColorMask, alias: gl.COLOR_WRITEMASK},
		funcDef{name: CullFace, alias: gl.CULL_FACE_MODE},
		funcDef{name: DepthFunc, alias: gl.DEPTH_FUNC},
		funcDef{name: DepthMask, alias: gl.DEPTH_WRITEMASK},
		funcDef{name: DepthRange, alias: gl.DEPTH_RANGE},
		funcDef{name: FrontFace, alias: gl.FRONT_FACE},
		funcDef{name: MipmapHint, alias: gl.GENERATE_MIPMAP_HINT},
		funcDef{name: DerivativeHint, extended: true, alias: gl.FRAGMENT_SHADER_DERIVATIVE_HINT},
		funcDef{name: LineWidth, alias: gl.LINE_WIDTH},
		funcDef{name: Scissor, alias: gl.SCISSOR_BOX},
		funcDef{name: Viewport, alias: gl.VIEWPORT},
		funcDef{name: Program, alias: gl.CURRENT_PROGRAM},
		funcDef{name: ArrayBuffer, alias: gl.ARRAY_BUFFER_BINDING},
		funcDef{name: Renderbuffer, alias: gl.RENDERBUFFER_BINDING},
		funcDef{name: VertexArray, extended: true, alias: gl.VERTEX_ARRAY_BINDING},
		funcDef{name: ActiveTexture, alias: gl.ACTIVE_TEXTURE},
		funcDef{name: PackAlignment, alias: gl.PACK_ALIGNMENT},
		funcDef{name: UnpackAlignment, alias: gl.UNPACK_ALIGNMENT},
		funcDef{name: UnpackFlipY, alias: gl.UNPACK_FLIP_Y_WEBGL},
		funcDef{name: UnpackPremultiplyAlpha, alias: gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL},
		funcDef{name: UnpackColorspaceConversion, alias: gl.UNPACK_COLORSPACE_CONVERSION_WEBGL},
	)
	return defs
}

func (d funcDef) build() *composite {
	c := &composite{info: Composite{Name: d.name, Rule: d.rule}}
	if d.rules == nil {
		c.direct = true
		c.alias = d.alias
		c.info.Keys = []gl.Enum{d.alias}
		c.info.Rule = "alias of " + d.alias.String()
		return c
	}
	c.rules = d.rules
	widest := 0
	for n, x := range d.rules {
		c.info.Arity = append(c.info.Arity, n)
		if n > widest {
			widest = n
			c.info.Keys = x.keys
		}
	}
	slices.Sort(c.info.Arity)
	return c
}
