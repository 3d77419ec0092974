// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"slices"

	"github.com/gogpu/glstate/gl"
)

// keyDef declares one key of a setter group.
type keyDef struct {
	key  gl.Enum
	kind Kind
	def  Value
}

func key(k gl.Enum, kind Kind, def Value) keyDef { return keyDef{k, kind, def} }

const allBits = ^uint32(0)

var (
	defaultBox  = [4]int32{0, 0, 1024, 1024}
	defaultMask = allBits
)

// builder assembles the descriptor table of one tier. Groups registered
// with extended set are recorded as extended-only on the baseline tier.
type builder struct {
	t *Table
}

func (b *builder) group(call string, extended bool, write writeFunc, keys ...keyDef) {
	if extended && b.t.tier == TierBaseline {
		for _, k := range keys {
			b.t.extendedOnly[k.key] = true
		}
		return
	}
	g := &group{call: call, write: write}
	for _, k := range keys {
		d := &Descriptor{
			Key:      k.key,
			Kind:     k.kind,
			Default:  k.def,
			Call:     call,
			Extended: extended,
			group:    g,
			query:    queryFor(k.kind),
		}
		g.keys = append(g.keys, k.key)
		b.t.descs = append(b.t.descs, d)
		b.t.byKey[k.key] = d
		b.t.defaults[k.key] = k.def
	}
	b.t.groups = append(b.t.groups, g)
}

// validate installs check on keys present in the table.
func (b *builder) validate(check func(Value) error, keys ...gl.Enum) {
	for _, k := range keys {
		if d, ok := b.t.byKey[k]; ok {
			d.check = check
		}
	}
}

func (b *builder) canonical(canon func(Value) Value, keys ...gl.Enum) {
	for _, k := range keys {
		if d, ok := b.t.byKey[k]; ok {
			d.canon = canon
		}
	}
}

func (b *builder) capability(c gl.Enum, def, extended bool) {
	b.group("Enable", extended, func(ctx gl.Context, vals []Value, _ uint32) string {
		if vals[0].(bool) {
			ctx.Enable(c)
			return "Enable"
		}
		ctx.Disable(c)
		return "Disable"
	}, key(c, KindBool, def))
	if d, ok := b.t.byKey[c]; ok {
		d.query = func(ctx gl.Context, k gl.Enum) Value { return ctx.IsEnabled(k) }
	}
}

func (b *builder) hint(target gl.Enum, extended bool) {
	b.group("Hint", extended, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.Hint(target, vals[0].(gl.Enum))
		return "Hint"
	}, key(target, KindEnum, gl.DONT_CARE))
	b.validate(oneOf(gl.DONT_CARE, gl.FASTEST, gl.NICEST), target)
}

func (b *builder) pixelStore(pname gl.Enum, kind Kind, def Value, extended bool) {
	b.group("PixelStorei", extended, func(ctx gl.Context, vals []Value, _ uint32) string {
		var param int
		switch v := vals[0].(type) {
		case bool:
			if v {
				param = 1
			}
		case int32:
			param = int(v)
		case gl.Enum:
			param = int(v)
		}
		ctx.PixelStorei(pname, param)
		return "PixelStorei"
	}, key(pname, kind, def))
}

func (b *builder) buffer(binding, target gl.Enum, extended bool) {
	b.group("BindBuffer", extended, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.BindBuffer(target, vals[0].(gl.Handle))
		return "BindBuffer"
	}, key(binding, KindHandle, gl.NoHandle))
}

func buildTable(tier Tier) *Table {
	t := &Table{
		tier:          tier,
		byKey:         make(map[gl.Enum]*Descriptor),
		extendedOnly:  make(map[gl.Enum]bool),
		readAliases:   make(map[gl.Enum]gl.Enum),
		funcs:         make(map[Func]*composite),
		extendedFuncs: make(map[Func]bool),
		defaults:      make(State),
	}
	b := &builder{t: t}

	b.capability(gl.BLEND, false, false)
	b.capability(gl.CULL_FACE, false, false)
	b.capability(gl.DEPTH_TEST, false, false)
	b.capability(gl.DITHER, true, false)
	b.capability(gl.POLYGON_OFFSET_FILL, false, false)
	b.capability(gl.SAMPLE_ALPHA_TO_COVERAGE, false, false)
	b.capability(gl.SAMPLE_COVERAGE, false, false)
	b.capability(gl.SCISSOR_TEST, false, false)
	b.capability(gl.STENCIL_TEST, false, false)
	b.capability(gl.RASTERIZER_DISCARD, false, true)

	b.group("BlendColor", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		c := vals[0].([4]float32)
		ctx.BlendColor(c[0], c[1], c[2], c[3])
		return "BlendColor"
	}, key(gl.BLEND_COLOR, KindFloat4, [4]float32{}))
	b.canonical(clamp01, gl.BLEND_COLOR)

	b.group("BlendEquationSeparate", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.BlendEquationSeparate(vals[0].(gl.Enum), vals[1].(gl.Enum))
		return "BlendEquationSeparate"
	},
		key(gl.BLEND_EQUATION_RGB, KindEnum, gl.FUNC_ADD),
		key(gl.BLEND_EQUATION_ALPHA, KindEnum, gl.FUNC_ADD))
	b.validate(blendEquation(tier), gl.BLEND_EQUATION_RGB, gl.BLEND_EQUATION_ALPHA)

	b.group("BlendFuncSeparate", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.BlendFuncSeparate(vals[0].(gl.Enum), vals[1].(gl.Enum), vals[2].(gl.Enum), vals[3].(gl.Enum))
		return "BlendFuncSeparate"
	},
		key(gl.BLEND_SRC_RGB, KindEnum, gl.ONE),
		key(gl.BLEND_DST_RGB, KindEnum, gl.ZERO),
		key(gl.BLEND_SRC_ALPHA, KindEnum, gl.ONE),
		key(gl.BLEND_DST_ALPHA, KindEnum, gl.ZERO))
	b.validate(oneOf(blendFactorValues...), gl.BLEND_SRC_RGB, gl.BLEND_DST_RGB, gl.BLEND_SRC_ALPHA, gl.BLEND_DST_ALPHA)

	b.group("ClearColor", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		c := vals[0].([4]float32)
		ctx.ClearColor(c[0], c[1], c[2], c[3])
		return "ClearColor"
	}, key(gl.COLOR_CLEAR_VALUE, KindFloat4, [4]float32{}))

	b.group("ClearDepthf", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.ClearDepthf(vals[0].(float32))
		return "ClearDepthf"
	}, key(gl.DEPTH_CLEAR_VALUE, KindFloat, float32(1)))
	b.canonical(clamp01, gl.DEPTH_CLEAR_VALUE)

	b.group("ClearStencil", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.ClearStencil(int(vals[0].(int32)))
		return "ClearStencil"
	}, key(gl.STENCIL_CLEAR_VALUE, KindInt, int32(0)))

	b.group("ColorMask", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		m := vals[0].([4]bool)
		ctx.ColorMask(m[0], m[1], m[2], m[3])
		return "ColorMask"
	}, key(gl.COLOR_WRITEMASK, KindBool4, [4]bool{true, true, true, true}))

	b.group("CullFace", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.CullFace(vals[0].(gl.Enum))
		return "CullFace"
	}, key(gl.CULL_FACE_MODE, KindEnum, gl.BACK))
	b.validate(oneOf(gl.FRONT, gl.BACK, gl.FRONT_AND_BACK), gl.CULL_FACE_MODE)

	b.group("DepthFunc", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.DepthFunc(vals[0].(gl.Enum))
		return "DepthFunc"
	}, key(gl.DEPTH_FUNC, KindEnum, gl.LESS))
	b.validate(oneOf(compareFuncs...), gl.DEPTH_FUNC)

	b.group("DepthMask", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.DepthMask(vals[0].(bool))
		return "DepthMask"
	}, key(gl.DEPTH_WRITEMASK, KindBool, true))

	b.group("DepthRangef", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		r := vals[0].([2]float32)
		ctx.DepthRangef(r[0], r[1])
		return "DepthRangef"
	}, key(gl.DEPTH_RANGE, KindFloat2, [2]float32{0, 1}))
	b.validate(depthRange, gl.DEPTH_RANGE)
	b.canonical(clamp01, gl.DEPTH_RANGE)

	b.group("FrontFace", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.FrontFace(vals[0].(gl.Enum))
		return "FrontFace"
	}, key(gl.FRONT_FACE, KindEnum, gl.CCW))
	b.validate(oneOf(gl.CW, gl.CCW), gl.FRONT_FACE)

	b.hint(gl.GENERATE_MIPMAP_HINT, false)
	b.hint(gl.FRAGMENT_SHADER_DERIVATIVE_HINT, true)

	b.group("LineWidth", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.LineWidth(vals[0].(float32))
		return "LineWidth"
	}, key(gl.LINE_WIDTH, KindFloat, float32(1)))
	b.validate(positive, gl.LINE_WIDTH)

	b.group("PolygonOffset", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.PolygonOffset(vals[0].(float32), vals[1].(float32))
		return "PolygonOffset"
	},
		key(gl.POLYGON_OFFSET_FACTOR, KindFloat, float32(0)),
		key(gl.POLYGON_OFFSET_UNITS, KindFloat, float32(0)))

	b.group("SampleCoverage", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.SampleCoverage(vals[0].(float32), vals[1].(bool))
		return "SampleCoverage"
	},
		key(gl.SAMPLE_COVERAGE_VALUE, KindFloat, float32(1)),
		key(gl.SAMPLE_COVERAGE_INVERT, KindBool, false))
	b.canonical(clamp01, gl.SAMPLE_COVERAGE_VALUE)

	b.group("Scissor", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		r := vals[0].([4]int32)
		ctx.Scissor(int(r[0]), int(r[1]), int(r[2]), int(r[3]))
		return "Scissor"
	}, key(gl.SCISSOR_BOX, KindInt4, defaultBox))

	b.group("Viewport", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		r := vals[0].([4]int32)
		ctx.Viewport(int(r[0]), int(r[1]), int(r[2]), int(r[3]))
		return "Viewport"
	}, key(gl.VIEWPORT, KindInt4, defaultBox))
	b.validate(box, gl.SCISSOR_BOX, gl.VIEWPORT)

	for _, face := range []struct {
		face             gl.Enum
		writemask        gl.Enum
		fn, ref, valmask gl.Enum
		fail, zfail, zok gl.Enum
	}{
		{gl.FRONT, gl.STENCIL_WRITEMASK, gl.STENCIL_FUNC, gl.STENCIL_REF, gl.STENCIL_VALUE_MASK,
			gl.STENCIL_FAIL, gl.STENCIL_PASS_DEPTH_FAIL, gl.STENCIL_PASS_DEPTH_PASS},
		{gl.BACK, gl.STENCIL_BACK_WRITEMASK, gl.STENCIL_BACK_FUNC, gl.STENCIL_BACK_REF, gl.STENCIL_BACK_VALUE_MASK,
			gl.STENCIL_BACK_FAIL, gl.STENCIL_BACK_PASS_DEPTH_FAIL, gl.STENCIL_BACK_PASS_DEPTH_PASS},
	} {
		b.group("StencilMaskSeparate", false, func(ctx gl.Context, vals []Value, _ uint32) string {
			ctx.StencilMaskSeparate(face.face, vals[0].(uint32))
			return "StencilMaskSeparate"
		}, key(face.writemask, KindMask, defaultMask))

		b.group("StencilFuncSeparate", false, func(ctx gl.Context, vals []Value, _ uint32) string {
			ctx.StencilFuncSeparate(face.face, vals[0].(gl.Enum), int(vals[1].(int32)), vals[2].(uint32))
			return "StencilFuncSeparate"
		},
			key(face.fn, KindEnum, gl.ALWAYS),
			key(face.ref, KindInt, int32(0)),
			key(face.valmask, KindMask, defaultMask))

		b.group("StencilOpSeparate", false, func(ctx gl.Context, vals []Value, _ uint32) string {
			ctx.StencilOpSeparate(face.face, vals[0].(gl.Enum), vals[1].(gl.Enum), vals[2].(gl.Enum))
			return "StencilOpSeparate"
		},
			key(face.fail, KindEnum, gl.KEEP),
			key(face.zfail, KindEnum, gl.KEEP),
			key(face.zok, KindEnum, gl.KEEP))

		b.validate(oneOf(compareFuncs...), face.fn)
		b.validate(oneOf(stencilOps...), face.fail, face.zfail, face.zok)
	}

	b.group("UseProgram", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.UseProgram(vals[0].(gl.Handle))
		return "UseProgram"
	}, key(gl.CURRENT_PROGRAM, KindHandle, gl.NoHandle))

	b.buffer(gl.ARRAY_BUFFER_BINDING, gl.ARRAY_BUFFER, false)

	b.group("BindRenderbuffer", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.BindRenderbuffer(gl.RENDERBUFFER, vals[0].(gl.Handle))
		return "BindRenderbuffer"
	}, key(gl.RENDERBUFFER_BINDING, KindHandle, gl.NoHandle))

	if tier == TierBaseline {
		b.group("BindFramebuffer", false, func(ctx gl.Context, vals []Value, _ uint32) string {
			ctx.BindFramebuffer(gl.FRAMEBUFFER, vals[0].(gl.Handle))
			return "BindFramebuffer"
		}, key(gl.FRAMEBUFFER_BINDING, KindHandle, gl.NoHandle))
		t.readAliases[gl.READ_FRAMEBUFFER_BINDING] = gl.FRAMEBUFFER_BINDING
	} else {
		b.group("BindFramebuffer", true, bindFramebuffers,
			key(gl.DRAW_FRAMEBUFFER_BINDING, KindHandle, gl.NoHandle),
			key(gl.READ_FRAMEBUFFER_BINDING, KindHandle, gl.NoHandle))
	}

	b.group("BindVertexArray", true, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.BindVertexArray(vals[0].(gl.Handle))
		return "BindVertexArray"
	}, key(gl.VERTEX_ARRAY_BINDING, KindHandle, gl.NoHandle))

	b.buffer(gl.COPY_READ_BUFFER_BINDING, gl.COPY_READ_BUFFER, true)
	b.buffer(gl.COPY_WRITE_BUFFER_BINDING, gl.COPY_WRITE_BUFFER, true)
	b.buffer(gl.PIXEL_PACK_BUFFER_BINDING, gl.PIXEL_PACK_BUFFER, true)
	b.buffer(gl.PIXEL_UNPACK_BUFFER_BINDING, gl.PIXEL_UNPACK_BUFFER, true)

	b.group("ActiveTexture", false, func(ctx gl.Context, vals []Value, _ uint32) string {
		ctx.ActiveTexture(vals[0].(gl.Enum))
		return "ActiveTexture"
	}, key(gl.ACTIVE_TEXTURE, KindEnum, gl.TEXTURE0))
	b.validate(textureUnit, gl.ACTIVE_TEXTURE)

	b.pixelStore(gl.PACK_ALIGNMENT, KindInt, int32(4), false)
	b.pixelStore(gl.UNPACK_ALIGNMENT, KindInt, int32(4), false)
	b.pixelStore(gl.UNPACK_FLIP_Y_WEBGL, KindBool, false, false)
	b.pixelStore(gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL, KindBool, false, false)
	b.pixelStore(gl.UNPACK_COLORSPACE_CONVERSION_WEBGL, KindEnum, gl.BROWSER_DEFAULT_WEBGL, false)
	for _, pname := range []gl.Enum{
		gl.PACK_ROW_LENGTH, gl.PACK_SKIP_PIXELS, gl.PACK_SKIP_ROWS,
		gl.UNPACK_ROW_LENGTH, gl.UNPACK_IMAGE_HEIGHT, gl.UNPACK_SKIP_PIXELS,
		gl.UNPACK_SKIP_ROWS, gl.UNPACK_SKIP_IMAGES,
	} {
		b.pixelStore(pname, KindInt, int32(0), true)
		b.validate(nonNegative, pname)
	}
	b.validate(oneOf(int32(1), int32(2), int32(4), int32(8)), gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT)
	b.validate(oneOf(gl.NONE, gl.BROWSER_DEFAULT_WEBGL), gl.UNPACK_COLORSPACE_CONVERSION_WEBGL)

	for _, def := range funcDefs(tier) {
		if def.extended && tier == TierBaseline {
			t.extendedFuncs[def.name] = true
			continue
		}
		t.funcs[def.name] = def.build()
		t.funcOrder = append(t.funcOrder, def.name)
	}
	return t
}

// bindFramebuffers writes the extended-tier draw and read bindings. When
// both change to the same framebuffer a single generic bind covers them.
func bindFramebuffers(ctx gl.Context, vals []Value, changed uint32) string {
	draw, read := vals[0].(gl.Handle), vals[1].(gl.Handle)
	if changed == 0b11 && draw == read {
		ctx.BindFramebuffer(gl.FRAMEBUFFER, draw)
		return "BindFramebuffer"
	}
	if changed&0b01 != 0 {
		ctx.BindFramebuffer(gl.DRAW_FRAMEBUFFER, draw)
	}
	if changed&0b10 != 0 {
		ctx.BindFramebuffer(gl.READ_FRAMEBUFFER, read)
	}
	return "BindFramebuffer"
}

// maxTextureUnits is the number of texture units ACTIVE_TEXTURE may
// select, the minimum every WebGL 2 implementation provides.
const maxTextureUnits = 32

var (
	blendFactorValues = []Value{
		gl.ZERO, gl.ONE, gl.SRC_COLOR, gl.ONE_MINUS_SRC_COLOR, gl.DST_COLOR,
		gl.ONE_MINUS_DST_COLOR, gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.DST_ALPHA,
		gl.ONE_MINUS_DST_ALPHA, gl.CONSTANT_COLOR, gl.ONE_MINUS_CONSTANT_COLOR,
		gl.CONSTANT_ALPHA, gl.ONE_MINUS_CONSTANT_ALPHA, gl.SRC_ALPHA_SATURATE,
	}
	compareFuncs = []Value{
		gl.NEVER, gl.LESS, gl.EQUAL, gl.LEQUAL, gl.GREATER, gl.NOTEQUAL, gl.GEQUAL, gl.ALWAYS,
	}
	stencilOps = []Value{
		gl.ZERO, gl.KEEP, gl.REPLACE, gl.INCR, gl.DECR, gl.INVERT, gl.INCR_WRAP, gl.DECR_WRAP,
	}
)

// oneOf accepts exactly the listed values.
func oneOf(allowed ...Value) func(Value) error {
	return func(v Value) error {
		if slices.Contains(allowed, v) {
			return nil
		}
		return ErrInvalidValueShape
	}
}

// blendEquation accepts the blend equations of tier. MIN and MAX exist
// only on the extended tier.
func blendEquation(tier Tier) func(Value) error {
	return func(v Value) error {
		switch v.(gl.Enum) {
		case gl.FUNC_ADD, gl.FUNC_SUBTRACT, gl.FUNC_REVERSE_SUBTRACT:
			return nil
		case gl.MIN, gl.MAX:
			if tier == TierBaseline {
				return ErrCapabilityMismatch
			}
			return nil
		}
		return ErrInvalidValueShape
	}
}

func textureUnit(v Value) error {
	if u := v.(gl.Enum); u >= gl.TEXTURE0 && u < gl.TEXTURE0+maxTextureUnits {
		return nil
	}
	return ErrInvalidValueShape
}

func nonNegative(v Value) error {
	if v.(int32) < 0 {
		return ErrInvalidValueShape
	}
	return nil
}

func positive(v Value) error {
	if !(v.(float32) > 0) {
		return ErrInvalidValueShape
	}
	return nil
}

// depthRange requires near <= far.
func depthRange(v Value) error {
	if r := v.([2]float32); !(r[0] <= r[1]) {
		return ErrInvalidValueShape
	}
	return nil
}

// box requires a non-negative width and height.
func box(v Value) error {
	if r := v.([4]int32); r[2] < 0 || r[3] < 0 {
		return ErrInvalidValueShape
	}
	return nil
}

// clamp01 clamps every component of a float value to [0, 1], the way the
// context stores colors, depth values and coverage.
func clamp01(v Value) Value {
	c := func(f float32) float32 { return min(max(f, 0), 1) }
	switch x := v.(type) {
	case float32:
		return c(x)
	case [2]float32:
		return [2]float32{c(x[0]), c(x[1])}
	case [4]float32:
		return [4]float32{c(x[0]), c(x[1]), c(x[2]), c(x[3])}
	}
	return v
}

// queryFor returns the live query reading a key of the given kind.
func queryFor(k Kind) func(gl.Context, gl.Enum) Value {
	switch k {
	case KindBool:
		return func(ctx gl.Context, key gl.Enum) Value { return ctx.GetBoolean(key) }
	case KindBool4:
		return func(ctx gl.Context, key gl.Enum) Value { return ctx.GetBoolean4(key) }
	case KindFloat:
		return func(ctx gl.Context, key gl.Enum) Value { return ctx.GetFloat(key) }
	case KindFloat2:
		return func(ctx gl.Context, key gl.Enum) Value { return ctx.GetFloat2(key) }
	case KindFloat4:
		return func(ctx gl.Context, key gl.Enum) Value { return ctx.GetFloat4(key) }
	case KindEnum:
		return func(ctx gl.Context, key gl.Enum) Value { return gl.Enum(ctx.GetInteger(key)) }
	case KindInt:
		return func(ctx gl.Context, key gl.Enum) Value { return int32(ctx.GetInteger(key)) }
	case KindMask:
		return func(ctx gl.Context, key gl.Enum) Value { return uint32(ctx.GetInteger(key)) }
	case KindInt4:
		return func(ctx gl.Context, key gl.Enum) Value {
			v := ctx.GetInteger4(key)
			return [4]int32{int32(v[0]), int32(v[1]), int32(v[2]), int32(v[3])}
		}
	case KindHandle:
		return func(ctx gl.Context, key gl.Enum) Value { return ctx.GetBinding(key) }
	}
	panic("glstate: no query for kind " + k.String())
}
