package recording

import "github.com/gogpu/glstate/gl"

var _ gl.Context = (*Context)(nil)

func (c *Context) capability(capability gl.Enum) bool {
	_, ok := c.caps[capability]
	return ok
}

func (c *Context) Enable(capability gl.Enum) {
	if !c.begin(OpEnable, capability) {
		return
	}
	if !c.capability(capability) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.caps[capability] = true
}

func (c *Context) Disable(capability gl.Enum) {
	if !c.begin(OpDisable, capability) {
		return
	}
	if !c.capability(capability) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.caps[capability] = false
}

func (c *Context) BlendColor(r, g, b, a float32) {
	if !c.begin(OpBlendColor, r, g, b, a) {
		return
	}
	c.float4[gl.BLEND_COLOR] = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

func (c *Context) validEquation(mode gl.Enum) bool {
	switch mode {
	case gl.FUNC_ADD, gl.FUNC_SUBTRACT, gl.FUNC_REVERSE_SUBTRACT:
		return true
	case gl.MIN, gl.MAX:
		return c.extended
	}
	return false
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	if !c.begin(OpBlendEquationSeparate, modeRGB, modeAlpha) {
		return
	}
	if !c.validEquation(modeRGB) || !c.validEquation(modeAlpha) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.ints[gl.BLEND_EQUATION_RGB] = int(modeRGB)
	c.ints[gl.BLEND_EQUATION_ALPHA] = int(modeAlpha)
}

func validFactor(f gl.Enum) bool {
	switch f {
	case gl.ZERO, gl.ONE, gl.SRC_COLOR, gl.ONE_MINUS_SRC_COLOR, gl.SRC_ALPHA,
		gl.ONE_MINUS_SRC_ALPHA, gl.DST_ALPHA, gl.ONE_MINUS_DST_ALPHA, gl.DST_COLOR,
		gl.ONE_MINUS_DST_COLOR, gl.SRC_ALPHA_SATURATE, gl.CONSTANT_COLOR,
		gl.ONE_MINUS_CONSTANT_COLOR, gl.CONSTANT_ALPHA, gl.ONE_MINUS_CONSTANT_ALPHA:
		return true
	}
	return false
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	if !c.begin(OpBlendFuncSeparate, srcRGB, dstRGB, srcAlpha, dstAlpha) {
		return
	}
	for _, f := range []gl.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha} {
		if !validFactor(f) {
			c.reject(gl.INVALID_ENUM)
			return
		}
	}
	c.ints[gl.BLEND_SRC_RGB] = int(srcRGB)
	c.ints[gl.BLEND_DST_RGB] = int(dstRGB)
	c.ints[gl.BLEND_SRC_ALPHA] = int(srcAlpha)
	c.ints[gl.BLEND_DST_ALPHA] = int(dstAlpha)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	if !c.begin(OpClearColor, r, g, b, a) {
		return
	}
	c.float4[gl.COLOR_CLEAR_VALUE] = [4]float32{r, g, b, a}
}

func (c *Context) ClearDepthf(d float32) {
	if !c.begin(OpClearDepthf, d) {
		return
	}
	c.floats[gl.DEPTH_CLEAR_VALUE] = clamp01(d)
}

func (c *Context) ClearStencil(s int) {
	if !c.begin(OpClearStencil, s) {
		return
	}
	c.ints[gl.STENCIL_CLEAR_VALUE] = s
}

func (c *Context) ColorMask(r, g, b, a bool) {
	if !c.begin(OpColorMask, r, g, b, a) {
		return
	}
	c.bool4[gl.COLOR_WRITEMASK] = [4]bool{r, g, b, a}
}

func validFace(face gl.Enum) bool {
	return face == gl.FRONT || face == gl.BACK || face == gl.FRONT_AND_BACK
}

func (c *Context) CullFace(mode gl.Enum) {
	if !c.begin(OpCullFace, mode) {
		return
	}
	if !validFace(mode) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.ints[gl.CULL_FACE_MODE] = int(mode)
}

func validCompare(fn gl.Enum) bool {
	return fn >= gl.NEVER && fn <= gl.ALWAYS
}

func (c *Context) DepthFunc(fn gl.Enum) {
	if !c.begin(OpDepthFunc, fn) {
		return
	}
	if !validCompare(fn) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.ints[gl.DEPTH_FUNC] = int(fn)
}

func (c *Context) DepthMask(mask bool) {
	if !c.begin(OpDepthMask, mask) {
		return
	}
	c.bools[gl.DEPTH_WRITEMASK] = mask
}

func (c *Context) DepthRangef(near, far float32) {
	if !c.begin(OpDepthRangef, near, far) {
		return
	}
	if near > far {
		c.reject(gl.INVALID_OPERATION)
		return
	}
	c.float2[gl.DEPTH_RANGE] = [2]float32{clamp01(near), clamp01(far)}
}

func (c *Context) FrontFace(mode gl.Enum) {
	if !c.begin(OpFrontFace, mode) {
		return
	}
	if mode != gl.CW && mode != gl.CCW {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.ints[gl.FRONT_FACE] = int(mode)
}

func (c *Context) Hint(target, mode gl.Enum) {
	if !c.begin(OpHint, target, mode) {
		return
	}
	if _, ok := c.ints[target]; !ok || (target != gl.GENERATE_MIPMAP_HINT && target != gl.FRAGMENT_SHADER_DERIVATIVE_HINT) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	if mode != gl.DONT_CARE && mode != gl.FASTEST && mode != gl.NICEST {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.ints[target] = int(mode)
}

func (c *Context) LineWidth(w float32) {
	if !c.begin(OpLineWidth, w) {
		return
	}
	if w <= 0 {
		c.reject(gl.INVALID_VALUE)
		return
	}
	c.floats[gl.LINE_WIDTH] = w
}

func (c *Context) PolygonOffset(factor, units float32) {
	if !c.begin(OpPolygonOffset, factor, units) {
		return
	}
	c.floats[gl.POLYGON_OFFSET_FACTOR] = factor
	c.floats[gl.POLYGON_OFFSET_UNITS] = units
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	if !c.begin(OpSampleCoverage, value, invert) {
		return
	}
	c.floats[gl.SAMPLE_COVERAGE_VALUE] = clamp01(value)
	c.bools[gl.SAMPLE_COVERAGE_INVERT] = invert
}

func (c *Context) Scissor(x, y, width, height int) {
	if !c.begin(OpScissor, x, y, width, height) {
		return
	}
	if width < 0 || height < 0 {
		c.reject(gl.INVALID_VALUE)
		return
	}
	c.int4[gl.SCISSOR_BOX] = [4]int{x, y, width, height}
}

func (c *Context) Viewport(x, y, width, height int) {
	if !c.begin(OpViewport, x, y, width, height) {
		return
	}
	if width < 0 || height < 0 {
		c.reject(gl.INVALID_VALUE)
		return
	}
	c.int4[gl.VIEWPORT] = [4]int{x, y, width, height}
}

// faces returns the per-face state names selected by face: front names
// first, back names second.
func faces(face gl.Enum, front, back gl.Enum) []gl.Enum {
	switch face {
	case gl.FRONT:
		return []gl.Enum{front}
	case gl.BACK:
		return []gl.Enum{back}
	case gl.FRONT_AND_BACK:
		return []gl.Enum{front, back}
	}
	return nil
}

func (c *Context) StencilFuncSeparate(face, fn gl.Enum, ref int, mask uint32) {
	if !c.begin(OpStencilFuncSeparate, face, fn, ref, mask) {
		return
	}
	if !validFace(face) || !validCompare(fn) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	for _, k := range faces(face, gl.STENCIL_FUNC, gl.STENCIL_BACK_FUNC) {
		c.ints[k] = int(fn)
	}
	for _, k := range faces(face, gl.STENCIL_REF, gl.STENCIL_BACK_REF) {
		c.ints[k] = ref
	}
	for _, k := range faces(face, gl.STENCIL_VALUE_MASK, gl.STENCIL_BACK_VALUE_MASK) {
		c.ints[k] = int(mask)
	}
}

func (c *Context) StencilMaskSeparate(face gl.Enum, mask uint32) {
	if !c.begin(OpStencilMaskSeparate, face, mask) {
		return
	}
	if !validFace(face) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	for _, k := range faces(face, gl.STENCIL_WRITEMASK, gl.STENCIL_BACK_WRITEMASK) {
		c.ints[k] = int(mask)
	}
}

func validStencilOp(op gl.Enum) bool {
	switch op {
	case gl.ZERO, gl.KEEP, gl.REPLACE, gl.INCR, gl.DECR, gl.INVERT, gl.INCR_WRAP, gl.DECR_WRAP:
		return true
	}
	return false
}

func (c *Context) StencilOpSeparate(face, sfail, dpfail, dppass gl.Enum) {
	if !c.begin(OpStencilOpSeparate, face, sfail, dpfail, dppass) {
		return
	}
	if !validFace(face) || !validStencilOp(sfail) || !validStencilOp(dpfail) || !validStencilOp(dppass) {
		c.reject(gl.INVALID_ENUM)
		return
	}
	for _, k := range faces(face, gl.STENCIL_FAIL, gl.STENCIL_BACK_FAIL) {
		c.ints[k] = int(sfail)
	}
	for _, k := range faces(face, gl.STENCIL_PASS_DEPTH_FAIL, gl.STENCIL_BACK_PASS_DEPTH_FAIL) {
		c.ints[k] = int(dpfail)
	}
	for _, k := range faces(face, gl.STENCIL_PASS_DEPTH_PASS, gl.STENCIL_BACK_PASS_DEPTH_PASS) {
		c.ints[k] = int(dppass)
	}
}

func (c *Context) PixelStorei(pname gl.Enum, param int) {
	if !c.begin(OpPixelStorei, pname, param) {
		return
	}
	switch pname {
	case gl.UNPACK_FLIP_Y_WEBGL, gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		c.bools[pname] = param != 0
		return
	case gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT:
		if param != 1 && param != 2 && param != 4 && param != 8 {
			c.reject(gl.INVALID_VALUE)
			return
		}
	case gl.UNPACK_COLORSPACE_CONVERSION_WEBGL:
		if gl.Enum(param) != gl.NONE && gl.Enum(param) != gl.BROWSER_DEFAULT_WEBGL {
			c.reject(gl.INVALID_ENUM)
			return
		}
	default:
		if _, ok := c.ints[pname]; !ok || !isExtendedPixelStore(pname) {
			c.reject(gl.INVALID_ENUM)
			return
		}
		if param < 0 {
			c.reject(gl.INVALID_VALUE)
			return
		}
	}
	c.ints[pname] = param
}

func isExtendedPixelStore(pname gl.Enum) bool {
	for _, p := range extendedPixelStore {
		if p == pname {
			return true
		}
	}
	return false
}

// --------------------------------------------------------------------------
// Bindings
// --------------------------------------------------------------------------

func (c *Context) ActiveTexture(unit gl.Enum) {
	if !c.begin(OpActiveTexture, unit) {
		return
	}
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+32 {
		c.reject(gl.INVALID_ENUM)
		return
	}
	c.ints[gl.ACTIVE_TEXTURE] = int(unit)
}

var bufferTargets = map[gl.Enum]gl.Enum{
	gl.ARRAY_BUFFER:        gl.ARRAY_BUFFER_BINDING,
	gl.COPY_READ_BUFFER:    gl.COPY_READ_BUFFER_BINDING,
	gl.COPY_WRITE_BUFFER:   gl.COPY_WRITE_BUFFER_BINDING,
	gl.PIXEL_PACK_BUFFER:   gl.PIXEL_PACK_BUFFER_BINDING,
	gl.PIXEL_UNPACK_BUFFER: gl.PIXEL_UNPACK_BUFFER_BINDING,
}

func (c *Context) BindBuffer(target gl.Enum, buf gl.Handle) {
	if !c.begin(OpBindBuffer, target, buf) {
		return
	}
	binding, ok := bufferTargets[target]
	if _, exists := c.bindings[binding]; !ok || !exists {
		c.reject(gl.INVALID_ENUM)
		return
	}
	if !c.validObject(buf, KindBuffer) {
		c.reject(gl.INVALID_OPERATION)
		return
	}
	c.bindings[binding] = buf
}

func (c *Context) BindFramebuffer(target gl.Enum, fb gl.Handle) {
	if !c.begin(OpBindFramebuffer, target, fb) {
		return
	}
	var targets []gl.Enum
	switch {
	case target == gl.FRAMEBUFFER && c.extended:
		targets = []gl.Enum{gl.DRAW_FRAMEBUFFER_BINDING, gl.READ_FRAMEBUFFER_BINDING}
	case target == gl.FRAMEBUFFER:
		targets = []gl.Enum{gl.FRAMEBUFFER_BINDING}
	case target == gl.DRAW_FRAMEBUFFER && c.extended:
		targets = []gl.Enum{gl.DRAW_FRAMEBUFFER_BINDING}
	case target == gl.READ_FRAMEBUFFER && c.extended:
		targets = []gl.Enum{gl.READ_FRAMEBUFFER_BINDING}
	default:
		c.reject(gl.INVALID_ENUM)
		return
	}
	if !c.validObject(fb, KindFramebuffer) {
		c.reject(gl.INVALID_OPERATION)
		return
	}
	for _, b := range targets {
		c.bindings[b] = fb
	}
}

func (c *Context) BindRenderbuffer(target gl.Enum, rb gl.Handle) {
	if !c.begin(OpBindRenderbuffer, target, rb) {
		return
	}
	if target != gl.RENDERBUFFER {
		c.reject(gl.INVALID_ENUM)
		return
	}
	if !c.validObject(rb, KindRenderbuffer) {
		c.reject(gl.INVALID_OPERATION)
		return
	}
	c.bindings[gl.RENDERBUFFER_BINDING] = rb
}

func (c *Context) BindVertexArray(va gl.Handle) {
	if !c.begin(OpBindVertexArray, va) {
		return
	}
	if !c.extended || !c.validObject(va, KindVertexArray) {
		c.reject(gl.INVALID_OPERATION)
		return
	}
	c.bindings[gl.VERTEX_ARRAY_BINDING] = va
}

func (c *Context) UseProgram(p gl.Handle) {
	if !c.begin(OpUseProgram, p) {
		return
	}
	if !c.validObject(p, KindProgram) {
		c.reject(gl.INVALID_OPERATION)
		return
	}
	c.bindings[gl.CURRENT_PROGRAM] = p
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

func (c *Context) IsEnabled(capability gl.Enum) bool {
	c.query(capability)
	on, ok := c.caps[capability]
	if !ok {
		c.raise(gl.INVALID_ENUM)
	}
	return on
}

func (c *Context) GetBoolean(pname gl.Enum) bool {
	c.query(pname)
	if v, ok := c.bools[pname]; ok {
		return v
	}
	if v, ok := c.caps[pname]; ok {
		return v
	}
	c.raise(gl.INVALID_ENUM)
	return false
}

func (c *Context) GetBoolean4(pname gl.Enum) [4]bool {
	c.query(pname)
	v, ok := c.bool4[pname]
	if !ok {
		c.raise(gl.INVALID_ENUM)
	}
	return v
}

func (c *Context) GetInteger(pname gl.Enum) int {
	c.query(pname)
	if v, ok := c.ints[pname]; ok {
		return v
	}
	if v, ok := c.bindings[pname]; ok {
		return int(v)
	}
	c.raise(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetInteger4(pname gl.Enum) [4]int {
	c.query(pname)
	v, ok := c.int4[pname]
	if !ok {
		c.raise(gl.INVALID_ENUM)
	}
	return v
}

func (c *Context) GetFloat(pname gl.Enum) float32 {
	c.query(pname)
	if v, ok := c.floats[pname]; ok {
		return v
	}
	c.raise(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetFloat2(pname gl.Enum) [2]float32 {
	c.query(pname)
	v, ok := c.float2[pname]
	if !ok {
		c.raise(gl.INVALID_ENUM)
	}
	return v
}

func (c *Context) GetFloat4(pname gl.Enum) [4]float32 {
	c.query(pname)
	v, ok := c.float4[pname]
	if !ok {
		c.raise(gl.INVALID_ENUM)
	}
	return v
}

func (c *Context) GetBinding(pname gl.Enum) gl.Handle {
	c.query(pname)
	v, ok := c.bindings[pname]
	if !ok {
		c.raise(gl.INVALID_ENUM)
	}
	return v
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
