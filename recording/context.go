// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"github.com/gogpu/glstate/gl"
)

// Context is an in-memory gl.Context. See the package documentation.
type Context struct {
	extended      bool
	width, height int

	caps     map[gl.Enum]bool
	bools    map[gl.Enum]bool
	bool4    map[gl.Enum][4]bool
	ints     map[gl.Enum]int
	int4     map[gl.Enum][4]int
	floats   map[gl.Enum]float32
	float2   map[gl.Enum][2]float32
	float4   map[gl.Enum][4]float32
	bindings map[gl.Enum]gl.Handle

	objects    map[gl.Handle]ObjectKind
	nextHandle gl.Handle

	// err is the oldest error not yet returned by GetError.
	err      gl.Enum
	failNext map[Op]gl.Enum

	commands []Command
	counts   [opCount]int
	queries  map[gl.Enum]int
}

// Option configures a Context.
type Option func(*Context)

// WithExtended selects WebGL 2 behavior: independent draw and read
// framebuffers, vertex arrays, copy and pixel buffers, MIN/MAX blend
// equations and the extended pixel store modes.
func WithExtended(extended bool) Option {
	return func(c *Context) {
		c.extended = extended
	}
}

// WithSize sets the drawing buffer size, which is the initial viewport and
// scissor box. The default is 1024x1024.
func WithSize(width, height int) Option {
	return func(c *Context) {
		c.width, c.height = width, height
	}
}

// New creates a context in the initial GL state.
func New(opts ...Option) *Context {
	c := &Context{
		width:      1024,
		height:     1024,
		objects:    make(map[gl.Handle]ObjectKind),
		nextHandle: 1,
		failNext:   make(map[Op]gl.Enum),
		queries:    make(map[gl.Enum]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.initState()
	return c
}

// Extended reports whether the context behaves like WebGL 2.
func (c *Context) Extended() bool { return c.extended }

func (c *Context) initState() {
	c.caps = map[gl.Enum]bool{
		gl.BLEND:                    false,
		gl.CULL_FACE:                false,
		gl.DEPTH_TEST:               false,
		gl.DITHER:                   true,
		gl.POLYGON_OFFSET_FILL:      false,
		gl.SAMPLE_ALPHA_TO_COVERAGE: false,
		gl.SAMPLE_COVERAGE:          false,
		gl.SCISSOR_TEST:             false,
		gl.STENCIL_TEST:             false,
	}
	c.bools = map[gl.Enum]bool{
		gl.DEPTH_WRITEMASK:                true,
		gl.SAMPLE_COVERAGE_INVERT:         false,
		gl.UNPACK_FLIP_Y_WEBGL:            false,
		gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL: false,
	}
	c.bool4 = map[gl.Enum][4]bool{
		gl.COLOR_WRITEMASK: {true, true, true, true},
	}
	c.ints = map[gl.Enum]int{
		gl.BLEND_EQUATION_RGB:                 int(gl.FUNC_ADD),
		gl.BLEND_EQUATION_ALPHA:               int(gl.FUNC_ADD),
		gl.BLEND_SRC_RGB:                      int(gl.ONE),
		gl.BLEND_DST_RGB:                      int(gl.ZERO),
		gl.BLEND_SRC_ALPHA:                    int(gl.ONE),
		gl.BLEND_DST_ALPHA:                    int(gl.ZERO),
		gl.STENCIL_CLEAR_VALUE:                0,
		gl.CULL_FACE_MODE:                     int(gl.BACK),
		gl.DEPTH_FUNC:                         int(gl.LESS),
		gl.FRONT_FACE:                         int(gl.CCW),
		gl.GENERATE_MIPMAP_HINT:               int(gl.DONT_CARE),
		gl.STENCIL_WRITEMASK:                  int(^uint32(0)),
		gl.STENCIL_BACK_WRITEMASK:             int(^uint32(0)),
		gl.STENCIL_FUNC:                       int(gl.ALWAYS),
		gl.STENCIL_REF:                        0,
		gl.STENCIL_VALUE_MASK:                 int(^uint32(0)),
		gl.STENCIL_BACK_FUNC:                  int(gl.ALWAYS),
		gl.STENCIL_BACK_REF:                   0,
		gl.STENCIL_BACK_VALUE_MASK:            int(^uint32(0)),
		gl.STENCIL_FAIL:                       int(gl.KEEP),
		gl.STENCIL_PASS_DEPTH_FAIL:            int(gl.KEEP),
		gl.STENCIL_PASS_DEPTH_PASS:            int(gl.KEEP),
		gl.STENCIL_BACK_FAIL:                  int(gl.KEEP),
		gl.STENCIL_BACK_PASS_DEPTH_FAIL:       int(gl.KEEP),
		gl.STENCIL_BACK_PASS_DEPTH_PASS:       int(gl.KEEP),
		gl.ACTIVE_TEXTURE:                     int(gl.TEXTURE0),
		gl.PACK_ALIGNMENT:                     4,
		gl.UNPACK_ALIGNMENT:                   4,
		gl.UNPACK_COLORSPACE_CONVERSION_WEBGL: int(gl.BROWSER_DEFAULT_WEBGL),
	}
	box := [4]int{0, 0, c.width, c.height}
	c.int4 = map[gl.Enum][4]int{
		gl.VIEWPORT:    box,
		gl.SCISSOR_BOX: box,
	}
	c.floats = map[gl.Enum]float32{
		gl.DEPTH_CLEAR_VALUE:     1,
		gl.LINE_WIDTH:            1,
		gl.POLYGON_OFFSET_FACTOR: 0,
		gl.POLYGON_OFFSET_UNITS:  0,
		gl.SAMPLE_COVERAGE_VALUE: 1,
	}
	c.float2 = map[gl.Enum][2]float32{
		gl.DEPTH_RANGE: {0, 1},
	}
	c.float4 = map[gl.Enum][4]float32{
		gl.BLEND_COLOR:       {},
		gl.COLOR_CLEAR_VALUE: {},
	}
	c.bindings = map[gl.Enum]gl.Handle{
		gl.CURRENT_PROGRAM:      gl.NoHandle,
		gl.ARRAY_BUFFER_BINDING: gl.NoHandle,
		gl.RENDERBUFFER_BINDING: gl.NoHandle,
		gl.FRAMEBUFFER_BINDING:  gl.NoHandle,
	}

	if !c.extended {
		return
	}
	c.caps[gl.RASTERIZER_DISCARD] = false
	c.ints[gl.FRAGMENT_SHADER_DERIVATIVE_HINT] = int(gl.DONT_CARE)
	for _, pname := range extendedPixelStore {
		c.ints[pname] = 0
	}
	for _, b := range []gl.Enum{
		gl.READ_FRAMEBUFFER_BINDING, gl.VERTEX_ARRAY_BINDING,
		gl.COPY_READ_BUFFER_BINDING, gl.COPY_WRITE_BUFFER_BINDING,
		gl.PIXEL_PACK_BUFFER_BINDING, gl.PIXEL_UNPACK_BUFFER_BINDING,
	} {
		c.bindings[b] = gl.NoHandle
	}
}

var extendedPixelStore = []gl.Enum{
	gl.PACK_ROW_LENGTH, gl.PACK_SKIP_PIXELS, gl.PACK_SKIP_ROWS,
	gl.UNPACK_ROW_LENGTH, gl.UNPACK_IMAGE_HEIGHT, gl.UNPACK_SKIP_PIXELS,
	gl.UNPACK_SKIP_ROWS, gl.UNPACK_SKIP_IMAGES,
}

// --------------------------------------------------------------------------
// Log and counters
// --------------------------------------------------------------------------

// Commands returns the calls recorded since the last ResetLog.
func (c *Context) Commands() []Command {
	out := make([]Command, len(c.commands))
	copy(out, c.commands)
	return out
}

// Writes returns the number of state-changing calls since the last
// ResetLog, including calls that raised an error.
func (c *Context) Writes() int { return len(c.commands) }

// Count returns the number of calls of op since the last ResetLog.
func (c *Context) Count(op Op) int {
	if op >= opCount {
		return 0
	}
	return c.counts[op]
}

// Queries returns the number of state queries since the last ResetLog.
// With pnames, only queries of those names are counted.
func (c *Context) Queries(pnames ...gl.Enum) int {
	n := 0
	if len(pnames) == 0 {
		for _, q := range c.queries {
			n += q
		}
		return n
	}
	for _, p := range pnames {
		n += c.queries[p]
	}
	return n
}

// ResetLog clears the command log and all counters. The GL state is kept.
func (c *Context) ResetLog() {
	c.commands = c.commands[:0]
	c.counts = [opCount]int{}
	clear(c.queries)
}

// FailNext makes the next call of op raise code instead of changing state.
func (c *Context) FailNext(op Op, code gl.Enum) {
	c.failNext[op] = code
}

// Finish returns a Recording of the calls logged so far.
func (c *Context) Finish() *Recording {
	return &Recording{commands: c.Commands()}
}

// begin logs a call and reports whether it may change state. It returns
// false when an injected failure is pending for op.
func (c *Context) begin(op Op, args ...any) bool {
	c.counts[op]++
	c.commands = append(c.commands, Command{Op: op, Args: args})
	if code, ok := c.failNext[op]; ok {
		delete(c.failNext, op)
		c.reject(code)
		return false
	}
	return true
}

// raise records a GL error. Only the first error is kept until GetError.
func (c *Context) raise(code gl.Enum) {
	if c.err == gl.NO_ERROR {
		c.err = code
	}
}

// reject raises code for the call logged last.
func (c *Context) reject(code gl.Enum) {
	c.raise(code)
	c.commands[len(c.commands)-1].Err = code
}

func (c *Context) query(pname gl.Enum) {
	c.queries[pname]++
}

// GetError returns and clears the pending error.
func (c *Context) GetError() gl.Enum {
	err := c.err
	c.err = gl.NO_ERROR
	return err
}
