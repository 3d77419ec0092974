package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/glstate/gl"
)

// Recording is an immutable list of recorded calls.
type Recording struct {
	commands []Command
}

// Commands returns a copy of the recorded calls.
func (r *Recording) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded calls.
func (r *Recording) Len() int { return len(r.commands) }

// String returns the recorded calls, one per line.
func (r *Recording) String() string {
	var sb strings.Builder
	for _, c := range r.commands {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Playback issues every recorded call that did not raise an error onto ctx.
// It stops at the first call whose arguments do not match the entry point.
func (r *Recording) Playback(ctx gl.Context) error {
	for i, c := range r.commands {
		if c.Err != gl.NO_ERROR {
			continue
		}
		if err := replay(ctx, c); err != nil {
			return fmt.Errorf("recording: command %d: %w", i, err)
		}
	}
	return nil
}

type argReader struct {
	args []any
	i    int
	err  error
}

func next[T any](a *argReader) T {
	var zero T
	if a.err != nil {
		return zero
	}
	if a.i >= len(a.args) {
		a.err = fmt.Errorf("missing argument %d", a.i)
		return zero
	}
	v, ok := a.args[a.i].(T)
	if !ok {
		a.err = fmt.Errorf("argument %d: got %T, want %T", a.i, a.args[a.i], zero)
		return zero
	}
	a.i++
	return v
}

func replay(ctx gl.Context, c Command) error {
	a := &argReader{args: c.Args}
	enum := next[gl.Enum]
	f32 := next[float32]
	handle := next[gl.Handle]

	switch c.Op {
	case OpEnable:
		if e := enum(a); a.err == nil {
			ctx.Enable(e)
		}
	case OpDisable:
		if e := enum(a); a.err == nil {
			ctx.Disable(e)
		}
	case OpBlendColor:
		r, g, b, al := f32(a), f32(a), f32(a), f32(a)
		if a.err == nil {
			ctx.BlendColor(r, g, b, al)
		}
	case OpBlendEquationSeparate:
		rgb, alpha := enum(a), enum(a)
		if a.err == nil {
			ctx.BlendEquationSeparate(rgb, alpha)
		}
	case OpBlendFuncSeparate:
		sr, dr, sa, da := enum(a), enum(a), enum(a), enum(a)
		if a.err == nil {
			ctx.BlendFuncSeparate(sr, dr, sa, da)
		}
	case OpClearColor:
		r, g, b, al := f32(a), f32(a), f32(a), f32(a)
		if a.err == nil {
			ctx.ClearColor(r, g, b, al)
		}
	case OpClearDepthf:
		if d := f32(a); a.err == nil {
			ctx.ClearDepthf(d)
		}
	case OpClearStencil:
		if s := next[int](a); a.err == nil {
			ctx.ClearStencil(s)
		}
	case OpColorMask:
		r, g, b, al := next[bool](a), next[bool](a), next[bool](a), next[bool](a)
		if a.err == nil {
			ctx.ColorMask(r, g, b, al)
		}
	case OpCullFace:
		if e := enum(a); a.err == nil {
			ctx.CullFace(e)
		}
	case OpDepthFunc:
		if e := enum(a); a.err == nil {
			ctx.DepthFunc(e)
		}
	case OpDepthMask:
		if m := next[bool](a); a.err == nil {
			ctx.DepthMask(m)
		}
	case OpDepthRangef:
		n, f := f32(a), f32(a)
		if a.err == nil {
			ctx.DepthRangef(n, f)
		}
	case OpFrontFace:
		if e := enum(a); a.err == nil {
			ctx.FrontFace(e)
		}
	case OpHint:
		target, mode := enum(a), enum(a)
		if a.err == nil {
			ctx.Hint(target, mode)
		}
	case OpLineWidth:
		if w := f32(a); a.err == nil {
			ctx.LineWidth(w)
		}
	case OpPolygonOffset:
		factor, units := f32(a), f32(a)
		if a.err == nil {
			ctx.PolygonOffset(factor, units)
		}
	case OpSampleCoverage:
		v, inv := f32(a), next[bool](a)
		if a.err == nil {
			ctx.SampleCoverage(v, inv)
		}
	case OpScissor, OpViewport:
		x, y, w, h := next[int](a), next[int](a), next[int](a), next[int](a)
		if a.err != nil {
			break
		}
		if c.Op == OpScissor {
			ctx.Scissor(x, y, w, h)
		} else {
			ctx.Viewport(x, y, w, h)
		}
	case OpStencilFuncSeparate:
		face, fn, ref, mask := enum(a), enum(a), next[int](a), next[uint32](a)
		if a.err == nil {
			ctx.StencilFuncSeparate(face, fn, ref, mask)
		}
	case OpStencilMaskSeparate:
		face, mask := enum(a), next[uint32](a)
		if a.err == nil {
			ctx.StencilMaskSeparate(face, mask)
		}
	case OpStencilOpSeparate:
		face, sfail, dpfail, dppass := enum(a), enum(a), enum(a), enum(a)
		if a.err == nil {
			ctx.StencilOpSeparate(face, sfail, dpfail, dppass)
		}
	case OpPixelStorei:
		pname, param := enum(a), next[int](a)
		if a.err == nil {
			ctx.PixelStorei(pname, param)
		}
	case OpActiveTexture:
		if e := enum(a); a.err == nil {
			ctx.ActiveTexture(e)
		}
	case OpBindBuffer, OpBindFramebuffer, OpBindRenderbuffer:
		target, h := enum(a), handle(a)
		if a.err != nil {
			break
		}
		switch c.Op {
		case OpBindBuffer:
			ctx.BindBuffer(target, h)
		case OpBindFramebuffer:
			ctx.BindFramebuffer(target, h)
		default:
			ctx.BindRenderbuffer(target, h)
		}
	case OpBindVertexArray:
		if h := handle(a); a.err == nil {
			ctx.BindVertexArray(h)
		}
	case OpUseProgram:
		if h := handle(a); a.err == nil {
			ctx.UseProgram(h)
		}
	default:
		return fmt.Errorf("unknown op %d", c.Op)
	}
	if a.err != nil {
		return fmt.Errorf("%s: %w", c.Op, a.err)
	}
	return nil
}
