package recording

import (
	"strings"
	"testing"

	"github.com/gogpu/glstate/gl"
)

func TestFinish(t *testing.T) {
	c := New()
	c.Enable(gl.BLEND)
	c.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ZERO)

	r := c.Finish()
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	// Later calls do not alter a finished recording.
	c.Disable(gl.BLEND)
	if r.Len() != 2 {
		t.Errorf("Len() = %d after more calls, want 2", r.Len())
	}

	want := "Enable(BLEND)\nBlendFuncSeparate(SRC_ALPHA, ONE_MINUS_SRC_ALPHA, ONE, ZERO)\n"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPlayback(t *testing.T) {
	src := New(WithExtended(true))
	fb := src.CreateFramebuffer()
	src.Enable(gl.DEPTH_TEST)
	src.DepthFunc(gl.GEQUAL)
	src.ColorMask(true, false, true, false)
	src.Viewport(1, 2, 3, 4)
	src.StencilFuncSeparate(gl.FRONT_AND_BACK, gl.NOTEQUAL, 1, 0xF0)
	src.SampleCoverage(0.5, true)
	src.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	src.Hint(gl.FRAGMENT_SHADER_DERIVATIVE_HINT, gl.NICEST)
	src.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.Handle())
	src.Viewport(0, 0, -5, 0) // rejected, not replayed

	dst := New(WithExtended(true))
	dst.CreateFramebuffer()

	if err := src.Finish().Playback(dst); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if err := dst.GetError(); err != gl.NO_ERROR {
		t.Fatalf("GetError() = %s after playback", gl.ErrorString(err))
	}
	if dst.Writes() != 9 {
		t.Errorf("Writes() = %d, want 9", dst.Writes())
	}
	if !dst.IsEnabled(gl.DEPTH_TEST) {
		t.Error("DEPTH_TEST not replayed")
	}
	if got := dst.GetInteger4(gl.VIEWPORT); got != [4]int{1, 2, 3, 4} {
		t.Errorf("VIEWPORT = %v", got)
	}
	if got := dst.GetBoolean4(gl.COLOR_WRITEMASK); got != [4]bool{true, false, true, false} {
		t.Errorf("COLOR_WRITEMASK = %v", got)
	}
	if got := dst.GetInteger(gl.STENCIL_BACK_VALUE_MASK); got != 0xF0 {
		t.Errorf("STENCIL_BACK_VALUE_MASK = 0x%X", got)
	}
	if got := dst.GetBinding(gl.DRAW_FRAMEBUFFER_BINDING); got != fb.Handle() {
		t.Errorf("DRAW_FRAMEBUFFER_BINDING = %v, want %v", got, fb.Handle())
	}
}

func TestPlaybackBadArguments(t *testing.T) {
	r := &Recording{commands: []Command{
		{Op: OpDepthFunc, Args: []any{"LESS"}},
	}}
	err := r.Playback(New())
	if err == nil {
		t.Fatal("Playback should fail on a mistyped argument")
	}
	if !strings.Contains(err.Error(), "DepthFunc") {
		t.Errorf("error %q should name the op", err)
	}

	r = &Recording{commands: []Command{{Op: OpViewport, Args: []any{0, 0}}}}
	if err := r.Playback(New()); err == nil {
		t.Error("Playback should fail on missing arguments")
	}
}
