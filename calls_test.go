package glstate

import (
	"errors"
	"testing"

	"github.com/gogpu/glstate/gl"
	"github.com/gogpu/glstate/recording"
)

func TestTrackedCallsSkipRedundantWork(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	prog := ctx.CreateProgram()

	calls := func() error {
		return errors.Join(
			tr.Enable(gl.BLEND),
			tr.Disable(gl.CULL_FACE),
			tr.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA),
			tr.BlendEquation(gl.FUNC_ADD),
			tr.ClearColor(0.1, 0.2, 0.3, 1),
			tr.Viewport(0, 0, 320, 240),
			tr.Scissor(10, 10, 100, 100),
			tr.DepthFunc(gl.LEQUAL),
			tr.DepthMask(false),
			tr.UseProgram(prog.Handle()),
			tr.PixelStorei(gl.UNPACK_ALIGNMENT, 1),
			tr.PixelStorei(gl.UNPACK_FLIP_Y_WEBGL, 1),
			tr.StencilFunc(gl.EQUAL, 1, 0xFF),
			tr.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE),
			tr.StencilMask(0x0F),
		)
	}
	if err := calls(); err != nil {
		t.Fatal(err)
	}
	if ctx.Writes() == 0 {
		t.Fatal("no writes")
	}

	ctx.ResetLog()
	if err := calls(); err != nil {
		t.Fatal(err)
	}
	if ctx.Writes() != 0 {
		t.Errorf("repeated calls issued %v", ctx.Commands())
	}

	// Stencil calls cover both faces.
	if got := gl.Enum(ctx.GetInteger(gl.STENCIL_BACK_FUNC)); got != gl.EQUAL {
		t.Errorf("STENCIL_BACK_FUNC = %v, want EQUAL", got)
	}
	if got := ctx.GetInteger(gl.STENCIL_BACK_WRITEMASK); got != 0x0F {
		t.Errorf("STENCIL_BACK_WRITEMASK = 0x%X, want 0xF", got)
	}
	if !ctx.GetBoolean(gl.UNPACK_FLIP_Y_WEBGL) {
		t.Error("UNPACK_FLIP_Y_WEBGL not set")
	}
}

func TestTrackedBlendFuncSeparate(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	if err := tr.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ZERO); err != nil {
		t.Fatal(err)
	}
	if err := tr.BlendEquationSeparate(gl.FUNC_ADD, gl.FUNC_SUBTRACT); err != nil {
		t.Fatal(err)
	}
	if got := gl.Enum(ctx.GetInteger(gl.BLEND_DST_RGB)); got != gl.ONE_MINUS_SRC_ALPHA {
		t.Errorf("BLEND_DST_RGB = %v", got)
	}
	if got := gl.Enum(ctx.GetInteger(gl.BLEND_EQUATION_ALPHA)); got != gl.FUNC_SUBTRACT {
		t.Errorf("BLEND_EQUATION_ALPHA = %v", got)
	}
}

func TestTrackedBindFramebuffer(t *testing.T) {
	tr, ctx := newTracker(t, TierExtended)
	h1, h2 := ctx.CreateFramebuffer(), ctx.CreateFramebuffer()

	if err := tr.BindFramebuffer(gl.FRAMEBUFFER, h1.Handle()); err != nil {
		t.Fatal(err)
	}
	if err := tr.BindFramebuffer(gl.DRAW_FRAMEBUFFER, h2.Handle()); err != nil {
		t.Fatal(err)
	}
	got, err := tr.GetParameters(gl.DRAW_FRAMEBUFFER_BINDING, gl.READ_FRAMEBUFFER_BINDING)
	if err != nil {
		t.Fatal(err)
	}
	if got[gl.DRAW_FRAMEBUFFER_BINDING] != h2.Handle() || got[gl.READ_FRAMEBUFFER_BINDING] != h1.Handle() {
		t.Errorf("bindings = %v", got)
	}
	if err := tr.BindFramebuffer(gl.READ_FRAMEBUFFER, h2.Handle()); err != nil {
		t.Fatal(err)
	}
	if got := ctx.GetBinding(gl.READ_FRAMEBUFFER_BINDING); got != h2.Handle() {
		t.Errorf("live read binding = %v", got)
	}
	if ctx.Count(recording.OpBindFramebuffer) != 3 {
		t.Errorf("BindFramebuffer calls = %d, want 3", ctx.Count(recording.OpBindFramebuffer))
	}
}

func TestTrackedCallErrors(t *testing.T) {
	tr, _ := newTracker(t, TierBaseline)

	if err := tr.BindFramebuffer(gl.DRAW_FRAMEBUFFER, gl.NoHandle); !errors.Is(err, ErrCapabilityMismatch) {
		t.Errorf("BindFramebuffer(DRAW_FRAMEBUFFER) = %v, want ErrCapabilityMismatch", err)
	}
	if err := tr.BindFramebuffer(gl.RENDERBUFFER, gl.NoHandle); !errors.Is(err, ErrUnsupportedParameter) {
		t.Errorf("BindFramebuffer(RENDERBUFFER) = %v, want ErrUnsupportedParameter", err)
	}
	if err := tr.Enable(gl.DEPTH_FUNC); !errors.Is(err, ErrUnsupportedParameter) {
		t.Errorf("Enable(DEPTH_FUNC) = %v, want ErrUnsupportedParameter", err)
	}
	if err := tr.Enable(gl.RASTERIZER_DISCARD); !errors.Is(err, ErrCapabilityMismatch) {
		t.Errorf("Enable(RASTERIZER_DISCARD) = %v, want ErrCapabilityMismatch", err)
	}
	if err := tr.PixelStorei(gl.VIEWPORT, 1); !errors.Is(err, ErrUnsupportedParameter) {
		t.Errorf("PixelStorei(VIEWPORT) = %v, want ErrUnsupportedParameter", err)
	}
	if err := tr.BindVertexArray(gl.NoHandle); !errors.Is(err, ErrCapabilityMismatch) {
		t.Errorf("BindVertexArray = %v, want ErrCapabilityMismatch", err)
	}
	if err := tr.Viewport(0, 0, -1, 10); !errors.Is(err, ErrInvalidValueShape) {
		t.Errorf("Viewport with negative width = %v, want ErrInvalidValueShape", err)
	}
	if err := tr.DepthFunc(gl.KEEP); !errors.Is(err, ErrInvalidValueShape) {
		t.Errorf("DepthFunc(KEEP) = %v, want ErrInvalidValueShape", err)
	}
	if err := tr.BlendEquation(gl.MAX); !errors.Is(err, ErrCapabilityMismatch) {
		t.Errorf("BlendEquation(MAX) = %v, want ErrCapabilityMismatch", err)
	}
}

func TestTrackedCallDriverError(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	// Handle 42 was never created.
	err := tr.UseProgram(42)
	var de *DriverError
	if !errors.As(err, &de) || de.Code != gl.INVALID_OPERATION || de.Call != "UseProgram" {
		t.Errorf("UseProgram(42) = %v, want INVALID_OPERATION from UseProgram", err)
	}
	if got := mustGet(t, tr, gl.CURRENT_PROGRAM); got != gl.NoHandle {
		t.Errorf("CURRENT_PROGRAM = %v, want null", got)
	}
	if ctx.GetError() != gl.NO_ERROR {
		t.Error("tracker should have consumed the error")
	}
}
