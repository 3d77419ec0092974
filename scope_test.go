package glstate

import (
	"errors"
	"testing"

	"github.com/gogpu/glstate/gl"
	"github.com/gogpu/glstate/recording"
)

var errWork = errors.New("work failed")

func scopeStart(t *testing.T) (*Tracker, *recording.Context) {
	t.Helper()
	tr, ctx := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{ClearColor: []float32{0, 0, 0, 0}, gl.BLEND: false})
	return tr, ctx
}

func assertClearBlend(t *testing.T, tr *Tracker, color [4]float32, blend bool) {
	t.Helper()
	if got := mustGet(t, tr, gl.COLOR_CLEAR_VALUE); got != color {
		t.Errorf("COLOR_CLEAR_VALUE = %v, want %v", got, color)
	}
	if got := mustGet(t, tr, gl.BLEND); got != blend {
		t.Errorf("BLEND = %v, want %v", got, blend)
	}
}

func TestWithParametersRestoresOnReturn(t *testing.T) {
	tr, ctx := scopeStart(t)

	ran := false
	err := tr.WithParameters(Parameters{ClearColor: []float32{0, 1, 0, 1}, gl.BLEND: true}, func() error {
		ran = true
		assertClearBlend(t, tr, [4]float32{0, 1, 0, 1}, true)
		if tr.Depth() != 1 {
			t.Errorf("Depth() = %d inside scope, want 1", tr.Depth())
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("work did not run")
	}
	assertClearBlend(t, tr, [4]float32{}, false)
	if tr.Depth() != 0 {
		t.Errorf("Depth() = %d after scope, want 0", tr.Depth())
	}

	// The context was restored too, not only the cache.
	if ctx.IsEnabled(gl.BLEND) {
		t.Error("live BLEND still enabled")
	}
	if got := ctx.GetFloat4(gl.COLOR_CLEAR_VALUE); got != [4]float32{} {
		t.Errorf("live COLOR_CLEAR_VALUE = %v", got)
	}
}

func TestWithParametersRestoresOnError(t *testing.T) {
	tr, _ := scopeStart(t)

	err := tr.WithParameters(Parameters{ClearColor: []float32{0, 1, 0, 1}, gl.BLEND: true}, func() error {
		return errWork
	})
	if !errors.Is(err, errWork) {
		t.Fatalf("err = %v, want the work error", err)
	}
	assertClearBlend(t, tr, [4]float32{}, false)
}

func TestWithParametersRestoresOnPanic(t *testing.T) {
	tr, _ := scopeStart(t)

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recover() = %v, want boom", r)
			}
		}()
		_ = tr.WithParameters(Parameters{gl.BLEND: true}, func() error {
			panic("boom")
		})
	}()
	assertClearBlend(t, tr, [4]float32{}, false)
	if tr.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", tr.Depth())
	}
}

func TestNestedScopes(t *testing.T) {
	tr, _ := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{BlendFunc: []gl.Enum{gl.ONE, gl.ZERO}})
	pre := [4]gl.Enum{gl.ONE, gl.ZERO, gl.ONE, gl.ZERO}
	outer := [4]gl.Enum{gl.ONE_MINUS_SRC_ALPHA, gl.ZERO, gl.CONSTANT_ALPHA, gl.ZERO}
	inner := [4]gl.Enum{gl.SRC_ALPHA, gl.ONE, gl.SRC_ALPHA, gl.ONE}

	blend := func() [4]gl.Enum {
		t.Helper()
		var out [4]gl.Enum
		for i, k := range blendFactors {
			out[i] = mustGet(t, tr, k).(gl.Enum)
		}
		return out
	}

	err := tr.WithParameters(Parameters{BlendFunc: outer}, func() error {
		if got := blend(); got != outer {
			t.Errorf("outer = %v, want %v", got, outer)
		}
		err := tr.WithParameters(Parameters{BlendFunc: inner[:2]}, func() error {
			if got := blend(); got != inner {
				t.Errorf("inner = %v, want %v", got, inner)
			}
			if tr.Depth() != 2 {
				t.Errorf("Depth() = %d, want 2", tr.Depth())
			}
			return nil
		})
		if got := blend(); got != outer {
			t.Errorf("after inner = %v, want %v", got, outer)
		}
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := blend(); got != pre {
		t.Errorf("after outer = %v, want %v", got, pre)
	}
}

func TestWithParametersFramebufferCapturesBothTargets(t *testing.T) {
	tr, ctx := newTracker(t, TierExtended)
	h1, h2 := ctx.CreateFramebuffer(), ctx.CreateFramebuffer()
	mustSet(t, tr, Parameters{DrawFramebuffer: h1, ReadFramebuffer: h2})

	err := tr.WithParameters(Parameters{Framebuffer: nil}, func() error {
		if got := ctx.GetBinding(gl.READ_FRAMEBUFFER_BINDING); got != gl.NoHandle {
			t.Errorf("read binding = %v inside scope", got)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := ctx.GetBinding(gl.DRAW_FRAMEBUFFER_BINDING); got != h1.Handle() {
		t.Errorf("draw binding = %v, want %v", got, h1.Handle())
	}
	if got := ctx.GetBinding(gl.READ_FRAMEBUFFER_BINDING); got != h2.Handle() {
		t.Errorf("read binding = %v, want %v", got, h2.Handle())
	}
}

func TestWithParametersEmpty(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	ran := false
	err := tr.WithParameters(nil, func() error {
		ran = true
		if tr.Depth() != 0 {
			t.Errorf("empty scope pushed a frame")
		}
		return errWork
	})
	if !ran {
		t.Error("work did not run")
	}
	if !errors.Is(err, errWork) {
		t.Errorf("err = %v, want the work error", err)
	}
	if ctx.Writes() != 0 || ctx.Queries() != 0 {
		t.Errorf("empty scope touched the context: %d writes, %d queries", ctx.Writes(), ctx.Queries())
	}
}

func TestWithParametersInvalidSkipsWork(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	ran := false
	err := tr.WithParameters(Parameters{BlendFunc: []gl.Enum{gl.ONE}}, func() error {
		ran = true
		return nil
	})
	if !errors.Is(err, ErrInvalidValueShape) {
		t.Errorf("err = %v, want ErrInvalidValueShape", err)
	}
	if ran || ctx.Writes() != 0 || tr.Depth() != 0 {
		t.Error("invalid scope must not run work or write state")
	}
}

func TestWithParametersSkipsUnchanged(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{gl.BLEND: true})

	ctx.ResetLog()
	err := tr.WithParameters(Parameters{gl.BLEND: true}, func() error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Writes() != 0 {
		t.Errorf("scope with unchanged values issued %v", ctx.Commands())
	}
}

func TestWithParametersSetInsideIsRestored(t *testing.T) {
	tr, _ := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{gl.BLEND: false, gl.DEPTH_FUNC: gl.LESS})

	err := tr.WithParameters(Parameters{gl.BLEND: true}, func() error {
		// BLEND is restored by the scope; DEPTH_FUNC is not part of it.
		return tr.SetParameters(Parameters{gl.BLEND: false, gl.DEPTH_FUNC: gl.GREATER})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, tr, gl.BLEND); got != false {
		t.Errorf("BLEND = %v, want false", got)
	}
	if got := mustGet(t, tr, gl.DEPTH_FUNC); got != gl.GREATER {
		t.Errorf("DEPTH_FUNC = %v, want GREATER", got)
	}
}

func TestWithParametersRestoreFailureJoinsErrors(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{gl.DEPTH_FUNC: gl.LESS})

	err := tr.WithParameters(Parameters{gl.DEPTH_FUNC: gl.GREATER}, func() error {
		ctx.FailNext(recording.OpDepthFunc, gl.OUT_OF_MEMORY)
		return errWork
	})
	if !errors.Is(err, errWork) {
		t.Errorf("err = %v, want the work error", err)
	}
	var de *DriverError
	if !errors.As(err, &de) || de.Code != gl.OUT_OF_MEMORY {
		t.Errorf("err = %v, want a joined *DriverError", err)
	}
	if tr.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0 after a failed restore", tr.Depth())
	}
}

func TestPushPopState(t *testing.T) {
	rec := &countingRecorder{}
	tr, ctx := newTracker(t, TierBaseline, WithRecorder(rec))
	mustSet(t, tr, Parameters{gl.DEPTH_FUNC: gl.LESS, gl.CULL_FACE: false})

	tr.PushState()
	if rec.depth != 1 {
		t.Errorf("recorded depth = %d, want 1", rec.depth)
	}
	mustSet(t, tr, Parameters{gl.DEPTH_FUNC: gl.GREATER})
	mustSet(t, tr, Parameters{gl.DEPTH_FUNC: gl.NEVER, gl.CULL_FACE: true})

	ctx.ResetLog()
	if err := tr.PopState(); err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, tr, gl.DEPTH_FUNC); got != gl.LESS {
		t.Errorf("DEPTH_FUNC = %v, want LESS", got)
	}
	if got := mustGet(t, tr, gl.CULL_FACE); got != false {
		t.Errorf("CULL_FACE = %v, want false", got)
	}
	if ctx.Writes() != 2 {
		t.Errorf("PopState issued %d writes, want 2", ctx.Writes())
	}
	if rec.depth != 0 {
		t.Errorf("recorded depth = %d, want 0", rec.depth)
	}
}

func TestPushStateCapturesUnknownPriorValue(t *testing.T) {
	tr, ctx := newTracker(t, TierBaseline)
	ctx.DepthFunc(gl.EQUAL)

	tr.PushState()
	mustSet(t, tr, Parameters{gl.DEPTH_FUNC: gl.GREATER})
	if err := tr.PopState(); err != nil {
		t.Fatal(err)
	}
	if got := gl.Enum(ctx.GetInteger(gl.DEPTH_FUNC)); got != gl.EQUAL {
		t.Errorf("live DEPTH_FUNC = %v, want EQUAL", got)
	}
}

func TestNestedPushState(t *testing.T) {
	tr, _ := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{gl.LINE_WIDTH: 1})

	tr.PushState()
	mustSet(t, tr, Parameters{gl.LINE_WIDTH: 2})
	tr.PushState()
	mustSet(t, tr, Parameters{gl.LINE_WIDTH: 3})

	if err := tr.PopState(); err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, tr, gl.LINE_WIDTH); got != float32(2) {
		t.Errorf("LINE_WIDTH = %v, want 2", got)
	}
	if err := tr.PopState(); err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, tr, gl.LINE_WIDTH); got != float32(1) {
		t.Errorf("LINE_WIDTH = %v, want 1", got)
	}
}

func TestPopStateUnderflow(t *testing.T) {
	tr, _ := newTracker(t, TierBaseline)
	if err := tr.PopState(); !errors.Is(err, ErrScopeUnderflow) {
		t.Errorf("PopState() = %v, want ErrScopeUnderflow", err)
	}

	// A scope frame cannot be popped with PopState.
	err := tr.WithParameters(Parameters{gl.BLEND: true}, func() error {
		return tr.PopState()
	})
	if !errors.Is(err, ErrScopeUnderflow) {
		t.Errorf("PopState() inside scope = %v, want ErrScopeUnderflow", err)
	}
	if got := mustGet(t, tr, gl.BLEND); got != false {
		t.Errorf("BLEND = %v, want false", got)
	}
}

func TestScopeUnwindsUnbalancedPush(t *testing.T) {
	tr, _ := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{gl.BLEND: false, gl.DEPTH_FUNC: gl.LESS})

	err := tr.WithParameters(Parameters{gl.BLEND: true}, func() error {
		tr.PushState()
		return tr.SetParameters(Parameters{gl.DEPTH_FUNC: gl.ALWAYS})
	})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", tr.Depth())
	}
	if got := mustGet(t, tr, gl.DEPTH_FUNC); got != gl.LESS {
		t.Errorf("DEPTH_FUNC = %v, want LESS", got)
	}
	if got := mustGet(t, tr, gl.BLEND); got != false {
		t.Errorf("BLEND = %v, want false", got)
	}
}

func TestPushStateOutsideScopeRecordsScopeWrites(t *testing.T) {
	tr, _ := newTracker(t, TierBaseline)
	mustSet(t, tr, Parameters{gl.BLEND: false, gl.DEPTH_FUNC: gl.LESS})

	tr.PushState()
	err := tr.WithParameters(Parameters{gl.BLEND: true}, func() error {
		return tr.SetParameters(Parameters{gl.DEPTH_FUNC: gl.GREATER})
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.PopState(); err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, tr, gl.DEPTH_FUNC); got != gl.LESS {
		t.Errorf("DEPTH_FUNC = %v, want LESS", got)
	}
}

func BenchmarkWithParameters(b *testing.B) {
	tr := New(recording.New())
	params := Parameters{gl.BLEND: true, ClearColor: [4]float32{0, 1, 0, 1}}
	work := func() error { return nil }
	b.ReportAllocs()
	for b.Loop() {
		_ = tr.WithParameters(params, work)
	}
}
