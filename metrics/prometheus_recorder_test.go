package metrics

import (
	"bytes"
	"strings"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/glstate"
	"github.com/gogpu/glstate/gl"
	"github.com/gogpu/glstate/recording"
)

var _ glstate.Recorder = (*PrometheusRecorder)(nil)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	tr := glstate.New(recording.New(), glstate.WithRecorder(pr))

	if _, err := tr.GetParameters(gl.BLEND); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.GetParameters(gl.BLEND); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(pr.liveQueries.WithLabelValues("BLEND")); got != 1 {
		t.Errorf("live queries for BLEND = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pr.cacheHits); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}

	params := glstate.Parameters{gl.BLEND: true}
	for range 3 {
		if err := tr.SetParameters(params); err != nil {
			t.Fatal(err)
		}
	}
	if got := testutil.ToFloat64(pr.liveWrites.WithLabelValues("Enable")); got != 1 {
		t.Errorf("Enable writes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pr.skipped.WithLabelValues("BLEND")); got != 2 {
		t.Errorf("skipped BLEND writes = %v, want 2", got)
	}

	// Basic scrape to ensure metrics encode without panic
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestPrometheusRecorderScopeDepth(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	tr := glstate.New(recording.New(), glstate.WithRecorder(pr))
	id := tr.ID().String()

	var inside float64
	err := tr.WithParameters(glstate.Parameters{gl.DEPTH_TEST: true}, func() error {
		inside = testutil.ToFloat64(pr.scopeDepth.WithLabelValues(id))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if inside != 1 {
		t.Errorf("depth inside scope = %v, want 1", inside)
	}
	if n := testutil.CollectAndCount(pr.scopeDepth); n != 0 {
		t.Errorf("scope depth series after unwind = %d, want 0", n)
	}
}

func TestNewPrometheusRecorderRegisters(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	for name, c := range map[string]prom.Collector{
		"live writes":   pr.liveWrites,
		"skipped":       pr.skipped,
		"live queries":  pr.liveQueries,
		"cache hits":    pr.cacheHits,
		"driver errors": pr.driverErrors,
		"scope depth":   pr.scopeDepth,
	} {
		if !reg.Unregister(c) {
			t.Errorf("%s collector was not registered", name)
		}
	}

	// Separate registries get independent collectors.
	other := NewPrometheusRecorder(prom.NewRegistry())
	other.IncLiveWrite("Enable")
	if got := testutil.ToFloat64(pr.liveWrites.WithLabelValues("Enable")); got != 0 {
		t.Errorf("Enable writes leaked across recorders: %v", got)
	}
}

func TestScopeDepthPerTracker(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	outer := glstate.New(recording.New(), glstate.WithRecorder(pr))
	inner := glstate.New(recording.New(), glstate.WithRecorder(pr))

	var series int
	err := outer.WithParameters(glstate.Parameters{gl.BLEND: true}, func() error {
		return inner.WithParameters(glstate.Parameters{gl.BLEND: true}, func() error {
			series = testutil.CollectAndCount(pr.scopeDepth)
			return nil
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if series != 2 {
		t.Errorf("series with both trackers in scope = %d, want 2", series)
	}
	if n := testutil.CollectAndCount(pr.scopeDepth); n != 0 {
		t.Errorf("series after both scopes closed = %d, want 0", n)
	}
}

func TestPrometheusRecorderDriverErrors(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	ctx := recording.New()
	tr := glstate.New(ctx, glstate.WithRecorder(pr), glstate.WithErrorCheck(true))

	ctx.FailNext(recording.OpViewport, gl.INVALID_VALUE)
	if err := tr.SetParameters(glstate.Parameters{gl.VIEWPORT: []int{0, 0, 10, 10}}); err == nil {
		t.Fatal("expected driver error")
	}
	if got := testutil.ToFloat64(pr.driverErrors.WithLabelValues("Viewport")); got != 1 {
		t.Errorf("Viewport driver errors = %v, want 1", got)
	}
}

func TestNilRecorder(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncLiveWrite("Enable")
	pr.IncSkippedWrite("BLEND")
	pr.IncLiveQuery("BLEND")
	pr.IncCacheHit()
	pr.IncDriverError("Enable")
	pr.SetScopeDepth("t", 1)
}

func TestWriteText(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncLiveWrite("BlendFuncSeparate")
	pr.IncCacheHit()

	var buf bytes.Buffer
	if err := WriteText(&buf, reg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`glstate_live_writes_total{call="BlendFuncSeparate"} 1`,
		"glstate_cache_hits_total 1",
		"# HELP glstate_cache_hits_total",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
