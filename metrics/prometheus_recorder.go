package metrics

import (
	"io"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric name.
const Namespace = "glstate"

// PrometheusRecorder implements glstate.Recorder using Prometheus metrics.
// A nil *PrometheusRecorder records nothing.
type PrometheusRecorder struct {
	liveWrites   *prom.CounterVec
	skipped      *prom.CounterVec
	liveQueries  *prom.CounterVec
	cacheHits    prom.Counter
	driverErrors *prom.CounterVec
	scopeDepth   *prom.GaugeVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.liveWrites = prom.NewCounterVec(prom.CounterOpts{
		Namespace: Namespace,
		Name:      "live_writes_total",
		Help:      "Driver calls issued to change state, by call",
	}, []string{"call"})
	pr.skipped = prom.NewCounterVec(prom.CounterOpts{
		Namespace: Namespace,
		Name:      "skipped_writes_total",
		Help:      "Requested key changes absorbed by the cache, by key",
	}, []string{"key"})
	pr.liveQueries = prom.NewCounterVec(prom.CounterOpts{
		Namespace: Namespace,
		Name:      "live_queries_total",
		Help:      "Driver queries for keys missing from the cache, by key",
	}, []string{"key"})
	pr.cacheHits = prom.NewCounter(prom.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_hits_total",
		Help:      "Key reads served from the cache",
	})
	pr.driverErrors = prom.NewCounterVec(prom.CounterOpts{
		Namespace: Namespace,
		Name:      "driver_errors_total",
		Help:      "Writes rejected by the driver, by call",
	}, []string{"call"})
	pr.scopeDepth = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: Namespace,
		Name:      "scope_depth",
		Help:      "Current scope stack depth, by tracker",
	}, []string{"tracker"})
	reg.MustRegister(pr.liveWrites, pr.skipped, pr.liveQueries, pr.cacheHits, pr.driverErrors, pr.scopeDepth)
	return pr
}

func (p *PrometheusRecorder) IncLiveWrite(call string) {
	if p == nil || p.liveWrites == nil {
		return
	}
	p.liveWrites.WithLabelValues(call).Inc()
}

func (p *PrometheusRecorder) IncSkippedWrite(key string) {
	if p == nil || p.skipped == nil {
		return
	}
	p.skipped.WithLabelValues(key).Inc()
}

func (p *PrometheusRecorder) IncLiveQuery(key string) {
	if p == nil || p.liveQueries == nil {
		return
	}
	p.liveQueries.WithLabelValues(key).Inc()
}

func (p *PrometheusRecorder) IncCacheHit() {
	if p == nil || p.cacheHits == nil {
		return
	}
	p.cacheHits.Inc()
}

func (p *PrometheusRecorder) IncDriverError(call string) {
	if p == nil || p.driverErrors == nil {
		return
	}
	p.driverErrors.WithLabelValues(call).Inc()
}

// SetScopeDepth records the depth of a tracker's scope stack. A depth of
// zero drops the tracker's series.
func (p *PrometheusRecorder) SetScopeDepth(tracker string, depth int) {
	if p == nil || p.scopeDepth == nil {
		return
	}
	if depth == 0 {
		p.scopeDepth.DeleteLabelValues(tracker)
		return
	}
	p.scopeDepth.WithLabelValues(tracker).Set(float64(depth))
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prom.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
