// Package metrics exports glstate tracker activity to Prometheus.
//
// Trackers report through the glstate.Recorder interface and default to a
// no-op implementation. Pass a PrometheusRecorder to enable collection:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	t := glstate.New(ctx, glstate.WithRecorder(rec))
//
// The live write and skipped write counters together give the fraction of
// state changes the cache absorbed.
package metrics
