package glstate

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.tier != TierBaseline {
		t.Errorf("tier = %v, want baseline", o.tier)
	}
	if o.errorCheck {
		t.Error("errorCheck should be off by default")
	}
	if _, ok := o.recorder.(nopRecorder); !ok {
		t.Errorf("recorder = %T, want nopRecorder", o.recorder)
	}
}

func TestOptions(t *testing.T) {
	l := slog.Default()
	rec := &countingRecorder{}

	o := defaultOptions()
	for _, opt := range []Option{
		WithTier(TierExtended),
		WithLogger(l),
		WithErrorCheck(true),
		WithRecorder(rec),
	} {
		opt(&o)
	}

	if o.tier != TierExtended {
		t.Errorf("tier = %v, want extended", o.tier)
	}
	if o.logger != l {
		t.Error("logger not applied")
	}
	if !o.errorCheck {
		t.Error("errorCheck not applied")
	}
	if o.recorder != Recorder(rec) {
		t.Error("recorder not applied")
	}

	WithRecorder(nil)(&o)
	if _, ok := o.recorder.(nopRecorder); !ok {
		t.Errorf("WithRecorder(nil) left %T, want nopRecorder", o.recorder)
	}
}
