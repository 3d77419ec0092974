// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import "log/slog"

// Option configures a Tracker during creation.
//
// Example:
//
//	t := glstate.New(ctx,
//	    glstate.WithTier(glstate.TierExtended),
//	    glstate.WithErrorCheck(true),
//	)
type Option func(*options)

type options struct {
	tier       Tier
	logger     *slog.Logger
	errorCheck bool
	recorder   Recorder
}

func defaultOptions() options {
	return options{
		tier:     TierBaseline,
		logger:   nil, // package logger, resolved in New
		recorder: nopRecorder{},
	}
}

// WithTier selects the descriptor table. The tier must match the context:
// capability detection is the caller's responsibility.
func WithTier(t Tier) Option {
	return func(o *options) {
		o.tier = t
	}
}

// WithLogger overrides the package logger for one tracker.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithErrorCheck makes the tracker call GetError after every live write.
// A write the context rejects is reported as *DriverError and its keys are
// not cached. Errors already pending when a batch starts are discarded.
// Off by default: GetError stalls pipelined drivers.
func WithErrorCheck(enabled bool) Option {
	return func(o *options) {
		o.errorCheck = enabled
	}
}

// WithRecorder reports tracker activity to r. A nil r disables reporting.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r == nil {
			r = nopRecorder{}
		}
		o.recorder = r
	}
}
