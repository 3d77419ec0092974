// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

// Recorder receives tracker activity counts. The metrics package provides a
// Prometheus implementation. Methods are called synchronously from tracker
// operations and must not call back into the tracker.
type Recorder interface {
	IncLiveWrite(call string)
	IncSkippedWrite(key string)
	IncLiveQuery(key string)
	IncCacheHit()
	IncDriverError(call string)
	SetScopeDepth(tracker string, depth int)
}

type nopRecorder struct{}

func (nopRecorder) IncLiveWrite(string)       {}
func (nopRecorder) IncSkippedWrite(string)    {}
func (nopRecorder) IncLiveQuery(string)       {}
func (nopRecorder) IncCacheHit()              {}
func (nopRecorder) IncDriverError(string)     {}
func (nopRecorder) SetScopeDepth(string, int) {}
