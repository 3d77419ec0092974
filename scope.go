// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"errors"
	"fmt"

	"github.com/gogpu/glstate/gl"
)

// frame is one entry of the tracker's state stack: the values to restore
// when the frame is popped.
//
// Scope frames (WithParameters) capture every key they override at entry.
// Pushed frames (PushState) record lazily: the first write to a key while
// the frame is open stores the key's prior value.
type frame struct {
	saved     State
	recording bool
}

// WithParameters applies params, runs fn and restores every key params
// touched to its value before the call. Restoration runs on every exit
// path: normal return, error and panic. An error from fn is returned after
// restoration; if restoration fails as well, both errors are joined.
//
// Scopes nest: an inner scope captures the values the outer scope applied,
// so leaving it returns exactly to the outer scope's state.
//
// An empty params map runs fn without saving or restoring anything.
func (t *Tracker) WithParameters(params Parameters, fn func() error) (err error) {
	if len(params) == 0 {
		return fn()
	}
	batch, err := t.table.Expand(params)
	if err != nil {
		return err
	}

	f := &frame{saved: make(State, len(batch))}
	for k := range batch {
		f.saved[k] = t.current(k)
	}
	t.push(f)
	depth := len(t.frames)

	defer func() {
		rerr := t.unwind(depth)
		if r := recover(); r != nil {
			if rerr != nil {
				t.log.Warn("glstate: restore failed during panic", "err", rerr)
			}
			panic(r)
		}
		if rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	if err := t.apply(batch, false); err != nil {
		return err
	}
	return fn()
}

// PushState opens a frame on the state stack. Until the matching PopState,
// the prior value of every key written through the tracker is recorded.
func (t *Tracker) PushState() {
	t.push(&frame{saved: make(State), recording: true})
}

// PopState restores every key changed since the matching PushState and
// closes the frame. It returns ErrScopeUnderflow when no frame pushed with
// PushState is open in the current scope.
func (t *Tracker) PopState() error {
	if len(t.frames) == 0 || !t.frames[len(t.frames)-1].recording {
		return ErrScopeUnderflow
	}
	return t.restoreTop()
}

// Depth reports the number of open frames, counting both PushState frames
// and active WithParameters scopes.
func (t *Tracker) Depth() int { return len(t.frames) }

func (t *Tracker) push(f *frame) {
	t.frames = append(t.frames, f)
	t.rec.SetScopeDepth(t.id.String(), len(t.frames))
	t.log.Debug("glstate: push", "depth", len(t.frames), "keys", len(f.saved), "recording", f.recording)
}

// restoreTop writes back the top frame's saved values while it is still on
// the stack, then pops it. The frame is popped even if restoration fails.
func (t *Tracker) restoreTop() error {
	f := t.frames[len(t.frames)-1]
	err := t.apply(f.saved, false)
	t.frames[len(t.frames)-1] = nil
	t.frames = t.frames[:len(t.frames)-1]
	t.rec.SetScopeDepth(t.id.String(), len(t.frames))
	t.log.Debug("glstate: pop", "depth", len(t.frames), "keys", len(f.saved))
	if err != nil {
		return fmt.Errorf("glstate: restore state: %w", err)
	}
	return nil
}

// unwind pops frames down to and including the frame at depth. Frames left
// open above it by unbalanced PushState calls are restored first.
func (t *Tracker) unwind(depth int) error {
	var errs []error
	for len(t.frames) > depth {
		t.log.Warn("glstate: unwinding unbalanced PushState", "depth", len(t.frames))
		if err := t.restoreTop(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(t.frames) == depth {
		if err := t.restoreTop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// capture records the current value of key in every open PushState frame
// that has not seen it yet.
func (t *Tracker) capture(key gl.Enum) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		f := t.frames[i]
		if !f.recording {
			continue
		}
		if _, ok := f.saved[key]; ok {
			continue
		}
		f.saved[key] = t.current(key)
	}
}
