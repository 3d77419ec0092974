// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"context"
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"github.com/gogpu/glstate/gl"
)

// Tracker caches the pipeline state of one graphics context and applies
// parameter changes to it without redundant driver calls.
//
// A Tracker is bound to exactly one context for its whole life. It is not
// safe for concurrent use: all calls must come from the goroutine that owns
// the context.
type Tracker struct {
	id    uuid.UUID
	ctx   gl.Context
	table *Table

	// cache holds the last known value of each key. A missing entry means
	// the value is unknown and must be queried before it can be trusted.
	cache State

	frames []*frame

	log        *slog.Logger
	errorCheck bool
	rec        Recorder
}

// New creates a tracker for ctx. The cache starts empty: no value, not even
// a documented default, is assumed until it is read or written.
func New(ctx gl.Context, opts ...Option) *Tracker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.New()
	log := o.logger
	if log == nil {
		log = Logger()
	}
	return &Tracker{
		id:         id,
		ctx:        ctx,
		table:      TableFor(o.tier),
		cache:      make(State),
		log:        log.With("tracker", id.String()),
		errorCheck: o.errorCheck,
		rec:        o.recorder,
	}
}

// ID returns the tracker's identifier, used in log records and metrics.
func (t *Tracker) ID() uuid.UUID { return t.id }

// Context returns the tracked context.
func (t *Tracker) Context() gl.Context { return t.ctx }

// Table returns the descriptor table of the tracker's tier.
func (t *Tracker) Table() *Table { return t.table }

// Tier returns the tracker's capability tier.
func (t *Tracker) Tier() Tier { return t.table.tier }

// GetParameters returns the current value of each key, or of every tracked
// key when called without arguments. Known values come from the cache;
// unknown values are queried from the context and cached.
//
// Only parameter keys and read-only aliases are accepted. Use Table.Lookup
// to resolve semantic names such as "clearColor".
func (t *Tracker) GetParameters(keys ...gl.Enum) (State, error) {
	if len(keys) == 0 {
		keys = t.table.Keys()
	}
	out := make(State, len(keys))
	for _, k := range keys {
		target, err := t.table.readable(k)
		if err != nil {
			return nil, err
		}
		out[k] = t.current(target)
	}
	return out, nil
}

// Parameter returns the current value of a single key.
func (t *Tracker) Parameter(key gl.Enum) (Value, error) {
	target, err := t.table.readable(key)
	if err != nil {
		return nil, err
	}
	return t.current(target), nil
}

// SetParameters applies params. Composite names are expanded and the whole
// batch is validated before anything is written. Keys whose cached value
// already equals the request are skipped. Keys written together by one live
// call are updated by a single call.
//
// A driver error stops the batch: groups written before the failing one
// stay applied. With error checking on, errors pending on the context
// before the batch are discarded so they are not blamed on its writes.
func (t *Tracker) SetParameters(params Parameters) error {
	batch, err := t.table.Expand(params)
	if err != nil {
		return err
	}
	return t.apply(batch, false)
}

// ResetParameters writes the documented default of every key, regardless of
// what the cache holds. Afterwards every key is known and equal to its
// default.
func (t *Tracker) ResetParameters() error {
	t.log.Debug("glstate: reset", "keys", len(t.table.descs))
	return t.apply(t.table.defaults, true)
}

// Invalidate forgets the cached value of keys, or of every key when called
// without arguments. Call it after the context was changed behind the
// tracker's back.
func (t *Tracker) Invalidate(keys ...gl.Enum) {
	if len(keys) == 0 {
		clear(t.cache)
		return
	}
	for _, k := range keys {
		if target, err := t.table.readable(k); err == nil {
			delete(t.cache, target)
		}
	}
}

// Cached returns a copy of the known part of the cache.
func (t *Tracker) Cached() State {
	return maps.Clone(t.cache)
}

// current returns the value of key from the cache, querying the context
// when it is unknown.
func (t *Tracker) current(key gl.Enum) Value {
	if v, ok := t.cache[key]; ok {
		t.rec.IncCacheHit()
		return v
	}
	d := t.table.byKey[key]
	v := d.query(t.ctx, key)
	t.rec.IncLiveQuery(key.String())
	t.cache[key] = v
	return v
}

// apply writes batch group by group in table order. With force set, the
// cache comparison is skipped and every key in the batch is written.
func (t *Tracker) apply(batch State, force bool) error {
	var vals [8]Value
	drained := !t.errorCheck
	for _, g := range t.table.groups {
		var changed uint32
		for i, k := range g.keys {
			v, ok := batch[k]
			if !ok {
				continue
			}
			if !force {
				if c, known := t.cache[k]; known && c == v {
					t.rec.IncSkippedWrite(k.String())
					continue
				}
			}
			changed |= 1 << i
		}
		if changed == 0 {
			continue
		}

		args := vals[:len(g.keys)]
		for i, k := range g.keys {
			if v, ok := batch[k]; ok {
				args[i] = v
			} else {
				// Unrequested members of the group are rewritten with their
				// current value.
				args[i] = t.current(k)
			}
			if changed&(1<<i) != 0 {
				t.capture(k)
			}
		}

		if !drained {
			t.drainErrors()
			drained = true
		}
		call := g.write(t.ctx, args, changed)
		t.rec.IncLiveWrite(call)
		if t.errorCheck {
			if code := t.ctx.GetError(); code != gl.NO_ERROR {
				t.rec.IncDriverError(call)
				// The context may have applied part of the call.
				for i, k := range g.keys {
					if changed&(1<<i) != 0 {
						delete(t.cache, k)
					}
				}
				return &DriverError{Call: call, Code: code}
			}
		}
		for i, k := range g.keys {
			if changed&(1<<i) != 0 {
				t.cache[k] = args[i]
			}
		}
		if t.log.Enabled(context.Background(), slog.LevelDebug) {
			t.logWrite(call, g, args, changed)
		}
	}
	return nil
}

// maxPendingErrors bounds drainErrors; GL keeps at most one flag per
// error kind.
const maxPendingErrors = 8

// drainErrors clears errors raised by calls made outside the tracker so
// they are not reported against the tracker's next write.
func (t *Tracker) drainErrors() {
	for range maxPendingErrors {
		code := t.ctx.GetError()
		if code == gl.NO_ERROR {
			return
		}
		t.log.Warn("glstate: discarding pending context error", "code", gl.ErrorString(code))
	}
}

func (t *Tracker) logWrite(call string, g *group, args []Value, changed uint32) {
	attrs := make([]any, 0, 2*len(g.keys)+2)
	attrs = append(attrs, "call", call)
	for i, k := range g.keys {
		if changed&(1<<i) != 0 {
			attrs = append(attrs, k.String(), FormatValue(args[i]))
		}
	}
	t.log.Debug("glstate: write", attrs...)
}
