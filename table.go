// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/glstate/gl"
)

// Descriptor describes one tracked parameter key.
type Descriptor struct {
	Key     gl.Enum
	Kind    Kind
	Default Value

	// Call names the live entry point that writes the key.
	Call string

	// Extended marks keys that exist only on the extended tier.
	Extended bool

	group *group
	query func(gl.Context, gl.Enum) Value
	// check rejects values outside the key's domain before anything is
	// written.
	check func(Value) error
	// canon maps an accepted value to the value the context stores, such
	// as a color clamped to [0, 1].
	canon func(Value) Value
}

// writeFunc issues the live call for a setter group. vals holds one value
// per group key in group order; changed has bit i set for every key that
// differs from the cache. It returns the name of the call it issued.
type writeFunc func(ctx gl.Context, vals []Value, changed uint32) string

// group is a set of keys written together by one live call, such as the
// four blend factors written by BlendFuncSeparate.
type group struct {
	call  string
	keys  []gl.Enum
	write writeFunc
}

// Table is the read-only descriptor table of one tier. It is built once
// per tier and shared by every tracker of that tier.
type Table struct {
	tier   Tier
	descs  []*Descriptor
	byKey  map[gl.Enum]*Descriptor
	groups []*group

	// extendedOnly holds keys absent from a baseline table.
	extendedOnly map[gl.Enum]bool

	// readAliases maps read-only query names to the key they report.
	readAliases map[gl.Enum]gl.Enum

	funcs         map[Func]*composite
	funcOrder     []Func
	extendedFuncs map[Func]bool

	defaults State
}

var tables [2]struct {
	once sync.Once
	t    *Table
}

// TableFor returns the descriptor table of tier t.
func TableFor(t Tier) *Table {
	if t > TierExtended {
		t = TierExtended
	}
	e := &tables[t]
	e.once.Do(func() { e.t = buildTable(t) })
	return e.t
}

// Tier returns the tier the table was built for.
func (t *Table) Tier() Tier { return t.tier }

// Descriptors returns every descriptor in table order.
func (t *Table) Descriptors() []Descriptor {
	out := make([]Descriptor, len(t.descs))
	for i, d := range t.descs {
		out[i] = *d
	}
	return out
}

// Keys returns every tracked key in table order.
func (t *Table) Keys() []gl.Enum {
	keys := make([]gl.Enum, len(t.descs))
	for i, d := range t.descs {
		keys[i] = d.Key
	}
	return keys
}

// Descriptor returns the descriptor of key. Read-only aliases resolve to
// the key they report.
func (t *Table) Descriptor(key gl.Enum) (Descriptor, error) {
	k, err := t.readable(key)
	if err != nil {
		return Descriptor{}, err
	}
	return *t.byKey[k], nil
}

// Defaults returns the documented default value of every key.
func (t *Table) Defaults() State {
	return maps.Clone(t.defaults)
}

// Funcs returns the semantic names accepted by the setter, in table order.
func (t *Table) Funcs() []Composite {
	out := make([]Composite, 0, len(t.funcOrder))
	for _, name := range t.funcOrder {
		out = append(out, t.funcs[name].info)
	}
	return out
}

// Lookup resolves a name for reading: a GL constant name or number, or a
// one-key alias such as "clearColor". Composite names are write-only and
// fail with ErrUnsupportedParameter.
func (t *Table) Lookup(name string) (gl.Enum, error) {
	if c, ok := t.funcs[Func(name)]; ok {
		if !c.direct {
			return 0, paramError(Func(name), ErrUnsupportedParameter, "composite names are write-only")
		}
		return c.alias, nil
	}
	if t.extendedFuncs[Func(name)] {
		return 0, paramError(Func(name), ErrCapabilityMismatch, "")
	}
	if e, ok := gl.Lookup(name); ok {
		return t.readable(e)
	}
	return 0, paramError(Func(name), ErrUnsupportedParameter, "")
}

// Param resolves a name for writing: a semantic name (composite or alias)
// or a GL constant name or number.
func (t *Table) Param(name string) (Param, error) {
	if _, ok := t.funcs[Func(name)]; ok {
		return Func(name), nil
	}
	if t.extendedFuncs[Func(name)] {
		return nil, paramError(Func(name), ErrCapabilityMismatch, "")
	}
	if e, ok := gl.Lookup(name); ok {
		if _, err := t.writable(e); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, paramError(Func(name), ErrUnsupportedParameter, "")
}

func (t *Table) readable(key gl.Enum) (gl.Enum, error) {
	if _, ok := t.byKey[key]; ok {
		return key, nil
	}
	if target, ok := t.readAliases[key]; ok {
		return target, nil
	}
	if t.extendedOnly[key] {
		return 0, paramError(key, ErrCapabilityMismatch, "")
	}
	return 0, paramError(key, ErrUnsupportedParameter, "")
}

func (t *Table) writable(key gl.Enum) (*Descriptor, error) {
	if d, ok := t.byKey[key]; ok {
		return d, nil
	}
	if target, ok := t.readAliases[key]; ok {
		return nil, paramError(key, ErrCapabilityMismatch, "read-only alias of %v on the %v tier", target, t.tier)
	}
	if t.extendedOnly[key] {
		return nil, paramError(key, ErrCapabilityMismatch, "")
	}
	return nil, paramError(key, ErrUnsupportedParameter, "")
}

// Expand validates params and expands composite names into the keys they
// write. The result holds canonical values. Names are processed in sorted
// order so that errors are reported deterministically.
func (t *Table) Expand(params Parameters) (State, error) {
	names := slices.SortedFunc(maps.Keys(params), func(a, b Param) int {
		return strings.Compare(paramName(a), paramName(b))
	})
	out := make(State, len(params))
	owner := make(map[gl.Enum]Param, len(params))
	for _, p := range names {
		err := t.expand(p, params[p], func(key gl.Enum, v Value) error {
			if prev, ok := out[key]; ok && prev != v {
				return paramError(p, ErrConflictingParameter, "%v already set to %v by %v", key, prev, owner[key])
			}
			out[key] = v
			owner[key] = p
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (t *Table) expand(p Param, v any, emit func(gl.Enum, Value) error) error {
	switch p := p.(type) {
	case gl.Enum:
		d, err := t.writable(p)
		if err != nil {
			return err
		}
		return t.emitValue(p, d, v, emit)
	case Func:
		c, ok := t.funcs[p]
		if !ok {
			if t.extendedFuncs[p] {
				return paramError(p, ErrCapabilityMismatch, "")
			}
			return paramError(p, ErrUnsupportedParameter, "")
		}
		if c.direct {
			return t.emitValue(p, t.byKey[c.alias], v, emit)
		}
		args := arguments(v)
		x, ok := c.rules[len(args)]
		if !ok {
			return paramError(p, ErrInvalidValueShape, "%d arguments, want %v", len(args), c.info.Arity)
		}
		args = append(args[:len(args):len(args)], x.tail...)
		for i, key := range x.keys {
			if err := t.emitValue(p, t.byKey[key], args[i%len(args)], emit); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return paramError(Func(paramName(nil)), ErrUnsupportedParameter, "")
	default:
		q, err := t.Param(p.String())
		if err != nil {
			return err
		}
		return t.expand(q, v, emit)
	}
}

func paramName(p Param) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}

func (t *Table) emitValue(p Param, d *Descriptor, v any, emit func(gl.Enum, Value) error) error {
	val, err := normalize(d.Kind, v)
	if err != nil {
		return paramError(p, ErrInvalidValueShape, "%v: %v", d.Key, err)
	}
	if d.check != nil {
		if err := d.check(val); err != nil {
			return paramError(p, err, "%v = %v", d.Key, FormatValue(val))
		}
	}
	if d.canon != nil {
		val = d.canon(val)
	}
	return emit(d.Key, val)
}

// FormatValue formats a value for logs and tool output.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case gl.Enum:
		return x.String()
	case uint32:
		return fmt.Sprintf("0x%08X", x)
	case nil:
		return "unknown"
	}
	return fmt.Sprint(v)
}
