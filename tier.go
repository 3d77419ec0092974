// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"fmt"
	"strings"
)

// Tier is the capability level of a graphics context.
type Tier uint8

const (
	// TierBaseline is WebGL 1 / GLES 2: a single framebuffer binding point
	// and no MIN/MAX blend equations.
	TierBaseline Tier = iota

	// TierExtended is WebGL 2 / GLES 3: independent draw and read
	// framebuffers, vertex array objects, copy and pixel buffer bindings,
	// extended pixel store modes.
	TierExtended
)

func (t Tier) String() string {
	switch t {
	case TierBaseline:
		return "baseline"
	case TierExtended:
		return "extended"
	default:
		return fmt.Sprintf("Tier(%d)", uint8(t))
	}
}

// ParseTier parses a tier name. It accepts "baseline"/"webgl1"/"gles2" and
// "extended"/"webgl2"/"gles3", case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baseline", "webgl1", "webgl", "gles2":
		return TierBaseline, nil
	case "extended", "webgl2", "gles3":
		return TierExtended, nil
	}
	return 0, fmt.Errorf("glstate: unknown tier %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so tiers can be read
// from configuration files and command-line flags.
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Kind is the value domain of a parameter key. Each kind has one canonical
// Go type that the cache stores and GetParameters returns.
type Kind uint8

const (
	KindBool   Kind = iota // bool
	KindBool4              // [4]bool
	KindFloat              // float32
	KindFloat2             // [2]float32
	KindFloat4             // [4]float32
	KindEnum               // gl.Enum
	KindInt                // int32
	KindMask               // uint32
	KindInt4               // [4]int32
	KindHandle             // gl.Handle
)

var kindNames = [...]string{
	KindBool:   "bool",
	KindBool4:  "bool[4]",
	KindFloat:  "float",
	KindFloat2: "float[2]",
	KindFloat4: "float[4]",
	KindEnum:   "enum",
	KindInt:    "int",
	KindMask:   "mask",
	KindInt4:   "int[4]",
	KindHandle: "handle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
