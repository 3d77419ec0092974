// Package preset loads named parameter sets from YAML.
//
// A preset file maps preset names to parameter maps keyed by semantic names
// or GL constant names:
//
//	tier: extended
//	presets:
//	  overlay:
//	    description: premultiplied overlay on top of the scene
//	    parameters:
//	      blend: true
//	      blendFunc: [ONE, ONE_MINUS_SRC_ALPHA]
//	      DEPTH_TEST: false
//	  overlay-scissored:
//	    extends: overlay
//	    parameters:
//	      scissorTest: true
//	      scissor: [0, 0, 256, 256]
//
// Values use the same forms glstate accepts: numbers, booleans, enum names
// as strings, lists for vector values and null for the null binding.
package preset

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glstate"
)

var (
	// ErrUnknownPreset is returned for names missing from the file.
	ErrUnknownPreset = errors.New("preset: unknown preset")

	// ErrExtendsCycle is returned when a chain of extends loops.
	ErrExtendsCycle = errors.New("preset: extends cycle")
)

// File is a decoded preset file.
type File struct {
	// Tier is the tier the presets target. Nil leaves the choice to the
	// caller.
	Tier    *glstate.Tier     `yaml:"tier,omitempty"`
	Presets map[string]Preset `yaml:"presets"`
}

// Preset is one named parameter set.
type Preset struct {
	Description string `yaml:"description,omitempty"`
	// Extends names a preset whose parameters are applied first. Entries
	// here override entries of the same name there.
	Extends    string         `yaml:"extends,omitempty"`
	Parameters map[string]any `yaml:"parameters"`
}

// Parse decodes a preset file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("preset: failed to unmarshal: %w", err)
	}
	if f.Presets == nil {
		f.Presets = map[string]Preset{}
	}
	return &f, nil
}

// Load reads and decodes the preset file at path. Environment variables in
// the file are expanded first.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: failed to read file: %w", err)
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Names returns the preset names in sorted order.
func (f *File) Names() []string {
	return slices.Sorted(maps.Keys(f.Presets))
}

// Resolve returns the parameters of the named preset, with its extends
// chain applied, resolved against table. The result is validated with
// Table.Expand, so a nil error means SetParameters will accept it.
func (f *File) Resolve(name string, table *glstate.Table) (glstate.Parameters, error) {
	raw, err := f.flatten(name)
	if err != nil {
		return nil, err
	}
	params := make(glstate.Parameters, len(raw))
	for k, v := range raw {
		p, err := table.Param(k)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		params[p] = v
	}
	if _, err := table.Expand(params); err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return params, nil
}

// Validate resolves every preset against table and joins the failures.
func (f *File) Validate(table *glstate.Table) error {
	var errs []error
	for _, name := range f.Names() {
		if _, err := f.Resolve(name, table); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// flatten merges the parameters along the extends chain of name, base
// first.
func (f *File) flatten(name string) (map[string]any, error) {
	var chain []Preset
	seen := map[string]bool{}
	for n := name; n != ""; {
		if seen[n] {
			return nil, fmt.Errorf("%w: %q", ErrExtendsCycle, n)
		}
		seen[n] = true
		p, ok := f.Presets[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, n)
		}
		chain = append(chain, p)
		n = p.Extends
	}
	out := map[string]any{}
	for _, p := range slices.Backward(chain) {
		maps.Copy(out, p.Parameters)
	}
	return out, nil
}
