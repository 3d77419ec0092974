package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/glstate"
	"github.com/gogpu/glstate/metrics"
	"github.com/gogpu/glstate/preset"
	"github.com/gogpu/glstate/recording"
)

// resolveTier picks the tier from the flag, then the preset file, then the
// baseline default.
func (c *CLI) resolveTier(f *preset.File) (glstate.Tier, error) {
	if c.Tier != "" {
		return glstate.ParseTier(c.Tier)
	}
	if f != nil && f.Tier != nil {
		return *f.Tier, nil
	}
	return glstate.TierBaseline, nil
}

// KeysCmd implements the 'keys' command.
type KeysCmd struct{}

func (k *KeysCmd) Run(g *Globals, root *CLI) error {
	tier, err := root.resolveTier(nil)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tKIND\tDEFAULT\tCALL")
	for _, d := range glstate.TableFor(tier).Descriptors() {
		name := d.Key.String()
		if d.Extended {
			name += " (extended)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, d.Kind, glstate.FormatValue(d.Default), d.Call)
	}
	return w.Flush()
}

// FuncsCmd implements the 'funcs' command.
type FuncsCmd struct{}

func (f *FuncsCmd) Run(g *Globals, root *CLI) error {
	tier, err := root.resolveTier(nil)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKEYS\tRULE")
	for _, c := range glstate.TableFor(tier).Funcs() {
		keys := make([]string, len(c.Keys))
		for i, k := range c.Keys {
			keys[i] = k.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, strings.Join(keys, ","), c.Rule)
	}
	return w.Flush()
}

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	File string `arg:"" type:"existingfile" help:"Preset file"`
}

func (v *ValidateCmd) Run(g *Globals, root *CLI) error {
	f, err := preset.Load(v.File)
	if err != nil {
		return err
	}
	tier, err := root.resolveTier(f)
	if err != nil {
		return err
	}
	if err := f.Validate(glstate.TableFor(tier)); err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "%d presets ok (%s)\n", len(f.Presets), tier)
	return nil
}

// ApplyCmd implements the 'apply' command.
type ApplyCmd struct {
	File    string   `arg:"" type:"existingfile" help:"Preset file"`
	Presets []string `arg:"" help:"Presets to apply in order"`
	Reset   bool     `help:"Reset every key to its default first"`
	Metrics bool     `help:"Print tracker metrics after the calls"`
}

func (a *ApplyCmd) Run(g *Globals, root *CLI) error {
	s, err := newSession(root, a.File)
	if err != nil {
		return err
	}
	if a.Reset {
		if err := s.tracker.ResetParameters(); err != nil {
			return err
		}
	}
	for _, name := range a.Presets {
		if err := s.apply(name); err != nil {
			return err
		}
	}
	fmt.Fprint(g.Out, s.ctx.Finish())
	if a.Metrics {
		return metrics.WriteText(g.Out, s.registry)
	}
	return nil
}

// DiffCmd implements the 'diff' command.
type DiffCmd struct {
	File string `arg:"" type:"existingfile" help:"Preset file"`
	From string `arg:"" help:"Starting preset"`
	To   string `arg:"" help:"Target preset"`
}

func (d *DiffCmd) Run(g *Globals, root *CLI) error {
	s, err := newSession(root, d.File)
	if err != nil {
		return err
	}
	// Start from known defaults so the diff does not depend on what the
	// recording context happens to report.
	if err := s.tracker.ResetParameters(); err != nil {
		return err
	}
	if err := s.apply(d.From); err != nil {
		return err
	}
	s.ctx.ResetLog()
	if err := s.apply(d.To); err != nil {
		return err
	}
	rec := s.ctx.Finish()
	if rec.Len() == 0 {
		fmt.Fprintln(g.Out, "no calls")
		return nil
	}
	fmt.Fprint(g.Out, rec)
	return nil
}

// session is a tracker over a fresh recording context.
type session struct {
	file     *preset.File
	ctx      *recording.Context
	tracker  *glstate.Tracker
	registry *prom.Registry
}

func newSession(root *CLI, path string) (*session, error) {
	f, err := preset.Load(path)
	if err != nil {
		return nil, err
	}
	tier, err := root.resolveTier(f)
	if err != nil {
		return nil, err
	}
	reg := prom.NewRegistry()
	ctx := recording.New(recording.WithExtended(tier == glstate.TierExtended))
	t := glstate.New(ctx,
		glstate.WithTier(tier),
		glstate.WithErrorCheck(true),
		glstate.WithRecorder(metrics.NewPrometheusRecorder(reg)),
	)
	return &session{file: f, ctx: ctx, tracker: t, registry: reg}, nil
}

func (s *session) apply(name string) error {
	params, err := s.file.Resolve(name, s.tracker.Table())
	if err != nil {
		return err
	}
	if err := s.tracker.SetParameters(params); err != nil {
		var de *glstate.DriverError
		if errors.As(err, &de) {
			return fmt.Errorf("preset %q rejected by the context: %w", name, err)
		}
		return err
	}
	return nil
}
