// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glstate tracks the implicit pipeline state of a WebGL/GLES-style
// graphics context.
//
// A Tracker caches the value of every parameter key it reads or writes and
// skips driver calls that would not change anything. It offers four
// operations:
//
//   - GetParameters reads keys from the cache, querying the context for
//     values the tracker has not seen yet.
//   - SetParameters applies a batch of changes. Composite names such as
//     BlendFunc or StencilOp expand into the keys they write.
//   - WithParameters applies changes for the duration of a function and
//     restores the previous values afterwards, even when the function fails
//     or panics.
//   - ResetParameters writes the documented default of every key.
//
// # Keys and names
//
// Parameter keys are native GL constants (gl.BLEND, gl.BLEND_SRC_RGB).
// Semantic names are Func values: composites that write several keys at
// once, and one-key aliases such as ClearColor. Composite names can only
// be written.
//
//	t := glstate.New(ctx, glstate.WithTier(glstate.TierExtended))
//	err := t.WithParameters(glstate.Parameters{
//	    glstate.BlendFunc: []gl.Enum{gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA},
//	    gl.BLEND:          true,
//	}, func() error {
//	    return drawOverlay()
//	})
//
// # Tiers
//
// The descriptor table is chosen by tier. On the baseline tier a single
// framebuffer binding serves both drawing and reading, and
// READ_FRAMEBUFFER_BINDING reports it. On the extended tier the two
// bindings are independent; the Framebuffer name sets both, DrawFramebuffer
// and ReadFramebuffer set one. Keys and values that need the extended tier
// fail with ErrCapabilityMismatch on a baseline tracker.
//
// # Cache coherence
//
// The cache starts empty and is only updated by the tracker itself. State
// changed directly on the context makes later cached reads wrong; route such
// calls through the Tracker methods that mirror GL entry points
// (BindFramebuffer, Enable, BlendFunc, ...) or call Invalidate.
package glstate
