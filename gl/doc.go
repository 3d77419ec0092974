// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl defines the native vocabulary shared by glstate and the
// graphics contexts it drives: GL enumerants with their WebGL/GLES values,
// opaque binding handles, and the Context interface listing the entry
// points used to query and change pipeline state.
//
// Context creation, capability detection and resource lifetimes are the
// host's business. A Context only has to expose the calls below; the
// recording package ships an in-memory implementation for tests and tools.
package gl
