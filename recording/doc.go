// Package recording provides an in-memory GL context that records every
// state-changing call.
//
// Context implements gl.Context with the state machine of a WebGL 1
// (baseline) or WebGL 2 (extended) context: it validates arguments the way
// a driver does, raises GL errors retrievable with GetError and answers
// state queries. It draws nothing.
//
// # Architecture
//
// The package has three parts:
//
//   - Context: the state machine, with a command log and call counters
//   - Command: one recorded call with its arguments and raised error
//   - Recording: an immutable command list that can be replayed onto any
//     gl.Context
//
// # Probing
//
// Counters make redundant-call checks straightforward:
//
//	ctx := recording.New()
//	t := glstate.New(ctx)
//	t.SetParameters(glstate.Parameters{gl.BLEND: true})
//	ctx.ResetLog()
//	t.SetParameters(glstate.Parameters{gl.BLEND: true})
//	fmt.Println(ctx.Writes()) // 0
//
// # Error injection
//
// FailNext makes the next call of an entry point raise a GL error and leave
// the state unchanged:
//
//	ctx.FailNext(recording.OpBlendFuncSeparate, gl.INVALID_OPERATION)
//
// # Playback
//
//	r := ctx.Finish()
//	r.Playback(other) // replays every successful call onto other
//
// Context is not safe for concurrent use.
package recording
