// Package debugtrace implements the dispatch-tracing middleware.
//
// Install wraps a host dispatch function with a replacement of identical
// calling contract that classifies every call shape, substitutes traced
// wrappers for the contained actions and effects exactly once, and forwards
// the call to the real dispatch unchanged otherwise. Debug is a preset that
// wires the hook surface to a Sink, producing grouped trace output.
//
// The middleware follows the host framework's single-threaded cooperative
// execution model: all wrapped callables execute to completion inside the
// dispatch call stack, so no internal locking is used. Re-entrant dispatch
// calls from within an effect are tolerated; the already-wrapped bookkeeping
// prevents runaway re-wrapping across re-entry.
package debugtrace
