package dispatch

// Sink is the outbound log-sink collaborator the tracing middleware reports
// through. It offers grouped/nested message emission plus flat lines.
//
// The middleware's only contract with a Sink is ordering: pre-invocation
// output is emitted and fully closed before the traced callable executes,
// and post-invocation output is emitted after the call returns.
// Implementations are used from a single dispatch call stack and need no
// internal locking.
type Sink interface {
	OpenGroup(label string)
	Emit(label string, value any)
	CloseGroup()
	Line(msg string, args ...any)
}

// Logger interface for the middleware's own operational logging: install
// events, shape resolution, and state-change bookkeeping. This is distinct
// from the Sink, which carries the trace output itself.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
