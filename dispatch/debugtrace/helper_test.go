package debugtrace_test

import (
	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

// dispatchCall records one forwarded (target, payload) pair.
type dispatchCall struct {
	target  any
	payload any
}

// dispatchRecorder is a fake host dispatch that records forwarded calls
// without invoking anything.
type dispatchRecorder struct {
	calls []dispatchCall
}

func (r *dispatchRecorder) dispatch(target any, payload any) {
	r.calls = append(r.calls, dispatchCall{target: target, payload: payload})
}

// sinkEvent records one emission into a recording sink.
type sinkEvent struct {
	kind  string
	label string
	value any
	args  []any
}

// sinkRecorder is a dispatch.Sink capturing all emissions in order.
type sinkRecorder struct {
	events []sinkEvent
	opened int
	closed int
}

func (s *sinkRecorder) OpenGroup(label string) {
	s.opened++
	s.events = append(s.events, sinkEvent{kind: "open", label: label})
}

func (s *sinkRecorder) Emit(label string, value any) {
	s.events = append(s.events, sinkEvent{kind: "emit", label: label, value: value})
}

func (s *sinkRecorder) CloseGroup() {
	s.closed++
	s.events = append(s.events, sinkEvent{kind: "close"})
}

func (s *sinkRecorder) Line(msg string, args ...any) {
	s.events = append(s.events, sinkEvent{kind: "line", label: msg, args: args})
}

func (s *sinkRecorder) emitted(label string) (any, bool) {
	for _, event := range s.events {
		if event.kind == "emit" && event.label == label {
			return event.value, true
		}
	}

	return nil, false
}

func (s *sinkRecorder) groupLabels() []string {
	var labels []string

	for _, event := range s.events {
		if event.kind == "open" {
			labels = append(labels, event.label)
		}
	}

	return labels
}

// testHost is a miniature host dispatcher implementing the polymorphic
// contract: actions run against the current state and their results are
// re-dispatched, effects run with the (traced) dispatch handle.
type testHost struct {
	state    dispatch.State
	dispatch dispatch.Dispatch
}

func (h *testHost) raw(target any, payload any) {
	classified := dispatch.ClassifyTarget(target)

	switch classified.Kind {
	case dispatch.KindAction:
		if classified.Action == nil {
			return
		}
		h.dispatch(classified.Action(h.state, payload), nil)

	case dispatch.KindActionWithPayload:
		h.dispatch(classified.RawCallable, classified.Payload)

	case dispatch.KindStateWithEffects:
		h.state = classified.State
		for _, entry := range target.([]any)[1:] {
			if invocation, ok := dispatch.AsEffectInvocation(entry); ok {
				invocation.Effect(h.dispatch, invocation.Payload)
			}
		}

	default:
		h.state = target
	}
}

// incrementAction is a package-level named action so DeriveName yields a
// stable label in assertions.
func incrementAction(state dispatch.State, _ any) any {
	counts := state.(map[string]int)

	return map[string]int{"count": counts["count"] + 1}
}

// noteEffect is a package-level named effect for the same reason.
func noteEffect(_ dispatch.Dispatch, _ any) {}

