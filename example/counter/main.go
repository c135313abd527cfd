// Command counter demonstrates the dispatch tracing middleware around a
// minimal host dispatcher.
//
// Run it with tracing enabled (the default), or set
// DISPATCH_TRACE_DISABLED=true to see the untraced output only.
package main

import (
	"fmt"
	"os"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
	"github.com/isabo/hyperapp-debug-trace/dispatch/debugtrace"
)

// host is a miniature dispatcher implementing the polymorphic contract:
// actions run against the current state and their results are re-dispatched,
// effects run with the installed dispatch handle.
type host struct {
	state    dispatch.State
	dispatch dispatch.Dispatch
}

func (h *host) raw(target any, payload any) {
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

func increment(state dispatch.State, _ any) any {
	counts := state.(map[string]int)

	return map[string]int{"count": counts["count"] + 1}
}

func add(state dispatch.State, payload any) any {
	counts := state.(map[string]int)

	return map[string]int{"count": counts["count"] + payload.(int)}
}

// announce is an effect: it reports outside the state-update path and then
// chains one more increment through the dispatch handle.
func announce(d dispatch.Dispatch, payload any) {
	fmt.Printf("announce: %v\n", payload)
	d(dispatch.Action(increment), nil)
}

// addAndAnnounce returns a state-plus-effects result.
func addAndAnnounce(state dispatch.State, payload any) any {
	next := add(state, payload)

	return []any{next, []any{dispatch.Effect(announce), "added"}}
}

func main() {
	h := &host{}

	traced, err := debugtrace.DebugFromEnv(nil, h.raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "installing dispatch tracing failed:", err)
		os.Exit(1)
	}
	h.dispatch = traced

	// Shape D: a bare initial state.
	h.dispatch(map[string]int{"count": 0}, nil)

	// Shape A: a bare action.
	h.dispatch(dispatch.Action(increment), nil)

	// Shape B: an action/payload pair.
	h.dispatch([]any{dispatch.Action(add), 5}, nil)

	// Shape C via an action result: state plus an effect invocation.
	h.dispatch([]any{dispatch.Action(addAndAnnounce), 2}, nil)

	fmt.Printf("final state: %v\n", h.state)
}
