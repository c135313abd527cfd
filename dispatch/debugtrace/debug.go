package debugtrace

import (
	"github.com/isabo/hyperapp-debug-trace/dispatch"
	"github.com/isabo/hyperapp-debug-trace/dispatch/debugtrace/internal/render"
)

const (
	groupPrefixAction = "ACTION "
	groupPrefixResult = "RESULT "
	groupPrefixEffect = "EFFECT "
	labelState        = "state"
	labelPayload      = "payload"
	labelNextState    = "next state"
	labelNextAction   = "next action"
	labelEffect       = "effect "
	valueUnchanged    = "(unchanged)"
	msgEffectDone     = "effect completed"
)

// Debug installs the standard trace preset around the host dispatch,
// reporting to a console sink on stdout. Additional options are applied on
// top of the preset, so hooks and the state-change action can be overridden.
func Debug(next dispatch.Dispatch, options ...Option) (dispatch.Dispatch, error) {
	return DebugTo(nil, next, options...)
}

// DebugTo installs the standard trace preset reporting to the given sink.
// A nil sink falls back to a console sink on stdout.
func DebugTo(sink dispatch.Sink, next dispatch.Dispatch, options ...Option) (dispatch.Dispatch, error) {
	if sink == nil {
		sink = NewConsoleSink(nil)
	}

	preset := debugOptions(sink, true)

	return Install(next, append(preset, options...)...)
}

// debugOptions builds the preset hook set reporting to sink.
func debugOptions(sink dispatch.Sink, stateChanges bool) []Option {
	options := []Option{
		WithPreAction(preActionReporter(sink)),
		WithPostAction(postActionReporter(sink)),
		WithPreEffect(preEffectReporter(sink)),
		WithPostEffect(postEffectReporter(sink)),
	}

	if stateChanges {
		options = append(options, WithOnStateChange(stateChangeReporter(sink)))
	}

	return options
}

// preActionReporter emits the "called with" group. The group is closed
// eagerly before the action runs, so a panicking action leaves no dangling
// open group behind.
func preActionReporter(sink dispatch.Sink) PreActionHook {
	return func(name string, state dispatch.State, payload any) {
		sink.OpenGroup(groupPrefixAction + render.DisplayName(name))
		sink.Emit(labelState, state)
		sink.Emit(labelPayload, payload)
		sink.CloseGroup()
	}
}

// postActionReporter normalizes the action result and emits the result
// group. Identical input state is marked unchanged instead of re-emitted.
func postActionReporter(sink dispatch.Sink) PostActionHook {
	return func(name string, state dispatch.State, _ any, result any) {
		normalized := dispatch.Normalize(result, state)

		sink.OpenGroup(groupPrefixResult + render.DisplayName(name))

		if normalized.HasState {
			if normalized.StateUnchanged {
				sink.Emit(labelNextState, valueUnchanged)
			} else {
				sink.Emit(labelNextState, normalized.NextState)
			}
		}

		if normalized.NextAction != nil {
			sink.Emit(labelNextAction, normalized.NextAction[0])
		}

		for _, invocation := range normalized.Effects {
			sink.Emit(labelEffect+render.DisplayName(dispatch.DeriveName(invocation.Effect)), invocation.Payload)
		}

		sink.CloseGroup()
	}
}

func preEffectReporter(sink dispatch.Sink) PreEffectHook {
	return func(name string, payload any) {
		sink.OpenGroup(groupPrefixEffect + render.DisplayName(name))
		sink.Emit(labelPayload, payload)
		sink.CloseGroup()
	}
}

func postEffectReporter(sink dispatch.Sink) PostEffectHook {
	return func(name string, _ any) {
		sink.Line(msgEffectDone, logAttrName, render.DisplayName(name))
	}
}

// stateChangeReporter builds the ledger action: it reports the change as a
// flat line and hands the state back untouched, which suppresses any further
// follow-up.
func stateChangeReporter(sink dispatch.Sink) dispatch.Action {
	return func(state dispatch.State, payload any) any {
		if change, ok := payload.(StateChange); ok {
			sink.Line(logMsgStateChanged,
				logAttrFrom, change.From,
				logAttrTo, change.To,
				logAttrChangeID, change.ID.String())
		}

		return state
	}
}
