package debugtrace

import (
	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

// wrapAction produces a traced wrapper for an action, preserving its calling
// contract. Wrapping is idempotent: an already-wrapped callable is returned
// unchanged, which is what keeps the dispatcher's recursive re-entry from
// nesting wrappers without bound. With no action hooks configured the input
// is returned as-is.
func (t *Tracer) wrapAction(action dispatch.Action) dispatch.Action {
	if action == nil || !t.actionHooksConfigured() {
		return action
	}

	if t.isWrapped(action) {
		return action
	}

	name := t.names.NameOf(action)

	wrapper := dispatch.Action(func(state dispatch.State, payload any) any {
		if t.preAction != nil {
			t.preAction(name, state, payload)
		}

		result := action(state, payload)

		if t.postAction != nil {
			t.postAction(name, state, payload, result)
		}

		return result
	})

	t.markWrapped(wrapper)

	return wrapper
}

// wrapEffect produces a traced wrapper for an effect, with the same
// idempotency and passthrough guarantees as wrapAction. The post hook fires
// immediately after the synchronous call returns, not after any asynchronous
// completion the effect schedules.
func (t *Tracer) wrapEffect(effect dispatch.Effect) dispatch.Effect {
	if effect == nil || !t.effectHooksConfigured() {
		return effect
	}

	if t.isWrapped(effect) {
		return effect
	}

	name := t.names.NameOf(effect)

	wrapper := dispatch.Effect(func(d dispatch.Dispatch, payload any) {
		if t.preEffect != nil {
			t.preEffect(name, payload)
		}

		effect(d, payload)

		if t.postEffect != nil {
			t.postEffect(name, payload)
		}
	})

	t.markWrapped(wrapper)

	return wrapper
}

// isWrapped reports whether a callable is already a traced wrapper (or was
// pre-marked as one). Identity is keyed by code pointer, so every wrapper
// closure produced from the same literal counts as marked once any of them is.
func (t *Tracer) isWrapped(fn any) bool {
	id, ok := dispatch.CallableID(fn)
	if !ok {
		return false
	}

	_, found := t.wrapped[id]

	return found
}

func (t *Tracer) markWrapped(fn any) {
	if id, ok := dispatch.CallableID(fn); ok {
		t.wrapped[id] = struct{}{}
	}
}
