package debugtrace

import (
	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

// PreActionHook fires before a traced action runs, with the action's derived
// name, the state it is invoked with, and its payload.
type PreActionHook func(name string, state dispatch.State, payload any)

// PostActionHook fires after a traced action returns, with the original
// inputs and the raw polymorphic result. Use dispatch.Normalize to decompose
// the result for reporting.
type PostActionHook func(name string, state dispatch.State, payload any, result any)

// PreEffectHook fires before a traced effect runs, with the effect's derived
// name and its payload.
type PreEffectHook func(name string, payload any)

// PostEffectHook fires after a traced effect returns. Effects carry no
// observable return value, so the hook receives the inputs only.
type PostEffectHook func(name string, payload any)

// Option defines a functional option for configuring the Tracer.
type Option func(*Tracer) error

// WithPreAction sets the hook fired before each traced action.
func WithPreAction(hook PreActionHook) Option {
	return func(t *Tracer) error {
		t.preAction = hook
		return nil
	}
}

// WithPostAction sets the hook fired after each traced action.
func WithPostAction(hook PostActionHook) Option {
	return func(t *Tracer) error {
		t.postAction = hook
		return nil
	}
}

// WithPreEffect sets the hook fired before each traced effect.
func WithPreEffect(hook PreEffectHook) Option {
	return func(t *Tracer) error {
		t.preEffect = hook
		return nil
	}
}

// WithPostEffect sets the hook fired after each traced effect.
func WithPostEffect(hook PostEffectHook) Option {
	return func(t *Tracer) error {
		t.postEffect = hook
		return nil
	}
}

// WithOnStateChange sets the action dispatched after any call that produces
// a new state value. The action receives a StateChange payload and is
// pre-marked as wrapped so it is never re-traced as a user action.
func WithOnStateChange(action dispatch.Action) Option {
	return func(t *Tracer) error {
		if action == nil {
			return dispatch.ErrNilCallableSupplied
		}

		t.onStateChange = action

		return nil
	}
}

// WithLogger sets the logger for the middleware's own operational logging.
//
// Debug level: shape resolution and state-change bookkeeping (development use)
// Info level: installation events.
func WithLogger(logger dispatch.Logger) Option {
	return func(t *Tracer) error {
		t.logger = logger
		return nil
	}
}

// WithName registers a human-readable label for an action or effect,
// overriding the reflection-derived name in trace output.
func WithName(fn any, label string) Option {
	return func(t *Tracer) error {
		return t.names.Register(fn, label)
	}
}
