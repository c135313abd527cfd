package dispatch

import (
	"errors"
	"reflect"
)

var ErrNilDispatchSupplied = errors.New("nil dispatch function supplied")
var ErrNilCallableSupplied = errors.New("nil callable supplied")
var ErrEmptyNameSupplied = errors.New("empty name supplied")

// State is a type alias for any, representing an application state value.
// State values are opaque to the tracing middleware; only identity matters.
type State = any

// Action maps the current state and a payload to an action result.
//
// The returned value is polymorphic: a bare next-state value, a sequence
// []any{nextState, effectInvocation...}, or a sequence []any{nextAction, payload}
// representing action chaining. Use Normalize to decompose it.
type Action func(state State, payload any) any

// Effect performs a side effect outside the state-update path.
// It is invoked with a dispatch handle and a payload and returns nothing
// observable; any asynchronous work it schedules completes outside the
// traced call frame.
type Effect func(dispatch Dispatch, payload any)

// Dispatch is the host framework's single entry point through which all
// actions and effects are invoked. The first argument is polymorphic; see
// ClassifyTarget for the recognized shapes.
type Dispatch func(target any, payload any)

// EffectInvocation pairs an Effect with the payload it will be invoked with.
// On the wire it appears as []any{effect, payload} in elements 1..N of a
// state-plus-effects sequence.
type EffectInvocation struct {
	Effect  Effect
	Payload any
}

// AsAction converts a dispatch target element to an Action.
// It accepts Action values and raw functions with the action signature.
func AsAction(v any) (Action, bool) {
	switch f := v.(type) {
	case Action:
		return f, true
	case func(State, any) any:
		return f, true
	}

	return nil, false
}

// AsEffect converts a dispatch target element to an Effect.
// It accepts Effect values and raw functions with the effect signature.
func AsEffect(v any) (Effect, bool) {
	switch f := v.(type) {
	case Effect:
		return f, true
	case func(Dispatch, any):
		return f, true
	}

	return nil, false
}

// AsEffectInvocation decodes a single element of a state-plus-effects
// sequence. It accepts EffectInvocation values and []any{effect, payload}
// pairs; anything else is rejected.
func AsEffectInvocation(v any) (EffectInvocation, bool) {
	switch e := v.(type) {
	case EffectInvocation:
		return e, true

	case []any:
		if len(e) == 0 {
			return EffectInvocation{}, false
		}

		effect, ok := AsEffect(e[0])
		if !ok {
			return EffectInvocation{}, false
		}

		invocation := EffectInvocation{Effect: effect}
		if len(e) > 1 {
			invocation.Payload = e[1]
		}

		return invocation, true
	}

	return EffectInvocation{}, false
}

// IsCallable reports whether a dispatch target element is a function value
// of any signature.
func IsCallable(v any) bool {
	if v == nil {
		return false
	}

	return reflect.ValueOf(v).Kind() == reflect.Func
}

// CallableID returns an identity key for a function value, usable as a map
// key for already-wrapped bookkeeping and label registration.
// Closures created from the same function literal share one key.
func CallableID(fn any) (uintptr, bool) {
	if fn == nil {
		return 0, false
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0, false
	}

	return v.Pointer(), true
}

// Identical reports whether two values are the same value in the identity
// sense: reference kinds compare by pointer, comparable kinds by equality.
// It never panics, even for uncomparable values.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	default:
		if va.Comparable() {
			return va.Equal(vb)
		}

		return false
	}
}
