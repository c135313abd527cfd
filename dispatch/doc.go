// Package dispatch provides core abstractions and types for tracing the
// polymorphic dispatch entry point of a hyperapp-style state framework.
//
// This package defines the fundamental types and pure logic used by the
// tracing middleware, including dispatch target classification, action
// result normalization, name derivation, and common error definitions.
//
// A host dispatcher accepts one of four call shapes:
//   - a bare state value
//   - a state value followed by effect invocations
//   - a bare action
//   - an action paired with its payload
//
// Key types:
//   - Dispatch: the host entry point contract
//   - Action: maps current state and a payload to an action result
//   - Effect: performs a side effect, returning nothing observable
//   - ClassifiedTarget: the closed tagged variant produced by ClassifyTarget
//   - NormalizedResult: the uniform decomposition produced by Normalize
//
// Common usage pattern:
//
//	classified := dispatch.ClassifyTarget(target)
//	switch classified.Kind {
//	case dispatch.KindAction:
//		// an action is about to run with the dispatch payload as its input
//	case dispatch.KindStateWithEffects:
//		// a new state plus zero or more effect invocations
//	}
//
//	normalized := dispatch.Normalize(result, priorState)
//	if normalized.HasState && normalized.StateUnchanged {
//		// the action handed its input state back untouched
//	}
package dispatch
