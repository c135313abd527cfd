package dispatch

// TargetKind enumerates the four call shapes accepted by the host dispatch
// entry point.
type TargetKind int

const (
	// KindState is a bare new state value.
	KindState TargetKind = iota

	// KindStateWithEffects is a new state followed by effect invocations.
	KindStateWithEffects

	// KindAction is a bare action, invoked with the dispatch payload.
	KindAction

	// KindActionWithPayload is an []any{action, payload} pair representing
	// an action chain.
	KindActionWithPayload
)

// ClassifiedTarget is the tagged variant produced by ClassifyTarget.
//
// For KindAction and KindActionWithPayload, RawCallable always holds the
// original callable; Action is nil when the callable does not have the
// action signature, in which case the interceptor forwards it untouched.
type ClassifiedTarget struct {
	Kind        TargetKind
	State       State
	Action      Action
	RawCallable any
	Payload     any
	Effects     []EffectInvocation
}

// ClassifyTarget inspects a dispatch target and determines which of the four
// call shapes it represents.
//
// It is pure, total, and never panics: empty or malformed sequences classify
// as KindState so the middleware degrades to passthrough instead of breaking
// the host application. Malformed effect entries are omitted from Effects;
// the raw sequence is left for the caller to forward.
func ClassifyTarget(target any) ClassifiedTarget {
	if IsCallable(target) {
		action, _ := AsAction(target)

		return ClassifiedTarget{
			Kind:        KindAction,
			Action:      action,
			RawCallable: target,
		}
	}

	seq, isSeq := target.([]any)
	if !isSeq || len(seq) == 0 {
		return ClassifiedTarget{Kind: KindState, State: target}
	}

	if IsCallable(seq[0]) {
		action, _ := AsAction(seq[0])

		classified := ClassifiedTarget{
			Kind:        KindActionWithPayload,
			Action:      action,
			RawCallable: seq[0],
		}

		if len(seq) > 1 {
			classified.Payload = seq[1]
		}

		return classified
	}

	classified := ClassifiedTarget{
		Kind:  KindStateWithEffects,
		State: seq[0],
	}

	for _, entry := range seq[1:] {
		if invocation, ok := AsEffectInvocation(entry); ok {
			classified.Effects = append(classified.Effects, invocation)
		}
	}

	return classified
}

// ProducesState reports whether the classified shape carries a new state
// value (a bare state or a state-plus-effects sequence).
func (ct ClassifiedTarget) ProducesState() bool {
	return ct.Kind == KindState || ct.Kind == KindStateWithEffects
}
