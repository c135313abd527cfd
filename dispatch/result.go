package dispatch

// NormalizedResult is the uniform decomposition of a polymorphic action
// result, built for logging.
//
// HasState distinguishes "no state in this result" (an action chain) from
// "state present"; StateUnchanged additionally reports whether the present
// state is identical to the state the action was invoked with, so consumers
// can print "unchanged" instead of re-emitting the value.
type NormalizedResult struct {
	NextState      State
	HasState       bool
	StateUnchanged bool
	NextAction     []any
	Effects        []EffectInvocation
}

// Normalize decomposes the value returned by an action invocation.
//
// The result value is one of: a bare next-state value; a sequence
// []any{nextState, effectInvocation...}; or a sequence []any{nextAction, payload}
// representing action chaining. inputState is the state the action was
// invoked with, used for the StateUnchanged report.
//
// Normalize is pure and side-effect-free. Malformed effect entries are
// dropped silently; an empty sequence normalizes as a bare state.
func Normalize(result any, inputState State) NormalizedResult {
	seq, isSeq := result.([]any)
	if !isSeq || len(seq) == 0 {
		return NormalizedResult{
			NextState:      result,
			HasState:       true,
			StateUnchanged: Identical(result, inputState),
		}
	}

	if IsCallable(seq[0]) {
		return NormalizedResult{NextAction: seq}
	}

	normalized := NormalizedResult{
		NextState:      seq[0],
		HasState:       true,
		StateUnchanged: Identical(seq[0], inputState),
	}

	for _, entry := range seq[1:] {
		if invocation, ok := AsEffectInvocation(entry); ok {
			normalized.Effects = append(normalized.Effects, invocation)
		}
	}

	return normalized
}
