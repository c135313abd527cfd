package debugtrace

import (
	"github.com/google/uuid"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

const (
	logMsgInstalled     = "dispatch tracing installed"
	logMsgForwarding    = "forwarding dispatch call"
	logMsgStateChanged  = "state changed"
	logAttrShape        = "shape"
	logAttrName         = "name"
	logAttrInstanceID   = "instance_id"
	logAttrChangeID     = "change_id"
	logAttrFrom         = "from"
	logAttrTo           = "to"
	shapeNameState      = "state"
	shapeNameStateFx    = "state_with_effects"
	shapeNameAction     = "action"
	shapeNameActionPair = "action_with_payload"
)

// Tracer intercepts calls to a host dispatch function and reports them
// through the configured hook set. It carries the only mutable state of the
// middleware: the already-wrapped bookkeeping and the previous-state cell
// used for state-change reporting.
type Tracer struct {
	next          dispatch.Dispatch
	preAction     PreActionHook
	postAction    PostActionHook
	preEffect     PreEffectHook
	postEffect    PostEffectHook
	onStateChange dispatch.Action
	names         *dispatch.NameRegistry
	wrapped       map[uintptr]struct{}
	logger        dispatch.Logger
	instanceID    uuid.UUID
	previousState dispatch.State
	stateObserved bool
}

// StateChange is the record carried by the follow-up dispatch issued after a
// call produces a new state value. From is nil on the first observation.
// The ID correlates the from/to pair in flat sinks.
type StateChange struct {
	ID   uuid.UUID
	From dispatch.State
	To   dispatch.State
}

// Install wraps the host's real dispatch function with tracing and returns a
// replacement dispatch function with an identical calling contract.
//
// Hooks are configured through options; absent hooks mean the corresponding
// phase is skipped entirely, and with no hooks at all the wrapping is an
// identity passthrough.
func Install(next dispatch.Dispatch, options ...Option) (dispatch.Dispatch, error) {
	if next == nil {
		return nil, dispatch.ErrNilDispatchSupplied
	}

	t := &Tracer{
		next:       next,
		names:      dispatch.NewNameRegistry(),
		wrapped:    make(map[uintptr]struct{}),
		instanceID: uuid.New(),
	}

	for _, option := range options {
		if err := option(t); err != nil {
			return nil, err
		}
	}

	// The state-change action is pre-marked so it is never re-traced as a
	// user action when the follow-up dispatch passes back through here.
	if t.onStateChange != nil {
		t.markWrapped(t.onStateChange)
	}

	if t.logger != nil {
		t.logger.Info(logMsgInstalled, logAttrInstanceID, t.instanceID.String())
	}

	return t.dispatch, nil
}

// dispatch is the replacement entry point handed back to the host.
func (t *Tracer) dispatch(target any, payload any) {
	classified := dispatch.ClassifyTarget(target)

	switch classified.Kind {
	case dispatch.KindAction:
		t.logForwarding(shapeNameAction, classified)
		t.next(t.substituteAction(target, classified), payload)

	case dispatch.KindActionWithPayload:
		t.logForwarding(shapeNameActionPair, classified)
		t.next(t.substituteActionPair(target, classified), payload)

	case dispatch.KindStateWithEffects:
		t.logForwarding(shapeNameStateFx, classified)
		t.next(t.substituteEffects(target), payload)
		t.reportStateChange(classified.State)

	default:
		t.logForwarding(shapeNameState, classified)
		t.next(target, payload)
		t.reportStateChange(classified.State)
	}
}

// substituteAction replaces a bare action target with its traced wrapper.
// A callable that could not be converted to an Action is forwarded untouched.
func (t *Tracer) substituteAction(target any, classified dispatch.ClassifiedTarget) any {
	if classified.Action == nil || !t.actionHooksConfigured() {
		return target
	}

	return t.wrapAction(classified.Action)
}

// substituteActionPair replaces element 0 of an []any{action, payload} pair
// with its traced wrapper. The caller's slice is never mutated.
func (t *Tracer) substituteActionPair(target any, classified dispatch.ClassifiedTarget) any {
	if classified.Action == nil || !t.actionHooksConfigured() {
		return target
	}

	seq := target.([]any)
	substituted := append([]any(nil), seq...)
	substituted[0] = t.wrapAction(classified.Action)

	return substituted
}

// substituteEffects replaces each well-formed effect invocation in elements
// 1..N of a state-plus-effects sequence with its traced wrapper. Malformed
// entries are forwarded untouched, and the caller's slices are never mutated.
func (t *Tracer) substituteEffects(target any) any {
	if !t.effectHooksConfigured() {
		return target
	}

	seq := target.([]any)
	substituted := append([]any(nil), seq...)

	for i := 1; i < len(substituted); i++ {
		switch entry := substituted[i].(type) {
		case dispatch.EffectInvocation:
			entry.Effect = t.wrapEffect(entry.Effect)
			substituted[i] = entry

		case []any:
			invocation, ok := dispatch.AsEffectInvocation(entry)
			if !ok {
				continue
			}

			pair := append([]any(nil), entry...)
			pair[0] = t.wrapEffect(invocation.Effect)
			substituted[i] = pair
		}
	}

	return substituted
}

// reportStateChange updates the previous-state cell and issues the follow-up
// dispatch carrying the change record, if a state-change action is
// configured.
//
// The cell is updated before the follow-up is dispatched, and the follow-up
// is suppressed when the observed state is identical to the previous one.
// Together these terminate the re-entrancy loop a state-preserving
// state-change action would otherwise create.
func (t *Tracer) reportStateChange(state dispatch.State) {
	if t.onStateChange == nil {
		return
	}

	if t.stateObserved && dispatch.Identical(state, t.previousState) {
		return
	}

	var from dispatch.State
	if t.stateObserved {
		from = t.previousState
	}

	t.previousState = state
	t.stateObserved = true

	change := StateChange{ID: uuid.New(), From: from, To: state}

	if t.logger != nil {
		t.logger.Debug(logMsgStateChanged, logAttrChangeID, change.ID.String(), logAttrFrom, from, logAttrTo, state)
	}

	t.dispatch([]any{t.onStateChange, change}, nil)
}

func (t *Tracer) actionHooksConfigured() bool {
	return t.preAction != nil || t.postAction != nil
}

func (t *Tracer) effectHooksConfigured() bool {
	return t.preEffect != nil || t.postEffect != nil
}

// logForwarding logs shape resolution at debug level if a logger is configured.
func (t *Tracer) logForwarding(shape string, classified dispatch.ClassifiedTarget) {
	if t.logger != nil {
		t.logger.Debug(logMsgForwarding, logAttrShape, shape, logAttrName, t.names.NameOf(classified.RawCallable))
	}
}
