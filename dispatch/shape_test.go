package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

//nolint:funlen
func Test_ClassifyTarget_AllShapes(t *testing.T) {
	increment := dispatch.Action(func(state dispatch.State, _ any) any {
		return state
	})
	logFx := dispatch.Effect(func(_ dispatch.Dispatch, _ any) {})

	tests := []struct {
		name     string
		target   any
		validate func(t *testing.T, classified dispatch.ClassifiedTarget)
	}{
		{
			name:   "bare_state_value",
			target: map[string]int{"count": 1},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindState, c.Kind)
				assert.Equal(t, map[string]int{"count": 1}, c.State)
			},
		},
		{
			name:   "nil_state",
			target: nil,
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindState, c.Kind)
				assert.Nil(t, c.State)
			},
		},
		{
			name:   "bare_action",
			target: increment,
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindAction, c.Kind)
				assert.NotNil(t, c.Action)
				assert.NotNil(t, c.RawCallable)
			},
		},
		{
			name:   "raw_function_with_action_signature",
			target: func(state dispatch.State, _ any) any { return state },
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindAction, c.Kind)
				assert.NotNil(t, c.Action)
			},
		},
		{
			name:   "foreign_callable_classifies_as_action_without_conversion",
			target: func() {},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindAction, c.Kind)
				assert.Nil(t, c.Action)
				assert.NotNil(t, c.RawCallable)
			},
		},
		{
			name:   "action_with_payload_pair",
			target: []any{increment, 5},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindActionWithPayload, c.Kind)
				assert.NotNil(t, c.Action)
				assert.Equal(t, 5, c.Payload)
			},
		},
		{
			name:   "action_pair_without_payload",
			target: []any{increment},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindActionWithPayload, c.Kind)
				assert.Nil(t, c.Payload)
			},
		},
		{
			name:   "state_with_single_effect_invocation",
			target: []any{map[string]int{"count": 2}, []any{logFx, "done"}},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindStateWithEffects, c.Kind)
				assert.Equal(t, map[string]int{"count": 2}, c.State)
				require.Len(t, c.Effects, 1)
				assert.Equal(t, "done", c.Effects[0].Payload)
			},
		},
		{
			name: "state_with_multiple_effect_invocations",
			target: []any{
				"next",
				[]any{logFx, 1},
				dispatch.EffectInvocation{Effect: logFx, Payload: 2},
			},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindStateWithEffects, c.Kind)
				require.Len(t, c.Effects, 2)
				assert.Equal(t, 1, c.Effects[0].Payload)
				assert.Equal(t, 2, c.Effects[1].Payload)
			},
		},
		{
			name:   "malformed_effect_entries_are_omitted",
			target: []any{"next", "junk", []any{}, []any{"not a func", 1}},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindStateWithEffects, c.Kind)
				assert.Empty(t, c.Effects)
			},
		},
		{
			name:   "empty_sequence_degrades_to_state_passthrough",
			target: []any{},
			validate: func(t *testing.T, c dispatch.ClassifiedTarget) {
				assert.Equal(t, dispatch.KindState, c.Kind)
				assert.Equal(t, []any{}, c.State)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.validate(t, dispatch.ClassifyTarget(tc.target))
		})
	}
}

func Test_ClassifiedTarget_ProducesState(t *testing.T) {
	action := dispatch.Action(func(state dispatch.State, _ any) any { return state })

	assert.True(t, dispatch.ClassifyTarget(42).ProducesState())
	assert.True(t, dispatch.ClassifyTarget([]any{"state"}).ProducesState())
	assert.False(t, dispatch.ClassifyTarget(action).ProducesState())
	assert.False(t, dispatch.ClassifyTarget([]any{action, 1}).ProducesState())
}

func Test_AsEffectInvocation_PayloadDefaultsToNil(t *testing.T) {
	logFx := dispatch.Effect(func(_ dispatch.Dispatch, _ any) {})

	invocation, ok := dispatch.AsEffectInvocation([]any{logFx})

	require.True(t, ok)
	assert.Nil(t, invocation.Payload)
}
