package debugtrace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
	"github.com/isabo/hyperapp-debug-trace/dispatch/debugtrace"
)

func Test_LoadConfig_Defaults(t *testing.T) {
	cfg, err := debugtrace.LoadConfig()

	require.NoError(t, err)
	assert.False(t, cfg.Disabled)
	assert.True(t, cfg.StateChanges)
}

func Test_LoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DISPATCH_TRACE_DISABLED", "true")
	t.Setenv("DISPATCH_TRACE_STATE_CHANGES", "false")

	cfg, err := debugtrace.LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.Disabled)
	assert.False(t, cfg.StateChanges)
}

func Test_LoadConfig_RejectsMalformedValues(t *testing.T) {
	t.Setenv("DISPATCH_TRACE_DISABLED", "not-a-bool")

	_, err := debugtrace.LoadConfig()

	assert.ErrorIs(t, err, debugtrace.ErrParsingConfigFailed)
}

func Test_DebugFromEnv_DisabledReturnsDispatchUnchanged(t *testing.T) {
	t.Setenv("DISPATCH_TRACE_DISABLED", "true")

	recorder := &dispatchRecorder{}

	traced, err := debugtrace.DebugFromEnv(nil, recorder.dispatch)

	require.NoError(t, err)

	originalID, _ := dispatch.CallableID(dispatch.Dispatch(recorder.dispatch))
	tracedID, _ := dispatch.CallableID(traced)
	assert.Equal(t, originalID, tracedID, "disabled tracing must be a zero-cost opt-out")
}

func Test_DebugFromEnv_StateChangesCanBeTurnedOff(t *testing.T) {
	t.Setenv("DISPATCH_TRACE_STATE_CHANGES", "false")

	sink := &sinkRecorder{}
	recorder := &dispatchRecorder{}

	traced, err := debugtrace.DebugFromEnv(sink, recorder.dispatch)
	require.NoError(t, err)

	traced(map[string]int{"x": 1}, nil)

	assert.Len(t, recorder.calls, 1, "no follow-up dispatch when state changes are off")
}

func Test_DebugFromEnv_RejectsNilDispatch(t *testing.T) {
	_, err := debugtrace.DebugFromEnv(nil, nil)

	assert.ErrorIs(t, err, dispatch.ErrNilDispatchSupplied)
}
