package debugtrace

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

// ErrParsingConfigFailed is returned when the trace environment variables
// cannot be parsed.
var ErrParsingConfigFailed = errors.New("parsing trace config from environment failed")

// Config controls the Debug preset through the process environment, so
// tracing can be toggled without touching application code.
type Config struct {
	// Disabled turns the middleware into a no-op: the host dispatch is
	// handed back unchanged.
	Disabled bool `env:"DISPATCH_TRACE_DISABLED"`

	// StateChanges controls whether the preset reports state transitions
	// with from/to values.
	StateChanges bool `env:"DISPATCH_TRACE_STATE_CHANGES" envDefault:"true"`
}

// LoadConfig parses the trace configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfigFailed, err)
	}

	return cfg, nil
}

// DebugFromEnv installs the Debug preset configured from the environment,
// reporting to sink (or a console sink on stdout when sink is nil). When
// tracing is disabled the host dispatch is returned unchanged.
func DebugFromEnv(sink dispatch.Sink, next dispatch.Dispatch, options ...Option) (dispatch.Dispatch, error) {
	if next == nil {
		return nil, dispatch.ErrNilDispatchSupplied
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if cfg.Disabled {
		return next, nil
	}

	if sink == nil {
		sink = NewConsoleSink(nil)
	}

	preset := debugOptions(sink, cfg.StateChanges)

	return Install(next, append(preset, options...)...)
}
