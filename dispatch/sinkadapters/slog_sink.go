// Package sinkadapters provides ready-made implementations of the
// dispatch.Sink interface on common logging backends. These adapters enable
// plug-and-play trace output without implementing the interface yourself.
//
// Group nesting is flattened into a group-path attribute, since structured
// loggers have no native notion of open/close groups. All adapters are used
// from the single-threaded dispatch call stack and perform no locking.
package sinkadapters

import (
	"log/slog"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

const (
	attrGroup = "group"
	attrValue = "value"
)

// SlogSink implements dispatch.Sink on a slog.Logger.
type SlogSink struct {
	logger *slog.Logger
	groups []string
}

// NewSlogBridgeSink creates a sink whose logger goes through the
// OpenTelemetry slog bridge, giving automatic trace correlation via the
// global LoggerProvider. This is the recommended constructor when an
// OpenTelemetry pipeline is configured.
func NewSlogBridgeSink(name string) *SlogSink {
	return &SlogSink{logger: otelslog.NewLogger(name)}
}

// NewSlogSink creates a sink on the provided slog.Logger as-is, without
// OpenTelemetry integration.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// OpenGroup pushes a group label; emissions carry the joined path.
func (s *SlogSink) OpenGroup(label string) {
	s.groups = append(s.groups, label)
}

// Emit logs a labeled value inside the current group path.
func (s *SlogSink) Emit(label string, value any) {
	s.logger.Info(label, attrValue, value, attrGroup, s.groupPath())
}

// CloseGroup pops the innermost group label.
func (s *SlogSink) CloseGroup() {
	if len(s.groups) > 0 {
		s.groups = s.groups[:len(s.groups)-1]
	}
}

// Line logs a flat message with key-value args.
func (s *SlogSink) Line(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *SlogSink) groupPath() string {
	return joinGroups(s.groups)
}

// joinGroups flattens a group stack into a single path attribute.
func joinGroups(groups []string) string {
	return strings.Join(groups, " / ")
}

// Ensure SlogSink implements dispatch.Sink.
var _ dispatch.Sink = (*SlogSink)(nil)
