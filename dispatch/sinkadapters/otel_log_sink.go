package sinkadapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/log"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

// OTelLogSink implements dispatch.Sink using the OpenTelemetry logging API
// directly. This provides more control over log record creation than the
// slog bridge but requires manual setup of the logger.
type OTelLogSink struct {
	logger log.Logger
	groups []string
}

// NewOTelLogSink creates a sink emitting OpenTelemetry log records through
// the provided logger.
func NewOTelLogSink(logger log.Logger) *OTelLogSink {
	return &OTelLogSink{logger: logger}
}

// OpenGroup pushes a group label; emissions carry the joined path.
func (s *OTelLogSink) OpenGroup(label string) {
	s.groups = append(s.groups, label)
}

// Emit logs a labeled value inside the current group path.
func (s *OTelLogSink) Emit(label string, value any) {
	s.emit(label, attrValue, value, attrGroup, s.groupPath())
}

// CloseGroup pops the innermost group label.
func (s *OTelLogSink) CloseGroup() {
	if len(s.groups) > 0 {
		s.groups = s.groups[:len(s.groups)-1]
	}
}

// Line logs a flat message with key-value args.
func (s *OTelLogSink) Line(msg string, args ...any) {
	s.emit(msg, args...)
}

// emit creates and emits an OpenTelemetry log record. Args come in
// key-value pairs like slog; non-string keys are skipped.
func (s *OTelLogSink) emit(msg string, args ...any) {
	record := log.Record{}
	record.SetSeverity(log.SeverityInfo)
	record.SetBody(log.StringValue(msg))

	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			record.AddAttributes(log.String(key, stringValue(args[i+1])))
		}
	}

	s.logger.Emit(context.Background(), record)
}

// stringValue converts any value to string for OpenTelemetry attributes.
func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return slog.AnyValue(v).String()
}

func (s *OTelLogSink) groupPath() string {
	return joinGroups(s.groups)
}

// Ensure OTelLogSink implements dispatch.Sink.
var _ dispatch.Sink = (*OTelLogSink)(nil)
