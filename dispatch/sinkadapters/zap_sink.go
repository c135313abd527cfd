package sinkadapters

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

// ZapSink implements dispatch.Sink on a zap.Logger.
type ZapSink struct {
	logger *zap.Logger
	groups []string
}

// NewZapSink creates a sink on the provided zap.Logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// OpenGroup pushes a group label; emissions carry the joined path.
func (s *ZapSink) OpenGroup(label string) {
	s.groups = append(s.groups, label)
}

// Emit logs a labeled value inside the current group path.
func (s *ZapSink) Emit(label string, value any) {
	s.logger.Info(label, zap.Any(attrValue, value), zap.String(attrGroup, joinGroups(s.groups)))
}

// CloseGroup pops the innermost group label.
func (s *ZapSink) CloseGroup() {
	if len(s.groups) > 0 {
		s.groups = s.groups[:len(s.groups)-1]
	}
}

// Line logs a flat message with key-value args converted to zap fields.
func (s *ZapSink) Line(msg string, args ...any) {
	fields := make([]zap.Field, 0, len(args)/2)

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}

		fields = append(fields, zap.Any(key, args[i+1]))
	}

	s.logger.Info(msg, fields...)
}

// Ensure ZapSink implements dispatch.Sink.
var _ dispatch.Sink = (*ZapSink)(nil)
