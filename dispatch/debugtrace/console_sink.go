package debugtrace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
	"github.com/isabo/hyperapp-debug-trace/dispatch/debugtrace/internal/render"
)

const consoleIndent = "  "

// ConsoleSink renders grouped trace output to an io.Writer using
// indentation for nesting, in the manner of a console's group/groupEnd.
//
// It is meant for the single-threaded dispatch call stack and performs no
// internal locking.
type ConsoleSink struct {
	w     io.Writer
	depth int
}

// NewConsoleSink creates a ConsoleSink writing to w, or to stdout when w is
// nil.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}

	return &ConsoleSink{w: w}
}

// OpenGroup starts a named group; subsequent lines indent one level deeper.
func (s *ConsoleSink) OpenGroup(label string) {
	s.println(label)
	s.depth++
}

// Emit writes a labeled value line inside the current group.
func (s *ConsoleSink) Emit(label string, value any) {
	s.println(label + ": " + render.Compact(value))
}

// CloseGroup ends the innermost open group. Closing with no open group is a
// no-op rather than an error.
func (s *ConsoleSink) CloseGroup() {
	if s.depth > 0 {
		s.depth--
	}
}

// Line writes a flat message with rendered key-value pairs.
func (s *ConsoleSink) Line(msg string, args ...any) {
	var b strings.Builder
	b.WriteString(msg)

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}

		b.WriteString(" " + key + "=" + render.Compact(args[i+1]))
	}

	s.println(b.String())
}

func (s *ConsoleSink) println(line string) {
	_, _ = fmt.Fprintf(s.w, "%s%s\n", strings.Repeat(consoleIndent, s.depth), line)
}

// Ensure ConsoleSink implements dispatch.Sink.
var _ dispatch.Sink = (*ConsoleSink)(nil)
