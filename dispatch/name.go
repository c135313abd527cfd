package dispatch

import (
	"regexp"
	"runtime"
	"strings"
)

var anonymousNamePattern = regexp.MustCompile(`^(func\d+|\d+)$`)

// NameRegistry maps callables to human-readable labels for log output.
//
// Explicit registration takes precedence over reflection-based derivation.
// Labels are keyed by code pointer, so closures created from the same
// function literal share one label.
type NameRegistry struct {
	labels map[uintptr]string
}

// NewNameRegistry creates an empty NameRegistry.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{
		labels: make(map[uintptr]string),
	}
}

// Register attaches a label to a callable.
// Returns an error if fn is not a function value or the label is empty.
func (r *NameRegistry) Register(fn any, label string) error {
	id, ok := CallableID(fn)
	if !ok {
		return ErrNilCallableSupplied
	}

	if label == "" {
		return ErrEmptyNameSupplied
	}

	r.labels[id] = label

	return nil
}

// NameOf resolves the display name of a callable: the registered label if
// one exists, otherwise the reflection-derived name. Either way the bound
// prefix rule of TrimBoundPrefix is applied. An anonymous callable with no
// label yields the empty string; callers should display a placeholder.
func (r *NameRegistry) NameOf(fn any) string {
	if id, ok := CallableID(fn); ok {
		if label, found := r.labels[id]; found {
			return TrimBoundPrefix(label)
		}
	}

	return DeriveName(fn)
}

// DeriveName derives a display name for a callable from runtime function
// metadata. The package path, any "-fm" method-value suffix, and any bound
// prefix tokens are stripped. Anonymous functions yield the empty string.
func DeriveName(fn any) string {
	id, ok := CallableID(fn)
	if !ok {
		return ""
	}

	rf := runtime.FuncForPC(id)
	if rf == nil {
		return ""
	}

	name := rf.Name()

	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, "-fm")

	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Trim(name, "()*")
	name = TrimBoundPrefix(name)

	if anonymousNamePattern.MatchString(name) {
		return ""
	}

	return name
}

// TrimBoundPrefix strips bound prefix tokens from a label, an artifact of
// identity-preserving partial application in the host framework.
// The rule is: split on spaces, keep the last token, so "bound foo" and
// "bound bound foo" both yield "foo".
func TrimBoundPrefix(label string) string {
	if i := strings.LastIndex(label, " "); i >= 0 {
		return label[i+1:]
	}

	return label
}
