// Package render converts traced values into single-line strings for log
// output.
package render

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/isabo/hyperapp-debug-trace/dispatch"
)

const anonymousLabel = "<anonymous>"

var json = jsoniter.ConfigFastest

// Compact renders a value as compact JSON. Function values render as their
// derived name, and values jsoniter cannot marshal fall back to fmt.
func Compact(value any) string {
	if value == nil {
		return "null"
	}

	if dispatch.IsCallable(value) {
		return "func:" + DisplayName(dispatch.DeriveName(value))
	}

	out, err := json.MarshalToString(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return out
}

// DisplayName substitutes the anonymous placeholder for an empty derived name.
func DisplayName(name string) string {
	if name == "" {
		return anonymousLabel
	}

	return name
}
