package utils

import (
	"html"
	"strings"
)

// Escaped form of the red-text marker pair after the leaf-escape pass.
const (
	redOpenEscaped  = "&lt;red&gt;"
	redCloseEscaped = "&lt;/red&gt;"

	redOpenHTML  = `<div style="color:red">`
	redCloseHTML = `</div>`
)

// EscapeLeafStrings walks a generic JSON-shaped tree (maps, slices, strings)
// and HTML-entity escapes every leaf string. Non-string leaves and nils pass
// through untouched.
func EscapeLeafStrings(v any) any {
	switch t := v.(type) {
	case string:
		return html.EscapeString(t)
	case map[string]any:
		for k, child := range t {
			t[k] = EscapeLeafStrings(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = EscapeLeafStrings(child)
		}
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = html.EscapeString(s)
		}
		return out
	default:
		return v
	}
}

// ApplyRedMarkup turns the escaped red-text marker pair into real HTML
// wrapping. It runs after escaping, so everything except the markers stays
// entity-safe.
func ApplyRedMarkup(s string) string {
	s = strings.ReplaceAll(s, redOpenEscaped, redOpenHTML)
	return strings.ReplaceAll(s, redCloseEscaped, redCloseHTML)
}
