package notify

import (
	"html"
	"regexp"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeString strips markup tags from s and HTML-escapes what remains.
// Tags are removed before escaping so that escaping never resurrects them.
func SanitizeString(s string) string {
	return html.EscapeString(tagPattern.ReplaceAllString(s, ""))
}

// Sanitize walks an arbitrary decoded JSON value and sanitizes every string
// in it, descending into maps and slices. Non-string scalars pass through
// unchanged.
func Sanitize(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return SanitizeString(t)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = Sanitize(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = Sanitize(val)
		}
		return out
	default:
		return v
	}
}

// SanitizeRequest returns a new map with every string value in the raw
// request cleaned. The input map is left untouched.
func SanitizeRequest(data map[string]interface{}) map[string]interface{} {
	cleaned, _ := Sanitize(data).(map[string]interface{})
	return cleaned
}
