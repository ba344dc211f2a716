// Package parsing converts loosely-typed résumé and job posting data
// into the canonical records in internal/types. LLM extractors return
// structurally inconsistent JSON (doubly-encoded strings, Title-Case vs
// lower-case keys, literal "null"); the coercion functions here are the
// one boundary that absorbs all of that, so downstream packages never
// need defensive type checks.
package parsing

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// listSeparators splits free-form strings into list items: bullet
// glyphs, newlines, pipes, commas and semicolons.
var listSeparators = regexp.MustCompile(`[,\n•‣|;]+`)

// Scalar coerces any value into a plain trimmed string. It is total:
// it never fails, and never surfaces a map or slice where a string is
// expected. When value is a map, preferredKeys are searched in order
// and the first present key wins; otherwise all values are joined.
func Scalar(value any, preferredKeys ...string) string {
	value = reparseJSON(value)

	switch v := value.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(v)
		if strings.EqualFold(s, "null") {
			return ""
		}
		return s
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := Scalar(item, preferredKeys...); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case []string:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		for _, key := range preferredKeys {
			if inner, ok := v[key]; ok {
				return Scalar(inner)
			}
		}
		// Last resort: join all values in deterministic key order.
		parts := make([]string, 0, len(v))
		for _, key := range sortedKeys(v) {
			if s := Scalar(v[key]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return stringify(v)
	}
}

// List coerces any value into a list of trimmed, non-empty strings.
// Like Scalar it is total. Strings that are not JSON are split on the
// common separator set; maps are searched for well-known list keys
// before falling back to the union of their values.
func List(value any) []string {
	value = reparseJSON(value)

	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" && !strings.EqualFold(s, "null") {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			switch item.(type) {
			case []any, map[string]any:
				out = append(out, List(item)...)
			default:
				if s := Scalar(item); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case map[string]any:
		for _, key := range []string{"Skills", "skills", "Items", "items", "Values", "values", "value"} {
			if inner, ok := v[key]; ok {
				return List(inner)
			}
		}
		out := []string{}
		for _, key := range sortedKeys(v) {
			out = append(out, List(v[key])...)
		}
		return out
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "null") {
			return []string{}
		}
		out := []string{}
		for _, item := range listSeparators.Split(s, -1) {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	default:
		if s := stringify(v); s != "" {
			return []string{s}
		}
		return []string{}
	}
}

// reparseJSON unwraps values that arrive as JSON-encoded strings, a
// common LLM failure mode. Unparseable strings pass through untouched.
func reparseJSON(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return value
	}
	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return value
	}
	return parsed
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return strings.Trim(string(data), `"`)
	}
}

// sortedKeys returns map keys in sorted order so fallback joins are
// deterministic regardless of Go map iteration order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// field looks a key up under both Title-Case and lower-case spellings.
func field(data map[string]any, names ...string) any {
	for _, name := range names {
		if v, ok := data[name]; ok {
			return v
		}
	}
	return nil
}
