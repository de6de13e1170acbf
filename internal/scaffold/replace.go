package scaffold

import (
	"sort"
	"strings"
)

// Replacements maps placeholder keys to their literal values. A key K matches
// the marker {{K}} exactly, case-sensitively.
type Replacements map[string]string

// Marker returns the placeholder marker for key.
func Marker(key string) string {
	return "{{" + key + "}}"
}

// Apply substitutes every known marker in s in a single pass. Replacement
// values are never rescanned, and markers for keys not in r are left as-is.
func (r Replacements) Apply(s string) string {
	return r.replacer().Replace(s)
}

func (r Replacements) replacer() *strings.Replacer {
	keys := make([]string, 0, len(r))
	for k := range r {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, Marker(k), r[k])
	}
	return strings.NewReplacer(pairs...)
}
