package validation

import (
	"sort"
	"strings"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
