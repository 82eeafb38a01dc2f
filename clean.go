package aic

import "strings"

// clean removes every occurrence of the runes in drop from s.
func clean(s, drop string) string {
	if !strings.ContainsAny(s, drop) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(drop, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
