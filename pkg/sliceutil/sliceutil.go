// Package sliceutil provides small helpers for string slices.
package sliceutil

import "strings"

// Contains reports whether item is in slice.
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// Normalize trims every entry, drops empty ones and removes duplicates,
// keeping the first occurrence of each value.
func Normalize(slice []string) []string {
	var out []string
	for _, s := range slice {
		s = strings.TrimSpace(s)
		if s == "" || Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
