package uridecode

import "strings"

// IsSafe rejects paths containing double dots, double slashes or backslashes anywhere. It
// is a plain substring match, segments aren't taken into account.
func IsSafe(path string) bool {
	return !strings.Contains(path, "..") &&
		!strings.Contains(path, "//") &&
		strings.IndexByte(path, '\\') == -1
}
