package errors

import (
	"slices"
	"strings"
)

// ValidateFormat checks that format is one of allowed (case-insensitive) and
// returns it lower-cased. An empty format resolves to allowed[0].
func ValidateFormat(format string, allowed ...string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if f == "" && len(allowed) > 0 {
		return allowed[0], nil
	}
	if slices.Contains(allowed, f) {
		return f, nil
	}
	return "", New(ErrCodeInvalidFormat, "unsupported format %q (want %s)", format, strings.Join(allowed, ", "))
}
