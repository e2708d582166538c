package caption

import "strings"

// SanitizeFilename makes a filename safe to hand to external tools:
// non-ASCII runes are stripped, anything outside [A-Za-z0-9._-] becomes
// an underscore, runs of underscores collapse to one, and the result is
// never empty.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r > 127:
			// dropped entirely
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	if out == "" {
		out = "output"
	}
	return out
}
