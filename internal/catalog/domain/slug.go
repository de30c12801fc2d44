package domain

import "strings"

// Slugify converts a display name into a URL slug: lowercase, only
// [a-z0-9-], spaces collapsed to single dashes.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	slug := strings.Join(fields, "-")

	// Collapse runs of dashes introduced by the name itself.
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
