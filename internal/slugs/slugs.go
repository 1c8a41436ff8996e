// Package slugs provides the slugification helpers used by efrog.
//
// There are two strategies:
//   - Heading slugs: anchors for info overlay sections, a conservative
//     letter/digit transformation that keeps non-ASCII letters.
//   - Component slugs: file name components, built on gosimple/slug.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// HeadingSlug converts a heading text to a URL-friendly slug.
func HeadingSlug(text string) string {
	var result strings.Builder
	prevDash := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '-' || r == '_' || r == ':':
			// Convert separators (including colon) to dashes
			if !prevDash && result.Len() > 0 {
				result.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

// ComponentSlug converts a string to a slug safe for a file name component.
// A known dataset extension is stripped first.
func ComponentSlug(s string) string {
	for _, ext := range []string{".zst", ".json", ".yaml", ".yml", ".db"} {
		s = strings.TrimSuffix(s, ext)
	}
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	}
	return slugged
}
