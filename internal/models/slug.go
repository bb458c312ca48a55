package models

import "strings"

// NormalizeSlug converts a title or caller-supplied slug into its canonical
// form: lower-case, spaces replaced with underscores, apostrophes removed.
// It is applied by the repository on every insert and update so stored
// slugs are canonical no matter what the caller sent.
func NormalizeSlug(raw string) string {
	slug := strings.ToLower(raw)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}
