// Package skill canonicalizes free form skill strings.
package skill

import "strings"

// MaxLength is the longest skill accepted on job creation
const MaxLength = 50

// Normalize trims and lowercases a skill.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeSet normalizes every skill, drops empty ones and removes
// duplicates. The first occurrence decides the order.
func NormalizeSet(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		s := Normalize(r)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
