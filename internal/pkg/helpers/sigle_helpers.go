package helpers

import (
	"regexp"
	"strings"
)

// Sigle pattern: 3 letters followed by 4 digits (e.g. INF1062).
var (
	siglePattern      = regexp.MustCompile(`[A-Z]{3}[0-9]{4}`)
	exactSiglePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
)

// IsValidSigle reports whether s is a well-formed course sigle.
func IsValidSigle(s string) bool {
	return exactSiglePattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeSigle uppercases and trims a course sigle.
func NormalizeSigle(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParseSigles extracts the course sigles from a free-text prerequisite
// expression ("INF1000, MTH1000"), deduplicated in order of appearance.
func ParseSigles(expr string) []string {
	matches := siglePattern.FindAllString(strings.ToUpper(expr), -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	sigles := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		sigles = append(sigles, m)
	}
	return sigles
}
