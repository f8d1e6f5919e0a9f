package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTerm(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Automne 2025", "Automne 2025", true},
		{"automne 2025", "Automne 2025", true},
		{"  fall 2025 ", "Automne 2025", true},
		{"Winter 2026", "Hiver 2026", true},
		{"hiver 2026", "Hiver 2026", true},
		{"ete 2026", "Été 2026", true},
		{"Été 2026", "Été 2026", true},
		{"printemps 2026", "Été 2026", true},
		{"Automne", "", false},
		{"Automne deux mille", "", false},
		{"Automne 1492", "", false},
		{"", "", false},
		{"session prochaine", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeTerm(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestTermYear(t *testing.T) {
	assert.Equal(t, 2025, TermYear("Automne 2025"))
	assert.Equal(t, 0, TermYear("Automne"))
	assert.Equal(t, 0, TermYear(""))
}
