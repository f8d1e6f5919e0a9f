package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcotte/inscripto/internal/app/models"
)

// seasonSynonyms maps lowercase season words, French and English, to the
// canonical French label stored in the schedule data.
var seasonSynonyms = map[string]models.Season{
	"automne":   models.SeasonAutumn,
	"autumn":    models.SeasonAutumn,
	"fall":      models.SeasonAutumn,
	"hiver":     models.SeasonWinter,
	"winter":    models.SeasonWinter,
	"été":       models.SeasonSummer,
	"ete":       models.SeasonSummer,
	"summer":    models.SeasonSummer,
	"printemps": models.SeasonSummer, // No spring term; fold onto summer.
}

// NormalizeTerm parses a free-form term mention ("automne 2025",
// "Fall 2025") into the canonical "<Season> <Year>" label. Returns false
// when the input cannot be parsed.
func NormalizeTerm(raw string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) != 2 {
		return "", false
	}

	season, ok := seasonSynonyms[strings.ToLower(fields[0])]
	if !ok {
		return "", false
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil || year < 1900 || year > 2200 {
		return "", false
	}

	return fmt.Sprintf("%s %d", season, year), true
}

// TermYear extracts the year from a normalized term label, or 0 when absent.
func TermYear(term string) int {
	fields := strings.Fields(term)
	if len(fields) != 2 {
		return 0
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0
	}
	return year
}
