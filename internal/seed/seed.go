package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type program struct {
	code  string
	label string
}

type course struct {
	sigle         string
	title         string
	credits       float64
	department    string
	prerequisites string
}

type curriculumEntry struct {
	programCode string
	sigle       string
	nominalTerm string
}

type offering struct {
	sigle      string
	term       string
	year       int
	schedule   string
	location   string
	instructor string
}

var defaultPrograms = []program{
	{"7316", "Baccalauréat en informatique"},
	{"7764", "Baccalauréat en administration des affaires"},
}

var defaultCourses = []course{
	{"INF1000", "Introduction à la programmation", 3, "INF", ""},
	{"INF1062", "Organisation des ordinateurs", 3, "INF", "INF1000"},
	{"INF1120", "Programmation I", 3, "INF", ""},
	{"INF2000", "Structures de données", 3, "INF", "INF1000,MTH1000"},
	{"INF3000", "Génie logiciel", 3, "INF", "INF2000"},
	{"MTH1000", "Mathématiques discrètes", 3, "MTH", ""},
	{"MTH1007", "Algèbre linéaire", 3, "MTH", ""},
	{"ADM1002", "Principes de gestion", 3, "ADM", ""},
	{"CTB1000", "Comptabilité générale", 3, "CTB", ""},
}

var defaultCurriculum = []curriculumEntry{
	{"7316", "INF1000", "Automne 2025"},
	{"7316", "INF1120", "Automne 2025"},
	{"7316", "MTH1000", "Automne 2025"},
	{"7316", "INF1062", "Hiver 2026"},
	{"7316", "MTH1007", "Hiver 2026"},
	{"7316", "INF2000", "Hiver 2026"},
	{"7316", "INF3000", "Automne 2026"},
	{"7764", "ADM1002", "Automne 2025"},
	{"7764", "CTB1000", "Automne 2025"},
}

var defaultOfferings = []offering{
	{"INF1000", "Automne 2025", 2025, "Lundi 9h30-12h30", "PK-1140", "J. Tremblay"},
	{"INF1120", "Automne 2025", 2025, "Mardi 14h-17h", "PK-2205", "A. Gagnon"},
	{"MTH1000", "Automne 2025", 2025, "Mercredi 9h30-12h30", "SH-2800", "L. Bouchard"},
	{"ADM1002", "Automne 2025", 2025, "Jeudi 18h-21h", "DS-R510", "M. Côté"},
	{"CTB1000", "Automne 2025", 2025, "Vendredi 9h30-12h30", "DS-1520", "S. Lavoie"},
	{"INF1062", "Hiver 2026", 2026, "Lundi 14h-17h", "PK-1350", "J. Tremblay"},
	{"MTH1007", "Hiver 2026", 2026, "Mardi 9h30-12h30", "SH-3420", "L. Bouchard"},
	{"INF2000", "Hiver 2026", 2026, "Jeudi 9h30-12h30", "PK-2205", "A. Gagnon"},
}

// CreateDefaultData inserts the demo catalog: programs, courses, curricula,
// offerings and one demo student. Every insert is idempotent, so reruns on
// startup are harmless.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (programs, courses, offerings)...")
	var finalErr error

	for _, p := range defaultPrograms {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO programs (code, label) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			p.code, p.label)
		if err != nil {
			lgr.Error().Err(err).Str("program", p.code).Msg("Error seeding program")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, c := range defaultCourses {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO courses (sigle, title, credits, department, prerequisites)
			 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (sigle) DO NOTHING`,
			c.sigle, c.title, c.credits, c.department, c.prerequisites)
		if err != nil {
			lgr.Error().Err(err).Str("sigle", c.sigle).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, e := range defaultCurriculum {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO curriculum_entries (program_code, sigle, nominal_term)
			 VALUES ($1, $2, $3) ON CONFLICT (program_code, sigle) DO NOTHING`,
			e.programCode, e.sigle, e.nominalTerm)
		if err != nil {
			lgr.Error().Err(err).Str("sigle", e.sigle).Msg("Error seeding curriculum entry")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, o := range defaultOfferings {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO offerings (sigle, term, year, schedule, location, instructor)
			 VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (sigle, term) DO NOTHING`,
			o.sigle, o.term, o.year, o.schedule, o.location, o.instructor)
		if err != nil {
			lgr.Error().Err(err).Str("sigle", o.sigle).Msg("Error seeding offering")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Demo student for local experimentation.
	_, err := dbPool.Exec(ctx,
		`INSERT INTO students (code_permanent, first_name, last_name, program_code, status)
		 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (code_permanent) DO NOTHING`,
		"TREM08089508", "Marie", "Tremblay", "7316", "Actif")
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding demo student")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
