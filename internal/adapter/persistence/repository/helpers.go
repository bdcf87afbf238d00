package repository

import (
	"time"

	"controle_faturas/internal/domain/entities"
)

// Dates are written and compared as ISO strings so the SQL predicates and the
// Go-side DeriveStatus agree byte for byte.
const (
	diaLayout     = "2006-01-02"
	momentoLayout = "2006-01-02 15:04:05"
)

func dia(t time.Time) string { return t.Format(diaLayout) }

func momento(t time.Time) string { return t.Format(momentoLayout) }

// horizonte is the far edge of the "proximo" window for a given reference day.
func horizonte(hoje time.Time) string {
	return dia(hoje.AddDate(0, 0, entities.JanelaProximoDias))
}
