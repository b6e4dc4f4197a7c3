package matcher

import (
	"strconv"
	"strings"

	"github.com/jmbenitez/jurischat/internal/models"
)

type expedientePredicate struct {
	fragmento string
}

func (p expedientePredicate) Kind() string { return "expediente" }

func (p expedientePredicate) Matches(rec models.Record, hoja string) bool {
	fragmento := strings.ToLower(p.fragmento)
	for _, campo := range FieldsMatching(rec, "expediente") {
		valor := rec[campo]
		if valor != "" && strings.Contains(strings.ToLower(valor), fragmento) {
			return true
		}
	}
	return false
}

type salaPredicate struct {
	sala string
}

func (p salaPredicate) Kind() string { return "sala" }

func (p salaPredicate) Matches(rec models.Record, hoja string) bool {
	for _, campo := range FieldsMatching(rec, "sala") {
		valor := rec[campo]
		if valor != "" && strings.ToUpper(valor) == p.sala {
			return true
		}
	}
	return false
}

type temaPredicate struct {
	tema string
}

func (p temaPredicate) Kind() string { return "tema" }

var camposTema = []string{"tema", "caratula", "resuelve"}

func (p temaPredicate) Matches(rec models.Record, hoja string) bool {
	tema := strings.ToLower(p.tema)
	for _, fragmento := range camposTema {
		for _, campo := range FieldsMatching(rec, fragmento) {
			valor := rec[campo]
			if valor != "" && strings.Contains(strings.ToLower(valor), tema) {
				return true
			}
		}
	}
	return false
}

type yearPredicate struct {
	year int
}

func (p yearPredicate) Kind() string { return "año" }

// The year matches against date fields first, then against the sheet label
// (sheets are year-tagged, e.g. "TFN_2023"). A record with no date fields at
// all passes unconditionally; that permissive fallback is part of the
// published query behavior.
func (p yearPredicate) Matches(rec models.Record, hoja string) bool {
	year := strconv.Itoa(p.year)
	camposFecha := FieldsMatching(rec, "fecha")
	if len(camposFecha) == 0 {
		return true
	}
	for _, campo := range camposFecha {
		if strings.Contains(rec[campo], year) {
			return true
		}
	}
	return strings.Contains(hoja, year)
}

type tribunalPredicate struct {
	codigo string
}

func (p tribunalPredicate) Kind() string { return "tribunal" }

func (p tribunalPredicate) Matches(rec models.Record, hoja string) bool {
	codigo := strings.ToLower(p.codigo)
	if strings.Contains(strings.ToLower(hoja), codigo) {
		return true
	}
	for _, campo := range FieldsMatching(rec, "tribunal") {
		valor := rec[campo]
		if valor != "" && strings.Contains(strings.ToLower(valor), codigo) {
			return true
		}
	}
	return false
}
