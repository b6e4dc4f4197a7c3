package matcher

import (
	"sort"
	"strings"

	"github.com/jmbenitez/jurischat/internal/models"
)

// Predicate is one per-kind match rule. A record matches a filter set when it
// satisfies every predicate built from it.
type Predicate interface {
	Kind() string
	Matches(rec models.Record, hoja string) bool
}

// FieldsMatching returns the record's field names containing substr,
// case-insensitive, in sorted order. Record schemas vary per sheet
// ("Fecha_Resolucion", "Sala_TFN"), so field lookup is by name fragment,
// never by exact name.
func FieldsMatching(rec models.Record, substr string) []string {
	substr = strings.ToLower(substr)
	var fields []string
	for name := range rec {
		if strings.Contains(strings.ToLower(name), substr) {
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}

// FromFilters builds the predicate list for the present filter kinds.
func FromFilters(f models.FilterSet) []Predicate {
	var preds []Predicate
	if f.Expediente != "" {
		preds = append(preds, expedientePredicate{fragmento: f.Expediente})
	}
	if f.Sala != "" {
		preds = append(preds, salaPredicate{sala: f.Sala})
	}
	if f.Tema != "" {
		preds = append(preds, temaPredicate{tema: f.Tema})
	}
	if f.Year != 0 {
		preds = append(preds, yearPredicate{year: f.Year})
	}
	if f.Tribunal != "" {
		preds = append(preds, tribunalPredicate{codigo: string(f.Tribunal)})
	}
	return preds
}

// Kinds lists the predicate kinds in application order, for logging which
// filters are active on a query.
func Kinds(preds []Predicate) []string {
	kinds := make([]string, 0, len(preds))
	for _, p := range preds {
		kinds = append(kinds, p.Kind())
	}
	return kinds
}

// Matches reports whether the record satisfies every predicate. An empty
// predicate list matches everything.
func Matches(rec models.Record, hoja string, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Matches(rec, hoja) {
			return false
		}
	}
	return true
}
