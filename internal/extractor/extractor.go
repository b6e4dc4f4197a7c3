package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jmbenitez/jurischat/internal/config"
	"github.com/jmbenitez/jurischat/internal/models"
)

var (
	// "expediente 12345", "exp. 12345-A", "tf 12345/1". The token keeps its
	// original casing; matching lower-cases both sides later.
	expedientePattern = regexp.MustCompile(`(?i)(?:expediente|exp\.?|tf)\s*[-\s]*(\d+[-/]?\w*)`)

	// Standalone 4-digit years 2000-2099, matched against the original-cased
	// query so the digits are kept verbatim.
	yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

	salaPattern = regexp.MustCompile(`(?i)sala\s*([a-g1-7])`)
)

// Extractor turns a free-text query into a FilterSet using fixed lexical
// patterns. Tribunal and topic keywords come from the config tables.
type Extractor struct {
	tribunales []config.TribunalRule
	temas      []config.TemaGroup
}

func New(cfg *config.FiltrosConfig) *Extractor {
	return &Extractor{
		tribunales: cfg.Tribunales,
		temas:      cfg.Temas,
	}
}

// Extract is pure: every rule fires independently and the first match wins
// per filter kind.
func (e *Extractor) Extract(query string) models.FilterSet {
	lower := strings.ToLower(query)

	var filters models.FilterSet

	if m := expedientePattern.FindStringSubmatch(query); m != nil {
		filters.Expediente = m[1]
	}

	if m := yearPattern.FindStringSubmatch(query); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			filters.Year = year
		}
	}

	if m := salaPattern.FindStringSubmatch(query); m != nil {
		filters.Sala = strings.ToUpper(m[1])
	}

	filters.Tribunal = e.detectTribunal(lower)
	filters.Tema = e.detectTema(lower)

	return filters
}

func (e *Extractor) detectTribunal(lower string) models.Tribunal {
	for _, rule := range e.tribunales {
		for _, palabra := range rule.Palabras {
			if strings.Contains(lower, palabra) {
				return models.Tribunal(rule.Codigo)
			}
		}
	}
	return ""
}

func (e *Extractor) detectTema(lower string) string {
	for _, group := range e.temas {
		for _, raiz := range group.Raices {
			if strings.Contains(lower, raiz) {
				return group.Tema
			}
		}
	}
	return ""
}
