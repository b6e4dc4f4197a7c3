package responder

import (
	"fmt"
	"strings"

	"github.com/jmbenitez/jurischat/internal/models"
)

var sugerencias = []string{
	"Verifica que los datos estén cargados correctamente",
	"Prueba términos más generales",
	"Revisa la ortografía de los filtros",
}

// Synthesize builds the conversational summary for one result set: a count
// message with one clause per detected filter, plus a per-sheet distribution
// when the results span more than one source.
func Synthesize(query string, filters models.FilterSet, results []models.MatchResult) models.Respuesta {
	total := len(results)

	if total == 0 {
		return models.Respuesta{
			Mensaje:     fmt.Sprintf("No encontré resultados para '%s' en la base de datos.", query),
			Sugerencias: sugerencias,
		}
	}

	plural := "s"
	if total == 1 {
		plural = ""
	}
	partes := []string{fmt.Sprintf("Encontré %d resultado%s", total, plural)}

	if filters.Tribunal != "" {
		partes = append(partes, fmt.Sprintf("en %s", filters.Tribunal))
	}
	if filters.Tema != "" {
		partes = append(partes, fmt.Sprintf("sobre %s", filters.Tema))
	}
	if filters.Sala != "" {
		partes = append(partes, fmt.Sprintf("de la sala %s", filters.Sala))
	}
	if filters.Year != 0 {
		partes = append(partes, fmt.Sprintf("del año %d", filters.Year))
	}

	conteos, fuentes := groupBySource(results)

	var analisis []string
	if len(fuentes) > 1 {
		detalle := make([]string, 0, len(fuentes))
		for _, fuente := range fuentes {
			detalle = append(detalle, fmt.Sprintf("%d en %s", conteos[fuente], fuente))
		}
		analisis = append(analisis, "Distribución: "+strings.Join(detalle, ", "))
	}

	return models.Respuesta{
		Mensaje:  strings.Join(partes, " ") + ".",
		Analisis: analisis,
		Fuentes:  fuentes,
	}
}

// groupBySource counts results per sheet, keeping first-seen sheet order.
func groupBySource(results []models.MatchResult) (map[string]int, []string) {
	conteos := make(map[string]int)
	var orden []string
	for _, r := range results {
		if _, seen := conteos[r.Fuente]; !seen {
			orden = append(orden, r.Fuente)
		}
		conteos[r.Fuente]++
	}
	return conteos, orden
}
