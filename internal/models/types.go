package models

import (
	"sort"
)

type Tribunal string

const (
	TribunalTFN   Tribunal = "TFN"
	TribunalCNCAF Tribunal = "CNCAF"
	TribunalCSJN  Tribunal = "CSJN"
)

// FuenteKey is the synthetic field added to records returned by a query,
// holding the sheet the record came from.
const FuenteKey = "_fuente"

// Record is one ingested spreadsheet row, keyed by column name.
// Missing cells are empty strings, never absent keys.
type Record map[string]string

// Clone returns a copy of the record. Query results carry a copy so the
// published snapshot is never mutated.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Snapshot is the full record store as produced by one ingestion: a load
// timestamp plus one ordered record list per source sheet. A snapshot is
// immutable once published; re-ingestion replaces it wholesale.
type Snapshot struct {
	FechaCarga string              `json:"fecha_carga"`
	Tribunales map[string][]Record `json:"tribunales"`
}

// Hojas returns the sheet labels in store iteration order. JSON objects carry
// no order, so store order is defined as sorted label order.
func (s *Snapshot) Hojas() []string {
	hojas := make([]string, 0, len(s.Tribunales))
	for hoja := range s.Tribunales {
		hojas = append(hojas, hoja)
	}
	sort.Strings(hojas)
	return hojas
}

func (s *Snapshot) TotalRegistros() int {
	total := 0
	for _, registros := range s.Tribunales {
		total += len(registros)
	}
	return total
}

func (s *Snapshot) Vacio() bool {
	return s == nil || len(s.Tribunales) == 0
}

// FilterSet holds the structured filters extracted from one free-text query.
// Zero values mean "no constraint on that dimension".
type FilterSet struct {
	Expediente string   `json:"expediente,omitempty"`
	Year       int      `json:"año,omitempty"`
	Sala       string   `json:"sala,omitempty"`
	Tribunal   Tribunal `json:"tribunal,omitempty"`
	Tema       string   `json:"tema,omitempty"`
}

func (f FilterSet) Empty() bool {
	return f == FilterSet{}
}

// MatchResult is one matched record annotated with its source sheet.
type MatchResult struct {
	Record Record
	Fuente string
}

// Payload returns the record as sent on the wire: a copy with the source
// sheet under FuenteKey.
func (m MatchResult) Payload() Record {
	out := m.Record.Clone()
	out[FuenteKey] = m.Fuente
	return out
}

// Respuesta is the conversational summary built from one result set.
// Sugerencias is only populated when the result set is empty.
type Respuesta struct {
	Mensaje     string   `json:"mensaje"`
	Analisis    []string `json:"analisis,omitempty"`
	Fuentes     []string `json:"fuentes,omitempty"`
	Sugerencias []string `json:"sugerencias,omitempty"`
}

// QueryResult is the full answer to one query. Datos is the truncated payload;
// TotalResultados always counts the untruncated match set.
type QueryResult struct {
	Query             string    `json:"query"`
	FiltrosDetectados FilterSet `json:"filtros_detectados"`
	TotalResultados   int       `json:"total_resultados"`
	Respuesta         Respuesta `json:"respuesta"`
	Datos             []Record  `json:"datos"`
	HayMasResultados  bool      `json:"hay_mas_resultados"`
}
