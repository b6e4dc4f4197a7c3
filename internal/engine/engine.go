package engine

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jmbenitez/jurischat/internal/extractor"
	"github.com/jmbenitez/jurischat/internal/matcher"
	"github.com/jmbenitez/jurischat/internal/models"
	"github.com/jmbenitez/jurischat/internal/responder"
	"github.com/jmbenitez/jurischat/internal/store"
)

var (
	// ErrEmptyQuery means the query was blank after trimming.
	ErrEmptyQuery = errors.New("empty query")
	// ErrNoData means no snapshot has been loaded yet.
	ErrNoData = errors.New("no data loaded")
)

// When a query matches more than maxPayload records, only the first
// truncatedPayload are returned and hay_mas_resultados is set.
const (
	maxPayload       = 10
	truncatedPayload = 5
)

// Engine answers queries against the current snapshot. The snapshot is
// swapped atomically on reload; an in-flight query keeps the snapshot it
// started with.
type Engine struct {
	extractor *extractor.Extractor
	store     store.Store
	snapshot  atomic.Pointer[models.Snapshot]
	logger    *zerolog.Logger
}

func New(ext *extractor.Extractor, st store.Store, logger *zerolog.Logger) *Engine {
	return &Engine{
		extractor: ext,
		store:     st,
		logger:    logger,
	}
}

// Reload loads the persisted snapshot and installs it.
func (e *Engine) Reload(ctx context.Context) error {
	snap, err := e.store.Load(ctx)
	if err != nil {
		return err
	}
	e.Swap(snap)
	return nil
}

// Swap installs a freshly ingested snapshot.
func (e *Engine) Swap(snap *models.Snapshot) {
	e.snapshot.Store(snap)
	e.logger.Info().
		Str("fecha_carga", snap.FechaCarga).
		Int("hojas", len(snap.Tribunales)).
		Int("registros", snap.TotalRegistros()).
		Msg("Snapshot installed")
}

// Snapshot returns the currently installed snapshot, nil when none is loaded.
func (e *Engine) Snapshot() *models.Snapshot {
	return e.snapshot.Load()
}

// Answer runs the full query pipeline: extract filters, match every record
// across every sheet in store order, synthesize the summary and truncate the
// record payload.
func (e *Engine) Answer(ctx context.Context, query string) (*models.QueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	snap := e.snapshot.Load()
	if snap.Vacio() {
		return nil, ErrNoData
	}

	filters := e.extractor.Extract(query)
	preds := matcher.FromFilters(filters)

	var results []models.MatchResult
	for _, hoja := range snap.Hojas() {
		for _, rec := range snap.Tribunales[hoja] {
			if matcher.Matches(rec, hoja, preds) {
				results = append(results, models.MatchResult{Record: rec, Fuente: hoja})
			}
		}
	}

	respuesta := responder.Synthesize(query, filters, results)

	total := len(results)
	limit := maxPayload
	if total > maxPayload {
		limit = truncatedPayload
	}
	datos := make([]models.Record, 0, limit)
	for i := 0; i < total && i < limit; i++ {
		datos = append(datos, results[i].Payload())
	}

	e.logger.Info().
		Str("query", query).
		Strs("predicados", matcher.Kinds(preds)).
		Int("total", total).
		Msg("Query answered")

	return &models.QueryResult{
		Query:             query,
		FiltrosDetectados: filters,
		TotalResultados:   total,
		Respuesta:         respuesta,
		Datos:             datos,
		HayMasResultados:  total > maxPayload,
	}, nil
}
