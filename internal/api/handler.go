package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/jmbenitez/jurischat/internal/api/middleware"
	"github.com/jmbenitez/jurischat/internal/engine"
	"github.com/jmbenitez/jurischat/internal/ingest"
	"github.com/jmbenitez/jurischat/internal/models"
	"github.com/jmbenitez/jurischat/internal/store"
)

type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse wraps the engine result for the wire with the success flag.
type QueryResponse struct {
	Success bool `json:"success"`
	models.QueryResult
}

type UploadResponse struct {
	Mensaje            string         `json:"mensaje"`
	FechaCarga         string         `json:"fecha_carga"`
	TotalRegistros     int            `json:"total_registros"`
	TribunalesCargados []string       `json:"tribunales_cargados"`
	DetallePorTribunal map[string]int `json:"detalle_por_tribunal"`
}

type StatusResponse struct {
	ChatEnabled           bool           `json:"chat_enabled"`
	DataLastUpdate        string         `json:"data_last_update,omitempty"`
	TotalRegistros        int            `json:"total_registros"`
	TribunalesDisponibles map[string]int `json:"tribunales_disponibles"`
	SupportedQueries      []string       `json:"supported_queries"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

var supportedQueries = []string{
	"Búsqueda por expediente: 'expediente TF-12345'",
	"Filtro por tema: 'sentencias sobre prescripción'",
	"Filtro por sala: 'casos de la sala G'",
	"Filtro por año: 'sentencias de 2023'",
	"Combinaciones: 'casos de prescripción sala G 2023'",
}

type Handler struct {
	engine *engine.Engine
	store  store.Store
	logger *zerolog.Logger
}

func NewHandler(eng *engine.Engine, st store.Store, logger *zerolog.Logger) *Handler {
	return &Handler{
		engine: eng,
		store:  st,
		logger: logger,
	}
}

// POST /api/v1/chat/query
// Body: QueryRequest
// Returns: QueryResponse
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var queryReq QueryRequest
	if err := req.ReadEntity(&queryReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, errors.New("se requiere el campo 'query' en el request"), http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()

	result, err := h.engine.Answer(ctx, queryReq.Query)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrEmptyQuery):
			middleware.HandleError(resp, errors.New("la consulta no puede estar vacía"), http.StatusBadRequest)
		case errors.Is(err, engine.ErrNoData):
			middleware.HandleError(resp, errors.New("no hay datos disponibles. Carga un archivo Excel primero"), http.StatusNotFound)
		default:
			h.logger.Error().Err(err).Str("query", queryReq.Query).Msg("Query failed")
			middleware.HandleError(resp, errors.New("error procesando la consulta"), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, QueryResponse{Success: true, QueryResult: *result})
}

// POST /api/v1/chat/upload
// Multipart form with an "archivo" spreadsheet. Converts, persists and
// installs the new snapshot.
func (h *Handler) Upload(req *restful.Request, resp *restful.Response) {
	file, header, err := req.Request.FormFile("archivo")
	if err != nil {
		middleware.HandleError(resp, errors.New("no se encontró archivo"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	nombre := strings.ToLower(header.Filename)
	if !strings.HasSuffix(nombre, ".xlsx") && !strings.HasSuffix(nombre, ".xls") {
		middleware.HandleError(resp, errors.New("solo se permiten archivos Excel (.xlsx, .xls)"), http.StatusBadRequest)
		return
	}

	h.logger.Info().Str("archivo", header.Filename).Msg("Processing upload")

	snap, err := ingest.Convert(file)
	if err != nil {
		h.logger.Error().Err(err).Str("archivo", header.Filename).Msg("Conversion failed")
		middleware.HandleError(resp, errors.New("error procesando el archivo Excel"), http.StatusInternalServerError)
		return
	}

	ctx := req.Request.Context()
	if err := h.store.Save(ctx, snap); err != nil {
		h.logger.Error().Err(err).Msg("Failed to persist snapshot")
		middleware.HandleError(resp, errors.New("error guardando los datos"), http.StatusInternalServerError)
		return
	}

	h.engine.Swap(snap)

	detalle := make(map[string]int, len(snap.Tribunales))
	for hoja, registros := range snap.Tribunales {
		detalle[hoja] = len(registros)
	}

	resp.WriteHeaderAndEntity(http.StatusOK, UploadResponse{
		Mensaje:            "Datos procesados exitosamente",
		FechaCarga:         snap.FechaCarga,
		TotalRegistros:     snap.TotalRegistros(),
		TribunalesCargados: snap.Hojas(),
		DetallePorTribunal: detalle,
	})
}

// GET /api/v1/chat/status
func (h *Handler) Status(req *restful.Request, resp *restful.Response) {
	status := StatusResponse{
		ChatEnabled:           true,
		TribunalesDisponibles: map[string]int{},
		SupportedQueries:      supportedQueries,
	}

	if snap := h.engine.Snapshot(); !snap.Vacio() {
		status.DataLastUpdate = snap.FechaCarga
		status.TotalRegistros = snap.TotalRegistros()
		for hoja, registros := range snap.Tribunales {
			status.TribunalesDisponibles[hoja] = len(registros)
		}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, status)
}

// GET /api/v1/chat/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
