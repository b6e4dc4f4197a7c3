package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/jmbenitez/jurischat/internal/api"
	"github.com/jmbenitez/jurischat/internal/api/middleware"
	"github.com/jmbenitez/jurischat/internal/setup"
	"github.com/jmbenitez/jurischat/internal/setup/logger"
	"github.com/jmbenitez/jurischat/internal/store"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Jurischat API",
			Description: "Consultas de jurisprudencia en lenguaje natural",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "query", Description: "Query operations"}},
		{TagProps: spec.TagProps{Name: "admin", Description: "Dataset administration"}},
	}
}

func main() {
	// Load env first so LOG_LEVEL from .env reaches the logger
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	log.Logger = logger.New(cfg.LogLevel)
	logger := log.Logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Warm load: a missing snapshot only means no data has been uploaded yet.
	if err := deps.Engine.Reload(ctx); err != nil {
		if errors.Is(err, store.ErrNoSnapshot) {
			log.Warn().Msg("No snapshot persisted yet, waiting for upload")
		} else {
			log.Fatal().Err(err).Msg("Failed to load snapshot")
		}
	}

	// API
	handler := api.NewHandler(deps.Engine, deps.Store, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	// OpenAPI docs
	openAPIConfig := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(openAPIConfig))

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("address", addr).Msg("Starting Jurischat API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
