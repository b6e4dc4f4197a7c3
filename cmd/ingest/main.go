package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/jmbenitez/jurischat/internal/ingest"
	"github.com/jmbenitez/jurischat/internal/setup"
	"github.com/jmbenitez/jurischat/internal/setup/logger"
)

// Offline ingestion: convert a workbook and persist it through the configured
// store backend, without going through the HTTP upload endpoint.
func main() {
	file := flag.String("file", "", "Path to the Excel workbook to ingest")
	flag.Parse()

	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	log.Logger = logger.New(cfg.LogLevel)
	logger := log.Logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	if *file == "" {
		log.Fatal().Msg("Please provide a workbook using -file")
	}

	ctx := context.Background()
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to open workbook")
	}
	defer f.Close()

	snap, err := ingest.Convert(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Conversion failed")
	}

	if snap.Vacio() {
		log.Fatal().Str("file", *file).Msg("Workbook produced no records")
	}

	if err := deps.Store.Save(ctx, snap); err != nil {
		log.Fatal().Err(err).Msg("Failed to persist snapshot")
	}

	for _, hoja := range snap.Hojas() {
		log.Info().Str("hoja", hoja).Int("registros", len(snap.Tribunales[hoja])).Msg("Sheet ingested")
	}
	log.Info().
		Str("fecha_carga", snap.FechaCarga).
		Int("total", snap.TotalRegistros()).
		Msg("Ingestion complete")
}
