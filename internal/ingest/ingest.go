package ingest

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/jmbenitez/jurischat/internal/models"
)

// ErrInvalidWorkbook means the uploaded file could not be read as a
// spreadsheet.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Convert reads a workbook and produces a snapshot: one sheet becomes one
// tribunal/year bucket, the first row names the fields, every following row
// becomes a record. Cells under unnamed columns are dropped; rows with no
// non-empty cell are dropped; sheets with no surviving rows are omitted.
// Conversion is deterministic up to the fecha_carga timestamp.
func Convert(r io.Reader) (*models.Snapshot, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer wb.Close()

	snap := &models.Snapshot{
		FechaCarga: time.Now().Format("2006-01-02 15:04:05"),
		Tribunales: make(map[string][]models.Record),
	}

	for _, hoja := range wb.GetSheetList() {
		rows, err := wb.GetRows(hoja)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %s: %v", ErrInvalidWorkbook, hoja, err)
		}
		if len(rows) < 2 {
			continue
		}

		headers := rows[0]
		var registros []models.Record
		for _, row := range rows[1:] {
			rec := convertRow(headers, row)
			if len(rec) > 0 {
				registros = append(registros, rec)
			}
		}

		if len(registros) > 0 {
			snap.Tribunales[hoja] = registros
			log.Debug().Str("hoja", hoja).Int("registros", len(registros)).Msg("Sheet converted")
		}
	}

	return snap, nil
}

// convertRow maps one data row onto the header names. Returns nil for rows
// with no content at all.
func convertRow(headers []string, row []string) models.Record {
	empty := true
	for _, cell := range row {
		if cell != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}

	rec := make(models.Record)
	for i, header := range headers {
		if header == "" {
			continue
		}
		valor := ""
		if i < len(row) {
			valor = row[i]
		}
		rec[header] = valor
	}
	return rec
}
