package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jmbenitez/jurischat/internal/config"
	"github.com/jmbenitez/jurischat/internal/extractor"
	"github.com/jmbenitez/jurischat/internal/models"
)

type memStore struct {
	snap *models.Snapshot
	err  error
}

func (s *memStore) Load(ctx context.Context) (*models.Snapshot, error) {
	return s.snap, s.err
}

func (s *memStore) Save(ctx context.Context, snap *models.Snapshot) error {
	s.snap = snap
	return nil
}

func newTestEngine(snap *models.Snapshot) *Engine {
	logger := zerolog.Nop()
	eng := New(extractor.New(config.Default()), &memStore{snap: snap}, &logger)
	if snap != nil {
		eng.Swap(snap)
	}
	return eng
}

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		FechaCarga: "2024-01-15 10:00:00",
		Tribunales: map[string][]models.Record{
			"TFN_2023": {
				{"Expediente_TFN": "TF-12345-A", "Sala_TFN": "G", "Tema": "prescripción"},
				{"Expediente_TFN": "TF-222", "Sala_TFN": "B", "Tema": "honorarios"},
			},
			"CSJN": {
				{"Caratula": "recurso de apelación", "Fecha_Sentencia": "2022-09-01"},
			},
		},
	}
}

func TestAnswer_EmptyQuery(t *testing.T) {
	eng := newTestEngine(testSnapshot())

	for _, query := range []string{"", "   ", "\t\n"} {
		if _, err := eng.Answer(context.Background(), query); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Answer(%q): %v, want ErrEmptyQuery", query, err)
		}
	}
}

func TestAnswer_NoData(t *testing.T) {
	eng := newTestEngine(nil)

	if _, err := eng.Answer(context.Background(), "sala G"); !errors.Is(err, ErrNoData) {
		t.Errorf("Answer: %v, want ErrNoData", err)
	}
}

func TestAnswer_MatchAndEcho(t *testing.T) {
	eng := newTestEngine(testSnapshot())

	result, err := eng.Answer(context.Background(), "expediente TF-12345")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if result.FiltrosDetectados.Expediente != "12345" {
		t.Errorf("Expediente: %q, want: %q", result.FiltrosDetectados.Expediente, "12345")
	}
	if result.TotalResultados != 1 {
		t.Fatalf("TotalResultados: %d, want: 1", result.TotalResultados)
	}
	if got := result.Datos[0]["Expediente_TFN"]; got != "TF-12345-A" {
		t.Errorf("record: %q, want: TF-12345-A", got)
	}
	if got := result.Datos[0][models.FuenteKey]; got != "TFN_2023" {
		t.Errorf("fuente: %q, want: TFN_2023", got)
	}
	if result.HayMasResultados {
		t.Error("HayMasResultados should be false")
	}
}

func TestAnswer_SnapshotNotMutated(t *testing.T) {
	snap := testSnapshot()
	eng := newTestEngine(snap)

	if _, err := eng.Answer(context.Background(), "casos de la sala g"); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	for hoja, registros := range snap.Tribunales {
		for _, rec := range registros {
			if _, ok := rec[models.FuenteKey]; ok {
				t.Fatalf("snapshot record in %s was mutated with %s", hoja, models.FuenteKey)
			}
		}
	}
}

func TestAnswer_YearAgainstSheetLabel(t *testing.T) {
	eng := newTestEngine(testSnapshot())

	result, err := eng.Answer(context.Background(), "sentencias de 2023")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if result.FiltrosDetectados.Year != 2023 {
		t.Fatalf("Year: %d, want: 2023", result.FiltrosDetectados.Year)
	}
	// The two TFN_2023 records have no date field (permissive fallback plus
	// sheet label); the CSJN record is dated 2022 and must be excluded.
	if result.TotalResultados != 2 {
		t.Errorf("TotalResultados: %d, want: 2", result.TotalResultados)
	}
	for _, rec := range result.Datos {
		if rec[models.FuenteKey] != "TFN_2023" {
			t.Errorf("unexpected fuente %q", rec[models.FuenteKey])
		}
	}
}

func TestAnswer_Truncation(t *testing.T) {
	registros := make([]models.Record, 15)
	for i := range registros {
		registros[i] = models.Record{"Expediente": fmt.Sprintf("TF-%03d", i), "Tema": "nulidad"}
	}
	snap := &models.Snapshot{
		FechaCarga: "2024-01-15 10:00:00",
		Tribunales: map[string][]models.Record{"TFN": registros},
	}
	eng := newTestEngine(snap)

	result, err := eng.Answer(context.Background(), "casos de nulidad")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if result.TotalResultados != 15 {
		t.Errorf("TotalResultados: %d, want: 15", result.TotalResultados)
	}
	if len(result.Datos) != 5 {
		t.Errorf("len(Datos): %d, want: 5", len(result.Datos))
	}
	if !result.HayMasResultados {
		t.Error("HayMasResultados should be true")
	}
	// store order preserved: the first five records
	for i, rec := range result.Datos {
		want := fmt.Sprintf("TF-%03d", i)
		if rec["Expediente"] != want {
			t.Errorf("Datos[%d]: %q, want: %q", i, rec["Expediente"], want)
		}
	}
}

func TestAnswer_TenOrFewerNotTruncated(t *testing.T) {
	registros := make([]models.Record, 10)
	for i := range registros {
		registros[i] = models.Record{"Tema": "nulidad"}
	}
	snap := &models.Snapshot{
		FechaCarga: "2024-01-15 10:00:00",
		Tribunales: map[string][]models.Record{"TFN": registros},
	}
	eng := newTestEngine(snap)

	result, err := eng.Answer(context.Background(), "nulidad")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if len(result.Datos) != 10 {
		t.Errorf("len(Datos): %d, want: 10", len(result.Datos))
	}
	if result.HayMasResultados {
		t.Error("HayMasResultados should be false at exactly 10 matches")
	}
}

func TestReload_InstallsSnapshot(t *testing.T) {
	logger := zerolog.Nop()
	st := &memStore{snap: testSnapshot()}
	eng := New(extractor.New(config.Default()), st, &logger)

	if eng.Snapshot() != nil {
		t.Fatal("engine should start without a snapshot")
	}
	if err := eng.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if eng.Snapshot() == nil {
		t.Fatal("Reload should install the snapshot")
	}
}

func TestReload_PropagatesStoreError(t *testing.T) {
	logger := zerolog.Nop()
	wantErr := errors.New("backend down")
	eng := New(extractor.New(config.Default()), &memStore{err: wantErr}, &logger)

	if err := eng.Reload(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Reload: %v, want: %v", err, wantErr)
	}
}
