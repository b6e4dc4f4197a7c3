package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmbenitez/jurischat/internal/models"
)

// FileStore keeps the snapshot as a UTF-8 JSON document on disk, the same
// layout the original dataset ships in: a fecha_carga key plus the tribunales
// mapping.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("reading snapshot %s: %w", s.path, err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, s.path, err)
	}

	return &snap, nil
}

func (s *FileStore) Save(ctx context.Context, snap *models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", s.path, err)
	}

	return nil
}
