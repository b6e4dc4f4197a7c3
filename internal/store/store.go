package store

import (
	"context"
	"errors"

	"github.com/jmbenitez/jurischat/internal/models"
)

var (
	// ErrNoSnapshot means no ingestion has ever been persisted.
	ErrNoSnapshot = errors.New("no snapshot persisted")
	// ErrCorruptSnapshot means the persisted snapshot could not be decoded.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// Store persists the record store snapshot. Snapshots are replaced wholesale;
// there are no partial updates.
type Store interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
}
