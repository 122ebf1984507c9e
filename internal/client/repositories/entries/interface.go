package entries

import (
	"context"

	"github.com/dmitrijs2005/daybook/internal/client/models"
)

// Repository describes CRUD operations for journal entries.
// Absent IDs surface as common.ErrNotFound so callers can branch with
// errors.Is instead of catching driver-specific errors.
type Repository interface {
	// GetByID returns an entry by its identifier.
	GetByID(ctx context.Context, id string) (*models.Entry, error)

	// Create inserts a new entry.
	Create(ctx context.Context, entry *models.Entry) error

	// Update replaces an existing entry.
	Update(ctx context.Context, entry *models.Entry) error

	// DeleteByID removes an entry.
	DeleteByID(ctx context.Context, id string) error

	// GetAll returns all entries ordered by date, for list views.
	GetAll(ctx context.Context) ([]models.Entry, error)
}

// TxRepository is implemented by repositories that can run a function
// against a transactional view of themselves, committing on success and
// rolling back on error.
type TxRepository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
