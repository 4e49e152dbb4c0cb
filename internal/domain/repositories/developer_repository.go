package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"matrix-talent.backend/internal/domain/entities"
)

// DeveloperFilter narrows List results. Zero values mean "no filter".
type DeveloperFilter struct {
	// Search matches as a case-insensitive substring of name, email or bio.
	Search string
	// Role matches exactly.
	Role string
}

// DeveloperRepository defines developer profile data operations
type DeveloperRepository interface {
	Create(ctx context.Context, dev *entities.Developer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Developer, error)
	List(ctx context.Context, filter DeveloperFilter) ([]*entities.Developer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	TopRole(ctx context.Context) (string, error)
}
