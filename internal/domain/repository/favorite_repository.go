package repository

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteRepository defines the read-only favorite queries the ranking
// engines consume.
type FavoriteRepository interface {
	// FindBookIDsByUser retrieves the IDs of all books the user has
	// favorited.
	FindBookIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
