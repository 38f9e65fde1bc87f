package repository

import (
	"context"

	"libris/internal/domain/entity"
	"libris/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for genre persistence.
var (
	// ErrGenreNotFound is returned when a genre is not found.
	ErrGenreNotFound = errors.New("genre not found")
)

// GenreRepository defines the read-only genre queries the ranking
// engines consume.
type GenreRepository interface {
	// FindGenreByID retrieves a genre by its unique ID.
	FindGenreByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)

	// ListGenres retrieves up to limit genres in name order.
	ListGenres(ctx context.Context, limit int) ([]*entity.Genre, error)

	// FindGenresForBooks retrieves the genre IDs of every given book in a
	// single query, keyed by book ID. Books without genres are absent
	// from the map.
	FindGenresForBooks(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}
