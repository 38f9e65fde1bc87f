package usecase

import (
	"context"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GenreBooksQuery parameterizes a within-genre ranking request.
type GenreBooksQuery struct {
	// GenreID selects the genre. Unknown genres yield an empty result.
	GenreID uuid.UUID

	// Limit caps the result length.
	Limit int

	// ExcludeUserID removes books the user has reviewed or favorited
	// when non-nil.
	ExcludeUserID *uuid.UUID

	// MinRating is the inclusive average-rating floor.
	MinRating decimal.Decimal

	// MinReviews is the inclusive review-count floor.
	MinReviews int
}

// GenreUsecase defines the interface for genre-scoped ranking.
type GenreUsecase interface {
	// GetGenre retrieves a single genre, for existence checks at the API
	// boundary.
	GetGenre(ctx context.Context, genreID uuid.UUID) (*entity.Genre, error)

	// GetGenreBooks returns the top books of a genre ordered by average
	// rating, review count and recency.
	GetGenreBooks(ctx context.Context, query GenreBooksQuery) ([]*entity.Book, error)

	// GetSimilarBooks returns books sharing at least one genre with the
	// given book, best rated first. The source book is never included.
	GetSimilarBooks(ctx context.Context, bookID uuid.UUID, limit int, excludeUserID *uuid.UUID) ([]*entity.Book, error)

	// GetDiverseBooks spreads the limit across the given genres in
	// priority order and returns a deduplicated, truncated list. Empty
	// genre lists yield an empty result.
	GetDiverseBooks(ctx context.Context, genreIDs []uuid.UUID, limit int, excludeUserID *uuid.UUID) ([]*entity.Book, error)
}
