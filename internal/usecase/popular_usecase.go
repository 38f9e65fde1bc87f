// Package usecase defines the application-level interfaces of the
// ranking engines.
package usecase

import (
	"context"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// PopularQuery parameterizes a popularity ranking request.
type PopularQuery struct {
	// Limit caps the result length.
	Limit int

	// GenreID restricts results to one genre when non-nil.
	GenreID *uuid.UUID

	// MinReviews is the eligibility floor and at the same time the
	// shrinkage constant of the popularity score.
	MinReviews int

	// DaysBack restricts results to books created within the last N days
	// when non-nil.
	DaysBack *int
}

// TrendingQuery parameterizes a trending ranking request.
type TrendingQuery struct {
	// Limit caps the result length.
	Limit int

	// DaysBack is the width of the trending window in days.
	DaysBack int

	// MinReviewsInPeriod is the minimum number of reviews inside the
	// window for a book to qualify; books below it are excluded, not
	// zero-scored.
	MinReviewsInPeriod int
}

// PopularUsecase defines the interface for global popularity ranking.
type PopularUsecase interface {
	// GetPopularBooks returns books ordered by descending popularity
	// score. Empty candidate sets yield an empty list, never an error.
	GetPopularBooks(ctx context.Context, query PopularQuery) ([]*entity.Book, error)

	// GetTrendingBooks returns books ordered by recent review activity
	// inside the query window.
	GetTrendingBooks(ctx context.Context, query TrendingQuery) ([]*entity.Book, error)
}
