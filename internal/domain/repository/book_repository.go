// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"libris/internal/domain/entity"
	"libris/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for book persistence.
var (
	// ErrBookNotFound is returned when a book is not found.
	ErrBookNotFound = errors.New("book not found")
)

// BookFilter narrows eligible books for the ranking engines. Zero values
// mean "no constraint" except MinReviews, which callers always set.
type BookFilter struct {
	// GenreID restricts results to members of the genre when non-nil.
	GenreID *uuid.UUID

	// MinRating is the inclusive average-rating floor.
	MinRating decimal.Decimal

	// MinReviews is the inclusive review-count floor.
	MinReviews int

	// CreatedAfter restricts to books created at or after the instant
	// when non-nil.
	CreatedAfter *time.Time
}

// BookRepository defines the read-only book queries the ranking engines
// consume. Ordering and truncation happen in the engines, not here.
type BookRepository interface {
	// FindEligibleBooks retrieves all books matching the filter.
	FindEligibleBooks(ctx context.Context, filter BookFilter) ([]*entity.Book, error)

	// FindBooksSharingGenres retrieves books that share at least one genre
	// with the given book, excluding the book itself. An unknown book ID
	// yields an empty result.
	FindBooksSharingGenres(ctx context.Context, bookID uuid.UUID) ([]*entity.Book, error)

	// FindBooksByIDs retrieves the books with the given IDs. Missing IDs
	// are silently skipped.
	FindBooksByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Book, error)
}
