package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookRating is a single (book, rating) row from one user's review
// history.
type BookRating struct {
	BookID    uuid.UUID
	Rating    int
	CreatedAt time.Time
}

// UserBookRating is a single (user, book, rating) row, used by the
// trending and collaborative-filtering steps.
type UserBookRating struct {
	UserID uuid.UUID
	BookID uuid.UUID
	Rating int
}

// ReviewRepository defines the read-only review queries the ranking
// engines consume.
type ReviewRepository interface {
	// FindRatingsByUser retrieves all of a user's review ratings.
	FindRatingsByUser(ctx context.Context, userID uuid.UUID) ([]BookRating, error)

	// FindRecentRatings retrieves all review ratings created at or after
	// the given instant, across all books and users.
	FindRecentRatings(ctx context.Context, since time.Time) ([]UserBookRating, error)

	// FindRatingsByBooks retrieves other users' ratings on the given
	// books, excluding rows by excludeUserID.
	FindRatingsByBooks(ctx context.Context, bookIDs []uuid.UUID, excludeUserID uuid.UUID) ([]UserBookRating, error)

	// FindHighRatedByUsers retrieves ratings of at least minRating made
	// by any of the given users.
	FindHighRatedByUsers(ctx context.Context, userIDs []uuid.UUID, minRating int) ([]UserBookRating, error)
}
