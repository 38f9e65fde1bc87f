package entity

import "github.com/google/uuid"

// TasteProfile is a user's derived reading preference profile. It is
// recomputed from the user's review history on every recommendation
// request and never persisted.
type TasteProfile struct {
	// HasActivity is true when the user has at least one review rated
	// high enough to signal a genre preference.
	HasActivity bool

	// FavoriteGenres holds the user's preferred genre IDs, best first,
	// capped at the configured maximum.
	FavoriteGenres []uuid.UUID

	// GenreRatings maps each favorite genre to the user's mean rating
	// among their high-rated reviews in that genre.
	GenreRatings map[uuid.UUID]float64

	// AvgRating is the mean over all of the user's reviews.
	AvgRating float64

	// TotalReviews counts all of the user's reviews.
	TotalReviews int
}
