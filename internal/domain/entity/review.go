package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds enforced by the review write path. The ranking engines
// rely on ratings being integers in [MinRating, MaxRating].
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a user's review of a book. A user has at most one
// review per book (unique constraint on user_id+book_id).
type Review struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the review.
	UserID     uuid.UUID `json:"user_id"`     // The reviewing user.
	BookID     uuid.UUID `json:"book_id"`     // The reviewed book.
	Rating     int       `json:"rating"`      // Integer rating in [1,5].
	ReviewText string    `json:"review_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
