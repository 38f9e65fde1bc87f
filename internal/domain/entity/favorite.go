package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite represents a user's favorite mark on a book, unique per
// user+book pair. Favorites carry no rating but count as an interaction
// for recommendation exclusion purposes.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BookID    uuid.UUID `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}
