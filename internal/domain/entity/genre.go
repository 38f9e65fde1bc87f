package entity

import (
	"time"

	"github.com/google/uuid"
)

// Genre represents a book category. Genres carry no ranking-relevant
// mutable state; membership is a many-to-many relation on books.
type Genre struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the genre.
	Name        string    `json:"name"`        // Display name, unique.
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
