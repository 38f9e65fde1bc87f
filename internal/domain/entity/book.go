// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book represents a book together with its rating aggregates.
// AverageRating and TotalReviews are maintained by the review write path
// and are assumed to be consistent with the current review set; the
// ranking engines only ever read them.
type Book struct {
	ID              uuid.UUID       `json:"id"`               // The Global Unique Identifier (GUID) for the book.
	Title           string          `json:"title"`            // Book title.
	Author          string          `json:"author"`           // Book author.
	ISBN            string          `json:"isbn,omitempty"`   // Optional ISBN-13.
	Description     string          `json:"description,omitempty"`
	CoverImageURL   string          `json:"cover_image_url,omitempty"`
	PublicationDate *time.Time      `json:"publication_date,omitempty"`
	AverageRating   decimal.Decimal `json:"average_rating"` // Mean review rating, fixed at 2 decimal places.
	TotalReviews    int             `json:"total_reviews"`  // Number of reviews behind AverageRating.
	Genres          []Genre         `json:"genres,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
