// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookModel is the GORM-specific struct for the 'books' table. The
// rating aggregate columns are written by the review endpoints' rating
// update routine; this service only reads them.
type BookModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string          `gorm:"type:varchar(500);not null"`
	Author          string          `gorm:"type:varchar(300);not null"`
	ISBN            *string         `gorm:"type:varchar(13);uniqueIndex"`
	Description     *string         `gorm:"type:text"`
	CoverImageURL   *string         `gorm:"type:varchar(1000)"`
	PublicationDate *time.Time      `gorm:"type:date"`
	AverageRating   decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0.00"`
	TotalReviews    int             `gorm:"not null;default:0"`
	Genres          []GenreModel    `gorm:"many2many:book_genres;joinForeignKey:BookID;joinReferences:GenreID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
