package model

import (
	"time"

	"github.com/google/uuid"
)

// GenreModel is the GORM-specific struct for the 'genres' table.
type GenreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GenreModel) TableName() string {
	return "genres"
}

// BookGenreModel is the GORM-specific struct for the 'book_genres'
// many-to-many join table.
type BookGenreModel struct {
	BookID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	GenreID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (BookGenreModel) TableName() string {
	return "book_genres"
}
