package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table. The
// user_id+book_id unique index enforces one review per user per book.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:unique_user_book_review"`
	BookID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:unique_user_book_review"`
	Rating     int       `gorm:"not null;index;check:rating >= 1 AND rating <= 5"`
	ReviewText *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
