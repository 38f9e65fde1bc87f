package model

import (
	"time"

	"github.com/google/uuid"
)

// UserFavoriteModel is the GORM-specific struct for the 'user_favorites'
// table, unique per user+book pair.
type UserFavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:unique_user_book_favorite"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:unique_user_book_favorite"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserFavoriteModel) TableName() string {
	return "user_favorites"
}
