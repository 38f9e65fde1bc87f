package postgres

import (
	"context"

	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// FindBookIDsByUser retrieves the IDs of all books the user has favorited.
func (repo *favoriteRepository) FindBookIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var bookIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserFavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("book_id", &bookIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorite book IDs by user")
	}

	return bookIDs, nil
}
