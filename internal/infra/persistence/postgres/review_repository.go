package postgres

import (
	"context"
	"time"

	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindRatingsByUser retrieves all of a user's review ratings.
func (repo *reviewRepository) FindRatingsByUser(ctx context.Context, userID uuid.UUID) ([]repository.BookRating, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by user")
	}

	ratings := make([]repository.BookRating, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		ratings = append(ratings, repository.BookRating{
			BookID:    reviewM.BookID,
			Rating:    reviewM.Rating,
			CreatedAt: reviewM.CreatedAt,
		})
	}

	return ratings, nil
}

// FindRecentRatings retrieves all review ratings created at or after the
// given instant.
func (repo *reviewRepository) FindRecentRatings(ctx context.Context, since time.Time) ([]repository.UserBookRating, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent ratings")
	}

	return toUserBookRatings(reviewModels), nil
}

// FindRatingsByBooks retrieves other users' ratings on the given books.
func (repo *reviewRepository) FindRatingsByBooks(ctx context.Context, bookIDs []uuid.UUID, excludeUserID uuid.UUID) ([]repository.UserBookRating, error) {
	if len(bookIDs) == 0 {
		return []repository.UserBookRating{}, nil
	}

	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("book_id IN ?", bookIDs).
		Where("user_id <> ?", excludeUserID).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by books")
	}

	return toUserBookRatings(reviewModels), nil
}

// FindHighRatedByUsers retrieves ratings of at least minRating made by
// any of the given users.
func (repo *reviewRepository) FindHighRatedByUsers(ctx context.Context, userIDs []uuid.UUID, minRating int) ([]repository.UserBookRating, error) {
	if len(userIDs) == 0 {
		return []repository.UserBookRating{}, nil
	}

	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Where("rating >= ?", minRating).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find high-rated reviews by users")
	}

	return toUserBookRatings(reviewModels), nil
}

func toUserBookRatings(data []*model.ReviewModel) []repository.UserBookRating {
	ratings := make([]repository.UserBookRating, 0, len(data))
	for _, reviewM := range data {
		ratings = append(ratings, repository.UserBookRating{
			UserID: reviewM.UserID,
			BookID: reviewM.BookID,
			Rating: reviewM.Rating,
		})
	}

	return ratings
}
