package usecase

import (
	"context"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationUsecase defines the interface for personal
// recommendations.
type RecommendationUsecase interface {
	// GetRecommendations returns an ordered book list for the user. Users
	// without rating activity, and any internal failure of the
	// personalized path, yield the popular fallback; the caller never
	// sees an error for ranking reasons.
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) (*entity.Recommendation, error)

	// GetDiverseRecommendations spreads the limit across up to genreCount
	// genres. A known user with rating activity gets their favorite
	// genres with their own history excluded; anyone else gets the
	// catalog's leading genres.
	GetDiverseRecommendations(ctx context.Context, userID *uuid.UUID, limit int, genreCount int) ([]*entity.Book, error)
}
