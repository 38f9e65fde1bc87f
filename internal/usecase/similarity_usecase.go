package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SimilarityUsecase defines the interface for pairwise user similarity.
type SimilarityUsecase interface {
	// UserSimilarity returns a similarity score in [0,1] between two
	// users, derived from the Pearson correlation of their ratings on
	// commonly reviewed books. Fewer than two common books yields 0.
	UserSimilarity(ctx context.Context, userA, userB uuid.UUID) (float64, error)
}
