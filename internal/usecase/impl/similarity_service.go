package impl

import (
	"context"
	"log/slog"
	"math"

	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// minCommonBooks is the smallest overlap that carries correlation
// signal; below it similarity is defined as zero.
const minCommonBooks = 2

// similarityService implements the SimilarityUsecase interface.
type similarityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSimilarityService is the constructor for similarityService.
func NewSimilarityService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SimilarityUsecase {
	return &similarityService{
		txManager: txManager,
		logger:    logger,
	}
}

// UserSimilarity loads both users' rating histories and correlates them.
func (srv *similarityService) UserSimilarity(ctx context.Context, userA, userB uuid.UUID) (float64, error) {
	var ratingsA, ratingsB map[uuid.UUID]int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rowsA, err := repoFactory.ReviewRepo().FindRatingsByUser(ctx, userA)
		if err != nil {
			return errors.Wrap(err, "failed to find first user's ratings")
		}

		rowsB, err := repoFactory.ReviewRepo().FindRatingsByUser(ctx, userB)
		if err != nil {
			return errors.Wrap(err, "failed to find second user's ratings")
		}

		ratingsA = ratingMap(rowsA)
		ratingsB = ratingMap(rowsB)

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute user similarity")
	}

	return PearsonSimilarity(ratingsA, ratingsB), nil
}

func ratingMap(rows []repository.BookRating) map[uuid.UUID]int {
	ratings := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		ratings[row.BookID] = row.Rating
	}

	return ratings
}

// PearsonSimilarity computes the Pearson correlation of two users'
// ratings over their commonly rated books and maps it from [-1,1] onto
// [0,1]. Fewer than two common books, or a rating vector without any
// spread, yields 0. Pure function of the two maps.
func PearsonSimilarity(ratingsA, ratingsB map[uuid.UUID]int) float64 {
	var n int
	var sumA, sumB, sumSqA, sumSqB, sumProducts float64

	for bookID, ratingA := range ratingsA {
		ratingB, found := ratingsB[bookID]
		if !found {
			continue
		}

		a, b := float64(ratingA), float64(ratingB)
		n++
		sumA += a
		sumB += b
		sumSqA += a * a
		sumSqB += b * b
		sumProducts += a * b
	}

	if n < minCommonBooks {
		return 0
	}

	size := float64(n)
	numerator := sumProducts - sumA*sumB/size
	denominator := math.Sqrt((sumSqA - sumA*sumA/size) * (sumSqB - sumB*sumB/size))

	if denominator == 0 {
		return 0
	}

	correlation := numerator / denominator

	return (correlation + 1) / 2
}
