package impl

import (
	"context"
	"testing"

	"libris/internal/domain/repository"
	mockRepo "libris/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPearsonSimilarity_PerfectCorrelation(t *testing.T) {
	b1, b2 := uuid.New(), uuid.New()
	ratingsA := map[uuid.UUID]int{b1: 5, b2: 3}
	ratingsB := map[uuid.UUID]int{b1: 4, b2: 2}

	assert.InDelta(t, 1.0, PearsonSimilarity(ratingsA, ratingsB), 1e-9)
}

func TestPearsonSimilarity_PerfectAntiCorrelation(t *testing.T) {
	b1, b2 := uuid.New(), uuid.New()
	ratingsA := map[uuid.UUID]int{b1: 5, b2: 1}
	ratingsB := map[uuid.UUID]int{b1: 1, b2: 5}

	assert.InDelta(t, 0.0, PearsonSimilarity(ratingsA, ratingsB), 1e-9)
}

func TestPearsonSimilarity_MixedRatings(t *testing.T) {
	b1, b2, b3 := uuid.New(), uuid.New(), uuid.New()
	ratingsA := map[uuid.UUID]int{b1: 5, b2: 3, b3: 4}
	ratingsB := map[uuid.UUID]int{b1: 4, b2: 2, b3: 5}

	similarity := PearsonSimilarity(ratingsA, ratingsB)

	assert.InDelta(t, 0.8273, similarity, 0.001)
}

func TestPearsonSimilarity_TooFewCommonBooks(t *testing.T) {
	b1, b2, b3 := uuid.New(), uuid.New(), uuid.New()
	ratingsA := map[uuid.UUID]int{b1: 5, b2: 4}
	ratingsB := map[uuid.UUID]int{b1: 5, b3: 4}

	assert.Zero(t, PearsonSimilarity(ratingsA, ratingsB))
	assert.Zero(t, PearsonSimilarity(nil, ratingsB))
}

func TestPearsonSimilarity_ZeroVariance(t *testing.T) {
	b1, b2 := uuid.New(), uuid.New()
	flat := map[uuid.UUID]int{b1: 4, b2: 4}
	varied := map[uuid.UUID]int{b1: 5, b2: 3}

	assert.Zero(t, PearsonSimilarity(flat, varied))
	assert.Zero(t, PearsonSimilarity(varied, flat))
}

func TestPearsonSimilarity_Bounds(t *testing.T) {
	b1, b2, b3, b4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	ratingsA := map[uuid.UUID]int{b1: 1, b2: 5, b3: 3, b4: 2}
	ratingsB := map[uuid.UUID]int{b1: 4, b2: 4, b3: 1, b4: 5}

	similarity := PearsonSimilarity(ratingsA, ratingsB)

	assert.GreaterOrEqual(t, similarity, 0.0)
	assert.LessOrEqual(t, similarity, 1.0)
}

func TestSimilarityService_UserSimilarity(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewSimilarityService(txManager, newDiscardLogger())

	ctx := context.Background()
	userA, userB := uuid.New(), uuid.New()
	b1, b2 := uuid.New(), uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockReviewRepo.EXPECT().
				FindRatingsByUser(ctx, userA).
				Return([]repository.BookRating{{BookID: b1, Rating: 5}, {BookID: b2, Rating: 3}}, nil)
			mockReviewRepo.EXPECT().
				FindRatingsByUser(ctx, userB).
				Return([]repository.BookRating{{BookID: b1, Rating: 4}, {BookID: b2, Rating: 2}}, nil)

			return fn(mockFactory)
		})

	similarity, err := service.UserSimilarity(ctx, userA, userB)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, similarity, 1e-9)
}

func TestSimilarityService_UserSimilarity_QueryError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewSimilarityService(txManager, newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection lost"))

	similarity, err := service.UserSimilarity(ctx, uuid.New(), uuid.New())

	assert.Error(t, err)
	assert.Zero(t, similarity)
}
