package impl

import (
	"context"
	"testing"

	"libris/internal/domain/entity"
	"libris/internal/domain/repository"
	mockRepo "libris/internal/mocks/repository"
	mockUC "libris/internal/mocks/usecase"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recommendationFixtures holds all test dependencies for recommendation
// service tests.
type recommendationFixtures struct {
	service   usecase.RecommendationUsecase
	txManager *mockRepo.MockTransactionManager
	popularUC *mockUC.MockPopularUsecase
	genreUC   *mockUC.MockGenreUsecase
}

func createTestRecommendationService(t *testing.T) recommendationFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	popularUC := mockUC.NewMockPopularUsecase(t)
	genreUC := mockUC.NewMockGenreUsecase(t)

	service := NewRecommendationService(newTestConfig(), txManager, popularUC, genreUC, newDiscardLogger())

	return recommendationFixtures{
		service:   service,
		txManager: txManager,
		popularUC: popularUC,
		genreUC:   genreUC,
	}
}

// expectAnalyzeUser wires the profile transaction: the user's ratings,
// favorites and the genres of their high-rated books.
func expectAnalyzeUser(t *testing.T, fx recommendationFixtures, ctx context.Context, userID uuid.UUID,
	ratings []repository.BookRating, favorites []uuid.UUID, genresByBook map[uuid.UUID][]uuid.UUID,
) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockReviewRepo.EXPECT().FindRatingsByUser(ctx, userID).Return(ratings, nil)
			mockFavoriteRepo.EXPECT().FindBookIDsByUser(ctx, userID).Return(favorites, nil)

			if genresByBook != nil {
				mockGenreRepo := mockRepo.NewMockGenreRepository(t)
				mockFactory.EXPECT().GenreRepo().Return(mockGenreRepo)
				mockGenreRepo.EXPECT().
					FindGenresForBooks(ctx, mock.AnythingOfType("[]uuid.UUID")).
					Return(genresByBook, nil)
			}

			return fn(mockFactory)
		}).
		Once()
}

func TestRecommendationService_NewUserFallsBackToPopular(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	popular := []*entity.Book{{ID: uuid.New()}, {ID: uuid.New()}}

	expectAnalyzeUser(t, fx, ctx, userID, []repository.BookRating{}, []uuid.UUID{}, nil)

	fx.popularUC.EXPECT().
		GetPopularBooks(ctx, usecase.PopularQuery{Limit: 10, MinReviews: 5}).
		Return(popular, nil)

	recommendation, err := fx.service.GetRecommendations(ctx, userID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.RecommendationTypePopular, recommendation.Type)
	assert.Equal(t, explanationNewUser, recommendation.Explanation)
	assert.Equal(t, popular, recommendation.Books)
}

func TestRecommendationService_AnalysisErrorFallsBackToPopular(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	popular := []*entity.Book{{ID: uuid.New()}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection lost")).
		Once()

	fx.popularUC.EXPECT().
		GetPopularBooks(ctx, usecase.PopularQuery{Limit: 10, MinReviews: 5}).
		Return(popular, nil)

	recommendation, err := fx.service.GetRecommendations(ctx, userID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.RecommendationTypePopular, recommendation.Type)
	assert.Equal(t, explanationFallback, recommendation.Explanation)
	assert.Equal(t, popular, recommendation.Books)
}

func TestRecommendationService_TotalFailureYieldsEmptyPopular(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection lost")).
		Once()

	fx.popularUC.EXPECT().
		GetPopularBooks(ctx, mock.AnythingOfType("usecase.PopularQuery")).
		Return(nil, errors.New("still down"))

	recommendation, err := fx.service.GetRecommendations(ctx, userID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.RecommendationTypePopular, recommendation.Type)
	assert.Empty(t, recommendation.Books)
}

func TestRecommendationService_ZeroLimit(t *testing.T) {
	fx := createTestRecommendationService(t)

	recommendation, err := fx.service.GetRecommendations(context.Background(), uuid.New(), 0)

	require.NoError(t, err)
	assert.Empty(t, recommendation.Books)
	assert.Equal(t, entity.RecommendationTypePopular, recommendation.Type)
}

func TestRecommendationService_BlendsGenreCollaborativeAndBackfill(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fantasy := uuid.New()
	book1, book2 := uuid.New(), uuid.New()

	ratings := []repository.BookRating{
		{BookID: book1, Rating: 5},
		{BookID: book2, Rating: 4},
	}
	genresByBook := map[uuid.UUID][]uuid.UUID{
		book1: {fantasy},
		book2: {fantasy},
	}

	genreA := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.7), TotalReviews: 22}
	genreB := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.4), TotalReviews: 17}
	alreadyRead := &entity.Book{ID: book1}
	endorsed := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.3), TotalReviews: 30}
	backfill := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.0), TotalReviews: 60}

	neighbor1, neighbor2 := uuid.New(), uuid.New()

	expectAnalyzeUser(t, fx, ctx, userID, ratings, []uuid.UUID{}, genresByBook)

	// 60% of limit 5 → 3 genre slots over the single favorite genre; the
	// user's own book drops out through the exclusion set.
	fx.genreUC.EXPECT().
		GetDiverseBooks(ctx, []uuid.UUID{fantasy}, 3, (*uuid.UUID)(nil)).
		Return([]*entity.Book{genreA, genreB, alreadyRead}, nil)

	// Collaborative pass: both neighbors share both books, endorse one
	// new candidate together and one book only singly.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)

			mockReviewRepo.EXPECT().
				FindRatingsByBooks(ctx, mock.AnythingOfType("[]uuid.UUID"), userID).
				Return([]repository.UserBookRating{
					{UserID: neighbor1, BookID: book1, Rating: 5},
					{UserID: neighbor1, BookID: book2, Rating: 4},
					{UserID: neighbor2, BookID: book1, Rating: 4},
					{UserID: neighbor2, BookID: book2, Rating: 5},
				}, nil)

			mockReviewRepo.EXPECT().
				FindHighRatedByUsers(ctx, mock.AnythingOfType("[]uuid.UUID"), 4).
				Return([]repository.UserBookRating{
					{UserID: neighbor1, BookID: endorsed.ID, Rating: 5},
					{UserID: neighbor2, BookID: endorsed.ID, Rating: 4},
					// One endorsement only, below the floor of two.
					{UserID: neighbor1, BookID: uuid.New(), Rating: 5},
					// Already interacted with, never recommended again.
					{UserID: neighbor2, BookID: book2, Rating: 5},
				}, nil)

			mockBookRepo.EXPECT().
				FindBooksByIDs(ctx, []uuid.UUID{endorsed.ID}).
				Return([]*entity.Book{endorsed}, nil)

			return fn(mockFactory)
		}).
		Once()

	// Backfill requests double the open slots and skips duplicates.
	fx.popularUC.EXPECT().
		GetPopularBooks(ctx, usecase.PopularQuery{Limit: 4, MinReviews: 5}).
		Return([]*entity.Book{genreA, backfill}, nil)

	recommendation, err := fx.service.GetRecommendations(ctx, userID, 5)

	require.NoError(t, err)
	assert.Equal(t, entity.RecommendationTypePersonal, recommendation.Type)
	assert.Equal(t, explanationPersonal, recommendation.Explanation)

	require.Len(t, recommendation.Books, 4)
	assert.Equal(t, genreA.ID, recommendation.Books[0].ID)
	assert.Equal(t, genreB.ID, recommendation.Books[1].ID)
	assert.Equal(t, endorsed.ID, recommendation.Books[2].ID)
	assert.Equal(t, backfill.ID, recommendation.Books[3].ID)
}

func TestRecommendationService_BlendErrorFallsBackToPopular(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fantasy := uuid.New()
	book1 := uuid.New()

	ratings := []repository.BookRating{{BookID: book1, Rating: 5}}
	genresByBook := map[uuid.UUID][]uuid.UUID{book1: {fantasy}}
	popular := []*entity.Book{{ID: uuid.New()}}

	expectAnalyzeUser(t, fx, ctx, userID, ratings, []uuid.UUID{}, genresByBook)

	fx.genreUC.EXPECT().
		GetDiverseBooks(ctx, []uuid.UUID{fantasy}, 6, (*uuid.UUID)(nil)).
		Return(nil, errors.New("connection lost"))

	fx.popularUC.EXPECT().
		GetPopularBooks(ctx, usecase.PopularQuery{Limit: 10, MinReviews: 5}).
		Return(popular, nil)

	recommendation, err := fx.service.GetRecommendations(ctx, userID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.RecommendationTypePopular, recommendation.Type)
	assert.Equal(t, explanationFallback, recommendation.Explanation)
	assert.Equal(t, popular, recommendation.Books)
}

func TestRecommendationService_ProfileOrdersGenresByMeanRating(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fantasy, mystery := uuid.New(), uuid.New()
	book1, book2, book3 := uuid.New(), uuid.New(), uuid.New()

	// Mystery wins on mean (5.0 vs 4.5) despite fewer reviews; the
	// 3-rated book carries no genre signal at all.
	ratings := []repository.BookRating{
		{BookID: book1, Rating: 5},
		{BookID: book2, Rating: 4},
		{BookID: book3, Rating: 3},
	}
	genresByBook := map[uuid.UUID][]uuid.UUID{
		book1: {mystery, fantasy},
		book2: {fantasy},
	}

	expectAnalyzeUser(t, fx, ctx, userID, ratings, []uuid.UUID{}, genresByBook)

	// The favorite-genre ordering drives the diversity request.
	fx.genreUC.EXPECT().
		GetDiverseBooks(ctx, []uuid.UUID{mystery, fantasy}, 3, (*uuid.UUID)(nil)).
		Return([]*entity.Book{}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockReviewRepo.EXPECT().
				FindRatingsByBooks(ctx, mock.AnythingOfType("[]uuid.UUID"), userID).
				Return([]repository.UserBookRating{}, nil)

			return fn(mockFactory)
		}).
		Once()

	fx.popularUC.EXPECT().
		GetPopularBooks(ctx, usecase.PopularQuery{Limit: 10, MinReviews: 5}).
		Return([]*entity.Book{}, nil)

	recommendation, err := fx.service.GetRecommendations(ctx, userID, 5)

	require.NoError(t, err)
	assert.Equal(t, entity.RecommendationTypePersonal, recommendation.Type)
	assert.Empty(t, recommendation.Books)
}

func TestRecommendationService_DiverseForActiveUserUsesFavoriteGenres(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fantasy := uuid.New()
	mystery := uuid.New()
	book1 := uuid.New()
	book2 := uuid.New()

	ratings := []repository.BookRating{
		{BookID: book1, Rating: 5},
		{BookID: book2, Rating: 4},
	}
	genresByBook := map[uuid.UUID][]uuid.UUID{
		book1: {fantasy},
		book2: {mystery},
	}
	diverse := []*entity.Book{
		{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.7)},
	}

	expectAnalyzeUser(t, fx, ctx, userID, ratings, []uuid.UUID{}, genresByBook)

	// genre_count truncates the favorites: only the top genre survives.
	fx.genreUC.EXPECT().
		GetDiverseBooks(ctx, []uuid.UUID{fantasy}, 7, &userID).
		Return(diverse, nil)

	books, err := fx.service.GetDiverseRecommendations(ctx, &userID, 7, 1)

	require.NoError(t, err)
	assert.Equal(t, diverse, books)
}

func TestRecommendationService_DiverseForAnonymousSpreadsCatalogGenres(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	genre1 := uuid.New()
	genre2 := uuid.New()
	diverse := []*entity.Book{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGenreRepo := mockRepo.NewMockGenreRepository(t)

			mockFactory.EXPECT().GenreRepo().Return(mockGenreRepo)
			mockGenreRepo.EXPECT().
				ListGenres(ctx, 5).
				Return([]*entity.Genre{{ID: genre1, Name: "Fantasy"}, {ID: genre2, Name: "Mystery"}}, nil)

			return fn(mockFactory)
		}).
		Once()

	fx.genreUC.EXPECT().
		GetDiverseBooks(ctx, []uuid.UUID{genre1, genre2}, 20, (*uuid.UUID)(nil)).
		Return(diverse, nil)

	books, err := fx.service.GetDiverseRecommendations(ctx, nil, 20, 5)

	require.NoError(t, err)
	assert.Equal(t, diverse, books)
}

func TestRecommendationService_DiverseForInactiveUserFallsBackToCatalog(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	genre1 := uuid.New()
	diverse := []*entity.Book{{ID: uuid.New()}}

	expectAnalyzeUser(t, fx, ctx, userID, []repository.BookRating{}, []uuid.UUID{}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGenreRepo := mockRepo.NewMockGenreRepository(t)

			mockFactory.EXPECT().GenreRepo().Return(mockGenreRepo)
			mockGenreRepo.EXPECT().
				ListGenres(ctx, 2).
				Return([]*entity.Genre{{ID: genre1, Name: "Fantasy"}}, nil)

			return fn(mockFactory)
		}).
		Once()

	// The caller's history is still excluded even without preferences.
	fx.genreUC.EXPECT().
		GetDiverseBooks(ctx, []uuid.UUID{genre1}, 10, &userID).
		Return(diverse, nil)

	books, err := fx.service.GetDiverseRecommendations(ctx, &userID, 10, 2)

	require.NoError(t, err)
	assert.Equal(t, diverse, books)
}

func TestRecommendationService_DiverseAnalysisErrorSurfaces(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection lost")).
		Once()

	books, err := fx.service.GetDiverseRecommendations(ctx, &userID, 10, 5)

	require.Error(t, err)
	assert.Nil(t, books)
}
