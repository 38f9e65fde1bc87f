package impl

import (
	"context"
	"testing"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	mockRepo "libris/internal/mocks/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenreService_GetGenre_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewGenreService(txManager, newDiscardLogger())

	ctx := context.Background()
	genreID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGenreRepo := mockRepo.NewMockGenreRepository(t)

			mockFactory.EXPECT().GenreRepo().Return(mockGenreRepo)

			mockGenreRepo.EXPECT().
				FindGenreByID(ctx, genreID).
				Return(nil, repository.ErrGenreNotFound)

			return fn(mockFactory)
		})

	genre, err := service.GetGenre(ctx, genreID)

	assert.Nil(t, genre)
	assert.ErrorIs(t, err, domainerrors.ErrGenreNotFound)
}

func TestGenreService_GetGenreBooks_ExcludesUserHistory(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewGenreService(txManager, newDiscardLogger())

	ctx := context.Background()
	genreID := uuid.New()
	userID := uuid.New()

	reviewed := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.9), TotalReviews: 30}
	favorited := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.7), TotalReviews: 25}
	fresh := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.1), TotalReviews: 12}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockBookRepo.EXPECT().
				FindEligibleBooks(ctx, repository.BookFilter{GenreID: &genreID, MinRating: decimal.NewFromFloat(4.0), MinReviews: 5}).
				Return([]*entity.Book{reviewed, favorited, fresh}, nil)

			mockReviewRepo.EXPECT().
				FindRatingsByUser(ctx, userID).
				Return([]repository.BookRating{{BookID: reviewed.ID, Rating: 5}}, nil)

			mockFavoriteRepo.EXPECT().
				FindBookIDsByUser(ctx, userID).
				Return([]uuid.UUID{favorited.ID}, nil)

			return fn(mockFactory)
		})

	books, err := service.GetGenreBooks(ctx, usecase.GenreBooksQuery{
		GenreID:       genreID,
		Limit:         10,
		ExcludeUserID: &userID,
		MinRating:     decimal.NewFromFloat(4.0),
		MinReviews:    5,
	})

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, fresh.ID, books[0].ID)
}

func TestGenreService_GetSimilarBooks_RanksByQuality(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewGenreService(txManager, newDiscardLogger())

	ctx := context.Background()
	bookID := uuid.New()

	good := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.2), TotalReviews: 10}
	better := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.6), TotalReviews: 4}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)

			mockBookRepo.EXPECT().
				FindBooksSharingGenres(ctx, bookID).
				Return([]*entity.Book{good, better}, nil)

			return fn(mockFactory)
		})

	books, err := service.GetSimilarBooks(ctx, bookID, 5, nil)

	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, better.ID, books[0].ID)
	assert.Equal(t, good.ID, books[1].ID)
}

func TestGenreService_GetDiverseBooks_AllocatesSlots(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewGenreService(txManager, newDiscardLogger())

	ctx := context.Background()
	fantasy := uuid.New()
	mystery := uuid.New()

	fantasyBooks := []*entity.Book{
		{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.8), TotalReviews: 20},
		{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.6), TotalReviews: 15},
		{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.4), TotalReviews: 10},
	}
	shared := &entity.Book{ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.5), TotalReviews: 18}
	mysteryBooks := []*entity.Book{shared, {ID: uuid.New(), AverageRating: decimal.NewFromFloat(4.2), TotalReviews: 9}}

	// The first genre also surfaces the shared book, so the mystery slot
	// containing it deduplicates away.
	fantasyBooks = append([]*entity.Book{shared}, fantasyBooks...)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)

			mockBookRepo.EXPECT().
				FindEligibleBooks(ctx, repository.BookFilter{GenreID: &fantasy, MinReviews: 1}).
				Return(fantasyBooks, nil)
			mockBookRepo.EXPECT().
				FindEligibleBooks(ctx, repository.BookFilter{GenreID: &mystery, MinReviews: 1}).
				Return(mysteryBooks, nil)

			return fn(mockFactory)
		})

	books, err := service.GetDiverseBooks(ctx, []uuid.UUID{fantasy, mystery}, 5, nil)

	require.NoError(t, err)
	// limit 5 over 2 genres: 3 fantasy slots, 2 mystery slots, the shared
	// book counted once.
	require.Len(t, books, 4)
	assert.Equal(t, fantasyBooks[1].ID, books[0].ID)
	assert.Equal(t, fantasyBooks[2].ID, books[1].ID)
	assert.Equal(t, shared.ID, books[2].ID)
	assert.Equal(t, mysteryBooks[1].ID, books[3].ID)
}

func TestGenreService_GetDiverseBooks_EmptyGenreList(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewGenreService(txManager, newDiscardLogger())

	books, err := service.GetDiverseBooks(context.Background(), nil, 10, nil)

	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestGenreService_GetGenreBooks_StoreError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewGenreService(txManager, newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection lost"))

	books, err := service.GetGenreBooks(ctx, usecase.GenreBooksQuery{GenreID: uuid.New(), Limit: 5})

	assert.Error(t, err)
	assert.Nil(t, books)
}
