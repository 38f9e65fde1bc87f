package impl

import (
	"context"
	"log/slog"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// genreService implements the GenreUsecase interface.
type genreService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewGenreService is the constructor for genreService.
func NewGenreService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.GenreUsecase {
	return &genreService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetGenre retrieves a single genre by ID.
func (srv *genreService) GetGenre(ctx context.Context, genreID uuid.UUID) (*entity.Genre, error) {
	var genre *entity.Genre

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.GenreRepo().FindGenreByID(ctx, genreID)
		if err != nil {
			if errors.Is(err, repository.ErrGenreNotFound) {
				return errors.Wrap(domainerrors.ErrGenreNotFound, "genre not found")
			}

			return errors.Wrap(err, "failed to find genre")
		}
		genre = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get genre")
	}

	return genre, nil
}

// GetGenreBooks returns the top books of a genre ordered by average
// rating, review count and creation time (newer first). An unknown genre
// yields an empty list; existence checks belong to the API boundary.
func (srv *genreService) GetGenreBooks(ctx context.Context, query usecase.GenreBooksQuery) ([]*entity.Book, error) {
	srv.logger.Debug("Ranking genre books", "genreID", query.GenreID, "limit", query.Limit)

	if query.Limit <= 0 {
		return []*entity.Book{}, nil
	}

	var candidates []*entity.Book
	var excluded map[uuid.UUID]struct{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		genreID := query.GenreID
		found, err := repoFactory.BookRepo().FindEligibleBooks(ctx, repository.BookFilter{
			GenreID:    &genreID,
			MinRating:  query.MinRating,
			MinReviews: query.MinReviews,
		})
		if err != nil {
			return errors.Wrap(err, "failed to find genre books")
		}
		candidates = found

		if query.ExcludeUserID != nil {
			excluded, err = collectExclusions(ctx, repoFactory, *query.ExcludeUserID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get genre books")
	}

	ranked := rankByQuality(filterExcluded(candidates, excluded), true)

	return truncateBooks(ranked, query.Limit), nil
}

// GetSimilarBooks returns books sharing at least one genre with the
// given book, ordered by average rating and review count. The source
// book itself is never part of the candidate set.
func (srv *genreService) GetSimilarBooks(ctx context.Context, bookID uuid.UUID, limit int, excludeUserID *uuid.UUID) ([]*entity.Book, error) {
	srv.logger.Debug("Ranking similar books", "bookID", bookID, "limit", limit)

	if limit <= 0 {
		return []*entity.Book{}, nil
	}

	var candidates []*entity.Book
	var excluded map[uuid.UUID]struct{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookRepo().FindBooksSharingGenres(ctx, bookID)
		if err != nil {
			return errors.Wrap(err, "failed to find books sharing genres")
		}
		candidates = found

		if excludeUserID != nil {
			excluded, err = collectExclusions(ctx, repoFactory, *excludeUserID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get similar books")
	}

	ranked := rankByQuality(filterExcluded(candidates, excluded), false)

	return truncateBooks(ranked, limit), nil
}

// GetDiverseBooks spreads the limit across the given genres: every genre
// gets floor(limit/n) slots and the first limit mod n genres one more.
// Per-genre results are concatenated in genre-priority order,
// deduplicated keeping the first occurrence, and truncated.
func (srv *genreService) GetDiverseBooks(ctx context.Context, genreIDs []uuid.UUID, limit int, excludeUserID *uuid.UUID) ([]*entity.Book, error) {
	if len(genreIDs) == 0 || limit <= 0 {
		return []*entity.Book{}, nil
	}

	baseSlots := limit / len(genreIDs)
	extraSlots := limit % len(genreIDs)

	seen := make(map[uuid.UUID]struct{}, limit)
	combined := make([]*entity.Book, 0, limit)

	for i, genreID := range genreIDs {
		genreLimit := baseSlots
		if i < extraSlots {
			genreLimit++
		}
		if genreLimit == 0 {
			continue
		}

		books, err := srv.GetGenreBooks(ctx, usecase.GenreBooksQuery{
			GenreID:       genreID,
			Limit:         genreLimit,
			ExcludeUserID: excludeUserID,
			MinReviews:    1,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get diversity books")
		}

		for _, book := range books {
			if _, found := seen[book.ID]; found {
				continue
			}
			seen[book.ID] = struct{}{}
			combined = append(combined, book)
		}
	}

	return truncateBooks(combined, limit), nil
}
