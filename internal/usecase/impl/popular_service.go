package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"libris/internal/domain/entity"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// popularService implements the PopularUsecase interface.
type popularService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPopularService is the constructor for popularService.
func NewPopularService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PopularUsecase {
	return &popularService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetPopularBooks ranks eligible books by popularity score. Eligibility
// (review-count floor, optional genre and creation-date window) is pushed
// down to the store; scoring and ordering happen here.
func (srv *popularService) GetPopularBooks(ctx context.Context, query usecase.PopularQuery) ([]*entity.Book, error) {
	srv.logger.Debug("Ranking popular books", "limit", query.Limit, "minReviews", query.MinReviews)

	if query.Limit <= 0 {
		return []*entity.Book{}, nil
	}

	var candidates []*entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		filter := repository.BookFilter{
			GenreID:    query.GenreID,
			MinReviews: query.MinReviews,
		}
		if query.DaysBack != nil {
			cutoff := time.Now().UTC().AddDate(0, 0, -*query.DaysBack)
			filter.CreatedAfter = &cutoff
		}

		found, err := repoFactory.BookRepo().FindEligibleBooks(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to find eligible books")
		}
		candidates = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get popular books")
	}

	return rankByPopularity(candidates, query.MinReviews, query.Limit), nil
}

// bookActivity accumulates one book's review activity inside the
// trending window.
type bookActivity struct {
	book      *entity.Book
	count     int
	avgRating float64
}

// GetTrendingBooks ranks books by review activity inside the query
// window. Books with fewer than MinReviewsInPeriod recent reviews are
// excluded entirely rather than zero-scored.
func (srv *popularService) GetTrendingBooks(ctx context.Context, query usecase.TrendingQuery) ([]*entity.Book, error) {
	srv.logger.Debug("Ranking trending books", "limit", query.Limit, "daysBack", query.DaysBack)

	if query.Limit <= 0 {
		return []*entity.Book{}, nil
	}

	counts := make(map[uuid.UUID]int)
	sums := make(map[uuid.UUID]int)
	var books []*entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		since := time.Now().UTC().AddDate(0, 0, -query.DaysBack)

		ratings, err := repoFactory.ReviewRepo().FindRecentRatings(ctx, since)
		if err != nil {
			return errors.Wrap(err, "failed to find recent ratings")
		}

		for _, rating := range ratings {
			counts[rating.BookID]++
			sums[rating.BookID] += rating.Rating
		}

		qualifying := make([]uuid.UUID, 0, len(counts))
		for bookID, count := range counts {
			if count >= query.MinReviewsInPeriod {
				qualifying = append(qualifying, bookID)
			}
		}
		if len(qualifying) == 0 {
			return nil
		}

		books, err = repoFactory.BookRepo().FindBooksByIDs(ctx, qualifying)
		if err != nil {
			return errors.Wrap(err, "failed to find trending books")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get trending books")
	}

	activities := make([]bookActivity, 0, len(books))
	for _, book := range books {
		count := counts[book.ID]
		activities = append(activities, bookActivity{
			book:      book,
			count:     count,
			avgRating: float64(sums[book.ID]) / float64(count),
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]

		scoreA := trendingScore(a.avgRating, a.count)
		scoreB := trendingScore(b.avgRating, b.count)
		if scoreA != scoreB {
			return scoreA > scoreB
		}
		if a.avgRating != b.avgRating {
			return a.avgRating > b.avgRating
		}

		return lessByID(a.book, b.book)
	})

	ranked := make([]*entity.Book, 0, len(activities))
	for _, activity := range activities {
		ranked = append(ranked, activity.book)
	}

	return truncateBooks(ranked, query.Limit), nil
}
