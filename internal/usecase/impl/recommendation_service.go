package impl

import (
	"context"
	"log/slog"
	"sort"

	"libris/config"
	"libris/internal/domain/entity"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Explanations surfaced with each recommendation list.
const (
	explanationNewUser  = "Popular books since you're new to the platform"
	explanationPersonal = "Based on your reading preferences and similar users"
	explanationFallback = "Popular books while personalized recommendations are unavailable"
)

// recommendationService implements the RecommendationUsecase interface.
// Every personalized step is best-effort: any failure degrades to the
// popular fallback instead of surfacing an error.
type recommendationService struct {
	cfg       *config.RecommendConfig
	txManager repository.TransactionManager
	popularUC usecase.PopularUsecase
	genreUC   usecase.GenreUsecase
	logger    *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	popularUC usecase.PopularUsecase,
	genreUC usecase.GenreUsecase,
	logger *slog.Logger,
) usecase.RecommendationUsecase {
	return &recommendationService{
		cfg:       cfg.Recommend,
		txManager: txManager,
		popularUC: popularUC,
		genreUC:   genreUC,
		logger:    logger,
	}
}

// userActivity is the per-request snapshot of a user's history: the
// derived taste profile, the raw rating map and the exclusion set.
type userActivity struct {
	profile    *entity.TasteProfile
	ownRatings map[uuid.UUID]int
	excluded   map[uuid.UUID]struct{}
}

// GetRecommendations runs the personalization state machine: profile,
// no-activity branch, exclusion, 60/40 genre/collaborative blend and
// popular backfill.
func (srv *recommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) (*entity.Recommendation, error) {
	if limit <= 0 {
		return &entity.Recommendation{
			Books:       []*entity.Book{},
			Type:        entity.RecommendationTypePopular,
			Explanation: explanationFallback,
		}, nil
	}

	activity, err := srv.analyzeUser(ctx, userID)
	if err != nil {
		srv.logger.Warn("Falling back to popular recommendations", "userID", userID, "error", err)

		return srv.popularFallback(ctx, limit, explanationFallback), nil
	}

	if !activity.profile.HasActivity {
		return srv.popularFallback(ctx, limit, explanationNewUser), nil
	}

	books, err := srv.blendRecommendations(ctx, userID, activity, limit)
	if err != nil {
		srv.logger.Warn("Personalized blend failed, falling back to popular", "userID", userID, "error", err)

		return srv.popularFallback(ctx, limit, explanationFallback), nil
	}

	return &entity.Recommendation{
		Books:       books,
		Type:        entity.RecommendationTypePersonal,
		Explanation: explanationPersonal,
	}, nil
}

// GetDiverseRecommendations spreads the limit across up to genreCount
// genres. Known users with rating activity get their favorite genres
// with their own history excluded; otherwise the catalog's leading
// genres are used. Unlike GetRecommendations this path has no popular
// fallback, so store failures surface as errors.
func (srv *recommendationService) GetDiverseRecommendations(ctx context.Context, userID *uuid.UUID, limit int, genreCount int) ([]*entity.Book, error) {
	if limit <= 0 || genreCount <= 0 {
		return []*entity.Book{}, nil
	}

	if userID != nil {
		activity, err := srv.analyzeUser(ctx, *userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to analyze user for diverse recommendations")
		}

		if activity.profile.HasActivity && len(activity.profile.FavoriteGenres) > 0 {
			genreIDs := activity.profile.FavoriteGenres
			if len(genreIDs) > genreCount {
				genreIDs = genreIDs[:genreCount]
			}

			return srv.genreUC.GetDiverseBooks(ctx, genreIDs, limit, userID)
		}
	}

	var genreIDs []uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		genres, err := repoFactory.GenreRepo().ListGenres(ctx, genreCount)
		if err != nil {
			return errors.Wrap(err, "failed to list genres")
		}

		genreIDs = make([]uuid.UUID, 0, len(genres))
		for _, genre := range genres {
			genreIDs = append(genreIDs, genre.ID)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick genres for diverse recommendations")
	}

	return srv.genreUC.GetDiverseBooks(ctx, genreIDs, limit, userID)
}

// blendRecommendations fills the limit from genre-based candidates
// first, then collaborative candidates, then popular backfill. A seen
// set keeps the final list free of duplicates across the three sources.
func (srv *recommendationService) blendRecommendations(ctx context.Context, userID uuid.UUID, activity *userActivity, limit int) ([]*entity.Book, error) {
	seen := make(map[uuid.UUID]struct{}, limit)
	recommendations := make([]*entity.Book, 0, limit)

	appendBooks := func(books []*entity.Book, max int) {
		for _, book := range books {
			if len(recommendations) >= max {
				return
			}
			if _, found := seen[book.ID]; found {
				continue
			}
			if _, found := activity.excluded[book.ID]; found {
				continue
			}
			seen[book.ID] = struct{}{}
			recommendations = append(recommendations, book)
		}
	}

	// Genre share of the limit, from the user's favorite genres. The
	// exclusion set is applied here rather than pushed into the genre
	// engine so favorites count as interactions too.
	genreLimit := int(float64(limit) * srv.cfg.GenreShare)
	if genreLimit > 0 {
		genreBooks, err := srv.genreUC.GetDiverseBooks(ctx, activity.profile.FavoriteGenres, genreLimit, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get genre-based candidates")
		}
		appendBooks(genreBooks, genreLimit)
	}

	// Collaborative share: whatever the genre step left open.
	if remaining := limit - len(recommendations); remaining > 0 {
		collaborative, err := srv.collaborativeCandidates(ctx, userID, activity, remaining)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get collaborative candidates")
		}
		appendBooks(collaborative, limit)
	}

	// Backfill from global popularity, requesting extra to survive the
	// exclusion filtering.
	if remaining := limit - len(recommendations); remaining > 0 {
		popular, err := srv.popularUC.GetPopularBooks(ctx, usecase.PopularQuery{
			Limit:      remaining * 2,
			MinReviews: srv.cfg.MinReviews,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to backfill from popular books")
		}
		appendBooks(popular, limit)
	}

	return recommendations, nil
}

// analyzeUser derives the user's taste profile and exclusion set from
// their review and favorite history, inside one store snapshot.
func (srv *recommendationService) analyzeUser(ctx context.Context, userID uuid.UUID) (*userActivity, error) {
	activity := &userActivity{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratings, err := repoFactory.ReviewRepo().FindRatingsByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user ratings")
		}

		favoriteIDs, err := repoFactory.FavoriteRepo().FindBookIDsByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user favorites")
		}

		activity.ownRatings = ratingMap(ratings)
		activity.excluded = make(map[uuid.UUID]struct{}, len(ratings)+len(favoriteIDs))
		for _, rating := range ratings {
			activity.excluded[rating.BookID] = struct{}{}
		}
		for _, bookID := range favoriteIDs {
			activity.excluded[bookID] = struct{}{}
		}

		highRated := make([]uuid.UUID, 0, len(ratings))
		for _, rating := range ratings {
			if rating.Rating >= srv.cfg.ProfileMinRating {
				highRated = append(highRated, rating.BookID)
			}
		}

		var genresByBook map[uuid.UUID][]uuid.UUID
		if len(highRated) > 0 {
			genresByBook, err = repoFactory.GenreRepo().FindGenresForBooks(ctx, highRated)
			if err != nil {
				return errors.Wrap(err, "failed to find genres for rated books")
			}
		}

		activity.profile = srv.buildProfile(ratings, genresByBook)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze user activity")
	}

	return activity, nil
}

// genrePreference accumulates one genre's signal from a user's
// high-rated reviews.
type genrePreference struct {
	genreID uuid.UUID
	sum     int
	count   int
}

func (p genrePreference) mean() float64 {
	return float64(p.sum) / float64(p.count)
}

// buildProfile aggregates high-rated reviews per genre and orders the
// preferences by mean rating, then review count, then genre ID. The
// favorite list is capped at the configured maximum.
func (srv *recommendationService) buildProfile(ratings []repository.BookRating, genresByBook map[uuid.UUID][]uuid.UUID) *entity.TasteProfile {
	byGenre := make(map[uuid.UUID]*genrePreference)
	var ratingSum int

	for _, rating := range ratings {
		ratingSum += rating.Rating
		if rating.Rating < srv.cfg.ProfileMinRating {
			continue
		}
		for _, genreID := range genresByBook[rating.BookID] {
			pref, found := byGenre[genreID]
			if !found {
				pref = &genrePreference{genreID: genreID}
				byGenre[genreID] = pref
			}
			pref.sum += rating.Rating
			pref.count++
		}
	}

	preferences := make([]*genrePreference, 0, len(byGenre))
	for _, pref := range byGenre {
		preferences = append(preferences, pref)
	}
	sort.Slice(preferences, func(i, j int) bool {
		a, b := preferences[i], preferences[j]

		if a.mean() != b.mean() {
			return a.mean() > b.mean()
		}
		if a.count != b.count {
			return a.count > b.count
		}

		return lessUUID(a.genreID, b.genreID)
	})
	if len(preferences) > srv.cfg.ProfileMaxGenres {
		preferences = preferences[:srv.cfg.ProfileMaxGenres]
	}

	profile := &entity.TasteProfile{
		HasActivity:    len(preferences) > 0,
		FavoriteGenres: make([]uuid.UUID, 0, len(preferences)),
		GenreRatings:   make(map[uuid.UUID]float64, len(preferences)),
		TotalReviews:   len(ratings),
	}
	for _, pref := range preferences {
		profile.FavoriteGenres = append(profile.FavoriteGenres, pref.genreID)
		profile.GenreRatings[pref.genreID] = pref.mean()
	}
	if len(ratings) > 0 {
		profile.AvgRating = float64(ratingSum) / float64(len(ratings))
	}

	return profile
}

// neighbor is another user sharing rated books with the requesting user.
type neighbor struct {
	userID     uuid.UUID
	shared     int
	similarity float64
	ratings    map[uuid.UUID]int
}

// endorsement accumulates neighbor approval of one candidate book.
type endorsement struct {
	book  *entity.Book
	users map[uuid.UUID]struct{}
	sum   int
}

func (e endorsement) count() int {
	return len(e.users)
}

func (e endorsement) avgRating() float64 {
	return float64(e.sum) / float64(e.count())
}

// collaborativeCandidates finds neighbors through co-rated books, ranks
// them by overlap and rating correlation, and returns books that at
// least the configured number of distinct neighbors rated highly.
func (srv *recommendationService) collaborativeCandidates(ctx context.Context, userID uuid.UUID, activity *userActivity, limit int) ([]*entity.Book, error) {
	if len(activity.ownRatings) == 0 {
		return []*entity.Book{}, nil
	}

	ownBookIDs := make([]uuid.UUID, 0, len(activity.ownRatings))
	for bookID := range activity.ownRatings {
		ownBookIDs = append(ownBookIDs, bookID)
	}

	var candidates []endorsement

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sharedRows, err := repoFactory.ReviewRepo().FindRatingsByBooks(ctx, ownBookIDs, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find co-ratings")
		}

		neighbors := srv.rankNeighbors(activity.ownRatings, sharedRows)
		if len(neighbors) == 0 {
			return nil
		}

		neighborIDs := make([]uuid.UUID, 0, len(neighbors))
		for _, nb := range neighbors {
			neighborIDs = append(neighborIDs, nb.userID)
		}

		endorsedRows, err := repoFactory.ReviewRepo().FindHighRatedByUsers(ctx, neighborIDs, srv.cfg.EndorsementMinRating)
		if err != nil {
			return errors.Wrap(err, "failed to find neighbor endorsements")
		}

		byBook := make(map[uuid.UUID]*endorsement)
		for _, row := range endorsedRows {
			if _, found := activity.excluded[row.BookID]; found {
				continue
			}
			e, found := byBook[row.BookID]
			if !found {
				e = &endorsement{users: make(map[uuid.UUID]struct{})}
				byBook[row.BookID] = e
			}
			if _, counted := e.users[row.UserID]; counted {
				continue
			}
			e.users[row.UserID] = struct{}{}
			e.sum += row.Rating
		}

		qualifyingIDs := make([]uuid.UUID, 0, len(byBook))
		for bookID, e := range byBook {
			if e.count() >= srv.cfg.MinEndorsements {
				qualifyingIDs = append(qualifyingIDs, bookID)
			}
		}
		if len(qualifyingIDs) == 0 {
			return nil
		}

		books, err := repoFactory.BookRepo().FindBooksByIDs(ctx, qualifyingIDs)
		if err != nil {
			return errors.Wrap(err, "failed to find endorsed books")
		}

		candidates = make([]endorsement, 0, len(books))
		for _, book := range books {
			e := byBook[book.ID]
			e.book = book
			candidates = append(candidates, *e)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get collaborative candidates")
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.avgRating() != b.avgRating() {
			return a.avgRating() > b.avgRating()
		}
		if a.count() != b.count() {
			return a.count() > b.count()
		}
		if cmp := a.book.AverageRating.Cmp(b.book.AverageRating); cmp != 0 {
			return cmp > 0
		}

		return lessByID(a.book, b.book)
	})

	books := make([]*entity.Book, 0, len(candidates))
	for _, candidate := range candidates {
		books = append(books, candidate.book)
	}

	return truncateBooks(books, limit), nil
}

// rankNeighbors groups co-ratings per user, keeps users sharing at least
// the configured number of books, and orders them by shared-book count
// then Pearson similarity, truncated to the neighbor limit.
func (srv *recommendationService) rankNeighbors(ownRatings map[uuid.UUID]int, rows []repository.UserBookRating) []neighbor {
	byUser := make(map[uuid.UUID]*neighbor)
	for _, row := range rows {
		nb, found := byUser[row.UserID]
		if !found {
			nb = &neighbor{userID: row.UserID, ratings: make(map[uuid.UUID]int)}
			byUser[row.UserID] = nb
		}
		if _, counted := nb.ratings[row.BookID]; counted {
			continue
		}
		nb.ratings[row.BookID] = row.Rating
		nb.shared++
	}

	neighbors := make([]neighbor, 0, len(byUser))
	for _, nb := range byUser {
		if nb.shared < srv.cfg.NeighborMinShared {
			continue
		}
		nb.similarity = PearsonSimilarity(ownRatings, nb.ratings)
		neighbors = append(neighbors, *nb)
	}

	sort.Slice(neighbors, func(i, j int) bool {
		a, b := neighbors[i], neighbors[j]

		if a.shared != b.shared {
			return a.shared > b.shared
		}
		if a.similarity != b.similarity {
			return a.similarity > b.similarity
		}

		return lessUUID(a.userID, b.userID)
	})
	if len(neighbors) > srv.cfg.NeighborLimit {
		neighbors = neighbors[:srv.cfg.NeighborLimit]
	}

	return neighbors
}

// popularFallback serves the degradation path. When even the popularity
// query fails, an empty popular list is returned rather than an error:
// recommendations are always best-effort.
func (srv *recommendationService) popularFallback(ctx context.Context, limit int, explanation string) *entity.Recommendation {
	books, err := srv.popularUC.GetPopularBooks(ctx, usecase.PopularQuery{
		Limit:      limit,
		MinReviews: srv.cfg.MinReviews,
	})
	if err != nil {
		srv.logger.Error("Popular fallback failed", "error", err)
		books = []*entity.Book{}
	}

	return &entity.Recommendation{
		Books:       books,
		Type:        entity.RecommendationTypePopular,
		Explanation: explanation,
	}
}
