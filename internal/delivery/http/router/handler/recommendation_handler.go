// Package handler contains the HTTP handlers for the recommendation API.
package handler

import (
	"log/slog"
	"net/http"

	"libris/config"
	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultLimit = 20

	// Popularity listings page wider than the curated surfaces.
	maxPopularLimit = 100
	maxCuratedLimit = 50

	// userIDHeader carries the authenticated user, set by the upstream
	// gateway. This service does no session work of its own.
	userIDHeader = "X-User-ID"
)

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	Config           *config.Config
	PopularUC        usecase.PopularUsecase
	GenreUC          usecase.GenreUsecase
	SimilarityUC     usecase.SimilarityUsecase
	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

// RecommendationHandler holds dependencies for recommendation-related handlers
type RecommendationHandler struct {
	cfg              *config.RecommendConfig
	popularUC        usecase.PopularUsecase
	genreUC          usecase.GenreUsecase
	similarityUC     usecase.SimilarityUsecase
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler
func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{
		cfg:              params.Config.Recommend,
		popularUC:        params.PopularUC,
		genreUC:          params.GenreUC,
		similarityUC:     params.SimilarityUC,
		recommendationUC: params.RecommendationUC,
		logger:           params.Logger,
	}
}

// PopularBooksRequest represents the query parameters for the popular endpoint
type PopularBooksRequest struct {
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
	GenreID    string `query:"genre_id" validate:"omitempty,uuid"`
	MinReviews int    `query:"min_reviews" validate:"omitempty,min=1"`
	DaysBack   int    `query:"days_back" validate:"omitempty,min=1,max=365"`
}

// TrendingBooksRequest represents the query parameters for the trending endpoint
type TrendingBooksRequest struct {
	Limit              int `query:"limit" validate:"omitempty,min=1,max=100"`
	DaysBack           int `query:"days_back" validate:"omitempty,min=1,max=365"`
	MinReviewsInPeriod int `query:"min_reviews_in_period" validate:"omitempty,min=1"`
}

// GenreBooksRequest represents the query parameters for the genre endpoint
type GenreBooksRequest struct {
	Limit            int     `query:"limit" validate:"omitempty,min=1,max=50"`
	ExcludeUserBooks bool    `query:"exclude_user_books"`
	MinRating        float64 `query:"min_rating" validate:"omitempty,min=0,max=5"`
	MinReviews       int     `query:"min_reviews" validate:"omitempty,min=1"`
}

// SimilarBooksRequest represents the query parameters for the similar endpoint
type SimilarBooksRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=50"`
}

// PersonalRequest represents the query parameters for the personal endpoint
type PersonalRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=50"`
}

// DiverseBooksRequest represents the query parameters for the diversity endpoint
type DiverseBooksRequest struct {
	Limit      int `query:"limit" validate:"omitempty,min=1,max=50"`
	GenreCount int `query:"genre_count" validate:"omitempty,min=2,max=10"`
}

// GetPopularBooks handles the global popularity ranking request.
func (h *RecommendationHandler) GetPopularBooks(c echo.Context) error {
	var req PopularBooksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid popular books query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	query := usecase.PopularQuery{
		Limit:      limitOrDefault(req.Limit, maxPopularLimit),
		MinReviews: h.cfg.MinReviews,
	}
	if req.MinReviews > 0 {
		query.MinReviews = req.MinReviews
	}
	if req.GenreID != "" {
		genreID, err := uuid.Parse(req.GenreID)
		if err != nil {
			return response.BadRequest(c, "INVALID_GENRE_ID", "Invalid genre ID format")
		}
		query.GenreID = &genreID
	}
	if req.DaysBack > 0 {
		daysBack := req.DaysBack
		query.DaysBack = &daysBack
	}

	books, err := h.popularUC.GetPopularBooks(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Popular books retrieved successfully")
}

// GetTrendingBooks handles the trending ranking request.
func (h *RecommendationHandler) GetTrendingBooks(c echo.Context) error {
	var req TrendingBooksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trending books query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	query := usecase.TrendingQuery{
		Limit:              limitOrDefault(req.Limit, maxPopularLimit),
		DaysBack:           h.cfg.TrendingDaysBack,
		MinReviewsInPeriod: h.cfg.TrendingMinReviews,
	}
	if req.DaysBack > 0 {
		query.DaysBack = req.DaysBack
	}
	if req.MinReviewsInPeriod > 0 {
		query.MinReviewsInPeriod = req.MinReviewsInPeriod
	}

	books, err := h.popularUC.GetTrendingBooks(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Trending books retrieved successfully")
}

// GetGenreBooks handles the within-genre ranking request.
func (h *RecommendationHandler) GetGenreBooks(c echo.Context) error {
	genreID, err := uuid.Parse(c.Param("genreId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GENRE_ID", "Invalid genre ID format")
	}

	var req GenreBooksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid genre books query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	// Unknown genres are a 404, not an empty list.
	if _, err := h.genreUC.GetGenre(c.Request().Context(), genreID); err != nil {
		return errors.WithStack(err)
	}

	query := usecase.GenreBooksQuery{
		GenreID:    genreID,
		Limit:      limitOrDefault(req.Limit, maxCuratedLimit),
		MinRating:  decimal.NewFromFloat(req.MinRating),
		MinReviews: 1,
	}
	if req.MinReviews > 0 {
		query.MinReviews = req.MinReviews
	}
	if req.ExcludeUserBooks {
		userID, err := optionalUserID(c)
		if err != nil {
			return response.BadRequest(c, "INVALID_USER_ID", "Invalid X-User-ID header")
		}
		query.ExcludeUserID = userID
	}

	books, err := h.genreUC.GetGenreBooks(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Genre books retrieved successfully")
}

// GetSimilarBooks handles the shared-genre similarity request.
func (h *RecommendationHandler) GetSimilarBooks(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_BOOK_ID", "Invalid book ID format")
	}

	var req SimilarBooksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid similar books query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid X-User-ID header")
	}

	books, err := h.genreUC.GetSimilarBooks(c.Request().Context(), bookID, limitOrDefault(req.Limit, maxCuratedLimit), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Similar books retrieved successfully")
}

// GetPersonalRecommendations handles the personal recommendation request.
func (h *RecommendationHandler) GetPersonalRecommendations(c echo.Context) error {
	userID, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid X-User-ID header")
	}
	if userID == nil {
		return response.Unauthorized(c, "MISSING_USER_ID", "X-User-ID header is required")
	}

	var req PersonalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid personal recommendations query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	recommendation, err := h.recommendationUC.GetRecommendations(c.Request().Context(), *userID, limitOrDefault(req.Limit, maxCuratedLimit))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recommendation, "Recommendations retrieved successfully")
}

// GetDiverseBooks handles the cross-genre diversity request. The user
// header is optional: known users get the spread over their own
// favorite genres, everyone else over the catalog's leading genres.
func (h *RecommendationHandler) GetDiverseBooks(c echo.Context) error {
	var req DiverseBooksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diverse books query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid X-User-ID header")
	}

	genreCount := h.cfg.ProfileMaxGenres
	if req.GenreCount > 0 {
		genreCount = req.GenreCount
	}

	books, err := h.recommendationUC.GetDiverseRecommendations(c.Request().Context(), userID, limitOrDefault(req.Limit, maxCuratedLimit), genreCount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Diverse books retrieved successfully")
}

// GetUserSimilarity handles the pairwise user similarity request. It
// scores the calling user against the user named in the path.
func (h *RecommendationHandler) GetUserSimilarity(c echo.Context) error {
	otherID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID format")
	}

	userID, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid X-User-ID header")
	}
	if userID == nil {
		return response.Unauthorized(c, "MISSING_USER_ID", "X-User-ID header is required")
	}

	similarity, err := h.similarityUC.UserSimilarity(c.Request().Context(), *userID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":    otherID,
		"similarity": similarity,
	}, "User similarity computed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func limitOrDefault(limit, max int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > max {
		return max
	}

	return limit
}

// optionalUserID parses the gateway user header. A missing header is
// nil, a malformed one is an error.
func optionalUserID(c echo.Context) (*uuid.UUID, error) {
	raw := c.Request().Header.Get(userIDHeader)
	if raw == "" {
		return nil, nil
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user ID header")
	}

	return &userID, nil
}
