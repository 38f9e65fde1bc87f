package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"libris/config"
	"libris/internal/delivery/http/validator"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/delivery/http/middleware"
	mockUC "libris/internal/mocks/usecase"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecommendConfig() *config.RecommendConfig {
	return &config.RecommendConfig{
		MinReviews:         5,
		TrendingDaysBack:   30,
		TrendingMinReviews: 3,
		ProfileMaxGenres:   5,
	}
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func TestRecommendationHandler_GetPopularBooks(t *testing.T) {
	popularUC := mockUC.NewMockPopularUsecase(t)
	handler := &RecommendationHandler{
		cfg:       newTestRecommendConfig(),
		popularUC: popularUC,
	}

	books := []*entity.Book{
		{ID: uuid.New(), Title: "The Left Hand of Darkness", AverageRating: decimal.NewFromFloat(4.6), TotalReviews: 120},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/popular?limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	popularUC.EXPECT().
		GetPopularBooks(req.Context(), usecase.PopularQuery{Limit: 2, MinReviews: 5}).
		Return(books, nil)

	err := handler.GetPopularBooks(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Left Hand of Darkness")
}

func TestRecommendationHandler_GetPopularBooks_LimitTooLarge(t *testing.T) {
	handler := &RecommendationHandler{cfg: newTestRecommendConfig()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/popular?limit=500", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetPopularBooks(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendationHandler_GetGenreBooks_UnknownGenre(t *testing.T) {
	genreUC := mockUC.NewMockGenreUsecase(t)
	handler := &RecommendationHandler{
		cfg:     newTestRecommendConfig(),
		genreUC: genreUC,
	}

	genreID := uuid.New()

	e := newTestEcho()
	e.GET("/recommendations/genre/:genreId", handler.GetGenreBooks)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/genre/"+genreID.String(), nil)
	rec := httptest.NewRecorder()

	genreUC.EXPECT().
		GetGenre(req.Context(), genreID).
		Return(nil, errors.Wrap(domainerrors.ErrGenreNotFound, "genre not found"))

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "GENRE_NOT_FOUND")
}

func TestRecommendationHandler_GetGenreBooks_DefaultMinReviews(t *testing.T) {
	genreUC := mockUC.NewMockGenreUsecase(t)
	handler := &RecommendationHandler{
		cfg:     newTestRecommendConfig(),
		genreUC: genreUC,
	}

	genreID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/genre/"+genreID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/recommendations/genre/:genreId")
	c.SetParamNames("genreId")
	c.SetParamValues(genreID.String())

	genreUC.EXPECT().
		GetGenre(req.Context(), genreID).
		Return(&entity.Genre{ID: genreID, Name: "Fantasy"}, nil)

	// Zero-review books stay out unless min_reviews is given explicitly.
	genreUC.EXPECT().
		GetGenreBooks(req.Context(), usecase.GenreBooksQuery{
			GenreID:    genreID,
			Limit:      20,
			MinRating:  decimal.NewFromFloat(0),
			MinReviews: 1,
		}).
		Return([]*entity.Book{}, nil)

	err := handler.GetGenreBooks(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecommendationHandler_GetGenreBooks_LimitOverCuratedCap(t *testing.T) {
	handler := &RecommendationHandler{cfg: newTestRecommendConfig()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/genre/"+uuid.NewString()+"?limit=60", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/recommendations/genre/:genreId")
	c.SetParamNames("genreId")
	c.SetParamValues(uuid.NewString())

	err := handler.GetGenreBooks(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendationHandler_GetDiverseBooks(t *testing.T) {
	recommendationUC := mockUC.NewMockRecommendationUsecase(t)
	handler := &RecommendationHandler{
		cfg:              newTestRecommendConfig(),
		recommendationUC: recommendationUC,
	}

	userID := uuid.New()
	books := []*entity.Book{
		{ID: uuid.New(), Title: "The Dispossessed", AverageRating: decimal.NewFromFloat(4.5), TotalReviews: 80},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/diversity?genre_count=3", nil)
	req.Header.Set(userIDHeader, userID.String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	recommendationUC.EXPECT().
		GetDiverseRecommendations(req.Context(), &userID, 20, 3).
		Return(books, nil)

	err := handler.GetDiverseBooks(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Dispossessed")
}

func TestRecommendationHandler_GetDiverseBooks_Anonymous(t *testing.T) {
	recommendationUC := mockUC.NewMockRecommendationUsecase(t)
	handler := &RecommendationHandler{
		cfg:              newTestRecommendConfig(),
		recommendationUC: recommendationUC,
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/diversity", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	recommendationUC.EXPECT().
		GetDiverseRecommendations(req.Context(), (*uuid.UUID)(nil), 20, 5).
		Return([]*entity.Book{}, nil)

	err := handler.GetDiverseBooks(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecommendationHandler_GetPersonalRecommendations_MissingHeader(t *testing.T) {
	handler := &RecommendationHandler{cfg: newTestRecommendConfig()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/personal", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetPersonalRecommendations(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_USER_ID")
}

func TestRecommendationHandler_GetPersonalRecommendations(t *testing.T) {
	recommendationUC := mockUC.NewMockRecommendationUsecase(t)
	handler := &RecommendationHandler{
		cfg:              newTestRecommendConfig(),
		recommendationUC: recommendationUC,
	}

	userID := uuid.New()
	recommendation := &entity.Recommendation{
		Books:       []*entity.Book{{ID: uuid.New(), Title: "Piranesi"}},
		Type:        entity.RecommendationTypePersonal,
		Explanation: "Based on your reading preferences and similar users",
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/personal?limit=5", nil)
	req.Header.Set(userIDHeader, userID.String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	recommendationUC.EXPECT().
		GetRecommendations(req.Context(), userID, 5).
		Return(recommendation, nil)

	err := handler.GetPersonalRecommendations(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "personal")
	assert.Contains(t, rec.Body.String(), "Piranesi")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
