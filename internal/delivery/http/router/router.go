// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"libris/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecommendationHandler *handler.RecommendationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	recommendationHandler *handler.RecommendationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recommendationHandler: params.RecommendationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	recommendationGroup := e.Group("/recommendations")
	{
		recommendationGroup.GET("/popular", r.recommendationHandler.GetPopularBooks)
		recommendationGroup.GET("/trending", r.recommendationHandler.GetTrendingBooks)
		recommendationGroup.GET("/genre/:genreId", r.recommendationHandler.GetGenreBooks)
		recommendationGroup.GET("/similar/:bookId", r.recommendationHandler.GetSimilarBooks)
		recommendationGroup.GET("/personal", r.recommendationHandler.GetPersonalRecommendations)
		recommendationGroup.GET("/diversity", r.recommendationHandler.GetDiverseBooks)
		recommendationGroup.GET("/similarity/:userId", r.recommendationHandler.GetUserSimilarity)
	}
}
