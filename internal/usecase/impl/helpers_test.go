package impl

import (
	"io"
	"log/slog"

	"libris/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Recommend: &config.RecommendConfig{
			MinReviews:           5,
			TrendingDaysBack:     30,
			TrendingMinReviews:   3,
			ProfileMinRating:     4,
			ProfileMaxGenres:     5,
			GenreShare:           0.6,
			NeighborMinShared:    2,
			NeighborLimit:        10,
			MinEndorsements:      2,
			EndorsementMinRating: 4,
		},
	}
}
