package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendConfig_ApplyDefaults_Zero(t *testing.T) {
	cfg := &RecommendConfig{}
	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.MinReviews)
	assert.Equal(t, 30, cfg.TrendingDaysBack)
	assert.Equal(t, 3, cfg.TrendingMinReviews)
	assert.Equal(t, 4, cfg.ProfileMinRating)
	assert.Equal(t, 5, cfg.ProfileMaxGenres)
	assert.InDelta(t, 0.6, cfg.GenreShare, 1e-9)
	assert.Equal(t, 2, cfg.NeighborMinShared)
	assert.Equal(t, 10, cfg.NeighborLimit)
	assert.Equal(t, 2, cfg.MinEndorsements)
	assert.Equal(t, 4, cfg.EndorsementMinRating)
}

func TestRecommendConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &RecommendConfig{
		MinReviews:        10,
		GenreShare:        0.5,
		NeighborMinShared: 3,
	}
	cfg.applyDefaults()

	assert.Equal(t, 10, cfg.MinReviews)
	assert.InDelta(t, 0.5, cfg.GenreShare, 1e-9)
	assert.Equal(t, 3, cfg.NeighborMinShared)
	// Untouched knobs still get defaults.
	assert.Equal(t, 3, cfg.TrendingMinReviews)
}

func TestRecommendConfig_ApplyDefaults_RejectsOutOfRangeShare(t *testing.T) {
	cfg := &RecommendConfig{GenreShare: 1.7}
	cfg.applyDefaults()

	assert.InDelta(t, 0.6, cfg.GenreShare, 1e-9)
}
