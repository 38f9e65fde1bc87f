package entity

// RecommendationType tags how a recommendation list was produced.
type RecommendationType string

const (
	// RecommendationTypePersonal marks lists built from the user's own
	// taste profile and similar users.
	RecommendationTypePersonal RecommendationType = "personal"

	// RecommendationTypePopular marks lists built from global popularity,
	// used for new users and as the degradation path.
	RecommendationTypePopular RecommendationType = "popular"
)

// Recommendation is the result of a personal recommendation request:
// an ordered book list plus how and why it was produced.
type Recommendation struct {
	Books       []*Book            `json:"books"`
	Type        RecommendationType `json:"recommendation_type"`
	Explanation string             `json:"explanation"`
}
