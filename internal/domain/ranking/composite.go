package ranking

import (
	"math"
	"time"
)

// Composite score parameters for post recommendation.
const (
	LikePoints     = 2   // per like
	PopularityCap  = 500 // ceiling on like points
	AgePenaltyStep = 10  // per whole day of age
	NoTagsPenalty  = 500 // flat penalty for untagged posts
)

// Breakdown itemizes a post's composite score for observability.
type Breakdown struct {
	Relevance  int `json:"relevance"`
	Popularity int `json:"popularity"`
	AgePenalty int `json:"age_penalty"`
}

// Composite combines relevance, popularity, and recency into a post's final
// score: relevance + min(likes*2, 500) - 10*ageWholeDays, minus a flat 500
// when the post carries no tags.
func Composite(relevance, likeCount int, createdAt, now time.Time, tagged bool) (int, Breakdown) {
	popularity := likeCount * LikePoints
	if popularity > PopularityCap {
		popularity = PopularityCap
	}

	agePenalty := wholeDays(createdAt, now) * AgePenaltyStep

	total := relevance + popularity - agePenalty
	if !tagged {
		total -= NoTagsPenalty
	}

	return total, Breakdown{Relevance: relevance, Popularity: popularity, AgePenalty: agePenalty}
}

// wholeDays returns floor(now - createdAt) in whole days. A zero createdAt
// counts as very old and sinks the post; a future createdAt yields a
// negative age.
func wholeDays(createdAt, now time.Time) int {
	return int(math.Floor(now.Sub(createdAt).Hours() / 24))
}
