// Package recommend ranks candidate recipes against a user's category and
// tag history. Candidate retrieval and filtering happen upstream.
package recommend

import (
	"sort"

	"github.com/healthyrecipehub/backend/internal/models"
)

// MaxResults is the maximum number of ranked recipes returned.
const MaxResults = 10

// Scored pairs a candidate recipe with its recommendation score.
type Scored struct {
	Recipe *models.Recipe `json:"recipe"`
	Score  float64        `json:"score"`
}

// Rank scores candidates against the user's history and returns at most
// MaxResults, highest first. Ties keep the original candidate order. Tag
// matching is literal; "quick" and "fast" are distinct tags.
func Rank(candidates []*models.Recipe, userCategories, userTags []string) []Scored {
	categories := make(map[string]bool, len(userCategories))
	for _, c := range userCategories {
		categories[c] = true
	}
	tags := make(map[string]bool, len(userTags))
	for _, t := range userTags {
		tags[t] = true
	}

	scored := make([]Scored, 0, len(candidates))
	for _, recipe := range candidates {
		score := 0.0

		if categories[recipe.Category] {
			score += 20
		}

		for _, tag := range recipe.Tags {
			if tags[tag] {
				score += 10
			}
		}

		score += recipe.Rating * 5

		views := recipe.Views
		if views > 50 {
			views = 50
		}
		score += float64(views) * 0.2

		scored = append(scored, Scored{Recipe: recipe, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > MaxResults {
		scored = scored[:MaxResults]
	}
	return scored
}
