// Package scoring derives numeric scores and tag sets from a recipe's
// textual content. All functions are deterministic and perform no I/O.
package scoring

import (
	"strings"
	"time"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
)

var (
	healthyIngredientKeywords   = []string{"vegetable", "fruit", "whole grain", "lean", "low-fat", "organic"}
	unhealthyIngredientKeywords = []string{"sugar", "fried", "processed", "refined", "artificial"}

	healthScoreHealthy   = []string{"vegetable", "fruit", "whole grain", "lean", "organic", "fresh"}
	healthScoreUnhealthy = []string{"sugar", "fried", "processed", "artificial", "trans fat"}
)

// tagTriggers is ordered so generated tag sets are stable within a call.
var tagTriggers = []struct {
	tag      string
	triggers []string
}{
	{"vegetarian", []string{"vegetarian", "veggie", "plant-based"}},
	{"vegan", []string{"vegan"}},
	{"gluten-free", []string{"gluten-free", "gluten free"}},
	{"healthy", []string{"healthy", "nutritious", "wholesome"}},
	{"quick", []string{"quick", "fast", "15 min", "20 min"}},
	{"low-carb", []string{"low-carb", "low carb", "keto"}},
	{"protein", []string{"protein", "high-protein"}},
	{"breakfast", []string{"breakfast", "morning"}},
	{"lunch", []string{"lunch", "midday"}},
	{"dinner", []string{"dinner", "evening"}},
	{"dessert", []string{"dessert", "sweet"}},
}

func clamp(score, min, max int) int {
	if score < min {
		return min
	}
	if score > max {
		return max
	}
	return score
}

// NutritionScore scores a recipe's ingredient list in [0,100]. Each keyword
// counts once regardless of how often it appears.
func NutritionScore(ingredients []string) (int, error) {
	if ingredients == nil {
		return 0, apperr.New(apperr.InvalidArgument, "ingredients are required")
	}

	score := 50
	text := strings.ToLower(strings.Join(ingredients, " "))

	for _, keyword := range healthyIngredientKeywords {
		if strings.Contains(text, keyword) {
			score += 5
		}
	}
	for _, keyword := range unhealthyIngredientKeywords {
		if strings.Contains(text, keyword) {
			score -= 5
		}
	}

	return clamp(score, 0, 100), nil
}

// HealthScore scores a recipe's nutritional profile in [0,100]. Zero
// calories or protein means the value is unknown and no band applies.
func HealthScore(recipe *models.Recipe) int {
	score := 50

	if recipe.Calories > 0 {
		switch {
		case recipe.Calories < 200:
			score += 20
		case recipe.Calories < 400:
			score += 10
		case recipe.Calories > 800:
			score -= 20
		}
	}

	if recipe.Protein > 20 {
		score += 15
	} else if recipe.Protein > 10 {
		score += 10
	}

	text := strings.ToLower(strings.Join(recipe.Ingredients, " "))
	for _, keyword := range healthScoreHealthy {
		if strings.Contains(text, keyword) {
			score += 5
		}
	}
	for _, keyword := range healthScoreUnhealthy {
		if strings.Contains(text, keyword) {
			score -= 10
		}
	}

	return clamp(score, 0, 100)
}

// GenerateTags derives a deduplicated tag set from the recipe's name,
// ingredients and category. Matching is literal substring matching.
func GenerateTags(recipe *models.Recipe) []string {
	content := strings.ToLower(recipe.Name + " " + strings.Join(recipe.Ingredients, " ") + " " + recipe.Category)

	tags := make([]string, 0, len(tagTriggers)+1)
	seen := make(map[string]bool)

	for _, entry := range tagTriggers {
		for _, trigger := range entry.triggers {
			if strings.Contains(content, trigger) {
				if !seen[entry.tag] {
					seen[entry.tag] = true
					tags = append(tags, entry.tag)
				}
				break
			}
		}
	}

	if recipe.Category != "" {
		category := strings.ToLower(recipe.Category)
		if !seen[category] {
			tags = append(tags, category)
		}
	}

	return tags
}

// PopularityScore combines views, likes, rating and recency into [0,100].
func PopularityScore(recipe *models.Recipe, now time.Time) float64 {
	score := 0.0

	views := recipe.Views
	if views > 100 {
		views = 100
	}
	score += float64(views) * 0.3

	likes := recipe.Likes
	if likes > 50 {
		likes = 50
	}
	score += float64(likes) * 0.4

	score += recipe.Rating * 6

	if !recipe.CreatedAt.IsZero() && now.Sub(recipe.CreatedAt) < 7*24*time.Hour {
		score += 10
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
