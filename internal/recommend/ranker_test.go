package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyrecipehub/backend/internal/models"
)

func TestRankScoreComposition(t *testing.T) {
	recipe := &models.Recipe{
		Name:     "Green Curry",
		Category: "dinner",
		Tags:     models.JSONBStringArray{"healthy", "quick", "thai"},
		Rating:   4,
		Views:    30,
	}

	ranked := Rank([]*models.Recipe{recipe}, []string{"dinner"}, []string{"healthy", "quick"})
	require.Len(t, ranked, 1)
	// 20 category + 2 tag matches * 10 + 4*5 rating + 30*0.2 views = 66
	assert.InDelta(t, 66.0, ranked[0].Score, 0.0001)
}

func TestRankViewContributionCapped(t *testing.T) {
	recipe := &models.Recipe{Name: "Viral Toast", Views: 100000}
	ranked := Rank([]*models.Recipe{recipe}, nil, nil)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 10.0, ranked[0].Score, 0.0001)
}

func TestRankSortsDescendingWithStableTies(t *testing.T) {
	a := &models.Recipe{Name: "A", Rating: 2} // score 10
	b := &models.Recipe{Name: "B", Rating: 2} // score 10
	c := &models.Recipe{Name: "C", Rating: 4} // score 20

	ranked := Rank([]*models.Recipe{a, b, c}, nil, nil)
	require.Len(t, ranked, 3)
	assert.Equal(t, "C", ranked[0].Recipe.Name)
	assert.Equal(t, "A", ranked[1].Recipe.Name)
	assert.Equal(t, "B", ranked[2].Recipe.Name)
}

func TestRankReturnsAtMostTen(t *testing.T) {
	var candidates []*models.Recipe
	for i := 0; i < 25; i++ {
		candidates = append(candidates, &models.Recipe{
			Name:   fmt.Sprintf("recipe-%d", i),
			Rating: float64(i % 5),
		})
	}

	ranked := Rank(candidates, nil, nil)
	assert.Len(t, ranked, MaxResults)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankFewerCandidatesThanLimit(t *testing.T) {
	candidates := []*models.Recipe{{Name: "only one"}}
	assert.Len(t, Rank(candidates, nil, nil), 1)
}

func TestRankLiteralTagMatching(t *testing.T) {
	recipe := &models.Recipe{Name: "Speedy Stir Fry", Tags: models.JSONBStringArray{"fast"}}
	ranked := Rank([]*models.Recipe{recipe}, nil, []string{"quick"})
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].Score)
}
