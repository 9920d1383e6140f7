package analytics

import (
	"testing"

	"savora/models"
)

func intp(n int) *int { return &n }

func TestComputeCountsAndAverages(t *testing.T) {
	list := []models.Recipe{
		{ID: "1", Category: "Veg", Difficulty: "Easy", Status: models.StatusApproved, CookingTime: intp(20), CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: "2", Category: "desserts", Difficulty: "", Status: models.StatusApproved, CookingTime: intp(40), CreatedAt: "2026-03-01T00:00:00Z"},
		{ID: "3", Category: "Non-Veg", Difficulty: "Hard", Status: models.StatusPending, CreatedAt: "2026-02-01T00:00:00Z"},
	}
	reviews := []models.Review{
		{RecipeID: "1", AuthorID: "a", Rating: 4},
		{RecipeID: "1", AuthorID: "b", Rating: 5},
		{RecipeID: "3", AuthorID: "a", Rating: 1}, // pending recipe
	}

	m := Compute(list, []string{"1"}, reviews)

	if m.Total != 3 || m.Approved != 2 || m.Pending != 1 {
		t.Fatalf("counts total=%d approved=%d pending=%d", m.Total, m.Approved, m.Pending)
	}
	// Category match is case-insensitive against the canonical names.
	if m.CategoryCounts["Desserts"] != 1 || m.CategoryCounts["Veg"] != 1 {
		t.Fatalf("categoryCounts = %v", m.CategoryCounts)
	}
	// Empty difficulty counts as Medium.
	if m.DifficultyCounts["Medium"] != 1 || m.DifficultyCounts["Easy"] != 1 || m.DifficultyCounts["Hard"] != 1 {
		t.Fatalf("difficultyCounts = %v", m.DifficultyCounts)
	}
	// (20 + 40) / 2 known times; the nil time is excluded.
	if m.AverageCookingTime != 30 {
		t.Fatalf("averageCookingTime = %d, want 30", m.AverageCookingTime)
	}
	if m.FavoritesTotal != 1 || len(m.TopFavorited) != 1 || m.TopFavorited[0].ID != "1" {
		t.Fatalf("favorites: total=%d top=%v", m.FavoritesTotal, m.TopFavorited)
	}
	// Newest first.
	if m.RecentlyAdded[0].ID != "2" || m.RecentlyAdded[1].ID != "3" || m.RecentlyAdded[2].ID != "1" {
		t.Fatalf("recentlyAdded order: %s %s %s", m.RecentlyAdded[0].ID, m.RecentlyAdded[1].ID, m.RecentlyAdded[2].ID)
	}
}

func TestComputeRatingMath(t *testing.T) {
	list := []models.Recipe{
		{ID: "1", Status: models.StatusApproved},
		{ID: "2", Status: models.StatusApproved},
		{ID: "3", Status: models.StatusApproved}, // no reviews
		{ID: "4", Status: models.StatusPending},
	}
	reviews := []models.Review{
		{RecipeID: "1", Rating: 4},
		{RecipeID: "1", Rating: 5}, // recipe 1 -> 4.5
		{RecipeID: "2", Rating: 2}, // recipe 2 -> 2.0
		{RecipeID: "4", Rating: 1}, // pending, distribution only
	}

	m := Compute(list, nil, reviews)

	// Distribution counts every individual review regardless of status.
	if m.RatingDistribution[4] != 1 || m.RatingDistribution[5] != 1 ||
		m.RatingDistribution[2] != 1 || m.RatingDistribution[1] != 1 {
		t.Fatalf("distribution = %v", m.RatingDistribution)
	}
	// Overall average spans only approved recipes with reviews:
	// (4.5 + 2.0) / 2 = 3.25 -> 3.3. Review-less recipe 3 is excluded.
	if m.AverageRating != 3.3 {
		t.Fatalf("averageRating = %v, want 3.3", m.AverageRating)
	}
}

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil, nil, nil)
	if m.Total != 0 || m.AverageRating != 0 || m.AverageCookingTime != 0 {
		t.Fatalf("empty metrics = %+v", m)
	}
	if m.TopFavorited == nil || m.RecentlyAdded == nil {
		t.Fatal("slice fields must serialize as [], not null")
	}
}

func TestComputeTopFavoritedCap(t *testing.T) {
	var list []models.Recipe
	var favs []string
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		list = append(list, models.Recipe{ID: id, Status: models.StatusApproved})
		favs = append(favs, id)
	}
	m := Compute(list, favs, nil)
	if m.FavoritesTotal != 7 {
		t.Fatalf("favoritesTotal = %d", m.FavoritesTotal)
	}
	if len(m.TopFavorited) != 5 {
		t.Fatalf("topFavorited len = %d, want 5", len(m.TopFavorited))
	}
	if len(m.RecentlyAdded) != 5 {
		t.Fatalf("recentlyAdded len = %d, want 5", len(m.RecentlyAdded))
	}
}
