// Package search narrows the merged recipe set through an ordered AND
// chain of independent predicates. Every stage reads the precomputed
// lowercase caches when present and falls back to live lowercasing, so
// a record that skipped normalization still filters without panicking.
package search

import (
	"strings"

	"savora/models"
)

// Missing cooking times compare as 30 minutes in the cook-time bucket
// and quick-snack stages: an unknown time passes "<30" but fails "<10"
// and "60+".
const defaultCookingTime = 30

const highProteinGrams = 20

// Apply runs the predicate chain over recipes. favoriteIDs is only
// consulted when state.OnlyFavorites is set.
func Apply(list []models.Recipe, state models.FilterState, favoriteIDs []string) []models.Recipe {
	out := make([]models.Recipe, 0, len(list))

	favs := make(map[string]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favs[id] = true
	}

	query := strings.ToLower(strings.TrimSpace(state.Query))
	diets := make([]string, 0, len(state.DietTypes))
	for _, d := range state.DietTypes {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			diets = append(diets, d)
		}
	}

	for _, r := range list {
		if r.Status != models.StatusApproved {
			continue
		}
		if state.OnlyFavorites && !favs[r.ID] {
			continue
		}
		if !matchSelect(state.Category, categoryText(r)) {
			continue
		}
		if !matchSelect(state.Difficulty, difficultyText(r)) {
			continue
		}
		if !matchCookTime(state.CookTime, r) {
			continue
		}
		if state.QuickSnack && !isQuickSnack(r) {
			continue
		}
		if !matchCalories(state.CalorieBucket, r) {
			continue
		}
		if state.HighProtein && (r.Protein == nil || *r.Protein < highProteinGrams) {
			continue
		}
		if len(diets) > 0 && !dietIntersects(r, diets) {
			continue
		}
		if query != "" && !textMatches(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchSelect(selected, cached string) bool {
	if selected == "" || strings.EqualFold(selected, "All") {
		return true
	}
	return strings.ToLower(selected) == cached
}

func effectiveCookingTime(r models.Recipe) int {
	if r.CookingTime == nil {
		return defaultCookingTime
	}
	return *r.CookingTime
}

func matchCookTime(bucket string, r models.Recipe) bool {
	if bucket == "" || strings.EqualFold(bucket, "All") {
		return true
	}
	ct := effectiveCookingTime(r)
	switch bucket {
	case models.CookTimeUnder10:
		return ct < 10
	case models.CookTimeUnder30:
		return ct < 30
	case models.CookTimeOver60:
		return ct >= 60
	default:
		return true
	}
}

func isQuickSnack(r models.Recipe) bool {
	if effectiveCookingTime(r) <= 15 {
		return true
	}
	return strings.Contains(tagsText(r), "snack") || strings.Contains(titleText(r), "snack")
}

func matchCalories(bucket string, r models.Recipe) bool {
	if bucket == "" || strings.EqualFold(bucket, "All") {
		return true
	}
	// Missing data never satisfies a positive filter.
	if r.Calories == nil {
		return false
	}
	c := *r.Calories
	switch strings.ToLower(bucket) {
	case models.CaloriesLow:
		return c < 300
	case models.CaloriesModerate:
		return c >= 300 && c <= 600
	case models.CaloriesHigh:
		return c > 600
	default:
		return true
	}
}

func dietIntersects(r models.Recipe, selected []string) bool {
	for _, tag := range r.DietTags {
		tag = strings.ToLower(tag)
		for _, want := range selected {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func textMatches(r models.Recipe, query string) bool {
	return strings.Contains(titleText(r), query) ||
		strings.Contains(ingredientsText(r), query) ||
		strings.Contains(tagsText(r), query) ||
		strings.Contains(descText(r), query)
}

// Cache accessors with live-lowercase fallback.

func titleText(r models.Recipe) string {
	if r.TitleText != "" || r.Title == "" {
		return r.TitleText
	}
	return strings.ToLower(r.Title)
}

func descText(r models.Recipe) string {
	if r.DescText != "" || r.Description == "" {
		return r.DescText
	}
	return strings.ToLower(r.Description)
}

func tagsText(r models.Recipe) string {
	if r.TagsText != "" || len(r.Tags) == 0 {
		return r.TagsText
	}
	return strings.ToLower(strings.Join(r.Tags, " "))
}

func ingredientsText(r models.Recipe) string {
	if r.IngredientsText != "" || len(r.Ingredients) == 0 {
		return r.IngredientsText
	}
	return strings.ToLower(strings.Join(r.Ingredients, " "))
}

func categoryText(r models.Recipe) string {
	if r.CategoryText != "" || r.Category == "" {
		return r.CategoryText
	}
	return strings.ToLower(r.Category)
}

func difficultyText(r models.Recipe) string {
	if r.DifficultyText != "" {
		return r.DifficultyText
	}
	if r.Difficulty == "" {
		return "medium"
	}
	return strings.ToLower(r.Difficulty)
}
