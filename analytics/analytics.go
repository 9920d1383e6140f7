// Package analytics derives the admin dashboard metrics. Everything is
// a pure read-only aggregation over the merged recipe set and the side
// stores; nothing here mutates state.
package analytics

import (
	"math"
	"sort"
	"strings"

	"savora/models"
)

// Compute aggregates dashboard metrics from the full recipe set (all
// statuses), the favorites id list and the raw review list.
func Compute(list []models.Recipe, favoriteIDs []string, reviews []models.Review) models.Metrics {
	m := models.Metrics{
		Total:              len(list),
		CategoryCounts:     make(map[string]int, len(models.Categories)),
		DifficultyCounts:   make(map[string]int, len(models.Difficulties)),
		TopFavorited:       []models.Recipe{},
		RecentlyAdded:      []models.Recipe{},
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	for _, c := range models.Categories {
		m.CategoryCounts[c] = 0
	}
	for _, d := range models.Difficulties {
		m.DifficultyCounts[d] = 0
	}

	favs := make(map[string]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favs[id] = true
	}

	timeSum, timeCount := 0, 0
	for _, r := range list {
		switch r.Status {
		case models.StatusApproved:
			m.Approved++
		case models.StatusPending:
			m.Pending++
		}
		for _, c := range models.Categories {
			if strings.EqualFold(r.Category, c) {
				m.CategoryCounts[c]++
				break
			}
		}
		d := r.Difficulty
		if d == "" {
			d = "Medium"
		}
		if _, ok := m.DifficultyCounts[d]; ok {
			m.DifficultyCounts[d]++
		}
		if r.CookingTime != nil && *r.CookingTime >= 0 {
			timeSum += *r.CookingTime
			timeCount++
		}
		if favs[r.ID] {
			m.FavoritesTotal++
			if len(m.TopFavorited) < 5 {
				m.TopFavorited = append(m.TopFavorited, r)
			}
		}
	}
	if timeCount > 0 {
		m.AverageCookingTime = int(math.Round(float64(timeSum) / float64(timeCount)))
	}

	recent := make([]models.Recipe, len(list))
	copy(recent, list)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	m.RecentlyAdded = recent

	// Distribution counts every individual review; the overall average
	// only spans approved recipes that have at least one review, so
	// review-less recipes never drag it toward zero.
	approvedIDs := make(map[string]bool)
	for _, r := range list {
		if r.Status == models.StatusApproved {
			approvedIDs[r.ID] = true
		}
	}
	perRecipe := make(map[string][]int)
	for _, rev := range reviews {
		if rev.Rating >= 1 && rev.Rating <= 5 {
			m.RatingDistribution[rev.Rating]++
		}
		if approvedIDs[rev.RecipeID] {
			perRecipe[rev.RecipeID] = append(perRecipe[rev.RecipeID], rev.Rating)
		}
	}
	if len(perRecipe) > 0 {
		sum := 0.0
		for _, ratings := range perRecipe {
			total := 0
			for _, r := range ratings {
				total += r
			}
			avg := float64(total) / float64(len(ratings))
			sum += math.Round(avg*10) / 10
		}
		m.AverageRating = math.Round(sum/float64(len(perRecipe))*10) / 10
	}
	return m
}
