package reviews

import (
	"context"
	"math"

	"savora/models"
	"savora/store"
	"savora/utils"
)

const maxCommentLen = 1000

// Repo keeps the full review list under one storage key. A user gets at
// most one review per recipe; writing again replaces it.
type Repo struct {
	S store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{S: s}
}

func (rp *Repo) All(ctx context.Context) []models.Review {
	return store.ReadJSON(ctx, rp.S, store.KeyReviews, []models.Review{})
}

func (rp *Repo) setAll(ctx context.Context, list []models.Review) {
	if list == nil {
		list = []models.Review{}
	}
	store.WriteJSON(ctx, rp.S, store.KeyReviews, list)
}

func (rp *Repo) ForRecipe(ctx context.Context, recipeID string) []models.Review {
	var out []models.Review
	for _, rev := range rp.All(ctx) {
		if rev.RecipeID == recipeID {
			out = append(out, rev)
		}
	}
	if out == nil {
		out = []models.Review{}
	}
	return out
}

// Summary computes the rating fields the recipe records cache. Average
// is rounded to one decimal.
func (rp *Repo) Summary(ctx context.Context, recipeID string) models.RatingSummary {
	list := rp.ForRecipe(ctx, recipeID)
	if len(list) == 0 {
		return models.RatingSummary{}
	}
	total := 0
	for _, rev := range list {
		total += rev.Rating
	}
	avg := float64(total) / float64(len(list))
	return models.RatingSummary{
		AverageRating: math.Round(avg*10) / 10,
		ReviewCount:   len(list),
	}
}

// Upsert writes the author's review for a recipe, replacing any earlier
// one. Rating clamps into 1..5, comments truncate at 1000 runes.
func (rp *Repo) Upsert(ctx context.Context, recipeID, authorID, authorName string, rating int, comment string) []models.Review {
	now := utils.NowISO()
	all := rp.All(ctx)
	for i := range all {
		if all[i].RecipeID == recipeID && all[i].AuthorID == authorID {
			all[i].Rating = clampRating(rating)
			all[i].Comment = truncate(comment)
			all[i].AuthorName = authorName
			all[i].UpdatedAt = now
			rp.setAll(ctx, all)
			return rp.ForRecipe(ctx, recipeID)
		}
	}
	all = append(all, models.Review{
		ID:         utils.GetUUID(),
		RecipeID:   recipeID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Rating:     clampRating(rating),
		Comment:    truncate(comment),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	rp.setAll(ctx, all)
	return rp.ForRecipe(ctx, recipeID)
}

// DeleteMine removes the author's review for a recipe, if any.
func (rp *Repo) DeleteMine(ctx context.Context, recipeID, authorID string) []models.Review {
	all := rp.All(ctx)
	next := all[:0]
	for _, rev := range all {
		if rev.RecipeID == recipeID && rev.AuthorID == authorID {
			continue
		}
		next = append(next, rev)
	}
	rp.setAll(ctx, next)
	return rp.ForRecipe(ctx, recipeID)
}

// PurgeRecipe drops every review for a deleted or rejected recipe.
func (rp *Repo) PurgeRecipe(ctx context.Context, recipeID string) {
	all := rp.All(ctx)
	next := all[:0]
	for _, rev := range all {
		if rev.RecipeID != recipeID {
			next = append(next, rev)
		}
	}
	rp.setAll(ctx, next)
}

func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > maxCommentLen {
		return string(runes[:maxCommentLen])
	}
	return s
}
