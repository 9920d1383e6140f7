// Package community holds the social side-stores: per-user like sets,
// recipe comments and chef follows. Each store lives under its own key
// and honors the cascade-cleanup contract when a recipe goes away.
package community

import (
	"context"
	"sort"

	"savora/models"
	"savora/store"
	"savora/utils"
)

const maxCommentLen = 1000

type Repo struct {
	S store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{S: s}
}

// ---------- Likes ----------

func (rp *Repo) Likes(ctx context.Context) models.LikesState {
	return store.ReadJSON(ctx, rp.S, store.KeyLikes, models.LikesState{})
}

func (rp *Repo) setLikes(ctx context.Context, state models.LikesState) {
	if state == nil {
		state = models.LikesState{}
	}
	store.WriteJSON(ctx, rp.S, store.KeyLikes, state)
}

// ToggleLike flips the user's like and reports the new liked state and
// total count.
func (rp *Repo) ToggleLike(ctx context.Context, userID, recipeID string) (bool, int) {
	state := rp.Likes(ctx)
	mine := state[userID]
	if mine == nil {
		mine = make(map[string]bool)
	}
	liked := !mine[recipeID]
	if liked {
		mine[recipeID] = true
	} else {
		delete(mine, recipeID)
	}
	state[userID] = mine
	rp.setLikes(ctx, state)
	return liked, rp.LikeCount(ctx, recipeID)
}

func (rp *Repo) LikeCount(ctx context.Context, recipeID string) int {
	count := 0
	for _, likes := range rp.Likes(ctx) {
		if likes[recipeID] {
			count++
		}
	}
	return count
}

func (rp *Repo) LikedBy(ctx context.Context, userID, recipeID string) bool {
	return rp.Likes(ctx)[userID][recipeID]
}

// ---------- Comments ----------

func (rp *Repo) AllComments(ctx context.Context) []models.Comment {
	return store.ReadJSON(ctx, rp.S, store.KeyComments, []models.Comment{})
}

func (rp *Repo) setComments(ctx context.Context, list []models.Comment) {
	if list == nil {
		list = []models.Comment{}
	}
	store.WriteJSON(ctx, rp.S, store.KeyComments, list)
}

// CommentsForRecipe returns the recipe's comments newest first.
func (rp *Repo) CommentsForRecipe(ctx context.Context, recipeID string) []models.Comment {
	var out []models.Comment
	for _, c := range rp.AllComments(ctx) {
		if c.RecipeID == recipeID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return commentStamp(out[i]) > commentStamp(out[j])
	})
	if out == nil {
		out = []models.Comment{}
	}
	return out
}

func commentStamp(c models.Comment) string {
	if c.UpdatedAt != "" {
		return c.UpdatedAt
	}
	return c.CreatedAt
}

func (rp *Repo) AddComment(ctx context.Context, recipeID, authorID, authorName, text string) []models.Comment {
	now := utils.NowISO()
	all := append(rp.AllComments(ctx), models.Comment{
		ID:         utils.GetUUID(),
		RecipeID:   recipeID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Comment:    truncate(text),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	rp.setComments(ctx, all)
	return rp.CommentsForRecipe(ctx, recipeID)
}

// EditComment updates a comment only when authorID matches the stored
// author; anyone else's edit is silently ignored.
func (rp *Repo) EditComment(ctx context.Context, commentID, authorID, text string) []models.Comment {
	all := rp.AllComments(ctx)
	for i := range all {
		if all[i].ID != commentID {
			continue
		}
		if all[i].AuthorID != authorID {
			return rp.CommentsForRecipe(ctx, all[i].RecipeID)
		}
		all[i].Comment = truncate(text)
		all[i].UpdatedAt = utils.NowISO()
		rp.setComments(ctx, all)
		return rp.CommentsForRecipe(ctx, all[i].RecipeID)
	}
	return []models.Comment{}
}

func (rp *Repo) DeleteComment(ctx context.Context, commentID, authorID string) []models.Comment {
	all := rp.AllComments(ctx)
	for i, c := range all {
		if c.ID != commentID {
			continue
		}
		if c.AuthorID != authorID {
			return rp.CommentsForRecipe(ctx, c.RecipeID)
		}
		next := append(all[:i:i], all[i+1:]...)
		rp.setComments(ctx, next)
		return rp.CommentsForRecipe(ctx, c.RecipeID)
	}
	return []models.Comment{}
}

// ---------- Follows ----------

func (rp *Repo) Follows(ctx context.Context) models.FollowsState {
	return store.ReadJSON(ctx, rp.S, store.KeyFollows, models.FollowsState{})
}

func (rp *Repo) setFollows(ctx context.Context, state models.FollowsState) {
	if state == nil {
		state = models.FollowsState{}
	}
	store.WriteJSON(ctx, rp.S, store.KeyFollows, state)
}

func (rp *Repo) ToggleFollow(ctx context.Context, userID, chefID string) (bool, int) {
	state := rp.Follows(ctx)
	mine := state[userID]
	if mine == nil {
		mine = make(map[string]bool)
	}
	following := !mine[chefID]
	if following {
		mine[chefID] = true
	} else {
		delete(mine, chefID)
	}
	state[userID] = mine
	rp.setFollows(ctx, state)
	return following, rp.FollowerCount(ctx, chefID)
}

func (rp *Repo) FollowerCount(ctx context.Context, chefID string) int {
	count := 0
	for _, follows := range rp.Follows(ctx) {
		if follows[chefID] {
			count++
		}
	}
	return count
}

// ---------- Cascade cleanup ----------

// LikePurger and CommentPurger expose likes and comments as separate
// cleanup collaborators so moderation can list each dependent store
// explicitly.
type LikePurger struct{ Repo *Repo }

func (p LikePurger) PurgeRecipe(ctx context.Context, recipeID string) {
	state := p.Repo.Likes(ctx)
	for userID, likes := range state {
		if likes[recipeID] {
			delete(likes, recipeID)
			state[userID] = likes
		}
	}
	p.Repo.setLikes(ctx, state)
}

type CommentPurger struct{ Repo *Repo }

func (p CommentPurger) PurgeRecipe(ctx context.Context, recipeID string) {
	all := p.Repo.AllComments(ctx)
	next := all[:0]
	for _, c := range all {
		if c.RecipeID != recipeID {
			next = append(next, c)
		}
	}
	p.Repo.setComments(ctx, next)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > maxCommentLen {
		return string(runes[:maxCommentLen])
	}
	return s
}
