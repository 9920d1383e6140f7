package models

type Comment struct {
	ID         string `json:"id"`
	RecipeID   string `json:"recipeId"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// LikesState maps userId -> set of liked recipe ids.
type LikesState map[string]map[string]bool

// FollowsState maps userId -> set of followed chef ids.
type FollowsState map[string]map[string]bool
