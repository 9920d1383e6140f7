package models

type Review struct {
	ID         string `json:"id"`
	RecipeID   string `json:"recipeId"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}
