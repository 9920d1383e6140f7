package models

// Metrics is the admin dashboard aggregation.
type Metrics struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`

	CategoryCounts   map[string]int `json:"categoryCounts"`
	DifficultyCounts map[string]int `json:"difficultyCounts"`

	AverageCookingTime int `json:"averageCookingTime"`

	FavoritesTotal int      `json:"favoritesTotal"`
	TopFavorited   []Recipe `json:"topFavorited"`
	RecentlyAdded  []Recipe `json:"recentlyAdded"`

	RatingDistribution map[int]int `json:"ratingDistribution"`
	AverageRating      float64     `json:"averageRating"`
}
