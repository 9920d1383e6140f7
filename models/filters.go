package models

// Cook-time buckets accepted by FilterState.CookTime.
const (
	CookTimeUnder10 = "<10"
	CookTimeUnder30 = "<30"
	CookTimeOver60  = "60+"
)

// Calorie buckets accepted by FilterState.CalorieBucket.
const (
	CaloriesLow      = "low"      // < 300
	CaloriesModerate = "moderate" // 300..600
	CaloriesHigh     = "high"     // > 600
)

// FilterState is the full set of feed predicates. Zero values mean
// "inactive"; "All" is accepted as inactive for the select-style fields.
type FilterState struct {
	Query         string   `json:"query"`
	OnlyFavorites bool     `json:"onlyFavorites"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	CookTime      string   `json:"cookTime"`
	QuickSnack    bool     `json:"quickSnack"`
	CalorieBucket string   `json:"calorieBucket"`
	HighProtein   bool     `json:"highProtein"`
	DietTypes     []string `json:"dietTypes"`
}
