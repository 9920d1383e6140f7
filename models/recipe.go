package models

// Recipe status lifecycle. Rejected records are hard-deleted, so the
// value never appears in a persisted recipe; it exists for transition
// bookkeeping only.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	SourceMock = "mock"
	SourceUser = "user"
)

var Categories = []string{"Veg", "Non-Veg", "Desserts", "Drinks"}
var Difficulties = []string{"Easy", "Medium", "Hard"}

type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`

	// CookingTime is minutes; nil means unknown, 0 means an explicit
	// zero entered by the user.
	CookingTime *int     `json:"cookingTime"`
	Calories    *float64 `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fat         *float64 `json:"fat,omitempty"`
	DietTags    []string `json:"dietTags,omitempty"`

	Status      string `json:"status"`
	Source      string `json:"source"`
	SubmittedBy string `json:"submittedBy"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`

	// Rating fields are owned by the review store and refreshed on load.
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`

	// Lowercased search caches, recomputed on every normalization pass.
	// Never persisted and never part of identity comparisons.
	TitleText       string `json:"-"`
	DescText        string `json:"-"`
	TagsText        string `json:"-"`
	CategoryText    string `json:"-"`
	DifficultyText  string `json:"-"`
	IngredientsText string `json:"-"`
	DietTagsText    string `json:"-"`
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}
