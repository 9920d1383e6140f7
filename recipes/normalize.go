package recipes

import (
	"strings"

	"savora/models"
	"savora/utils"
)

// NormalizeContext carries the moderation defaults applied when the raw
// record does not set them itself: mock/base data loads as approved,
// user submissions as pending.
type NormalizeContext struct {
	DefaultStatus string
	Source        string
	SubmittedBy   string
}

var MockContext = NormalizeContext{
	DefaultStatus: models.StatusApproved,
	Source:        models.SourceMock,
	SubmittedBy:   "mock",
}

var UserContext = NormalizeContext{
	DefaultStatus: models.StatusPending,
	Source:        models.SourceUser,
	SubmittedBy:   "user",
}

// Category keyword sets, scanned in this order. Dessert and drink words
// outrank protein words, which outrank vegetarian words.
var (
	dessertTags = []string{"dessert", "desserts", "sweet", "parfait", "cake"}
	drinkTags   = []string{"drink", "drinks", "juice", "beverage", "smoothie"}
	nonVegTags  = []string{"chicken", "beef", "pork", "seafood", "shrimp", "fish"}
	vegTags     = []string{"veg", "vegetarian", "vegan", "tofu", "salad"}
)

// resolveCategory keeps a usable explicit category, otherwise derives
// one from the tags, otherwise defaults to Veg.
func resolveCategory(category string, tags []string) string {
	if strings.TrimSpace(category) != "" {
		return category
	}
	lowered := make([]string, len(tags))
	for i, t := range tags {
		lowered[i] = strings.ToLower(t)
	}
	switch {
	case anyTagIn(lowered, dessertTags):
		return "Desserts"
	case anyTagIn(lowered, drinkTags):
		return "Drinks"
	case anyTagIn(lowered, nonVegTags):
		return "Non-Veg"
	case anyTagIn(lowered, vegTags):
		return "Veg"
	default:
		return "Veg"
	}
}

func anyTagIn(tags, set []string) bool {
	for _, t := range tags {
		if utils.Contains(set, t) {
			return true
		}
	}
	return false
}

// Normalize turns a raw wire record into a canonical Recipe. It never
// fails; malformed fields fall back to documented defaults. It is pure
// over its inputs except for timestamping records that carry none.
func Normalize(raw RawRecipe, nctx NormalizeContext) models.Recipe {
	r := models.Recipe{
		ID:          coerceID(raw.ID),
		Title:       raw.Title,
		Description: raw.Description,
		Image:       raw.Image,
		Ingredients: coerceIngredients(raw.Ingredients),
		Steps:       coerceSteps(raw.Steps),
		Tags:        stringifyAll(raw.Tags),
		CookingTime: coerceMinutes(raw.CookingTime),
		Calories:    coerceNumber(raw.Calories),
		Protein:     coerceNumber(raw.Protein),
		Carbs:       coerceNumber(raw.Carbs),
		Fat:         coerceNumber(raw.Fat),
		Status:      raw.Status,
		Source:      raw.Source,
		SubmittedBy: raw.SubmittedBy,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
	r.Category = resolveCategory(raw.Category, r.Tags)
	if !models.ValidCategory(r.Category) {
		r.Category = "Veg"
	}
	if !models.ValidDifficulty(raw.Difficulty) {
		r.Difficulty = "Medium"
	} else {
		r.Difficulty = raw.Difficulty
	}
	for _, t := range stringifyAll(raw.DietTags) {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			r.DietTags = append(r.DietTags, t)
		}
	}
	applyModerationDefaults(&r, nctx)
	refreshCaches(&r)
	return r
}

// Canonicalize re-applies the normalization rules to an already typed
// record, e.g. one read back from the override store. Stored values are
// kept wherever valid; only out-of-enum or negative values are
// corrected, and the search caches are always rebuilt.
func Canonicalize(r models.Recipe, nctx NormalizeContext) models.Recipe {
	r.Category = resolveCategory(r.Category, r.Tags)
	if !models.ValidCategory(r.Category) {
		r.Category = "Veg"
	}
	if !models.ValidDifficulty(r.Difficulty) {
		r.Difficulty = "Medium"
	}
	if r.CookingTime != nil && *r.CookingTime < 0 {
		r.CookingTime = nil
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	for i, t := range r.DietTags {
		r.DietTags[i] = strings.ToLower(strings.TrimSpace(t))
	}
	applyModerationDefaults(&r, nctx)
	refreshCaches(&r)
	return r
}

func applyModerationDefaults(r *models.Recipe, nctx NormalizeContext) {
	if r.Status != models.StatusPending && r.Status != models.StatusApproved {
		r.Status = nctx.DefaultStatus
	}
	if r.Source == "" {
		r.Source = nctx.Source
	}
	if r.SubmittedBy == "" {
		r.SubmittedBy = nctx.SubmittedBy
	}
	now := utils.NowISO()
	if r.CreatedAt == "" {
		r.CreatedAt = now
	}
	if r.UpdatedAt == "" {
		r.UpdatedAt = now
	}
}

// refreshCaches rebuilds every lowercase search field. Caches are never
// trusted across content edits; this runs on every normalization pass.
func refreshCaches(r *models.Recipe) {
	r.TitleText = strings.ToLower(r.Title)
	r.DescText = strings.ToLower(r.Description)
	r.TagsText = strings.ToLower(strings.Join(r.Tags, " "))
	r.CategoryText = strings.ToLower(r.Category)
	r.DifficultyText = strings.ToLower(r.Difficulty)
	r.IngredientsText = strings.ToLower(strings.Join(r.Ingredients, " "))
	r.DietTagsText = strings.ToLower(strings.Join(r.DietTags, " "))
}
