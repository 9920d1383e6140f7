package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"savora/models"
)

// RatingSource is the review store's contract: rating fields on a
// recipe are computed, never owned, and get refreshed on every load.
type RatingSource interface {
	Summary(ctx context.Context, recipeID string) models.RatingSummary
}

// Loader assembles the merged recipe set: remote (or mock) base data,
// normalized, overridden by local edits, approval-seeded, with rating
// fields refreshed from the review store.
type Loader struct {
	Repo    *Repo
	Ratings RatingSource
	APIBase string
	Client  *http.Client
}

func NewLoader(repo *Repo, ratings RatingSource, apiBase string) *Loader {
	return &Loader{
		Repo:    repo,
		Ratings: ratings,
		APIBase: strings.TrimRight(apiBase, "/"),
		Client:  &http.Client{Timeout: 7 * time.Second},
	}
}

// Load returns the full merged set (all statuses) plus an advisory flag
// set when the configured remote source failed and offline data was
// substituted. The advisory is never fatal.
func (l *Loader) Load(ctx context.Context) ([]models.Recipe, bool) {
	offline := false
	raw := MockRecipes()
	if l.APIBase != "" {
		fetched, err := l.fetchRemote(ctx)
		if err != nil {
			log.Printf("recipes: remote fetch failed, using offline data: %v", err)
			offline = true
		} else {
			raw = fetched
		}
	}

	base := make([]models.Recipe, 0, len(raw))
	for _, rr := range raw {
		base = append(base, Normalize(rr, MockContext))
	}

	overrides := l.Repo.Local(ctx)
	for i := range overrides {
		overrides[i] = Canonicalize(overrides[i], MockContext)
	}

	merged := Merge(base, overrides)
	merged = l.Repo.SeedApprovals(ctx, merged)

	if l.Ratings != nil {
		for i := range merged {
			sum := l.Ratings.Summary(ctx, merged[i].ID)
			merged[i].AverageRating = sum.AverageRating
			merged[i].ReviewCount = sum.ReviewCount
		}
	}
	return merged, offline
}

func (l *Loader) fetchRemote(ctx context.Context) ([]RawRecipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.APIBase+"/recipes", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out []RawRecipe
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
