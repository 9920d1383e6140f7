package recipes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"savora/models"
	"savora/store"
)

type fixedRatings struct {
	byID map[string]models.RatingSummary
}

func (f fixedRatings) Summary(_ context.Context, id string) models.RatingSummary {
	return f.byID[id]
}

func TestLoadMockFallbackOffline(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	l := NewLoader(repo, nil, srv.URL)
	got, offline := l.Load(ctx)
	if !offline {
		t.Fatal("offline flag should be set when the remote fails")
	}
	if len(got) != len(MockRecipes()) {
		t.Fatalf("fallback set has %d records, want %d", len(got), len(MockRecipes()))
	}
}

func TestLoadRemoteSource(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":10,"title":"Remote Dish","tags":["chicken"]}]`))
	}))
	defer srv.Close()

	l := NewLoader(repo, nil, srv.URL)
	got, offline := l.Load(ctx)
	if offline {
		t.Fatal("offline flag set on a healthy remote")
	}
	if len(got) != 1 || got[0].ID != "10" || got[0].Category != "Non-Veg" {
		t.Fatalf("remote load = %+v", got)
	}
}

func TestLoadNoAPIBaseIsNotOffline(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	l := NewLoader(repo, nil, "")
	got, offline := l.Load(ctx)
	if offline {
		t.Fatal("mock-only mode is not an offline condition")
	}
	if len(got) == 0 {
		t.Fatal("mock data missing")
	}
}

func TestLoadAppliesOverridesAndRatings(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	// Override the first mock record and add a local-only one.
	firstID := Normalize(MockRecipes()[0], MockContext).ID
	repo.SetLocal(ctx, []models.Recipe{
		{ID: firstID, Title: "Edited Locally", Status: models.StatusApproved},
		{ID: "local-1", Title: "Mine", Status: models.StatusPending},
	})

	ratings := fixedRatings{byID: map[string]models.RatingSummary{
		firstID: {AverageRating: 4.5, ReviewCount: 2},
	}}

	l := NewLoader(repo, ratings, "")
	got, _ := l.Load(ctx)

	if got[0].ID != firstID || got[0].Title != "Edited Locally" {
		t.Fatalf("override lost: %+v", got[0])
	}
	if got[0].AverageRating != 4.5 || got[0].ReviewCount != 2 {
		t.Fatalf("rating fields not refreshed: %+v", got[0])
	}
	last := got[len(got)-1]
	if last.ID != "local-1" {
		t.Fatalf("local-only record should append last, got %q", last.ID)
	}
}
