package favorites

import (
	"context"
	"testing"

	"savora/store"
)

func TestToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	got := repo.Toggle(ctx, "r1")
	if len(got) != 1 || got[0] != "r1" {
		t.Fatalf("after add: %v", got)
	}
	if !repo.Contains(ctx, "r1") {
		t.Fatal("Contains missed the new favorite")
	}

	got = repo.Toggle(ctx, "r1")
	if len(got) != 0 {
		t.Fatalf("after remove: %v", got)
	}
	if repo.Contains(ctx, "r1") {
		t.Fatal("Contains found a removed favorite")
	}
}

func TestToggleKeepsOrderAndDedupes(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	repo.Toggle(ctx, "a")
	repo.Toggle(ctx, "b")
	repo.Toggle(ctx, "c")
	repo.Toggle(ctx, "b") // remove the middle one

	got := repo.IDs(ctx)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("ids = %v, want [a c]", got)
	}
}

func TestPurgeRecipe(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	repo.Toggle(ctx, "a")
	repo.Toggle(ctx, "b")
	repo.PurgeRecipe(ctx, "a")

	got := repo.IDs(ctx)
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("ids = %v, want [b]", got)
	}
	// Purging an unknown id is harmless.
	repo.PurgeRecipe(ctx, "zzz")
	if len(repo.IDs(ctx)) != 1 {
		t.Fatal("unknown purge changed the list")
	}
}
