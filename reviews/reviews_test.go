package reviews

import (
	"context"
	"strings"
	"testing"

	"savora/store"
)

func TestUpsertOnePerAuthor(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	repo.Upsert(ctx, "r1", "u1", "Ana", 4, "good")
	repo.Upsert(ctx, "r1", "u2", "Ben", 2, "meh")
	got := repo.Upsert(ctx, "r1", "u1", "Ana", 5, "changed my mind")

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, rev := range got {
		if rev.AuthorID == "u1" {
			if rev.Rating != 5 || rev.Comment != "changed my mind" {
				t.Fatalf("rewrite not applied: %+v", rev)
			}
		}
	}
}

func TestUpsertClampsAndTruncates(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	long := strings.Repeat("x", 1500)
	repo.Upsert(ctx, "r1", "u1", "Ana", 9, long)
	repo.Upsert(ctx, "r1", "u2", "Ben", -3, "ok")

	for _, rev := range repo.ForRecipe(ctx, "r1") {
		if rev.Rating < 1 || rev.Rating > 5 {
			t.Fatalf("rating %d escaped the clamp", rev.Rating)
		}
		if len([]rune(rev.Comment)) > 1000 {
			t.Fatalf("comment length %d escaped truncation", len(rev.Comment))
		}
	}
}

func TestSummaryRounding(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	// 4 + 5 + 4 = 13 / 3 = 4.333... -> 4.3
	repo.Upsert(ctx, "r1", "u1", "a", 4, "")
	repo.Upsert(ctx, "r1", "u2", "b", 5, "")
	repo.Upsert(ctx, "r1", "u3", "c", 4, "")

	s := repo.Summary(ctx, "r1")
	if s.AverageRating != 4.3 {
		t.Fatalf("average = %v, want 4.3", s.AverageRating)
	}
	if s.ReviewCount != 3 {
		t.Fatalf("count = %d, want 3", s.ReviewCount)
	}
}

func TestSummaryEmpty(t *testing.T) {
	repo := NewRepo(store.NewMemory())
	s := repo.Summary(context.Background(), "nothing")
	if s.AverageRating != 0 || s.ReviewCount != 0 {
		t.Fatalf("empty summary = %+v", s)
	}
}

func TestDeleteMine(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	repo.Upsert(ctx, "r1", "u1", "a", 4, "")
	repo.Upsert(ctx, "r1", "u2", "b", 5, "")

	got := repo.DeleteMine(ctx, "r1", "u1")
	if len(got) != 1 || got[0].AuthorID != "u2" {
		t.Fatalf("after delete: %+v", got)
	}
	// Deleting again is a no-op.
	if got := repo.DeleteMine(ctx, "r1", "u1"); len(got) != 1 {
		t.Fatalf("repeat delete changed state: %+v", got)
	}
}

func TestPurgeRecipeScoped(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	repo.Upsert(ctx, "r1", "u1", "a", 4, "")
	repo.Upsert(ctx, "r2", "u1", "a", 5, "")

	repo.PurgeRecipe(ctx, "r1")
	if len(repo.ForRecipe(ctx, "r1")) != 0 {
		t.Fatal("purge left reviews behind")
	}
	if len(repo.ForRecipe(ctx, "r2")) != 1 {
		t.Fatal("purge crossed recipe boundaries")
	}
}
