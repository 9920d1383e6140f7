package community

import (
	"context"
	"testing"

	"savora/models"
	"savora/store"
)

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	liked, count := repo.ToggleLike(ctx, "u1", "r1")
	if !liked || count != 1 {
		t.Fatalf("first toggle = %v %d", liked, count)
	}
	repo.ToggleLike(ctx, "u2", "r1")
	if repo.LikeCount(ctx, "r1") != 2 {
		t.Fatalf("count = %d, want 2", repo.LikeCount(ctx, "r1"))
	}

	liked, count = repo.ToggleLike(ctx, "u1", "r1")
	if liked || count != 1 {
		t.Fatalf("second toggle = %v %d, want unliked 1", liked, count)
	}
	if repo.LikedBy(ctx, "u1", "r1") {
		t.Fatal("LikedBy still true after unlike")
	}
	if !repo.LikedBy(ctx, "u2", "r1") {
		t.Fatal("u2's like was lost")
	}
}

func TestCommentsNewestFirst(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := NewRepo(kv)

	// Timestamps pinned by hand; the wall clock only has second
	// resolution and back-to-back adds would tie.
	store.WriteJSON(ctx, kv, store.KeyComments, []models.Comment{
		{ID: "c1", RecipeID: "r1", AuthorID: "u1", Comment: "old", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-01-01T00:00:00Z"},
		{ID: "c2", RecipeID: "r1", AuthorID: "u2", Comment: "new", CreatedAt: "2026-02-01T00:00:00Z", UpdatedAt: "2026-02-01T00:00:00Z"},
		{ID: "c3", RecipeID: "r2", AuthorID: "u1", Comment: "elsewhere", CreatedAt: "2026-03-01T00:00:00Z"},
	})

	got := repo.CommentsForRecipe(ctx, "r1")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Comment != "new" || got[1].Comment != "old" {
		t.Fatalf("order = [%q %q], want newest first", got[0].Comment, got[1].Comment)
	}

	// An edit refreshes updatedAt and resorts the thread.
	edited := repo.EditComment(ctx, "c1", "u1", "bumped")
	if edited[0].Comment != "bumped" {
		t.Fatalf("edited comment should sort first, got %q", edited[0].Comment)
	}
}

func TestEditCommentAuthorOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	list := repo.AddComment(ctx, "r1", "u1", "Ana", "mine")
	id := list[0].ID

	got := repo.EditComment(ctx, id, "u2", "hijacked")
	if got[0].Comment != "mine" {
		t.Fatalf("foreign edit landed: %q", got[0].Comment)
	}
	got = repo.EditComment(ctx, id, "u1", "updated")
	if got[0].Comment != "updated" {
		t.Fatalf("own edit lost: %q", got[0].Comment)
	}
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	list := repo.AddComment(ctx, "r1", "u1", "Ana", "mine")
	id := list[0].ID

	if got := repo.DeleteComment(ctx, id, "u2"); len(got) != 1 {
		t.Fatal("foreign delete removed the comment")
	}
	if got := repo.DeleteComment(ctx, id, "u1"); len(got) != 0 {
		t.Fatal("own delete did not remove the comment")
	}
}

func TestToggleFollow(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	following, count := repo.ToggleFollow(ctx, "u1", "chef1")
	if !following || count != 1 {
		t.Fatalf("follow = %v %d", following, count)
	}
	repo.ToggleFollow(ctx, "u2", "chef1")
	if repo.FollowerCount(ctx, "chef1") != 2 {
		t.Fatal("follower count wrong")
	}
	following, _ = repo.ToggleFollow(ctx, "u1", "chef1")
	if following {
		t.Fatal("second toggle should unfollow")
	}
}

func TestPurgersScopeToRecipe(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(store.NewMemory())

	repo.ToggleLike(ctx, "u1", "r1")
	repo.ToggleLike(ctx, "u1", "r2")
	repo.AddComment(ctx, "r1", "u1", "Ana", "a")
	repo.AddComment(ctx, "r2", "u1", "Ana", "b")

	LikePurger{Repo: repo}.PurgeRecipe(ctx, "r1")
	CommentPurger{Repo: repo}.PurgeRecipe(ctx, "r1")

	if repo.LikeCount(ctx, "r1") != 0 || len(repo.CommentsForRecipe(ctx, "r1")) != 0 {
		t.Fatal("purge missed r1 data")
	}
	if repo.LikeCount(ctx, "r2") != 1 || len(repo.CommentsForRecipe(ctx, "r2")) != 1 {
		t.Fatal("purge crossed into r2 data")
	}
}
