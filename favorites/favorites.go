package favorites

import (
	"context"

	"savora/store"
)

// Repo keeps the favorite recipe id list. Persistence de-duplicates;
// order of first insertion is preserved.
type Repo struct {
	S store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{S: s}
}

func (rp *Repo) IDs(ctx context.Context) []string {
	return store.ReadJSON(ctx, rp.S, store.KeyFavorites, []string{})
}

func (rp *Repo) set(ctx context.Context, ids []string) {
	seen := make(map[string]bool, len(ids))
	deduped := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}
	store.WriteJSON(ctx, rp.S, store.KeyFavorites, deduped)
}

func (rp *Repo) Contains(ctx context.Context, id string) bool {
	for _, fid := range rp.IDs(ctx) {
		if fid == id {
			return true
		}
	}
	return false
}

// Toggle flips membership and returns the updated list.
func (rp *Repo) Toggle(ctx context.Context, id string) []string {
	current := rp.IDs(ctx)
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, fid := range current {
		if fid == id {
			removed = true
			continue
		}
		next = append(next, fid)
	}
	if !removed {
		next = append(next, id)
	}
	rp.set(ctx, next)
	return next
}

// PurgeRecipe removes a deleted recipe's id from the favorites list.
func (rp *Repo) PurgeRecipe(ctx context.Context, id string) {
	current := rp.IDs(ctx)
	next := current[:0]
	for _, fid := range current {
		if fid != id {
			next = append(next, fid)
		}
	}
	rp.set(ctx, next)
}
