package recipes

import (
	"context"

	"savora/models"
	"savora/store"
)

// Merge reconciles the read-only base set with the local override set.
// Matching ids are replaced wholesale by the override (never field
// merged); override-only entries append in their own order after the
// base ordering.
func Merge(base, overrides []models.Recipe) []models.Recipe {
	order := make([]string, 0, len(base)+len(overrides))
	byID := make(map[string]models.Recipe, len(base)+len(overrides))

	for _, r := range base {
		if _, seen := byID[r.ID]; !seen {
			order = append(order, r.ID)
		}
		byID[r.ID] = r
	}
	for _, r := range overrides {
		if _, seen := byID[r.ID]; !seen {
			order = append(order, r.ID)
		}
		byID[r.ID] = r
	}

	out := make([]models.Recipe, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// Repo owns the locally persisted override set, the authoritative
// record of every user and admin mutation.
type Repo struct {
	S store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{S: s}
}

// Local returns the override list, empty on any storage trouble.
func (rp *Repo) Local(ctx context.Context) []models.Recipe {
	return store.ReadJSON(ctx, rp.S, store.KeyRecipes, []models.Recipe{})
}

func (rp *Repo) SetLocal(ctx context.Context, list []models.Recipe) {
	if list == nil {
		list = []models.Recipe{}
	}
	store.WriteJSON(ctx, rp.S, store.KeyRecipes, list)
}

// Upsert replaces a matching id in the override store or appends, then
// persists the whole list.
func (rp *Repo) Upsert(ctx context.Context, rec models.Recipe) []models.Recipe {
	list := rp.Local(ctx)
	replaced := false
	for i := range list {
		if list[i].ID == rec.ID {
			list[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, rec)
	}
	rp.SetLocal(ctx, list)
	return list
}

// Delete removes id from the override store. Dependent-store cleanup is
// the caller's contract, not the merge engine's.
func (rp *Repo) Delete(ctx context.Context, id string) []models.Recipe {
	list := rp.Local(ctx)
	next := list[:0]
	for _, r := range list {
		if r.ID != id {
			next = append(next, r)
		}
	}
	rp.SetLocal(ctx, next)
	return next
}

// SeedApprovals guards against an unusable all-pending first load: when
// nothing in the merged set is approved, the first two records (stable
// order) are promoted and the whole set persisted so a refresh keeps
// them approved. Returns the (possibly updated) set.
func (rp *Repo) SeedApprovals(ctx context.Context, merged []models.Recipe) []models.Recipe {
	if len(merged) == 0 {
		return merged
	}
	for _, r := range merged {
		if r.Status == models.StatusApproved {
			return merged
		}
	}
	n := 2
	if len(merged) < n {
		n = len(merged)
	}
	for i := 0; i < n; i++ {
		merged[i].Status = models.StatusApproved
	}
	rp.SetLocal(ctx, merged)
	return merged
}
