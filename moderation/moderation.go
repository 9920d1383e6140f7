// Package moderation owns the recipe status lifecycle: pending records
// await review, approve promotes them into the public feed, and reject
// removes the record outright together with everything that referenced
// it. Reject keeps no tombstone; it is a hard delete, not a stored
// status.
package moderation

import (
	"context"
	"errors"

	"savora/models"
	"savora/recipes"
	"savora/utils"
)

// ErrValidation covers user input rejected before any store mutation.
var ErrValidation = errors.New("validation failed")

// Purger is the cascade-cleanup contract every dependent store
// (favorites, reviews, likes, comments) implements. Purging an unknown
// id is a no-op.
type Purger interface {
	PurgeRecipe(ctx context.Context, recipeID string)
}

// BaseSource resolves records that live in the merged view but not in
// the override store. An edit of a base recipe inherits its status and
// createdAt from here instead of restarting the lifecycle as pending.
type BaseSource interface {
	Load(ctx context.Context) ([]models.Recipe, bool)
}

type Service struct {
	Repo     *recipes.Repo
	Base     BaseSource
	Cleaners []Purger
	// Notify broadcasts an advisory change event; nil disables it.
	Notify func(topic string)
}

func NewService(repo *recipes.Repo, cleaners ...Purger) *Service {
	return &Service{Repo: repo, Cleaners: cleaners}
}

func (s *Service) notify(topic string) {
	if s.Notify != nil {
		s.Notify(topic)
	}
}

// SaveDraft validates and upserts a recipe into the override store.
// New records default to pending from the user path and approved from
// the admin path; edits keep the original createdAt and, unless the
// editor set one, the original status.
func (s *Service) SaveDraft(ctx context.Context, draft models.Recipe, admin bool) (models.Recipe, error) {
	if len([]rune(draft.Title)) == 0 {
		return models.Recipe{}, ErrValidation
	}

	now := utils.NowISO()
	if draft.ID == "" {
		draft.ID = utils.NewRecipeID()
		draft.CreatedAt = now
	} else if existing, ok := s.find(ctx, draft.ID); ok {
		draft.CreatedAt = existing.CreatedAt
		if draft.Status == "" {
			draft.Status = existing.Status
		}
	} else if base, ok := s.findBase(ctx, draft.ID); ok {
		draft.CreatedAt = base.CreatedAt
		if draft.Status == "" {
			draft.Status = base.Status
		}
	} else if draft.CreatedAt == "" {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	nctx := recipes.UserContext
	if admin {
		nctx = recipes.NormalizeContext{
			DefaultStatus: models.StatusApproved,
			Source:        models.SourceUser,
			SubmittedBy:   "admin",
		}
	}
	rec := recipes.Canonicalize(draft, nctx)
	s.Repo.Upsert(ctx, rec)
	s.notify("recipes")
	return rec, nil
}

// Approve promotes a pending record. Unknown ids are a silent no-op.
func (s *Service) Approve(ctx context.Context, id string) []models.Recipe {
	list := s.Repo.Local(ctx)
	for i := range list {
		if list[i].ID == id {
			list[i].Status = models.StatusApproved
			list[i].UpdatedAt = utils.NowISO()
			s.Repo.SetLocal(ctx, list)
			s.notify("recipes")
			break
		}
	}
	return list
}

// Reject removes the record entirely and purges every dependent store.
func (s *Service) Reject(ctx context.Context, id string) []models.Recipe {
	return s.remove(ctx, id)
}

// Delete is the general hard delete; identical cascade to Reject.
func (s *Service) Delete(ctx context.Context, id string) []models.Recipe {
	return s.remove(ctx, id)
}

func (s *Service) remove(ctx context.Context, id string) []models.Recipe {
	next := s.Repo.Delete(ctx, id)
	for _, c := range s.Cleaners {
		c.PurgeRecipe(ctx, id)
	}
	s.notify("recipes")
	return next
}

func (s *Service) find(ctx context.Context, id string) (models.Recipe, bool) {
	for _, r := range s.Repo.Local(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}

func (s *Service) findBase(ctx context.Context, id string) (models.Recipe, bool) {
	if s.Base == nil {
		return models.Recipe{}, false
	}
	merged, _ := s.Base.Load(ctx)
	for _, r := range merged {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}
