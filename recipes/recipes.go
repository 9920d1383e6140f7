package recipes

import (
	"context"
	"encoding/json"
	"net/http"

	"savora/globals"
	"savora/models"
	"savora/search"
	"savora/store"
	"savora/utils"

	"github.com/julienschmidt/httprouter"
)

// Moderator is the lifecycle seam; handlers never mutate the override
// store directly. Implemented by the moderation service.
type Moderator interface {
	SaveDraft(ctx context.Context, draft models.Recipe, admin bool) (models.Recipe, error)
	Delete(ctx context.Context, id string) []models.Recipe
}

// FavoriteSource supplies the favorites id list for the favorites-only
// predicate.
type FavoriteSource interface {
	IDs(ctx context.Context) []string
}

type Handler struct {
	Loader    *Loader
	Moderator Moderator
	Favorites FavoriteSource
	Filters   store.Store
}

func NewHandler(loader *Loader, mod Moderator, favs FavoriteSource, filters store.Store) *Handler {
	return &Handler{Loader: loader, Moderator: mod, Favorites: favs, Filters: filters}
}

// GET /api/recipes
//
// The end-user feed: merged set narrowed by the predicate chain. Only
// approved records can come back. The submitted filter state is
// remembered as the "selected UI filters" document, best effort.
func (h *Handler) GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	state := parseFilterState(r)
	if h.Filters != nil {
		store.WriteJSON(ctx, h.Filters, store.KeyFilters, state)
	}

	merged, offline := h.Loader.Load(ctx)
	var favIDs []string
	if h.Favorites != nil {
		favIDs = h.Favorites.IDs(ctx)
	}
	visible := search.Apply(merged, state, favIDs)

	resp := utils.M{"recipes": visible}
	if offline {
		resp["notice"] = "Failed to load from API. Showing offline data."
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/filters: the last persisted filter state.
func (h *Handler) GetFilterState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state := store.ReadJSON(r.Context(), h.Filters, store.KeyFilters, models.FilterState{})
	utils.RespondWithJSON(w, http.StatusOK, state)
}

// GET /api/recipes/:id
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	merged, _ := h.Loader.Load(r.Context())
	for _, rec := range merged {
		if rec.ID == id {
			utils.RespondWithJSON(w, http.StatusOK, rec)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
}

// POST /api/recipes: user submission, lands as pending.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.save(w, r, "")
}

// PUT /api/recipes/:id: edit; status survives unless the body set one.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.save(w, r, ps.ByName("id"))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, id string) {
	var draft models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if id != "" {
		draft.ID = id
	}
	if userID, ok := r.Context().Value(globals.UserIDKey).(string); ok && userID != "" && draft.SubmittedBy == "" {
		draft.SubmittedBy = userID
	}
	// The user-facing save path never honors a caller-chosen status.
	draft.Status = ""

	saved, err := h.Moderator.SaveDraft(r.Context(), draft, false)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// DELETE /api/recipes/:id: hard delete with cascade cleanup.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Moderator.Delete(r.Context(), ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

func parseFilterState(r *http.Request) models.FilterState {
	q := r.URL.Query()
	state := models.FilterState{
		Query:         q.Get("search"),
		OnlyFavorites: q.Get("favorites") == "1" || q.Get("favorites") == "true",
		Category:      q.Get("category"),
		Difficulty:    q.Get("difficulty"),
		CookTime:      q.Get("cookTime"),
		QuickSnack:    q.Get("quickSnack") == "1" || q.Get("quickSnack") == "true",
		CalorieBucket: q.Get("calories"),
		HighProtein:   q.Get("highProtein") == "1" || q.Get("highProtein") == "true",
	}
	if diet := q.Get("diet"); diet != "" {
		state.DietTypes = utils.SplitTags(diet)
	}
	return state
}
