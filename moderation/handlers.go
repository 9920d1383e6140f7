package moderation

import (
	"context"
	"encoding/json"
	"net/http"

	"savora/analytics"
	"savora/models"
	"savora/recipes"
	"savora/utils"

	"github.com/julienschmidt/httprouter"
)

type FavoriteSource interface {
	IDs(ctx context.Context) []string
}

type ReviewSource interface {
	All(ctx context.Context) []models.Review
}

// Handler serves the admin surface: full-set listing, the approvals
// queue, lifecycle transitions and the dashboard metrics.
type Handler struct {
	Service   *Service
	Loader    *recipes.Loader
	Favorites FavoriteSource
	Reviews   ReviewSource
}

func NewHandler(svc *Service, loader *recipes.Loader, favs FavoriteSource, revs ReviewSource) *Handler {
	return &Handler{Service: svc, Loader: loader, Favorites: favs, Reviews: revs}
}

// GET /api/admin/recipes: every status, admin eyes only.
func (h *Handler) GetAllRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	merged, _ := h.Loader.Load(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recipes": merged})
}

// GET /api/admin/approvals: the pending queue.
func (h *Handler) GetPending(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	merged, _ := h.Loader.Load(r.Context())
	pending := make([]models.Recipe, 0)
	for _, rec := range merged {
		if rec.Status == models.StatusPending {
			pending = append(pending, rec)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recipes": pending})
}

// POST /api/admin/recipes: admin create/edit; defaults to approved
// unless the admin explicitly picked pending.
func (h *Handler) SaveRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	saved, err := h.Service.SaveDraft(r.Context(), draft, true)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// POST /api/admin/recipes/:id/approve
func (h *Handler) ApproveRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	list := h.Service.Approve(r.Context(), ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recipes": list})
}

// POST /api/admin/recipes/:id/reject: removes the record and cascades.
func (h *Handler) RejectRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	list := h.Service.Reject(r.Context(), ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recipes": list})
}

// DELETE /api/admin/recipes/:id
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	list := h.Service.Delete(r.Context(), ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recipes": list})
}

// GET /api/admin/analytics
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	merged, _ := h.Loader.Load(ctx)
	var favIDs []string
	if h.Favorites != nil {
		favIDs = h.Favorites.IDs(ctx)
	}
	var revs []models.Review
	if h.Reviews != nil {
		revs = h.Reviews.All(ctx)
	}
	utils.RespondWithJSON(w, http.StatusOK, analytics.Compute(merged, favIDs, revs))
}
