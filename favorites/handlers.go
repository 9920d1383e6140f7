package favorites

import (
	"net/http"

	"savora/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Repo *Repo
	// Notify broadcasts an advisory change event; nil disables it.
	Notify func(topic string)
}

// GET /api/favorites
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ids": h.Repo.IDs(r.Context())})
}

// POST /api/favorites/:recipeid/toggle
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("recipeid")
	next := h.Repo.Toggle(r.Context(), id)
	if h.Notify != nil {
		h.Notify("favorites")
	}
	favorited := false
	for _, fid := range next {
		if fid == id {
			favorited = true
			break
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ids": next, "favorited": favorited})
}
