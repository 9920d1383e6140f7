package reviews

import (
	"encoding/json"
	"net/http"

	"savora/globals"
	"savora/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

// GET /api/reviews/:recipeid
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipeID := ps.ByName("recipeid")
	list := h.Repo.ForRecipe(r.Context(), recipeID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"reviews": list,
		"summary": h.Repo.Summary(r.Context(), recipeID),
	})
}

type reviewInput struct {
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	AuthorName string `json:"authorName"`
}

// POST /api/reviews/:recipeid
func (h *Handler) UpsertReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var in reviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	list := h.Repo.Upsert(r.Context(), ps.ByName("recipeid"), userID, in.AuthorName, in.Rating, in.Comment)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reviews": list})
}

// DELETE /api/reviews/:recipeid
func (h *Handler) DeleteMyReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	list := h.Repo.DeleteMine(r.Context(), ps.ByName("recipeid"), userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reviews": list})
}
