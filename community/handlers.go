package community

import (
	"encoding/json"
	"net/http"

	"savora/globals"
	"savora/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Repo   *Repo
	Notify func(topic string)
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) notify(topic string) {
	if h.Notify != nil {
		h.Notify(topic)
	}
}

func currentUser(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	return userID, ok && userID != ""
}

// POST /api/likes/:recipeid/toggle
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := currentUser(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	liked, count := h.Repo.ToggleLike(r.Context(), userID, ps.ByName("recipeid"))
	h.notify("likes")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"liked": liked, "count": count})
}

// GET /api/likes/:recipeid
func (h *Handler) GetLikes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipeID := ps.ByName("recipeid")
	resp := utils.M{"count": h.Repo.LikeCount(r.Context(), recipeID)}
	if userID, ok := currentUser(r); ok {
		resp["liked"] = h.Repo.LikedBy(r.Context(), userID, recipeID)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/comments/:recipeid
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"comments": h.Repo.CommentsForRecipe(r.Context(), ps.ByName("recipeid")),
	})
}

type commentInput struct {
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
}

// POST /api/comments/:recipeid
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := currentUser(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var in commentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	list := h.Repo.AddComment(r.Context(), ps.ByName("recipeid"), userID, in.AuthorName, in.Text)
	h.notify("comments")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"comments": list})
}

// PUT /api/comments/:recipeid/:commentid
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := currentUser(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var in commentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	list := h.Repo.EditComment(r.Context(), ps.ByName("commentid"), userID, in.Text)
	h.notify("comments")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"comments": list})
}

// DELETE /api/comments/:recipeid/:commentid
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := currentUser(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	list := h.Repo.DeleteComment(r.Context(), ps.ByName("commentid"), userID)
	h.notify("comments")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"comments": list})
}

// POST /api/follows/:chefid/toggle
func (h *Handler) ToggleFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := currentUser(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	following, count := h.Repo.ToggleFollow(r.Context(), userID, ps.ByName("chefid"))
	h.notify("follows")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"following": following, "followers": count})
}

// GET /api/follows/:chefid
func (h *Handler) GetFollowers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"followers": h.Repo.FollowerCount(r.Context(), ps.ByName("chefid")),
	})
}
