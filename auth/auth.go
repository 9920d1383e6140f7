package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"savora/globals"
	"savora/middleware"
	"savora/models"
	"savora/store"
	"savora/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	S store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{S: s}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) users(ctx context.Context) []models.User {
	return store.ReadJSON(ctx, h.S, store.KeyUsers, []models.User{})
}

// POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || len(in.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and a password of at least 6 characters are required")
		return
	}

	ctx := r.Context()
	users := h.users(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Username, in.Username) {
			utils.RespondWithError(w, http.StatusConflict, "Username already taken")
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	role := "user"
	// First account doubles as the admin, mirroring the single-operator
	// deployment this started as.
	if len(users) == 0 {
		role = "admin"
	}
	user := models.User{
		ID:           utils.GetUUID(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    utils.NowISO(),
	}
	store.WriteJSON(ctx, h.S, store.KeyUsers, append(users, user))

	token, err := issueToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"token": token,
		"user":  utils.M{"id": user.ID, "username": user.Username, "role": user.Role},
	})
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	for _, u := range h.users(r.Context()) {
		if !strings.EqualFold(u.Username, strings.TrimSpace(in.Username)) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
			break
		}
		token, err := issueToken(u)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"token": token,
			"user":  utils.M{"id": u.ID, "username": u.Username, "role": u.Role},
		})
		return
	}
	utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
}

func issueToken(u models.User) (string, error) {
	claims := middleware.Claims{
		Username: u.Username,
		UserID:   u.ID,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
