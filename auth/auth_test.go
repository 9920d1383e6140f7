package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"savora/middleware"
	"savora/store"

	"github.com/julienschmidt/httprouter"
)

func doPost(t *testing.T, h httprouter.Handle, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req, nil)
	return rec
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	h := NewHandler(store.NewMemory())

	rec := doPost(t, h.Register, `{"username":"root","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var out struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if out.User.Role != "admin" {
		t.Fatalf("first user role = %q, want admin", out.User.Role)
	}
	if out.Token == "" {
		t.Fatal("no token issued")
	}

	// Issued token round-trips through the middleware validator.
	claims, err := middleware.ValidateJWT("Bearer " + out.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != "admin" || claims.Username != "root" {
		t.Fatalf("claims = %+v", claims)
	}

	rec = doPost(t, h.Register, `{"username":"second","password":"secret2"}`)
	var second struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	json.Unmarshal(rec.Body.Bytes(), &second)
	if second.User.Role != "user" {
		t.Fatalf("second user role = %q, want user", second.User.Role)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := NewHandler(store.NewMemory())

	if rec := doPost(t, h.Register, `{"username":"","password":"secret1"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("empty username: status = %d", rec.Code)
	}
	if rec := doPost(t, h.Register, `{"username":"a","password":"short"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("short password: status = %d", rec.Code)
	}
	if rec := doPost(t, h.Register, `not json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status = %d", rec.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := NewHandler(store.NewMemory())

	doPost(t, h.Register, `{"username":"ana","password":"secret1"}`)
	if rec := doPost(t, h.Register, `{"username":"ANA","password":"secret2"}`); rec.Code != http.StatusConflict {
		t.Fatalf("case-insensitive duplicate: status = %d", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	h := NewHandler(store.NewMemory())

	doPost(t, h.Register, `{"username":"ana","password":"secret1"}`)

	rec := doPost(t, h.Login, `{"username":"ana","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body)
	}
	if rec := doPost(t, h.Login, `{"username":"ana","password":"wrong"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d", rec.Code)
	}
	if rec := doPost(t, h.Login, `{"username":"ghost","password":"secret1"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: status = %d", rec.Code)
	}
}
