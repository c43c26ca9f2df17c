package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"

	"github.com/ayane-kurokawa/waggle/api/internal/repository"
)

type InternalHandler struct {
	Users *repository.UserRepo
}

// UpsertUser is called by the auth frontend after sign-in to mirror the
// account row. Guarded by a shared secret instead of a user token.
func (h *InternalHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	secret := os.Getenv("AUTH_SECRET")
	got := r.Header.Get("X-Internal-Secret")
	if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req struct {
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "email required", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Upsert(r.Context(), req.Email, req.Name)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, user)
}
