package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"tourvisor-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserStore is implemented by repository.UserRepo.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Search(ctx context.Context, search, role string) ([]models.User, error)
	UpdateStatus(ctx context.Context, email, status string) (*mongo.UpdateResult, error)
	Upsert(ctx context.Context, user *models.User) (*mongo.UpdateResult, error)
	UpdateFields(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error)
}

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// --- GET /user/{email} ---

// GetByEmail is open on purpose: the frontend resolves a caller's role and
// status before any token exists.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Error finding user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}
	if user == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// --- GET /users (admin) ---

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	filter := r.URL.Query().Get("filter")

	users, err := h.users.Search(r.Context(), search, filter)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// --- PUT /user ---

// Upsert is the login-time user write, keyed by email. An existing record is
// only touched when the submitted status is exactly "Requested" (a role
// request), and then only its status field changes; any other re-login
// returns the stored record unchanged. A new email inserts the record with a
// server-assigned timestamp.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if user.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "email is required"})
		return
	}

	existing, err := h.users.FindByEmail(r.Context(), user.Email)
	if err != nil {
		log.Printf("Error finding user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	if existing != nil {
		if user.Status == "Requested" {
			result, err := h.users.UpdateStatus(r.Context(), user.Email, user.Status)
			if err != nil {
				log.Printf("Error updating user status: %v", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
				return
			}
			writeJSON(w, http.StatusOK, result)
			return
		}
		// Re-login: never clobber the stored record.
		writeJSON(w, http.StatusOK, existing)
		return
	}

	result, err := h.users.Upsert(r.Context(), &user)
	if err != nil {
		log.Printf("Error upserting user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- PATCH /users/update/{email} (admin) ---

func (h *UserHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	result, err := h.users.UpdateFields(r.Context(), email, fields)
	if err != nil {
		log.Printf("Error updating user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}
