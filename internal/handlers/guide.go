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

// GuideStore is implemented by repository.GuideRepo.
type GuideStore interface {
	Create(ctx context.Context, guide *models.Guide) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]models.Guide, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Guide, error)
}

type GuideHandler struct {
	guides GuideStore
}

func NewGuideHandler(guides GuideStore) *GuideHandler {
	return &GuideHandler{
		guides: guides,
	}
}

// --- POST /guides (guide) ---

// Create inserts a guide profile. Duplicate submissions are rejected by the
// unique index on email rather than a pre-insert lookup, so two concurrent
// submissions cannot both slip through.
func (h *GuideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var guide models.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if guide.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "email is required"})
		return
	}

	result, err := h.guides.Create(r.Context(), &guide)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Already Submitted"})
			return
		}
		log.Printf("Error creating guide: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GET /guides ---

func (h *GuideHandler) List(w http.ResponseWriter, r *http.Request) {
	guides, err := h.guides.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing guides: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, guides)
}

// --- GET /guides/{id} ---

func (h *GuideHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	guide, err := h.guides.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("Error finding guide: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}
	if guide == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}

	writeJSON(w, http.StatusOK, guide)
}
