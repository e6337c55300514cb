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

// StoryStore is implemented by repository.StoryRepo.
type StoryStore interface {
	Create(ctx context.Context, story *models.Story) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]models.Story, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Story, error)
}

type StoryHandler struct {
	stories StoryStore
}

func NewStoryHandler(stories StoryStore) *StoryHandler {
	return &StoryHandler{
		stories: stories,
	}
}

// --- POST /stories (tourist) ---

func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var story models.Story
	if err := json.NewDecoder(r.Body).Decode(&story); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if story.Story == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "story text is required"})
		return
	}

	result, err := h.stories.Create(r.Context(), &story)
	if err != nil {
		log.Printf("Error creating story: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GET /stories ---

func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing stories: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, stories)
}

// --- GET /stories/{id} ---

func (h *StoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	story, err := h.stories.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("Error finding story: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}
	if story == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}

	writeJSON(w, http.StatusOK, story)
}
