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

// WishlistStore is implemented by repository.WishlistRepo.
type WishlistStore interface {
	Create(ctx context.Context, item *models.WishlistItem) (*mongo.InsertOneResult, error)
	FindByEmail(ctx context.Context, email string) ([]models.WishlistItem, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error)
}

type WishlistHandler struct {
	wishlist WishlistStore
}

func NewWishlistHandler(wishlist WishlistStore) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
	}
}

// --- POST /wishlists (tourist) ---

func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if item.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "email is required"})
		return
	}

	result, err := h.wishlist.Create(r.Context(), &item)
	if err != nil {
		log.Printf("Error creating wishlist item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GET /wishlists?email= (tourist) ---

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := h.wishlist.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Error listing wishlist: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// --- DELETE /wishlists/{id} (tourist) ---

func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	result, err := h.wishlist.DeleteByID(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting wishlist item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}
