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

// PackageStore is implemented by repository.PackageRepo.
type PackageStore interface {
	Create(ctx context.Context, pkg *models.TourPackage) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]models.TourPackage, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.TourPackage, error)
}

type PackageHandler struct {
	packages PackageStore
}

func NewPackageHandler(packages PackageStore) *PackageHandler {
	return &PackageHandler{
		packages: packages,
	}
}

// --- POST /package (admin) ---

func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pkg models.TourPackage
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if pkg.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "title is required"})
		return
	}

	result, err := h.packages.Create(r.Context(), &pkg)
	if err != nil {
		log.Printf("Error creating package: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GET /packages ---

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.packages.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing packages: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, packages)
}

// --- GET /packages/{id} ---

func (h *PackageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	pkg, err := h.packages.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("Error finding package: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}
	if pkg == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}

	writeJSON(w, http.StatusOK, pkg)
}
