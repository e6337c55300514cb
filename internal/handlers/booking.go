package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"tourvisor-backend/internal/models"
	"tourvisor-backend/internal/notify"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// BookingStore is implemented by repository.BookingRepo.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByGuide(ctx context.Context, guideName string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status string) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error)
}

type BookingHandler struct {
	bookings BookingStore
	notifier notify.Notifier
}

func NewBookingHandler(bookings BookingStore, notifier notify.Notifier) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		notifier: notifier,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// --- POST /bookings (tourist) ---

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if booking.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "email is required"})
		return
	}

	booking.Reference = uuid.New().String()

	result, err := h.bookings.Create(r.Context(), &booking)
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GET /bookings?email= (tourist) ---

func (h *BookingHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	bookings, err := h.bookings.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// --- GET /bookings/{name} (guide) ---

func (h *BookingHandler) ListByGuide(w http.ResponseWriter, r *http.Request) {
	guideName := chi.URLParam(r, "name")

	bookings, err := h.bookings.FindByGuide(r.Context(), guideName)
	if err != nil {
		log.Printf("Error listing guide bookings: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// --- PATCH /bookings/update/{id} (guide) ---

// UpdateStatus overwrites only the status field and emails the tourist about
// the change. The email is best-effort and never fails the request.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	booking, err := h.bookings.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("Error finding booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}
	if booking == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}

	result, err := h.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		log.Printf("Error updating booking status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	// Fire the notification in a background goroutine (non-blocking)
	go func() {
		body := fmt.Sprintf("Your booking %s is now %q.", booking.Reference, req.Status)
		if err := h.notifier.Send(context.Background(), booking.Email, "Your booking was updated", body); err != nil {
			log.Printf("Error sending booking notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusOK, result)
}

// --- DELETE /bookings/{id} (tourist) ---

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	result, err := h.bookings.DeleteByID(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}
