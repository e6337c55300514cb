package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"tourvisor-backend/internal/database"
	"tourvisor-backend/internal/handlers"
	customMiddleware "tourvisor-backend/internal/middleware"
	"tourvisor-backend/internal/models"
	"tourvisor-backend/internal/notify"
	"tourvisor-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "tourVisor")
	jwtSecret := getEnv("JWT_SECRET", "")
	port := getEnv("PORT", "5000")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// Connect to MongoDB
	db, err := database.Connect(mongoURI, dbName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	storyRepo := repository.NewStoryRepo(db)
	packageRepo := repository.NewPackageRepo(db)
	guideRepo := repository.NewGuideRepo(db)
	wishlistRepo := repository.NewWishlistRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := guideRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create guide indexes: %v", err)
	}
	if err := wishlistRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create wishlist indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create booking indexes: %v", err)
	}

	// Initialize notifier — real email when Resend is configured, dev-mode
	// logging otherwise
	var notifier notify.Notifier
	if apiKey := getEnv("RESEND_API_KEY", ""); apiKey != "" {
		notifier = notify.NewResendNotifier(apiKey, getEnv("FROM_EMAIL", "noreply@tourvisor.app"))
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, notifications are logged only")
		notifier = notify.NewMockNotifier()
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(jwtSecret)
	userHandler := handlers.NewUserHandler(userRepo)
	storyHandler := handlers.NewStoryHandler(storyRepo)
	packageHandler := handlers.NewPackageHandler(packageRepo)
	guideHandler := handlers.NewGuideHandler(guideRepo)
	wishlistHandler := handlers.NewWishlistHandler(wishlistRepo)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, notifier)

	// Role gates — each re-checks the stored record, not the token
	jwtAuth := customMiddleware.JWTAuth(jwtSecret)
	adminOnly := customMiddleware.RequireRole(userRepo, models.RoleAdmin)
	guideOnly := customMiddleware.RequireRole(userRepo, models.RoleGuide)
	touristOnly := customMiddleware.RequireRole(userRepo, models.RoleTourist)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("tour visor!"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"tourvisor-backend"}`))
	})

	// Public routes (no auth required)
	r.Post("/jwt", authHandler.IssueToken)
	r.Get("/user/{email}", userHandler.GetByEmail)
	r.Put("/user", userHandler.Upsert)
	r.Get("/stories", storyHandler.List)
	r.Get("/stories/{id}", storyHandler.GetByID)
	r.Get("/packages", packageHandler.List)
	r.Get("/packages/{id}", packageHandler.GetByID)
	r.Get("/guides", guideHandler.List)
	r.Get("/guides/{id}", guideHandler.GetByID)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(jwtAuth, adminOnly)

		r.Get("/users", userHandler.List)
		r.Patch("/users/update/{email}", userHandler.AdminUpdate)
		r.Post("/package", packageHandler.Create)
	})

	// Guide routes
	r.Group(func(r chi.Router) {
		r.Use(jwtAuth, guideOnly)

		r.Post("/guides", guideHandler.Create)
		r.Get("/bookings/{name}", bookingHandler.ListByGuide)
		r.Patch("/bookings/update/{id}", bookingHandler.UpdateStatus)
	})

	// Tourist routes
	r.Group(func(r chi.Router) {
		r.Use(jwtAuth, touristOnly)

		r.Post("/stories", storyHandler.Create)
		r.Post("/wishlists", wishlistHandler.Create)
		r.Get("/wishlists", wishlistHandler.List)
		r.Delete("/wishlists/{id}", wishlistHandler.Delete)
		r.Post("/bookings", bookingHandler.Create)
		r.Get("/bookings", bookingHandler.ListByEmail)
		r.Delete("/bookings/{id}", bookingHandler.Delete)
	})

	// Start server
	log.Printf("🚀 Tour Visor backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
