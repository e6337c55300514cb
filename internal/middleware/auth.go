package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"tourvisor-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsKey contextKey = "claims"

// UserFinder is the single store lookup the role gates need. The concrete
// implementation is repository.UserRepo; tests substitute a fake.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// JWTAuth verifies the Authorization bearer token and stores the decoded
// claims in the request context. Missing, malformed, tampered and expired
// tokens are all rejected the same way.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to callers whose stored user record carries the
// given role. The record is re-fetched on every request so role changes take
// effect immediately; the role claim inside the token is never trusted.
// Must run after JWTAuth.
func RequireRole(users UserFinder, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())
			if email == "" {
				writeError(w, http.StatusForbidden, "forbidden access")
				return
			}

			user, err := users.FindByEmail(r.Context(), email)
			if err != nil {
				log.Printf("Error looking up user role: %v", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if user == nil || user.Role != role {
				writeError(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims returns the decoded token claims, or nil outside JWTAuth.
func GetClaims(ctx context.Context) jwt.MapClaims {
	claims, _ := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims
}

// GetEmail returns the email claim of the authenticated caller.
func GetEmail(ctx context.Context) string {
	claims := GetClaims(ctx)
	if claims == nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
