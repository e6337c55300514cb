package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourvisor-backend/internal/handlers"
	"tourvisor-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRouter(store *fakeUserStore) *chi.Mux {
	h := handlers.NewUserHandler(store)
	r := chi.NewRouter()
	r.Get("/user/{email}", h.GetByEmail)
	r.Get("/users", h.List)
	r.Put("/user", h.Upsert)
	r.Patch("/users/update/{email}", h.AdminUpdate)
	return r
}

func TestGetUserByEmail(t *testing.T) {
	store := &fakeUserStore{existing: &models.User{Email: "a@x.com", Role: models.RoleTourist}}
	r := userRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/user/a@x.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	decodeBody(t, rec, &user)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.RoleTourist, user.Role)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/user/nobody@x.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"not found"}`, rec.Body.String())
}

func TestListUsersPassesSearchAndFilter(t *testing.T) {
	store := &fakeUserStore{searchResult: []models.User{{Email: "alice@x.com", Role: models.RoleAdmin}}}
	r := userRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/users?search=alice&filter=admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", store.searchQuery)
	assert.Equal(t, "admin", store.searchRole)

	var users []models.User
	decodeBody(t, rec, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@x.com", users[0].Email)
}

func TestUpsertNewUser(t *testing.T) {
	store := &fakeUserStore{}
	r := userRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/user",
		strings.NewReader(`{"email":"new@x.com","name":"New","role":"tourist"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.upserted)
	assert.Equal(t, "new@x.com", store.upserted.Email)
	assert.Empty(t, store.statusEmail, "status update must not run for a new user")
}

// Re-login with a non-"Requested" status returns the stored record and
// writes nothing.
func TestUpsertExistingUserNoClobber(t *testing.T) {
	store := &fakeUserStore{existing: &models.User{
		Email:  "a@x.com",
		Name:   "Original Name",
		Role:   models.RoleTourist,
		Status: "Verified",
	}}
	r := userRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/user",
		strings.NewReader(`{"email":"a@x.com","name":"Changed Name"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, store.upserted)
	assert.Empty(t, store.statusEmail)

	var user models.User
	decodeBody(t, rec, &user)
	assert.Equal(t, "Original Name", user.Name)
	assert.Equal(t, "Verified", user.Status)
}

// An existing user submitting status "Requested" gets only the status field
// updated.
func TestUpsertExistingUserRoleRequest(t *testing.T) {
	store := &fakeUserStore{existing: &models.User{Email: "a@x.com", Role: models.RoleTourist}}
	r := userRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/user",
		strings.NewReader(`{"email":"a@x.com","name":"Changed","status":"Requested"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", store.statusEmail)
	assert.Equal(t, "Requested", store.statusValue)
	assert.Nil(t, store.upserted, "only status may change for an existing user")
}

func TestUpsertMissingEmail(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	req := httptest.NewRequest(http.MethodPut, "/user", strings.NewReader(`{"name":"No Email"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminUpdateForwardsFields(t *testing.T) {
	store := &fakeUserStore{}
	r := userRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/users/update/a@x.com",
		strings.NewReader(`{"role":"guide","status":"Verified"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", store.updatedEmail)
	assert.Equal(t, "guide", store.updatedFields["role"])
	assert.Equal(t, "Verified", store.updatedFields["status"])
}
