package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"tourvisor-backend/internal/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

// --- fake stores ---

type fakeUserStore struct {
	existing *models.User
	findErr  error

	upserted      *models.User
	statusEmail   string
	statusValue   string
	updatedEmail  string
	updatedFields bson.M
	searchQuery   string
	searchRole    string
	searchResult  []models.User
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.existing, f.findErr
}

func (f *fakeUserStore) Search(ctx context.Context, search, role string) ([]models.User, error) {
	f.searchQuery = search
	f.searchRole = role
	return f.searchResult, nil
}

func (f *fakeUserStore) UpdateStatus(ctx context.Context, email, status string) (*mongo.UpdateResult, error) {
	f.statusEmail = email
	f.statusValue = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUserStore) Upsert(ctx context.Context, user *models.User) (*mongo.UpdateResult, error) {
	f.upserted = user
	return &mongo.UpdateResult{UpsertedCount: 1}, nil
}

func (f *fakeUserStore) UpdateFields(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error) {
	f.updatedEmail = email
	f.updatedFields = fields
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeGuideStore struct {
	createErr error
	created   *models.Guide
	guides    []models.Guide
	byID      *models.Guide
}

func (f *fakeGuideStore) Create(ctx context.Context, guide *models.Guide) (*mongo.InsertOneResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = guide
	return &mongo.InsertOneResult{InsertedID: bson.NewObjectID()}, nil
}

func (f *fakeGuideStore) FindAll(ctx context.Context) ([]models.Guide, error) {
	return f.guides, nil
}

func (f *fakeGuideStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Guide, error) {
	return f.byID, nil
}

type fakeWishlistStore struct {
	created   *models.WishlistItem
	listEmail string
	items     []models.WishlistItem
	deletedID bson.ObjectID
}

func (f *fakeWishlistStore) Create(ctx context.Context, item *models.WishlistItem) (*mongo.InsertOneResult, error) {
	f.created = item
	return &mongo.InsertOneResult{InsertedID: bson.NewObjectID()}, nil
}

func (f *fakeWishlistStore) FindByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	f.listEmail = email
	return f.items, nil
}

func (f *fakeWishlistStore) DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	f.deletedID = id
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeBookingStore struct {
	created   *models.Booking
	byID      *models.Booking
	byEmail   []models.Booking
	listEmail string
	byGuide   []models.Booking
	guideName string
	statusID  bson.ObjectID
	statusVal string
	deletedID bson.ObjectID
}

func (f *fakeBookingStore) Create(ctx context.Context, booking *models.Booking) (*mongo.InsertOneResult, error) {
	f.created = booking
	return &mongo.InsertOneResult{InsertedID: bson.NewObjectID()}, nil
}

func (f *fakeBookingStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Booking, error) {
	return f.byID, nil
}

func (f *fakeBookingStore) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	f.listEmail = email
	return f.byEmail, nil
}

func (f *fakeBookingStore) FindByGuide(ctx context.Context, guideName string) ([]models.Booking, error) {
	f.guideName = guideName
	return f.byGuide, nil
}

func (f *fakeBookingStore) UpdateStatus(ctx context.Context, id bson.ObjectID, status string) (*mongo.UpdateResult, error) {
	f.statusID = id
	f.statusVal = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeBookingStore) DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	f.deletedID = id
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// fakeNotifier records sends on a channel so tests can wait for the
// background goroutine.
type fakeNotifier struct {
	sent chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan string, 1)}
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, body string) error {
	f.sent <- to
	return nil
}
