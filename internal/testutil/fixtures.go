package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unityvolunteers/unityhub/internal/app/system/authutil"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// TestPassword is the plaintext behind every fixture's stored hash.
const TestPassword = "test-password-1234"

// testPasswordHash is computed once; bcrypt at min cost is still slow
// enough to matter across a large test run.
var testPasswordHash string

func init() {
	h, err := authutil.HashPassword(TestPassword, 4)
	if err != nil {
		panic(err)
	}
	testPasswordHash = h
}

// CreateVolunteer creates a test volunteer with the given name and email.
// The stored password hash corresponds to TestPassword.
func (f *Fixtures) CreateVolunteer(ctx context.Context, fullName, email string) models.Volunteer {
	f.t.Helper()

	now := time.Now().UTC()
	v := models.Volunteer{
		ID:                  primitive.NewObjectID(),
		FullName:            fullName,
		Email:               email,
		Password:            testPasswordHash,
		Age:                 25,
		DateOfBirth:         time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
		MobileNumber:        "+1 555 0100",
		RegisteredCampaigns: []primitive.ObjectID{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := f.db.Collection("volunteers").InsertOne(ctx, v)
	if err != nil {
		f.t.Fatalf("failed to create test volunteer: %v", err)
	}

	return v
}

// CreateNGO creates a test NGO with the given name and email.
// The stored password hash corresponds to TestPassword.
func (f *Fixtures) CreateNGO(ctx context.Context, name, email string) models.NGO {
	f.t.Helper()

	now := time.Now().UTC()
	ngo := models.NGO{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Email:        email,
		Password:     testPasswordHash,
		ShortInfo:    "Test NGO short info",
		Founded:      "2010",
		Founder:      "Test Founder",
		Aim:          "Test aim",
		Location:     "Test City",
		Achievements: []string{},
		Categories:   []string{},
		Campaigns:    []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := f.db.Collection("ngos").InsertOne(ctx, ngo)
	if err != nil {
		f.t.Fatalf("failed to create test NGO: %v", err)
	}

	return ngo
}

// CreateCampaign creates a test campaign owned by the given NGO.
func (f *Fixtures) CreateCampaign(ctx context.Context, title string, ngoID primitive.ObjectID) models.Campaign {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Campaign{
		ID:                   primitive.NewObjectID(),
		Title:                title,
		NGOID:                ngoID,
		Date:                 now.AddDate(0, 1, 0),
		Location:             "Test Location",
		Description:          "Test campaign description",
		FullDescription:      "<p>Test campaign full description</p>",
		Category:             "Environment",
		TimeRequired:         "4 hours",
		RegisteredVolunteers: []primitive.ObjectID{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	_, err := f.db.Collection("campaigns").InsertOne(ctx, c)
	if err != nil {
		f.t.Fatalf("failed to create test campaign: %v", err)
	}

	// Keep the owner's denormalized list consistent with the insert.
	_, err = f.db.Collection("ngos").UpdateByID(ctx, ngoID,
		bson.M{"$addToSet": bson.M{"campaigns": c.ID}})
	if err != nil {
		f.t.Fatalf("failed to link test campaign to NGO: %v", err)
	}

	return c
}
