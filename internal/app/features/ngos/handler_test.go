package ngos_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	ngosfeature "github.com/unityvolunteers/unityhub/internal/app/features/ngos"
	"github.com/unityvolunteers/unityhub/internal/testutil"
)

type profileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Founder   string `json:"founder"`
	ShortInfo string `json:"shortInfo"`
	Campaigns []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"campaigns"`
}

func TestServeList_ExpandsCampaigns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := ngosfeature.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fixtures.CreateNGO(ctx, "Green Earth", "contact@greenearth.org")
	c := fixtures.CreateCampaign(ctx, "Beach Cleanup", ngo.ID)
	fixtures.CreateNGO(ctx, "Animal Aid", "hello@animalaid.org")

	req := httptest.NewRequest("GET", "/api/ngos", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var ngos []profileResponse
	testutil.DecodeJSONResponse(t, rec, &ngos)
	if len(ngos) != 2 {
		t.Fatalf("expected 2 NGOs, got %d", len(ngos))
	}

	// Sorted by folded name: Animal Aid first.
	if ngos[0].Name != "Animal Aid" || ngos[1].Name != "Green Earth" {
		t.Errorf("unexpected order: %q, %q", ngos[0].Name, ngos[1].Name)
	}
	if len(ngos[1].Campaigns) != 1 || ngos[1].Campaigns[0].Title != "Beach Cleanup" {
		t.Errorf("expected campaign expansion, got %v", ngos[1].Campaigns)
	}
	if ngos[1].Campaigns[0].ID != c.ID.Hex() {
		t.Errorf("campaign id: got %q, want %q", ngos[1].Campaigns[0].ID, c.ID.Hex())
	}
}

func TestServeList_NeverExposesPasswords(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := ngosfeature.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateNGO(ctx, "Green Earth", "contact@greenearth.org")

	req := httptest.NewRequest("GET", "/api/ngos", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response body contains a password field")
	}
}

func TestServeProfile_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := ngosfeature.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fixtures.CreateNGO(ctx, "Green Earth", "contact@greenearth.org")
	fixtures.CreateCampaign(ctx, "Beach Cleanup", ngo.ID)

	req := testutil.AsNGO(httptest.NewRequest("GET", "/api/ngos/me", nil), ngo.ID)
	rec := httptest.NewRecorder()
	h.ServeProfile(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var profile profileResponse
	testutil.DecodeJSONResponse(t, rec, &profile)
	if profile.ID != ngo.ID.Hex() {
		t.Errorf("id: got %q, want %q", profile.ID, ngo.ID.Hex())
	}
	if len(profile.Campaigns) != 1 || profile.Campaigns[0].Title != "Beach Cleanup" {
		t.Errorf("expected campaign expansion, got %v", profile.Campaigns)
	}
}

func TestServeProfile_UnresolvedSubject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := ngosfeature.NewHandler(db, zap.NewNop())

	// A valid token subject whose record no longer exists.
	req := testutil.AsNGO(httptest.NewRequest("GET", "/api/ngos/me", nil), primitive.NewObjectID())
	rec := httptest.NewRecorder()
	h.ServeProfile(rec, req)

	testutil.AssertStatus(t, rec, http.StatusNotFound)
	testutil.AssertMessage(t, rec, "NGO not found")
}

func TestHandleUpdateProfile_PartialUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := ngosfeature.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fixtures.CreateNGO(ctx, "Green Earth", "contact@greenearth.org")

	req := testutil.AsNGO(testutil.NewJSONRequest(t, "PUT", "/api/ngos/me", map[string]any{
		"founder":      "Alex Rivera",
		"achievements": "Award 2023, Award 2024",
	}), ngo.ID)
	rec := httptest.NewRecorder()
	h.HandleUpdateProfile(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var profile struct {
		Founder      string   `json:"founder"`
		ShortInfo    string   `json:"shortInfo"`
		Achievements []string `json:"achievements"`
	}
	testutil.DecodeJSONResponse(t, rec, &profile)
	if profile.Founder != "Alex Rivera" {
		t.Errorf("founder: got %q, want %q", profile.Founder, "Alex Rivera")
	}
	if profile.ShortInfo != ngo.ShortInfo {
		t.Errorf("shortInfo should be unchanged, got %q", profile.ShortInfo)
	}
	if len(profile.Achievements) != 2 || profile.Achievements[0] != "Award 2023" {
		t.Errorf("achievements: got %v", profile.Achievements)
	}
}

func TestHandleUpdateProfile_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := ngosfeature.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateNGO(ctx, "Taken Name", "taken@example.org")
	ngo := fixtures.CreateNGO(ctx, "Original Name", "original@example.org")

	req := testutil.AsNGO(testutil.NewJSONRequest(t, "PUT", "/api/ngos/me",
		map[string]string{"name": "taken name"}), ngo.ID)
	rec := httptest.NewRecorder()
	h.HandleUpdateProfile(rec, req)

	testutil.AssertStatus(t, rec, http.StatusConflict)
	testutil.AssertMessage(t, rec, "NGO with this name already exists")
}
