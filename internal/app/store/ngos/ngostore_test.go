package ngostore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	ngostore "github.com/unityvolunteers/unityhub/internal/app/store/ngos"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
	"github.com/unityvolunteers/unityhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ngostore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := models.NGO{
		Name:     "Green Earth",
		Email:    "contact@greenearth.org",
		Password: "bcrypt-hash-here",
		Aim:      "Cleaner oceans",
	}

	created, err := store.Create(ctx, ngo)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.Campaigns == nil {
		t.Error("expected Campaigns to be initialized")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ngostore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.NGO{Name: "Green Earth", Email: "dup@greenearth.org", Password: "hash"}
	if _, err := store.Create(ctx, first); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	second := models.NGO{Name: "Different Name", Email: "dup@greenearth.org", Password: "hash"}
	if _, err := store.Create(ctx, second); err != ngostore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_Create_DuplicateNameCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ngostore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.NGO{Name: "Green Earth", Email: "a@greenearth.org", Password: "hash"}
	if _, err := store.Create(ctx, first); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Different email, same name in different case: the folded-name index fires.
	second := models.NGO{Name: "GREEN earth", Email: "b@greenearth.org", Password: "hash"}
	if _, err := store.Create(ctx, second); err != ngostore.ErrDuplicateName {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestStore_NamesByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ngostore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateNGO(ctx, "Alpha Org", "alpha@example.org")
	b := fixtures.CreateNGO(ctx, "Beta Org", "beta@example.org")
	fixtures.CreateNGO(ctx, "Gamma Org", "gamma@example.org")

	names, err := store.NamesByIDs(ctx, []primitive.ObjectID{a.ID, b.ID})
	if err != nil {
		t.Fatalf("NamesByIDs failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[a.ID] != "Alpha Org" {
		t.Errorf("name for a: got %q, want %q", names[a.ID], "Alpha Org")
	}
	if names[b.ID] != "Beta Org" {
		t.Errorf("name for b: got %q, want %q", names[b.ID], "Beta Org")
	}
}

func TestStore_UpdateProfile_PartialUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ngostore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fixtures.CreateNGO(ctx, "Green Earth", "contact@greenearth.org")

	updated, err := store.UpdateProfile(ctx, ngo.ID, models.NGO{
		Founder:      "Alex Rivera",
		Achievements: []string{"Award 2024"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if updated.Founder != "Alex Rivera" {
		t.Errorf("Founder: got %q, want %q", updated.Founder, "Alex Rivera")
	}
	// Absent fields keep their prior values.
	if updated.Name != "Green Earth" {
		t.Errorf("Name should be unchanged, got %q", updated.Name)
	}
	if updated.ShortInfo != ngo.ShortInfo {
		t.Errorf("ShortInfo should be unchanged, got %q", updated.ShortInfo)
	}
	if len(updated.Achievements) != 1 || updated.Achievements[0] != "Award 2024" {
		t.Errorf("Achievements: got %v, want [Award 2024]", updated.Achievements)
	}
	if !updated.UpdatedAt.After(ngo.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestStore_UpdateProfile_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ngostore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateNGO(ctx, "Taken Name", "taken@example.org")
	ngo := fixtures.CreateNGO(ctx, "Original Name", "original@example.org")

	_, err := store.UpdateProfile(ctx, ngo.ID, models.NGO{Name: "taken name"})
	if err != ngostore.ErrDuplicateName {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestStore_List_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ngostore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateNGO(ctx, "Zebra Aid", "zebra@example.org")
	fixtures.CreateNGO(ctx, "alpha relief", "alpha@example.org")

	ngos, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ngos) != 2 {
		t.Fatalf("expected 2 NGOs, got %d", len(ngos))
	}
	if ngos[0].Name != "alpha relief" {
		t.Errorf("expected case-insensitive name sort, got %q first", ngos[0].Name)
	}
}
