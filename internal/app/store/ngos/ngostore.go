// internal/app/store/ngos/ngostore.go
package ngostore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateEmail = errors.New("an NGO with this email already exists")
	ErrDuplicateName  = errors.New("an NGO with this name already exists")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ngos")}
}

// Create inserts a new NGO. Email is pre-checked so the caller can report
// the duplicate-email case distinctly; the unique indexes still back both
// checks against races, with the insert-time violation mapped to the name
// or email sentinel by re-probing.
func (s *Store) Create(ctx context.Context, ngo models.NGO) (models.NGO, error) {
	exists, err := s.ExistsByEmail(ctx, ngo.Email)
	if err != nil {
		return models.NGO{}, err
	}
	if exists {
		return models.NGO{}, ErrDuplicateEmail
	}

	now := time.Now().UTC()
	ngo.ID = primitive.NewObjectID()
	ngo.NameCI = text.Fold(ngo.Name)
	if ngo.Achievements == nil {
		ngo.Achievements = []string{}
	}
	if ngo.Categories == nil {
		ngo.Categories = []string{}
	}
	if ngo.Campaigns == nil {
		ngo.Campaigns = []primitive.ObjectID{}
	}
	ngo.CreatedAt = now
	ngo.UpdatedAt = now

	_, err = s.c.InsertOne(ctx, ngo)
	if err != nil {
		if wafflemongo.IsDup(err) {
			// The email pre-check passed, so decide which unique index fired.
			if exists, probeErr := s.ExistsByEmail(ctx, ngo.Email); probeErr == nil && exists {
				return models.NGO{}, ErrDuplicateEmail
			}
			return models.NGO{}, ErrDuplicateName
		}
		return models.NGO{}, err
	}
	return ngo, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.NGO, error) {
	var ngo models.NGO
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ngo)
	if err != nil {
		return models.NGO{}, err
	}
	return ngo, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.NGO, error) {
	var ngo models.NGO
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&ngo)
	if err != nil {
		return models.NGO{}, err
	}
	return ngo, nil
}

func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns every NGO, sorted by folded name for a stable directory.
func (s *Store) List(ctx context.Context) ([]models.NGO, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ngos []models.NGO
	if err := cur.All(ctx, &ngos); err != nil {
		return nil, err
	}
	return ngos, nil
}

// NamesByIDs loads just the display names for a set of NGO ids. The public
// campaign list uses this to enrich each campaign with its owner's name
// without shipping full NGO records.
func (s *Store) NamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}
	cur, err := s.c.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	names := make(map[primitive.ObjectID]string, len(ids))
	for cur.Next(ctx) {
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		names[doc.ID] = doc.Name
	}
	return names, cur.Err()
}

// UpdateProfile overwrites the profile fields that are present (non-zero)
// in ngo and refreshes UpdatedAt. Absent fields keep their prior values, so
// an intentional empty string cannot be set through this path — that
// matches the API's documented partial-update semantics. Achievements and
// categories are replaced wholesale when present, never merged. The owning
// campaign list and credentials are not touchable here.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, ngo models.NGO) (models.NGO, error) {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if ngo.Name != "" {
		set["name"] = ngo.Name
		set["name_ci"] = text.Fold(ngo.Name)
	}
	if ngo.Logo != "" {
		set["logo"] = ngo.Logo
	}
	if ngo.ShortInfo != "" {
		set["short_info"] = ngo.ShortInfo
	}
	if ngo.Founded != "" {
		set["founded"] = ngo.Founded
	}
	if ngo.Founder != "" {
		set["founder"] = ngo.Founder
	}
	if ngo.Aim != "" {
		set["aim"] = ngo.Aim
	}
	if ngo.Location != "" {
		set["location"] = ngo.Location
	}
	if ngo.Website != "" {
		set["website"] = ngo.Website
	}
	if ngo.Achievements != nil {
		set["achievements"] = ngo.Achievements
	}
	if ngo.Categories != nil {
		set["categories"] = ngo.Categories
	}

	var updated models.NGO
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.NGO{}, ErrDuplicateName
		}
		return models.NGO{}, err
	}
	return updated, nil
}

// AppendCampaign records a newly created campaign on the owner's list.
// This is the second half of the campaign-create dual write; the campaign
// document's owner field is authoritative if this write fails.
func (s *Store) AppendCampaign(ctx context.Context, ngoID, campaignID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, ngoID, bson.M{
		"$addToSet": bson.M{"campaigns": campaignID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}
