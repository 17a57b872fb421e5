// internal/app/store/campaigns/campaignstore.go
package campaignstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrAlreadyRegistered = errors.New("volunteer is already registered for this campaign")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("campaigns")}
}

// Create inserts a new campaign. The owner (NGOID) must already be set by
// the caller from the authenticated subject; it never changes afterwards.
func (s *Store) Create(ctx context.Context, c models.Campaign) (models.Campaign, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	if c.RegisteredVolunteers == nil {
		c.RegisteredVolunteers = []primitive.ObjectID{}
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Campaign{}, err
	}
	return c, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Campaign, error) {
	var c models.Campaign
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return models.Campaign{}, err
	}
	return c, nil
}

// GetByIDs loads multiple campaigns. Used to expand an NGO's denormalized
// campaign list into full documents for the profile response.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Campaign, error) {
	if len(ids) == 0 {
		return []models.Campaign{}, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var campaigns []models.Campaign
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// ListAll returns every campaign, newest date first.
func (s *Store) ListAll(ctx context.Context) ([]models.Campaign, error) {
	return s.find(ctx, bson.M{})
}

// ListByNGO returns the campaigns owned by one NGO, queried by the
// authoritative owner field rather than the NGO's denormalized list.
func (s *Store) ListByNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.Campaign, error) {
	return s.find(ctx, bson.M{"ngo": ngoID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Campaign, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var campaigns []models.Campaign
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Update overwrites the fields that are present (non-zero) in c and
// refreshes UpdatedAt, returning the updated document. Absent fields keep
// their prior values; the owner and the registered set cannot be written
// through this path. Ownership must be checked by the caller before
// calling Update.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, c models.Campaign) (models.Campaign, error) {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if c.Title != "" {
		set["title"] = c.Title
	}
	if !c.Date.IsZero() {
		set["date"] = c.Date
	}
	if c.Location != "" {
		set["location"] = c.Location
	}
	if c.Description != "" {
		set["description"] = c.Description
	}
	if c.FullDescription != "" {
		set["full_description"] = c.FullDescription
	}
	if c.Category != "" {
		set["category"] = c.Category
	}
	if c.TimeRequired != "" {
		set["time_required"] = c.TimeRequired
	}

	var updated models.Campaign
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Campaign{}, err
	}
	return updated, nil
}

// RegisterVolunteer appends the volunteer to the campaign's registered set,
// at most once. The filter excludes campaigns that already contain the
// volunteer, so the check and the append are a single step and two
// concurrent registrations cannot both succeed. Returns
// mongo.ErrNoDocuments for an unknown campaign and ErrAlreadyRegistered
// for a duplicate.
func (s *Store) RegisterVolunteer(ctx context.Context, campaignID, volunteerID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":                   campaignID,
			"registered_volunteers": bson.M{"$ne": volunteerID},
		},
		bson.M{
			"$push": bson.M{"registered_volunteers": volunteerID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the campaign does not exist or the volunteer is already on
		// it; one probe distinguishes the two.
		err := s.c.FindOne(ctx, bson.M{"_id": campaignID}).Err()
		if err != nil {
			return err // mongo.ErrNoDocuments for unknown campaigns
		}
		return ErrAlreadyRegistered
	}
	return nil
}
