// internal/app/store/volunteers/volunteerstore.go
package volunteerstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("a volunteer with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteers")}
}

// Create inserts a new volunteer. The caller is expected to have normalized
// the email and hashed the password already; Create only assigns the id and
// timestamps. A duplicate email surfaces as ErrDuplicateEmail via the
// unique index, never as a second record.
func (s *Store) Create(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	now := time.Now().UTC()
	v.ID = primitive.NewObjectID()
	if v.RegisteredCampaigns == nil {
		v.RegisteredCampaigns = []primitive.ObjectID{}
	}
	v.CreatedAt = now
	v.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, v)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Volunteer{}, ErrDuplicateEmail
		}
		return models.Volunteer{}, err
	}
	return v, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Volunteer, error) {
	var v models.Volunteer
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		return models.Volunteer{}, err
	}
	return v, nil
}

// GetByEmail looks a volunteer up by normalized email. Returns
// mongo.ErrNoDocuments when the email is unknown; login treats that the
// same as a password mismatch.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Volunteer, error) {
	var v models.Volunteer
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&v)
	if err != nil {
		return models.Volunteer{}, err
	}
	return v, nil
}

// ExistsByEmail checks whether a volunteer with the normalized email exists.
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

// AppendCampaign records a campaign on the volunteer's registered list.
// This is the weak back-reference side of registration; $addToSet keeps it
// duplicate-free even if the call is retried.
func (s *Store) AppendCampaign(ctx context.Context, volunteerID, campaignID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, volunteerID, bson.M{
		"$addToSet": bson.M{"registered_campaigns": campaignID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}
