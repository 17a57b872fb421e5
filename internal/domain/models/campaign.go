package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign is a volunteering opportunity owned by exactly one NGO.
//
// NGOID never changes after creation. A volunteer id appears in
// RegisteredVolunteers at most once; the campaign store enforces that with a
// conditional update rather than a read-then-push.
type Campaign struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	NGOID           primitive.ObjectID `bson:"ngo" json:"ngo"`
	Date            time.Time          `bson:"date" json:"date"`
	Location        string             `bson:"location" json:"location"`
	Description     string             `bson:"description" json:"description"`
	FullDescription string             `bson:"full_description" json:"fullDescription"`
	Category        string             `bson:"category" json:"category"`
	TimeRequired    string             `bson:"time_required" json:"timeRequired"`

	RegisteredVolunteers []primitive.ObjectID `bson:"registered_volunteers" json:"registeredVolunteers"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
