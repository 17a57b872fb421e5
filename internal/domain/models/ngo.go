package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NGO is an organization that owns campaigns.
//
// Name uniqueness is enforced on NameCI (case/diacritic-folded) so "Red
// Cross" and "red cross" collide. Email uniqueness is on the normalized
// email field itself.
type NGO struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameCI    string             `bson:"name_ci" json:"-"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Logo      string             `bson:"logo,omitempty" json:"logo,omitempty"`
	ShortInfo string             `bson:"short_info" json:"shortInfo"`
	Founded   string             `bson:"founded" json:"founded"`
	Founder   string             `bson:"founder" json:"founder"`
	Aim       string             `bson:"aim" json:"aim"`
	Location  string             `bson:"location" json:"location"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`

	Achievements []string `bson:"achievements" json:"achievements"`
	Categories   []string `bson:"categories" json:"categories"`

	// Campaigns is the denormalized list of owned campaign ids, appended on
	// campaign creation. Owner-scoped reads query campaigns by their owner
	// field instead of trusting this list.
	Campaigns []primitive.ObjectID `bson:"campaigns" json:"campaigns"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
