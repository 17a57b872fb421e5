package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer is an individual who registers for campaigns.
//
// The password field holds the bcrypt hash and is never serialized to JSON;
// every outbound projection of a volunteer goes through this struct, so the
// json:"-" tag is the single place the exclusion is enforced.
type Volunteer struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FullName         string               `bson:"full_name" json:"fullName"`
	Email            string               `bson:"email" json:"email"` // lowercased + trimmed before store
	Password         string               `bson:"password" json:"-"`
	Age              int                  `bson:"age" json:"age"`
	DateOfBirth      time.Time            `bson:"date_of_birth" json:"dateOfBirth"`
	CompanyOrCollege string               `bson:"company_or_college,omitempty" json:"companyOrCollege,omitempty"`
	MobileNumber     string               `bson:"mobile_number" json:"mobileNumber"`

	// RegisteredCampaigns is the denormalized back-reference side of campaign
	// registration. The campaigns collection is authoritative; see the
	// campaign store for the dual-write behavior.
	RegisteredCampaigns []primitive.ObjectID `bson:"registered_campaigns" json:"registeredCampaigns"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
