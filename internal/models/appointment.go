package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a public appointment request. Records are append-only:
// there are no update or delete endpoints.
type Appointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string             `bson:"phone" json:"phone"`
	Service       string             `bson:"service" json:"service"`
	PreferredDate string             `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"`
	PreferredTime string             `bson:"preferredTime,omitempty" json:"preferredTime,omitempty"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
