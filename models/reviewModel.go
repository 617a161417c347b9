package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer review of a menu item. ItemID is a loose reference:
// it is never checked against the menu collection, matching the behavior of
// the web app this backend serves. Email doubles as the ownership key for
// the identity-scoped listing.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ItemID  string             `bson:"itemId" json:"itemId" validate:"required"`
	Email   string             `bson:"email" json:"email" validate:"required,email"`
	Rating  float64            `bson:"rating" json:"rating" validate:"required,gte=0,lte=5"`
	Message string             `bson:"message" json:"message" validate:"required"`
	Date    time.Time          `bson:"date" json:"date"`
}

// ReviewUpdate is the editable subset of a review. Pointers so that a zero
// rating in the body is distinguishable from an absent field.
type ReviewUpdate struct {
	Rating  *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Message *string  `json:"message" validate:"required"`
}
