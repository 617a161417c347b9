package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmed-shaon/tasty-kitchen-server/models"
)

// ErrNotFound is returned when an identifier-keyed operation matches no
// document. Controllers translate it to a 404.
var ErrNotFound = errors.New("document not found")

// UpdateResult mirrors the fields of the store's update result that the
// API exposes to callers.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// MenuRepository is the menu catalog's persistence surface. A limit of 0
// means unbounded; listings are newest-first.
type MenuRepository interface {
	List(ctx context.Context, limit int64) ([]models.MenuItem, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error)
}

// ReviewRepository is the review persistence surface. ListByItem sorts by
// review date ascending; ListByEmail returns insertion order. Update only
// ever touches rating and message; upsert must be requested explicitly.
type ReviewRepository interface {
	ListByItem(ctx context.Context, itemID string) ([]models.Review, error)
	ListByEmail(ctx context.Context, email string) ([]models.Review, error)
	Create(ctx context.Context, review models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.ReviewUpdate, upsert bool) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
