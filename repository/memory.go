package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmed-shaon/tasty-kitchen-server/models"
)

// MemoryMenuRepository is an in-memory MenuRepository. It exists for tests
// and mirrors the Mongo implementation's ordering semantics.
type MemoryMenuRepository struct {
	mu    sync.Mutex
	items []models.MenuItem
}

func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{}
}

func (r *MemoryMenuRepository) List(_ context.Context, limit int64) ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first: reverse insertion order.
	out := make([]models.MenuItem, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryMenuRepository) Get(_ context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (r *MemoryMenuRepository) Create(_ context.Context, item models.MenuItem) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = primitive.NewObjectID()
	r.items = append(r.items, item)
	return item.ID, nil
}

// MemoryReviewRepository is an in-memory ReviewRepository for tests.
type MemoryReviewRepository struct {
	mu      sync.Mutex
	reviews []models.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{}
}

func (r *MemoryReviewRepository) ListByItem(_ context.Context, itemID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Review{}
	for _, rev := range r.reviews {
		if rev.ItemID == itemID {
			out = append(out, rev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryReviewRepository) ListByEmail(_ context.Context, email string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Review{}
	for _, rev := range r.reviews {
		if rev.Email == email {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *MemoryReviewRepository) Create(_ context.Context, review models.Review) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = primitive.NewObjectID()
	r.reviews = append(r.reviews, review)
	return review.ID, nil
}

func (r *MemoryReviewRepository) Update(_ context.Context, id primitive.ObjectID, update models.ReviewUpdate, upsert bool) (UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			modified := int64(0)
			if r.reviews[i].Rating != *update.Rating || r.reviews[i].Message != *update.Message {
				modified = 1
			}
			r.reviews[i].Rating = *update.Rating
			r.reviews[i].Message = *update.Message
			return UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}

	if !upsert {
		return UpdateResult{}, ErrNotFound
	}

	// Upsert path: the store creates a document holding only the filter id
	// and the $set fields.
	r.reviews = append(r.reviews, models.Review{
		ID:      id,
		Rating:  *update.Rating,
		Message: *update.Message,
	})
	return UpdateResult{UpsertedID: id}, nil
}

func (r *MemoryReviewRepository) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return 1, nil
		}
	}
	return 0, ErrNotFound
}
