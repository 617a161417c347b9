package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahmed-shaon/tasty-kitchen-server/models"
)

// MongoMenuRepository backs MenuRepository with a MongoDB collection.
type MongoMenuRepository struct {
	col *mongo.Collection
}

func NewMongoMenuRepository(col *mongo.Collection) *MongoMenuRepository {
	return &MongoMenuRepository{col: col}
}

func (r *MongoMenuRepository) List(ctx context.Context, limit int64) ([]models.MenuItem, error) {
	// ObjectIDs embed the creation time, so sorting on _id descending
	// gives most-recently-created first.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}
	return items, nil
}

func (r *MongoMenuRepository) Get(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	var item models.MenuItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (r *MongoMenuRepository) Create(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert menu item: %w", err)
	}
	return item.ID, nil
}

// MongoReviewRepository backs ReviewRepository with a MongoDB collection.
type MongoReviewRepository struct {
	col *mongo.Collection
}

func NewMongoReviewRepository(col *mongo.Collection) *MongoReviewRepository {
	return &MongoReviewRepository{col: col}
}

func (r *MongoReviewRepository) ListByItem(ctx context.Context, itemID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{"itemId": itemID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews by item: %w", err)
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepository) ListByEmail(ctx context.Context, email string) ([]models.Review, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list reviews by email: %w", err)
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Create(ctx context.Context, review models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, review); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert review: %w", err)
	}
	return review.ID, nil
}

func (r *MongoReviewRepository) Update(ctx context.Context, id primitive.ObjectID, update models.ReviewUpdate, upsert bool) (UpdateResult, error) {
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "rating", Value: *update.Rating})
	updateObj = append(updateObj, bson.E{Key: "message", Value: *update.Message})

	opts := options.Update().SetUpsert(upsert)
	filter := bson.M{"_id": id}

	result, err := r.col.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateObj}}, opts)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update review: %w", err)
	}
	if !upsert && result.MatchedCount == 0 {
		return UpdateResult{}, ErrNotFound
	}

	return UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

func (r *MongoReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete review: %w", err)
	}
	if result.DeletedCount == 0 {
		return 0, ErrNotFound
	}
	return result.DeletedCount, nil
}
