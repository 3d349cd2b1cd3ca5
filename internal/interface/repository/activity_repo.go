package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
)

// MongoActivityRepository implements the ActivityRepository interface
type MongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new MongoDB activity repository
func NewMongoActivityRepository(db *mongo.Database) repository.ActivityRepository {
	collection := db.Collection("activities")

	// Create indexes for better performance
	ctx := context.Background()

	// Index on occurredAt for recency queries
	occurredAtIndex := mongo.IndexModel{
		Keys: bson.M{"occurredAt": -1},
	}

	// Compound index for per-collection history
	collectionIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "collection", Value: 1},
			{Key: "occurredAt", Value: -1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		occurredAtIndex,
		collectionIndex,
	})

	return &MongoActivityRepository{
		collection: collection,
	}
}

// Record saves one audit entry
func (r *MongoActivityRepository) Record(ctx context.Context, activity *entity.Activity) error {
	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, activity)
	return err
}

// ListRecent returns the newest audit entries first
func (r *MongoActivityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "occurredAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []*entity.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}
