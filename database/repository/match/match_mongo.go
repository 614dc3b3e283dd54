package matchRepo

import (
	"context"
	"fmt"
	"time"

	"urbpaddle/database"
	"urbpaddle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMatchRepo implements MatchRepository using MongoDB.
type MongoMatchRepo struct {
	coll *mongo.Collection
}

// NewMongoMatchRepo creates a new instance of MatchRepository using MongoDB.
func NewMongoMatchRepo() MatchRepository {
	coll := database.MongoClient.Database("urbpaddle").Collection("matches")
	repo := &MongoMatchRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMatchRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "communityId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a match by its unique ID.
func (r *MongoMatchRepo) GetByID(id string) (*models.Match, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var match models.Match
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&match); err != nil {
		return nil, fmt.Errorf("failed to fetch match with id %s: %w", id, err)
	}
	return &match, nil
}

// Create inserts a new match record.
func (r *MongoMatchRepo) Create(match *models.Match) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	match.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, match); err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}
