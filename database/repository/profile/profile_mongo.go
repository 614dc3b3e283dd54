package profileRepo

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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.MongoClient.Database("urbpaddle").Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "residentCommunityId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its unique ID.
func (r *MongoProfileRepo) GetByID(id string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// Create inserts a new profile record.
func (r *MongoProfileRepo) Create(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// UpsertDevice registers or refreshes a device on a profile. An existing
// device with the same deviceId is replaced in place.
func (r *MongoProfileRepo) UpsertDevice(profileID string, device models.Device) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	device.LastSeen = time.Now()

	// Try to update an existing device entry first.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": profileID, "devices.deviceId": device.DeviceID},
		bson.M{"$set": bson.M{"devices.$": device, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update device for profile %s: %w", profileID, err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	res, err = r.coll.UpdateOne(ctx,
		bson.M{"id": profileID},
		bson.M{"$push": bson.M{"devices": device}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to add device for profile %s: %w", profileID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("failed to add device: profile %s not found: %w", profileID, mongo.ErrNoDocuments)
	}
	return nil
}

// PushTokensFor returns every registered push token of one profile.
func (r *MongoProfileRepo) PushTokensFor(id string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"devices": 1})
	var profile models.Profile
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		// An unknown recipient simply has no addresses.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch devices for profile %s: %w", id, err)
	}
	return profile.PushTokens(), nil
}

// MembersOf returns the profile ids of every resident of a community.
func (r *MongoProfileRepo) MembersOf(communityID string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"residentCommunityId": communityID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of community %s: %w", communityID, err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var profile models.Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, fmt.Errorf("failed to decode community member: %w", err)
		}
		ids = append(ids, profile.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members of community %s: %w", communityID, err)
	}
	return ids, nil
}

// DisplayName returns the presentation name for a profile, preferring the
// full name over the username.
func (r *MongoProfileRepo) DisplayName(id string) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"fullName": 1, "username": 1})
	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&profile); err != nil {
		return "", fmt.Errorf("failed to fetch display name for profile %s: %w", id, err)
	}
	if profile.FullName != "" {
		return profile.FullName, nil
	}
	return profile.Username, nil
}
