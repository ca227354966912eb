package userRepo

import (
	"context"
	"fmt"
	"time"

	"sanyukt/config"
	"sanyukt/database"
	"sanyukt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database(config.AppConfig.MongoDBName).Collection("users")
	repo := &MongoUserRepo{coll: coll}

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
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "firebaseUid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "employmentType", Value: 1}}},
		{Keys: bson.D{{Key: "profileCompletion", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a user by internal id.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByFirebaseUID retrieves a user by the identity-provider subject id.
func (r *MongoUserRepo) GetByFirebaseUID(uid string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"firebaseUid": uid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with firebaseUid %s: %w", uid, err)
	}
	return &user, nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateFields applies an atomic $set/$unset to one user document. Concurrent
// updates to the same document serialize on the single findOneAndUpdate;
// last write wins.
func (r *MongoUserRepo) UpdateFields(id string, set bson.M, unset []string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if set == nil {
		set = bson.M{}
	}
	set["updatedAt"] = time.Now()

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		unsetDoc := bson.M{}
		for _, f := range unset {
			unsetDoc[f] = ""
		}
		update["$unset"] = unsetDoc
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return &updated, nil
}

// CountUsers returns the total number of members.
func (r *MongoUserRepo) CountUsers() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountByMinCompletion counts members with a completion score >= min.
func (r *MongoUserRepo) CountByMinCompletion(min int) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"profileCompletion": bson.M{"$gte": min}})
	if err != nil {
		return 0, fmt.Errorf("failed to count complete profiles: %w", err)
	}
	return n, nil
}
