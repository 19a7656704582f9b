// internal/database/indexes.go
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	zap.L().Debug("Creating database indexes")

	// The unique email index makes user creation a single atomic
	// insert-if-absent instead of a racy check-then-insert.
	usersCollection := m.GetCollection("users")
	if err := m.createUsersIndexes(ctx, usersCollection); err != nil {
		return err
	}

	donationsCollection := m.GetCollection("donations")
	if err := m.createDonationsIndexes(ctx, donationsCollection); err != nil {
		return err
	}

	zap.L().Info("Database indexes created successfully")
	return nil
}

func (m *MongoDB) createUsersIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (m *MongoDB) createDonationsIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "donorId", Value: 1}}},
		{Keys: bson.D{{Key: "campaignId", Value: 1}}},
		{Keys: bson.D{{Key: "charityId", Value: 1}}},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
