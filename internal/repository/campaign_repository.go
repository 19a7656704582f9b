// internal/repository/campaign_repository.go
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"donation-backend/internal/models"
	apperrors "donation-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type campaignRepository struct {
	collection *mongo.Collection
}

func NewCampaignRepository(collection *mongo.Collection) CampaignRepository {
	return &campaignRepository{
		collection: collection,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	result, err := r.collection.InsertOne(ctx, campaign)
	if err != nil {
		return err
	}

	campaign.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// buildCampaignQuery translates the filter into a Mongo query document.
// Search is a case-insensitive substring match OR'd across the text fields.
func buildCampaignQuery(filter models.CampaignFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CharityID != "" {
		query["charityId"] = filter.CharityID
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
			{"category": pattern},
			{"charityName": pattern},
		}
	}
	return query
}

func (r *campaignRepository) GetAll(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, buildCampaignQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var campaigns []models.Campaign
	if err = cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewCampaignNotFoundError()
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Campaign, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var campaign models.Campaign
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&campaign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewCampaignNotFoundError()
		}
		return nil, err
	}
	return &campaign, nil
}

// IncrementProgress applies both counters in one $inc so concurrent
// donations never clobber each other's updates.
func (r *campaignRepository) IncrementProgress(ctx context.Context, id primitive.ObjectID, amount float64, donorIncrement int) (*models.Campaign, error) {
	update := bson.M{
		"$inc": bson.M{
			"currentAmount": amount,
			"donors":        donorIncrement,
		},
		"$set": bson.M{
			"updatedAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var campaign models.Campaign
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&campaign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewCampaignNotFoundError()
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.NewCampaignNotFoundError()
	}
	return nil
}
