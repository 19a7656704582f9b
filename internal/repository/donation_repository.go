// internal/repository/donation_repository.go
package repository

import (
	"context"
	"errors"
	"regexp"

	"donation-backend/internal/models"
	apperrors "donation-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type donationRepository struct {
	collection *mongo.Collection
}

func NewDonationRepository(collection *mongo.Collection) DonationRepository {
	return &donationRepository{
		collection: collection,
	}
}

func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	result, err := r.collection.InsertOne(ctx, donation)
	if err != nil {
		return err
	}

	donation.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func buildDonationQuery(filter models.DonationFilter) bson.M {
	query := bson.M{}
	if filter.DonorID != "" {
		query["donorId"] = filter.DonorID
	}
	if filter.CampaignID != "" {
		query["campaignId"] = filter.CampaignID
	}
	if filter.CharityID != "" {
		query["charityId"] = filter.CharityID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = []bson.M{
			{"donorName": pattern},
			{"donorEmail": pattern},
			{"campaignTitle": pattern},
			{"charityName": pattern},
			{"transactionId": pattern},
		}
	}
	return query
}

func (r *donationRepository) GetAll(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	return r.find(ctx, buildDonationQuery(filter))
}

func (r *donationRepository) GetByDonor(ctx context.Context, donorID string) ([]models.Donation, error) {
	return r.find(ctx, bson.M{"donorId": donorID})
}

func (r *donationRepository) GetByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error) {
	return r.find(ctx, bson.M{"campaignId": campaignID})
}

func (r *donationRepository) GetByCharity(ctx context.Context, charityID string) ([]models.Donation, error) {
	return r.find(ctx, bson.M{"charityId": charityID})
}

func (r *donationRepository) find(ctx context.Context, query bson.M) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var donations []models.Donation
	if err = cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	var donation models.Donation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&donation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewDonationNotFoundError()
		}
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Donation, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var donation models.Donation
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&donation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewDonationNotFoundError()
		}
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.NewDonationNotFoundError()
	}
	return nil
}
