// internal/repository/interfaces.go
package repository

import (
	"context"

	"donation-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetAll(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Campaign, error)
	IncrementProgress(ctx context.Context, id primitive.ObjectID, amount float64, donorIncrement int) (*models.Campaign, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	GetAll(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error)
	GetByDonor(ctx context.Context, donorID string) ([]models.Donation, error)
	GetByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error)
	GetByCharity(ctx context.Context, charityID string) ([]models.Donation, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Donation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
