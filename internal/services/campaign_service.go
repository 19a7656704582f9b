// internal/services/campaign_service.go
package services

import (
	"context"
	"time"

	"donation-backend/internal/models"
	"donation-backend/internal/repository"
	apperrors "donation-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
)

type CampaignService interface {
	Create(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error)
	List(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	Update(ctx context.Context, id string, req *models.UpdateCampaignRequest) (*models.Campaign, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateCampaignStatusRequest) (*models.Campaign, error)
	IncrementProgress(ctx context.Context, id string, req *models.UpdateCampaignProgressRequest) (*models.Campaign, error)
	Delete(ctx context.Context, id string) error
}

type campaignService struct {
	campaignRepo repository.CampaignRepository
}

func NewCampaignService(campaignRepo repository.CampaignRepository) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
	}
}

func (s *campaignService) Create(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	campaign := req.ToCampaign(time.Now())
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (s *campaignService) List(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	return s.campaignRepo.GetAll(ctx, filter)
}

func (s *campaignService) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	oid, err := parseObjectID("campaign", id)
	if err != nil {
		return nil, err
	}
	return s.campaignRepo.GetByID(ctx, oid)
}

func (s *campaignService) Update(ctx context.Context, id string, req *models.UpdateCampaignRequest) (*models.Campaign, error) {
	oid, err := parseObjectID("campaign", id)
	if err != nil {
		return nil, err
	}

	update, err := req.Updates()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	update["updatedAt"] = time.Now()

	return s.campaignRepo.Update(ctx, oid, update)
}

func (s *campaignService) UpdateStatus(ctx context.Context, id string, req *models.UpdateCampaignStatusRequest) (*models.Campaign, error) {
	oid, err := parseObjectID("campaign", id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	update := bson.M{
		"status":    req.Status,
		"updatedAt": time.Now(),
	}

	return s.campaignRepo.Update(ctx, oid, update)
}

func (s *campaignService) IncrementProgress(ctx context.Context, id string, req *models.UpdateCampaignProgressRequest) (*models.Campaign, error) {
	oid, err := parseObjectID("campaign", id)
	if err != nil {
		return nil, err
	}
	return s.campaignRepo.IncrementProgress(ctx, oid, req.AmountOrDefault(), req.DonorIncrementOrDefault())
}

func (s *campaignService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID("campaign", id)
	if err != nil {
		return err
	}
	return s.campaignRepo.Delete(ctx, oid)
}
