// internal/services/donation_service.go
package services

import (
	"context"
	"time"

	"donation-backend/internal/models"
	"donation-backend/internal/repository"
	apperrors "donation-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
)

type DonationService interface {
	Create(ctx context.Context, req *models.CreateDonationRequest) (*models.Donation, error)
	List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error)
	GetByID(ctx context.Context, id string) (*models.Donation, error)
	GetByDonor(ctx context.Context, donorID string) ([]models.Donation, error)
	GetByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error)
	GetByCharity(ctx context.Context, charityID string) ([]models.Donation, error)
	Update(ctx context.Context, id string, req *models.UpdateDonationRequest) (*models.Donation, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateDonationStatusRequest) (*models.Donation, error)
	Delete(ctx context.Context, id string) error
	DonorStats(ctx context.Context, donorID string) (*models.DonorStatsResponse, error)
	CampaignStats(ctx context.Context, campaignID string) (*models.CampaignStatsResponse, error)
}

type donationService struct {
	donationRepo repository.DonationRepository
	now          func() time.Time
}

func NewDonationService(donationRepo repository.DonationRepository) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		now:          time.Now,
	}
}

func (s *donationService) Create(ctx context.Context, req *models.CreateDonationRequest) (*models.Donation, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	donation := req.ToDonation(s.now())
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

func (s *donationService) List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	return s.donationRepo.GetAll(ctx, filter)
}

func (s *donationService) GetByID(ctx context.Context, id string) (*models.Donation, error) {
	oid, err := parseObjectID("donation", id)
	if err != nil {
		return nil, err
	}
	return s.donationRepo.GetByID(ctx, oid)
}

func (s *donationService) GetByDonor(ctx context.Context, donorID string) ([]models.Donation, error) {
	return s.donationRepo.GetByDonor(ctx, donorID)
}

func (s *donationService) GetByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error) {
	return s.donationRepo.GetByCampaign(ctx, campaignID)
}

func (s *donationService) GetByCharity(ctx context.Context, charityID string) ([]models.Donation, error) {
	return s.donationRepo.GetByCharity(ctx, charityID)
}

func (s *donationService) Update(ctx context.Context, id string, req *models.UpdateDonationRequest) (*models.Donation, error) {
	oid, err := parseObjectID("donation", id)
	if err != nil {
		return nil, err
	}

	update := req.Updates()
	update["updatedAt"] = s.now()

	return s.donationRepo.Update(ctx, oid, update)
}

func (s *donationService) UpdateStatus(ctx context.Context, id string, req *models.UpdateDonationStatusRequest) (*models.Donation, error) {
	oid, err := parseObjectID("donation", id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	update := bson.M{
		"status":    req.Status,
		"updatedAt": s.now(),
	}

	return s.donationRepo.Update(ctx, oid, update)
}

func (s *donationService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID("donation", id)
	if err != nil {
		return err
	}
	return s.donationRepo.Delete(ctx, oid)
}

// DonorStats reduces the donor's full donation list into aggregate figures.
// "This month" is evaluated against wall-clock now at request time.
func (s *donationService) DonorStats(ctx context.Context, donorID string) (*models.DonorStatsResponse, error) {
	donations, err := s.donationRepo.GetByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	campaigns := make(map[string]struct{})

	stats := &models.DonorStatsResponse{
		DonorID:       donorID,
		DonationCount: len(donations),
	}
	for _, d := range donations {
		stats.TotalDonated += d.Amount
		campaigns[d.CampaignID] = struct{}{}
		if d.CreatedAt.Year() == now.Year() && d.CreatedAt.Month() == now.Month() {
			stats.ThisMonth += d.Amount
		}
	}
	stats.CampaignsSupported = len(campaigns)
	stats.Impact = int(stats.TotalDonated / 1000)

	return stats, nil
}

func (s *donationService) CampaignStats(ctx context.Context, campaignID string) (*models.CampaignStatsResponse, error) {
	donations, err := s.donationRepo.GetByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	donors := make(map[string]struct{})

	stats := &models.CampaignStatsResponse{
		CampaignID:    campaignID,
		DonationCount: len(donations),
	}
	for _, d := range donations {
		stats.TotalAmount += d.Amount
		donors[d.DonorID] = struct{}{}
	}
	stats.DonorCount = len(donors)

	return stats, nil
}
