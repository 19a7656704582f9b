// internal/services/donation_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"donation-backend/internal/models"
	apperrors "donation-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDonationRepo struct {
	calls     int
	donations []models.Donation
	err       error
}

func (f *fakeDonationRepo) Create(ctx context.Context, donation *models.Donation) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	donation.ID = primitive.NewObjectID()
	return nil
}

func (f *fakeDonationRepo) GetAll(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	f.calls++
	return f.donations, f.err
}

func (f *fakeDonationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &f.donations[0], nil
}

func (f *fakeDonationRepo) GetByDonor(ctx context.Context, donorID string) ([]models.Donation, error) {
	f.calls++
	return f.donations, f.err
}

func (f *fakeDonationRepo) GetByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error) {
	f.calls++
	return f.donations, f.err
}

func (f *fakeDonationRepo) GetByCharity(ctx context.Context, charityID string) ([]models.Donation, error) {
	f.calls++
	return f.donations, f.err
}

func (f *fakeDonationRepo) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Donation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &f.donations[0], nil
}

func (f *fakeDonationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.calls++
	return f.err
}

func newDonationServiceAt(repo *fakeDonationRepo, now time.Time) *donationService {
	return &donationService{
		donationRepo: repo,
		now:          func() time.Time { return now },
	}
}

func TestDonationServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateDonationRequest
	}{
		{"missing donorId", models.CreateDonationRequest{CampaignID: "c1", Amount: 100}},
		{"missing campaignId", models.CreateDonationRequest{DonorID: "d1", Amount: 100}},
		{"missing amount", models.CreateDonationRequest{DonorID: "d1", CampaignID: "c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeDonationRepo{}
			svc := NewDonationService(repo)

			_, err := svc.Create(context.Background(), &tt.req)

			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrValidation))
			assert.Equal(t, 0, repo.calls)
		})
	}
}

func TestDonationServiceCreateAppliesDefaults(t *testing.T) {
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo)

	donation, err := svc.Create(context.Background(), &models.CreateDonationRequest{
		DonorID:    "d1",
		CampaignID: "c1",
		Amount:     250,
	})

	require.NoError(t, err)
	assert.Equal(t, "BDT", donation.Currency)
	assert.Equal(t, "bkash", donation.PaymentMethod)
	assert.Equal(t, "completed", donation.Status)
	assert.False(t, donation.Anonymous)
	assert.False(t, donation.ID.IsZero())
}

func TestDonationServiceDonorStats(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	lastMonth := now.AddDate(0, -1, 0)

	repo := &fakeDonationRepo{donations: []models.Donation{
		{Amount: 100, CampaignID: "A", CreatedAt: now},
		{Amount: 200, CampaignID: "A", CreatedAt: now},
		{Amount: 50, CampaignID: "B", CreatedAt: lastMonth},
	}}
	svc := newDonationServiceAt(repo, now)

	stats, err := svc.DonorStats(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "d1", stats.DonorID)
	assert.Equal(t, float64(350), stats.TotalDonated)
	assert.Equal(t, 2, stats.CampaignsSupported)
	assert.Equal(t, 3, stats.DonationCount)
	assert.Equal(t, float64(300), stats.ThisMonth)
	assert.Equal(t, 0, stats.Impact)
}

func TestDonationServiceDonorStatsImpactFloors(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeDonationRepo{donations: []models.Donation{
		{Amount: 2999, CampaignID: "A", CreatedAt: now},
	}}
	svc := newDonationServiceAt(repo, now)

	stats, err := svc.DonorStats(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Impact)
}

func TestDonationServiceDonorStatsEmpty(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{})

	stats, err := svc.DonorStats(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, float64(0), stats.TotalDonated)
	assert.Equal(t, 0, stats.CampaignsSupported)
	assert.Equal(t, 0, stats.DonationCount)
	assert.Equal(t, 0, stats.Impact)
}

func TestDonationServiceCampaignStats(t *testing.T) {
	repo := &fakeDonationRepo{donations: []models.Donation{
		{Amount: 1000, DonorID: "X"},
		{Amount: 2000, DonorID: "X"},
		{Amount: 500, DonorID: "Y"},
	}}
	svc := NewDonationService(repo)

	stats, err := svc.CampaignStats(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", stats.CampaignID)
	assert.Equal(t, float64(3500), stats.TotalAmount)
	assert.Equal(t, 2, stats.DonorCount)
	assert.Equal(t, 3, stats.DonationCount)
}

func TestDonationServiceRejectsMalformedID(t *testing.T) {
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "bogus")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrInvalidID))

	err = svc.Delete(ctx, "bogus")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrInvalidID))

	assert.Equal(t, 0, repo.calls)
}

func TestDonationServiceDeleteMissingDonation(t *testing.T) {
	repo := &fakeDonationRepo{err: apperrors.NewDonationNotFoundError()}
	svc := NewDonationService(repo)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())

	require.Error(t, err)
	assert.Equal(t, 404, apperrors.GetStatusCode(err))
}
