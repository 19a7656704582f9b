// internal/services/campaign_service_test.go
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

type fakeCampaignRepo struct {
	calls              int
	lastUpdate         bson.M
	lastAmount         float64
	lastDonorIncrement int
	campaign           *models.Campaign
	err                error
}

func (f *fakeCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	campaign.ID = primitive.NewObjectID()
	return nil
}

func (f *fakeCampaignRepo) GetAll(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeCampaignRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.campaign, nil
}

func (f *fakeCampaignRepo) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Campaign, error) {
	f.calls++
	f.lastUpdate = update
	if f.err != nil {
		return nil, f.err
	}
	return f.campaign, nil
}

func (f *fakeCampaignRepo) IncrementProgress(ctx context.Context, id primitive.ObjectID, amount float64, donorIncrement int) (*models.Campaign, error) {
	f.calls++
	f.lastAmount = amount
	f.lastDonorIncrement = donorIncrement
	if f.err != nil {
		return nil, f.err
	}
	return f.campaign, nil
}

func (f *fakeCampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.calls++
	return f.err
}

func validCampaignRequest() *models.CreateCampaignRequest {
	return &models.CreateCampaignRequest{
		Title:       "Flood Relief",
		Description: "Emergency flood relief for Sylhet",
		GoalAmount:  500000,
		EndDate:     "2026-12-31",
		CharityID:   "charity-1",
	}
}

func TestCampaignServiceCreateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateCampaignRequest)
	}{
		{"missing title", func(r *models.CreateCampaignRequest) { r.Title = "" }},
		{"missing description", func(r *models.CreateCampaignRequest) { r.Description = "" }},
		{"missing goalAmount", func(r *models.CreateCampaignRequest) { r.GoalAmount = 0 }},
		{"missing endDate", func(r *models.CreateCampaignRequest) { r.EndDate = "" }},
		{"missing charityId", func(r *models.CreateCampaignRequest) { r.CharityID = "" }},
		{"unparseable endDate", func(r *models.CreateCampaignRequest) { r.EndDate = "soon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCampaignRepo{}
			svc := NewCampaignService(repo)

			req := validCampaignRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrValidation))
			assert.Equal(t, 0, repo.calls)
		})
	}
}

func TestCampaignServiceCreateAppliesDefaults(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := NewCampaignService(repo)

	campaign, err := svc.Create(context.Background(), validCampaignRequest())

	require.NoError(t, err)
	assert.Equal(t, "general", campaign.Category)
	assert.Equal(t, "pending", campaign.Status)
	assert.Equal(t, "medium", campaign.Urgency)
	assert.Equal(t, float64(0), campaign.CurrentAmount)
	assert.Equal(t, 0, campaign.Donors)
	assert.Equal(t, time.December, campaign.EndDate.Month())
	assert.False(t, campaign.ID.IsZero())
}

func TestCampaignServiceProgressDefaults(t *testing.T) {
	repo := &fakeCampaignRepo{campaign: &models.Campaign{}}
	svc := NewCampaignService(repo)

	_, err := svc.IncrementProgress(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateCampaignProgressRequest{})

	require.NoError(t, err)
	assert.Equal(t, float64(0), repo.lastAmount)
	assert.Equal(t, 1, repo.lastDonorIncrement)
}

func TestCampaignServiceProgressPassesIncrements(t *testing.T) {
	repo := &fakeCampaignRepo{campaign: &models.Campaign{}}
	svc := NewCampaignService(repo)

	amount := 500.0
	donors := 2
	_, err := svc.IncrementProgress(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateCampaignProgressRequest{
		Amount:         &amount,
		DonorIncrement: &donors,
	})

	require.NoError(t, err)
	assert.Equal(t, 500.0, repo.lastAmount)
	assert.Equal(t, 2, repo.lastDonorIncrement)
}

func TestCampaignServiceUpdateStatusRequiresStatus(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := NewCampaignService(repo)

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateCampaignStatusRequest{})

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrValidation))
	assert.Equal(t, 0, repo.calls)
}

func TestCampaignServiceUpdateRecoercesEndDate(t *testing.T) {
	repo := &fakeCampaignRepo{campaign: &models.Campaign{}}
	svc := NewCampaignService(repo)

	endDate := "2027-01-15"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateCampaignRequest{
		EndDate: &endDate,
	})

	require.NoError(t, err)
	parsed, ok := repo.lastUpdate["endDate"].(time.Time)
	require.True(t, ok, "endDate must be stored as a date value")
	assert.Equal(t, 2027, parsed.Year())

	badDate := "never"
	_, err = svc.Update(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateCampaignRequest{
		EndDate: &badDate,
	})
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrValidation))
}

func TestCampaignServiceDeleteRejectsMalformedID(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := NewCampaignService(repo)

	err := svc.Delete(context.Background(), "zzz")

	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrInvalidID))
	assert.Equal(t, 0, repo.calls)
}
