// internal/models/donation.go
package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Donation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DonorID       string             `bson:"donorId" json:"donorId"`
	CampaignID    string             `bson:"campaignId" json:"campaignId"`
	Amount        float64            `bson:"amount" json:"amount"`
	DonorEmail    string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	DonorName     string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	CampaignTitle string             `bson:"campaignTitle,omitempty" json:"campaignTitle,omitempty"`
	CharityID     string             `bson:"charityId,omitempty" json:"charityId,omitempty"`
	CharityName   string             `bson:"charityName,omitempty" json:"charityName,omitempty"`
	Currency      string             `bson:"currency" json:"currency"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Anonymous     bool               `bson:"anonymous" json:"anonymous"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DonationFilter holds the supported list-query constraints.
type DonationFilter struct {
	DonorID    string
	CampaignID string
	CharityID  string
	Status     string
	Search     string
}

type CreateDonationRequest struct {
	DonorID       string  `json:"donorId"`
	CampaignID    string  `json:"campaignId"`
	Amount        float64 `json:"amount"`
	DonorEmail    string  `json:"donorEmail"`
	DonorName     string  `json:"donorName"`
	CampaignTitle string  `json:"campaignTitle"`
	CharityID     string  `json:"charityId"`
	CharityName   string  `json:"charityName"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
	Anonymous     bool    `json:"anonymous"`
	Status        string  `json:"status"`
}

func (r *CreateDonationRequest) Validate() error {
	if strings.TrimSpace(r.DonorID) == "" {
		return errors.New("donorId is required")
	}
	if strings.TrimSpace(r.CampaignID) == "" {
		return errors.New("campaignId is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount is required")
	}
	return nil
}

func (r *CreateDonationRequest) ToDonation(now time.Time) *Donation {
	donation := &Donation{
		DonorID:       r.DonorID,
		CampaignID:    r.CampaignID,
		Amount:        r.Amount,
		DonorEmail:    r.DonorEmail,
		DonorName:     r.DonorName,
		CampaignTitle: r.CampaignTitle,
		CharityID:     r.CharityID,
		CharityName:   r.CharityName,
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
		Anonymous:     r.Anonymous,
		Status:        r.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if donation.Currency == "" {
		donation.Currency = "BDT"
	}
	if donation.PaymentMethod == "" {
		donation.PaymentMethod = "bkash"
	}
	if donation.Status == "" {
		donation.Status = "completed"
	}

	return donation
}

// UpdateDonationRequest carries a partial update; nil fields are left untouched.
type UpdateDonationRequest struct {
	DonorID       *string  `json:"donorId"`
	CampaignID    *string  `json:"campaignId"`
	Amount        *float64 `json:"amount"`
	DonorEmail    *string  `json:"donorEmail"`
	DonorName     *string  `json:"donorName"`
	CampaignTitle *string  `json:"campaignTitle"`
	CharityID     *string  `json:"charityId"`
	CharityName   *string  `json:"charityName"`
	Currency      *string  `json:"currency"`
	PaymentMethod *string  `json:"paymentMethod"`
	TransactionID *string  `json:"transactionId"`
	Anonymous     *bool    `json:"anonymous"`
	Status        *string  `json:"status"`
}

// Updates builds the $set document from the fields that were supplied.
func (r *UpdateDonationRequest) Updates() bson.M {
	updates := bson.M{}
	if r.DonorID != nil {
		updates["donorId"] = *r.DonorID
	}
	if r.CampaignID != nil {
		updates["campaignId"] = *r.CampaignID
	}
	if r.Amount != nil {
		updates["amount"] = *r.Amount
	}
	if r.DonorEmail != nil {
		updates["donorEmail"] = *r.DonorEmail
	}
	if r.DonorName != nil {
		updates["donorName"] = *r.DonorName
	}
	if r.CampaignTitle != nil {
		updates["campaignTitle"] = *r.CampaignTitle
	}
	if r.CharityID != nil {
		updates["charityId"] = *r.CharityID
	}
	if r.CharityName != nil {
		updates["charityName"] = *r.CharityName
	}
	if r.Currency != nil {
		updates["currency"] = *r.Currency
	}
	if r.PaymentMethod != nil {
		updates["paymentMethod"] = *r.PaymentMethod
	}
	if r.TransactionID != nil {
		updates["transactionId"] = *r.TransactionID
	}
	if r.Anonymous != nil {
		updates["anonymous"] = *r.Anonymous
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}

type UpdateDonationStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateDonationStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return errors.New("status is required")
	}
	return nil
}
