// internal/models/campaign.go
package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Campaign struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	GoalAmount    float64            `bson:"goalAmount" json:"goalAmount"`
	Category      string             `bson:"category" json:"category"`
	EndDate       time.Time          `bson:"endDate" json:"endDate"`
	CharityID     string             `bson:"charityId" json:"charityId"`
	CharityName   string             `bson:"charityName,omitempty" json:"charityName,omitempty"`
	CharityEmail  string             `bson:"charityEmail,omitempty" json:"charityEmail,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	BankAccount   string             `bson:"bankAccount,omitempty" json:"bankAccount,omitempty"`
	Status        string             `bson:"status" json:"status"`
	CurrentAmount float64            `bson:"currentAmount" json:"currentAmount"`
	Donors        int                `bson:"donors" json:"donors"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Urgency       string             `bson:"urgency" json:"urgency"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CampaignFilter holds the supported list-query constraints.
type CampaignFilter struct {
	Status    string
	CharityID string
	Search    string
}

type CreateCampaignRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	GoalAmount   float64  `json:"goalAmount"`
	Category     string   `json:"category"`
	EndDate      string   `json:"endDate"`
	CharityID    string   `json:"charityId"`
	CharityName  string   `json:"charityName"`
	CharityEmail string   `json:"charityEmail"`
	Image        string   `json:"image"`
	BankAccount  string   `json:"bankAccount"`
	Status       string   `json:"status"`
	Tags         []string `json:"tags"`
	Urgency      string   `json:"urgency"`
}

func (r *CreateCampaignRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if r.GoalAmount <= 0 {
		return errors.New("goalAmount is required")
	}
	if strings.TrimSpace(r.EndDate) == "" {
		return errors.New("endDate is required")
	}
	if strings.TrimSpace(r.CharityID) == "" {
		return errors.New("charityId is required")
	}
	if _, err := ParseDate(r.EndDate); err != nil {
		return errors.New("endDate must be a valid date")
	}
	return nil
}

func (r *CreateCampaignRequest) ToCampaign(now time.Time) *Campaign {
	endDate, _ := ParseDate(r.EndDate)

	campaign := &Campaign{
		Title:         r.Title,
		Description:   r.Description,
		GoalAmount:    r.GoalAmount,
		Category:      r.Category,
		EndDate:       endDate,
		CharityID:     r.CharityID,
		CharityName:   r.CharityName,
		CharityEmail:  r.CharityEmail,
		Image:         r.Image,
		BankAccount:   r.BankAccount,
		Status:        r.Status,
		CurrentAmount: 0,
		Donors:        0,
		Tags:          r.Tags,
		Urgency:       r.Urgency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if campaign.Category == "" {
		campaign.Category = "general"
	}
	if campaign.Status == "" {
		campaign.Status = "pending"
	}
	if campaign.Urgency == "" {
		campaign.Urgency = "medium"
	}

	return campaign
}

// UpdateCampaignRequest carries a partial update; nil fields are left untouched.
type UpdateCampaignRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	GoalAmount    *float64  `json:"goalAmount"`
	Category      *string   `json:"category"`
	EndDate       *string   `json:"endDate"`
	CharityID     *string   `json:"charityId"`
	CharityName   *string   `json:"charityName"`
	CharityEmail  *string   `json:"charityEmail"`
	Image         *string   `json:"image"`
	BankAccount   *string   `json:"bankAccount"`
	Status        *string   `json:"status"`
	CurrentAmount *float64  `json:"currentAmount"`
	Donors        *int      `json:"donors"`
	Tags          *[]string `json:"tags"`
	Urgency       *string   `json:"urgency"`
}

// Updates builds the $set document from the fields that were supplied.
// EndDate is re-coerced to a date value.
func (r *UpdateCampaignRequest) Updates() (bson.M, error) {
	updates := bson.M{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.GoalAmount != nil {
		updates["goalAmount"] = *r.GoalAmount
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.EndDate != nil {
		endDate, err := ParseDate(*r.EndDate)
		if err != nil {
			return nil, errors.New("endDate must be a valid date")
		}
		updates["endDate"] = endDate
	}
	if r.CharityID != nil {
		updates["charityId"] = *r.CharityID
	}
	if r.CharityName != nil {
		updates["charityName"] = *r.CharityName
	}
	if r.CharityEmail != nil {
		updates["charityEmail"] = *r.CharityEmail
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.BankAccount != nil {
		updates["bankAccount"] = *r.BankAccount
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.CurrentAmount != nil {
		updates["currentAmount"] = *r.CurrentAmount
	}
	if r.Donors != nil {
		updates["donors"] = *r.Donors
	}
	if r.Tags != nil {
		updates["tags"] = *r.Tags
	}
	if r.Urgency != nil {
		updates["urgency"] = *r.Urgency
	}
	return updates, nil
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateCampaignStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return errors.New("status is required")
	}
	return nil
}

// UpdateCampaignProgressRequest increments currentAmount and donors.
// Amount defaults to 0 and DonorIncrement to 1 when omitted.
type UpdateCampaignProgressRequest struct {
	Amount         *float64 `json:"amount"`
	DonorIncrement *int     `json:"donorIncrement"`
}

func (r *UpdateCampaignProgressRequest) AmountOrDefault() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

func (r *UpdateCampaignProgressRequest) DonorIncrementOrDefault() int {
	if r.DonorIncrement == nil {
		return 1
	}
	return *r.DonorIncrement
}

// ParseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
