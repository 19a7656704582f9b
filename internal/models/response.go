// internal/models/response.go
package models

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DonorStatsResponse is computed on demand from a donor's donation list.
type DonorStatsResponse struct {
	DonorID            string  `json:"donorId"`
	TotalDonated       float64 `json:"totalDonated"`
	CampaignsSupported int     `json:"campaignsSupported"`
	DonationCount      int     `json:"donationCount"`
	ThisMonth          float64 `json:"thisMonth"`
	Impact             int     `json:"impact"`
}

// CampaignStatsResponse is computed on demand from a campaign's donation list.
type CampaignStatsResponse struct {
	CampaignID    string  `json:"campaignId"`
	TotalAmount   float64 `json:"totalAmount"`
	DonorCount    int     `json:"donorCount"`
	DonationCount int     `json:"donationCount"`
}
