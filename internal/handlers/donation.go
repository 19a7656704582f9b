// internal/handlers/donation.go
package handlers

import (
	"net/http"

	"donation-backend/internal/models"
	"donation-backend/internal/services"
	"donation-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type DonationHandler struct {
	donationService services.DonationService
}

func NewDonationHandler(donationService services.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDonationRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	donation, err := h.donationService.Create(r.Context(), &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusCreated, donation)
}

func (h *DonationHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	filter := models.DonationFilter{
		DonorID:    r.URL.Query().Get("donorId"),
		CampaignID: r.URL.Query().Get("campaignId"),
		CharityID:  r.URL.Query().Get("charityId"),
		Status:     r.URL.Query().Get("status"),
		Search:     r.URL.Query().Get("search"),
	}

	donations, err := h.donationService.List(r.Context(), filter)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, donations)
}

func (h *DonationHandler) GetDonationByID(w http.ResponseWriter, r *http.Request) {
	donation, err := h.donationService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, donation)
}

func (h *DonationHandler) GetDonationsByDonor(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.GetByDonor(r.Context(), chi.URLParam(r, "donorId"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, donations)
}

func (h *DonationHandler) GetDonationsByCampaign(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.GetByCampaign(r.Context(), chi.URLParam(r, "campaignId"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, donations)
}

func (h *DonationHandler) GetDonationsByCharity(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.GetByCharity(r.Context(), chi.URLParam(r, "charityId"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, donations)
}

func (h *DonationHandler) UpdateDonation(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDonationRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	donation, err := h.donationService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, donation)
}

func (h *DonationHandler) UpdateDonationStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDonationStatusRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	donation, err := h.donationService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, donation)
}

func (h *DonationHandler) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	if err := h.donationService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, models.MessageResponse{
		Message: "Donation deleted successfully",
	})
}

func (h *DonationHandler) GetDonorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.donationService.DonorStats(r.Context(), chi.URLParam(r, "donorId"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, stats)
}

func (h *DonationHandler) GetCampaignStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.donationService.CampaignStats(r.Context(), chi.URLParam(r, "campaignId"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, stats)
}
