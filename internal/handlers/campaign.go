// internal/handlers/campaign.go
package handlers

import (
	"net/http"

	"donation-backend/internal/models"
	"donation-backend/internal/services"
	"donation-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type CampaignHandler struct {
	campaignService services.CampaignService
}

func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCampaignRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	campaign, err := h.campaignService.Create(r.Context(), &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusCreated, campaign)
}

func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter := models.CampaignFilter{
		Status:    r.URL.Query().Get("status"),
		CharityID: r.URL.Query().Get("charityId"),
		Search:    r.URL.Query().Get("search"),
	}

	campaigns, err := h.campaignService.List(r.Context(), filter)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, campaigns)
}

func (h *CampaignHandler) GetCampaignByID(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaignService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, campaign)
}

func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCampaignRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	campaign, err := h.campaignService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, campaign)
}

func (h *CampaignHandler) UpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCampaignStatusRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	campaign, err := h.campaignService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, campaign)
}

func (h *CampaignHandler) UpdateCampaignProgress(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCampaignProgressRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	campaign, err := h.campaignService.IncrementProgress(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, campaign)
}

func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaignService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, models.MessageResponse{
		Message: "Campaign deleted successfully",
	})
}
