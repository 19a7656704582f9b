// internal/routes/routes.go
package routes

import (
	"time"

	"donation-backend/internal/handlers"
	"donation-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	User     *handlers.UserHandler
	Campaign *handlers.CampaignHandler
	Donation *handlers.DonationHandler
}

func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger())
	r.Use(middleware.Recoverer())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.CORS())

	// Health check routes
	r.Get("/", h.Health.Liveness)
	r.Get("/health", h.Health.HealthCheck)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.User.CreateUser)
		r.Get("/", h.User.GetAllUsers)
		r.Get("/{id}", h.User.GetUserByID)
		r.Put("/{id}", h.User.UpdateUser)
		r.Delete("/{id}", h.User.DeleteUser)
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.Post("/", h.Campaign.CreateCampaign)
		r.Get("/", h.Campaign.ListCampaigns)
		r.Get("/{id}", h.Campaign.GetCampaignByID)
		r.Put("/{id}", h.Campaign.UpdateCampaign)
		r.Patch("/{id}/status", h.Campaign.UpdateCampaignStatus)
		r.Patch("/{id}/progress", h.Campaign.UpdateCampaignProgress)
		r.Delete("/{id}", h.Campaign.DeleteCampaign)
	})

	r.Route("/donations", func(r chi.Router) {
		r.Post("/", h.Donation.CreateDonation)
		r.Get("/", h.Donation.ListDonations)
		r.Get("/donor/{donorId}", h.Donation.GetDonationsByDonor)
		r.Get("/donor/{donorId}/stats", h.Donation.GetDonorStats)
		r.Get("/campaign/{campaignId}", h.Donation.GetDonationsByCampaign)
		r.Get("/campaign/{campaignId}/stats", h.Donation.GetCampaignStats)
		r.Get("/charity/{charityId}", h.Donation.GetDonationsByCharity)
		r.Get("/{id}", h.Donation.GetDonationByID)
		r.Put("/{id}", h.Donation.UpdateDonation)
		r.Patch("/{id}/status", h.Donation.UpdateDonationStatus)
		r.Delete("/{id}", h.Donation.DeleteDonation)
	})

	return r
}
