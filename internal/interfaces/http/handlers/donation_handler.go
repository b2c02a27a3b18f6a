package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tvules/cat-charity-fund/internal/application/usecases"
	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/interfaces/http/middleware"
)

type DonationHandler struct {
	donationUseCase usecases.DonationUseCase
}

func NewDonationHandler(donationUseCase usecases.DonationUseCase) *DonationHandler {
	return &DonationHandler{donationUseCase}
}

func (h *DonationHandler) CreateDonation(c *fiber.Ctx) error {
	var req usecases.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	donation, err := h.donationUseCase.CreateDonation(c.UserContext(), middleware.CurrentUser(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(donorView(donation))
}

// GetDonations returns every donation with full investment details; the route
// is superuser-only.
func (h *DonationHandler) GetDonations(c *fiber.Ctx) error {
	donations, err := h.donationUseCase.GetDonations(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(donations)
}

func (h *DonationHandler) GetMyDonations(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	donations, err := h.donationUseCase.GetUserDonations(c.UserContext(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	views := make([]fiber.Map, 0, len(donations))
	for _, donation := range donations {
		views = append(views, donorView(donation))
	}
	return c.JSON(views)
}

// donorView hides the distribution bookkeeping from regular donors.
func donorView(donation *entities.Donation) fiber.Map {
	return fiber.Map{
		"id":          donation.ID,
		"comment":     donation.Comment,
		"full_amount": donation.FullAmount,
		"create_date": donation.CreateDate,
	}
}
