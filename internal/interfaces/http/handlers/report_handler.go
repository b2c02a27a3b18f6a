package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tvules/cat-charity-fund/internal/application/usecases"
)

type ReportHandler struct {
	reportUseCase usecases.ReportUseCase
}

func NewReportHandler(reportUseCase usecases.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUseCase}
}

// GetReport publishes the closed-projects spreadsheet and returns its URL.
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	url, err := h.reportUseCase.BuildClosedProjectsReport(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"url": url,
	})
}
