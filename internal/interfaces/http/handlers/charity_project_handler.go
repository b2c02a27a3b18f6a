package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tvules/cat-charity-fund/internal/application/usecases"
)

type CharityProjectHandler struct {
	projectUseCase usecases.CharityProjectUseCase
}

func NewCharityProjectHandler(projectUseCase usecases.CharityProjectUseCase) *CharityProjectHandler {
	return &CharityProjectHandler{projectUseCase}
}

func (h *CharityProjectHandler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.projectUseCase.GetProjects(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(projects)
}

func (h *CharityProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req usecases.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	project, err := h.projectUseCase.CreateProject(c.UserContext(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *CharityProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project ID format",
		})
	}

	var req usecases.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	project, err := h.projectUseCase.UpdateProject(c.UserContext(), uint(id), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(project)
}

func (h *CharityProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project ID format",
		})
	}

	project, err := h.projectUseCase.DeleteProject(c.UserContext(), uint(id))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(project)
}
