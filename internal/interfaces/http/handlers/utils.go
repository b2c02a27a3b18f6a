package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tvules/cat-charity-fund/internal/application/usecases"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
)

// errorResponse maps domain errors to HTTP statuses; anything unrecognized is
// a 500 with the store error passed through verbatim.
func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusForError(err error) int {
	var unknownField *managers.UnknownFieldError
	var invalidValue *managers.InvalidValueError

	switch {
	case errors.Is(err, usecases.ErrValidation),
		errors.As(err, &unknownField),
		errors.As(err, &invalidValue):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, usecases.ErrProjectNotFound),
		errors.Is(err, usecases.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecases.ErrProjectNameTaken),
		errors.Is(err, usecases.ErrProjectClosed),
		errors.Is(err, usecases.ErrProjectInvested),
		errors.Is(err, usecases.ErrFullAmountTooLow),
		errors.Is(err, usecases.ErrEmailTaken),
		errors.Is(err, usecases.ErrInvalidCredentials):
		return fiber.StatusBadRequest
	case errors.Is(err, usecases.ErrReportingDisabled):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
