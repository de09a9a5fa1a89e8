package controller

import (
	"errors"

	"renderiq-ambassador-be/internal/pkg/serverutils"
	"renderiq-ambassador-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a 500.
func respondError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrAmbassadorNotFound),
		errors.Is(err, service.ErrPayoutNotFound),
		errors.Is(err, service.ErrTierNotFound),
		errors.Is(err, service.ErrInvalidCode):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicateApplication),
		errors.Is(err, service.ErrAlreadyReferred),
		errors.Is(err, service.ErrLinkCodeTaken),
		errors.Is(err, service.ErrInvalidStatusTransition),
		errors.Is(err, service.ErrInvalidPayoutState):
		code = fiber.StatusConflict
	case errors.Is(err, service.ErrSelfReferral),
		errors.Is(err, service.ErrAmbassadorNotActive),
		errors.Is(err, service.ErrNoPendingCommissions):
		code = fiber.StatusUnprocessableEntity
	}
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}
