package controller

import (
	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/pkg/serverutils"
	"renderiq-ambassador-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReferralController interface {
	RegisterRoutes(r fiber.Router)
	TrackSignup(ctx *fiber.Ctx) error
	DiscountQuote(ctx *fiber.Ctx) error
}

type referralController struct {
	service service.IReferralService
}

func NewReferralController(service service.IReferralService) IReferralController {
	return &referralController{service: service}
}

func (c *referralController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/referral")
	// Both routes are hit during signup/checkout, before the user has a
	// session, so they stay public.
	h.Post("/track-signup", c.TrackSignup)
	h.Post("/discount-quote", c.DiscountQuote)
}

func (c *referralController) TrackSignup(ctx *fiber.Ctx) error {
	var req dto.TrackSignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.TrackSignup(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Signup attributed", res))
}

func (c *referralController) DiscountQuote(ctx *fiber.Ctx) error {
	var req dto.DiscountQuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CalculateDiscount(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Discount quote", res))
}
