package controller

import (
	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/pkg/serverutils"
	"renderiq-ambassador-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAmbassadorController interface {
	RegisterRoutes(r fiber.Router)
	Apply(ctx *fiber.Ctx) error
	GetMe(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	GetReferrals(ctx *fiber.Ctx) error
	GetCommissions(ctx *fiber.Ctx) error
	GetPayouts(ctx *fiber.Ctx) error
	CreateLink(ctx *fiber.Ctx) error
	GetLinks(ctx *fiber.Ctx) error
}

type ambassadorController struct {
	ambassadorService service.IAmbassadorService
	referralService   service.IReferralService
	commissionService service.ICommissionService
	payoutService     service.IPayoutService
}

func NewAmbassadorController(
	ambassadorService service.IAmbassadorService,
	referralService service.IReferralService,
	commissionService service.ICommissionService,
	payoutService service.IPayoutService,
) IAmbassadorController {
	return &ambassadorController{
		ambassadorService: ambassadorService,
		referralService:   referralService,
		commissionService: commissionService,
		payoutService:     payoutService,
	}
}

func (c *ambassadorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ambassador", serverutils.JwtMiddleware)
	h.Post("/apply", c.Apply)
	h.Get("/me", c.GetMe)
	h.Get("/stats", c.GetStats)
	h.Get("/referrals", c.GetReferrals)
	h.Get("/commissions", c.GetCommissions)
	h.Get("/payouts", c.GetPayouts)
	h.Post("/links", c.CreateLink)
	h.Get("/links", c.GetLinks)
}

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	return uuid.Parse(userIdStr)
}

func (c *ambassadorController) Apply(ctx *fiber.Ctx) error {
	var req dto.ApplyAmbassadorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.ambassadorService.Apply(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Application submitted", res))
}

func (c *ambassadorController) GetMe(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.ambassadorService.GetByUser(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ambassador profile", res))
}

func (c *ambassadorController) GetStats(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.ambassadorService.GetStats(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ambassador stats", res))
}

func (c *ambassadorController) GetReferrals(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.referralService.GetReferrals(ctx.Context(), userId, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Referrals", res))
}

func (c *ambassadorController) GetCommissions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.commissionService.GetCommissions(ctx.Context(), userId, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Commissions", res))
}

func (c *ambassadorController) GetPayouts(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.payoutService.GetPayoutsByUser(ctx.Context(), userId, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Payouts", res))
}

func (c *ambassadorController) CreateLink(ctx *fiber.Ctx) error {
	var req dto.CreateLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.ambassadorService.CreateLink(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Campaign link created", res))
}

func (c *ambassadorController) GetLinks(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.ambassadorService.GetLinks(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Campaign links", res))
}
