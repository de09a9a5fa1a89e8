package controller

import (
	"renderiq-ambassador-be/internal/dto"
	"renderiq-ambassador-be/internal/pkg/serverutils"
	"renderiq-ambassador-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	ambassadorService service.IAmbassadorService
	payoutService     service.IPayoutService
	tierService       service.IVolumeTierService
}

func NewAdminController(
	ambassadorService service.IAmbassadorService,
	payoutService service.IPayoutService,
	tierService service.IVolumeTierService,
) IAdminController {
	return &adminController{
		ambassadorService: ambassadorService,
		payoutService:     payoutService,
		tierService:       tierService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.AdminMiddleware)

	h.Get("/ambassadors", c.ListAmbassadors)
	h.Post("/ambassadors/:id/approve", c.Approve)
	h.Post("/ambassadors/:id/reject", c.Reject)
	h.Post("/ambassadors/:id/suspend", c.Suspend)
	h.Post("/ambassadors/:id/reactivate", c.Reactivate)

	h.Get("/tiers", c.ListTiers)
	h.Put("/tiers", c.UpsertTier)
	h.Delete("/tiers/:id", c.DeactivateTier)

	h.Post("/payouts", c.CreatePayout)
	h.Get("/payouts", c.ListPayouts)
	h.Get("/payouts/:id", c.GetPayout)
	h.Post("/payouts/:id/process", c.ProcessPayout)
	h.Post("/payouts/:id/settle", c.SettlePayout)
}

func currentAdminId(ctx *fiber.Ctx) (uuid.UUID, error) {
	return currentUserId(ctx)
}

func paramId(ctx *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params("id"))
}

func (c *adminController) ListAmbassadors(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.ambassadorService.ListForAdmin(ctx.Context(), status, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ambassadors", res))
}

func (c *adminController) Approve(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ambassador ID"))
	}
	adminId, err := currentAdminId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	// Body is optional: approving without overrides keeps the defaults.
	var req dto.ApproveAmbassadorRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
		}
	}

	res, err := c.ambassadorService.Approve(ctx.Context(), id, adminId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ambassador approved", res))
}

func (c *adminController) Reject(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ambassador ID"))
	}
	adminId, err := currentAdminId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	var req dto.RejectAmbassadorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.ambassadorService.Reject(ctx.Context(), id, adminId, &req); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ambassador rejected", nil))
}

func (c *adminController) Suspend(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ambassador ID"))
	}
	adminId, err := currentAdminId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	var req dto.SuspendAmbassadorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.ambassadorService.Suspend(ctx.Context(), id, adminId, &req); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ambassador suspended", nil))
}

func (c *adminController) Reactivate(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ambassador ID"))
	}

	if err := c.ambassadorService.Reactivate(ctx.Context(), id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ambassador reactivated", nil))
}

func (c *adminController) ListTiers(ctx *fiber.Ctx) error {
	res, err := c.tierService.ListTiers(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Volume tiers", res))
}

func (c *adminController) UpsertTier(ctx *fiber.Ctx) error {
	var req dto.UpsertVolumeTierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.tierService.UpsertTier(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Volume tier saved", res))
}

func (c *adminController) DeactivateTier(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid tier ID"))
	}

	if err := c.tierService.DeactivateTier(ctx.Context(), id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Volume tier deactivated", nil))
}

func (c *adminController) CreatePayout(ctx *fiber.Ctx) error {
	var req dto.CreatePayoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.payoutService.CreatePayoutPeriod(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Payout period created", res))
}

func (c *adminController) ListPayouts(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	var ambassadorId *uuid.UUID
	if raw := ctx.Query("ambassador_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ambassador_id"))
		}
		ambassadorId = &id
	}

	res, err := c.payoutService.ListPayouts(ctx.Context(), ambassadorId, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Payouts", res))
}

func (c *adminController) GetPayout(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid payout ID"))
	}

	res, err := c.payoutService.GetPayout(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Payout", res))
}

func (c *adminController) ProcessPayout(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid payout ID"))
	}
	adminId, err := currentAdminId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.payoutService.MarkProcessing(ctx.Context(), id, adminId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Payout marked processing", res))
}

func (c *adminController) SettlePayout(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid payout ID"))
	}
	adminId, err := currentAdminId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	var req dto.SettlePayoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.payoutService.SettlePayout(ctx.Context(), id, adminId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Payout settled", res))
}
