package controller

import (
	"jf-travels-be/internal/entity"
	"jf-travels-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	GetStats(ctx *fiber.Ctx) error
	ListBookings(ctx *fiber.Ctx) error
	ListRates(ctx *fiber.Ctx) error
}

type adminController struct {
	admin    service.IAdminService
	currency service.ICurrencyService
	sessions service.ISessionService
}

func NewAdminController(
	admin service.IAdminService,
	currency service.ICurrencyService,
	sessions service.ISessionService,
) IAdminController {
	return &adminController{admin: admin, currency: currency, sessions: sessions}
}

func (c *adminController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/admin", authGuard, requireAdminRole)
	h.Get("/stats", c.GetStats)
	h.Get("/bookings", c.ListBookings)
	h.Get("/rates", c.ListRates)
}

// requireAdminRole trusts the verified token claims set by the auth guard.
func requireAdminRole(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != string(entity.UserRoleAdmin) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"code":    403,
			"message": "Admin role required",
		})
	}
	return ctx.Next()
}

func (c *adminController) GetStats(ctx *fiber.Ctx) error {
	currency := c.sessions.Snapshot().SelectedCurrency
	stats, err := c.admin.GetStats(ctx.Context(), currency)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Dashboard stats",
		"data":    stats,
	})
}

func (c *adminController) ListBookings(ctx *fiber.Ctx) error {
	currency := c.sessions.Snapshot().SelectedCurrency
	bookings, err := c.admin.ListBookings(ctx.Context(), currency)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Bookings",
		"data":    bookings,
	})
}

// ListRates serves the rate management tab. There is no matching write
// endpoint: rate edits are presentational only.
func (c *adminController) ListRates(ctx *fiber.Ctx) error {
	rates, err := c.currency.ListRates(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Exchange rates",
		"data":    rates,
	})
}
