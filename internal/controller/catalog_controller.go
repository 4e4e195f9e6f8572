package controller

import (
	"errors"

	"jf-travels-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	ListTours(ctx *fiber.Ctx) error
	GetTour(ctx *fiber.Ctx) error
	UserDashboard(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalog  service.ICatalogService
	sessions service.ISessionService
}

func NewCatalogController(catalog service.ICatalogService, sessions service.ISessionService) ICatalogController {
	return &catalogController{catalog: catalog, sessions: sessions}
}

func (c *catalogController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/tours")
	h.Get("/", c.ListTours)
	h.Get("/:id", c.GetTour)

	r.Get("/dashboard", authGuard, c.UserDashboard)
}

func (c *catalogController) ListTours(ctx *fiber.Ctx) error {
	currency := c.sessions.Snapshot().SelectedCurrency
	tours, err := c.catalog.ListTours(ctx.Context(), ctx.Query("country"), currency)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Tours",
		"data":    tours,
	})
}

func (c *catalogController) GetTour(ctx *fiber.Ctx) error {
	currency := c.sessions.Snapshot().SelectedCurrency
	tour, err := c.catalog.GetTour(ctx.Context(), ctx.Params("id"), currency)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": err.Error(),
			})
		}
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Tour",
		"data":    tour,
	})
}

// UserDashboard lists the authenticated traveller's bookings; the email
// comes from the verified token claims, never from the request.
func (c *catalogController) UserDashboard(ctx *fiber.Ctx) error {
	email, _ := ctx.Locals("email").(string)
	if email == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Missing identity",
		})
	}

	currency := c.sessions.Snapshot().SelectedCurrency
	dashboard, err := c.catalog.UserDashboard(ctx.Context(), email, currency)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Dashboard",
		"data":    dashboard,
	})
}
