package controller

import (
	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INavigationController interface {
	RegisterRoutes(r fiber.Router)
	Navigate(ctx *fiber.Ctx) error
	Render(ctx *fiber.Ctx) error
}

type navigationController struct {
	service service.INavigationService
}

func NewNavigationController(navService service.INavigationService) INavigationController {
	return &navigationController{service: navService}
}

func (c *navigationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/navigation")
	h.Post("/navigate", c.Navigate)
	h.Get("/render", c.Render)
}

// Navigate commits a transition and returns the resolved render instruction.
// There is deliberately no access check here; gated views come back resolved
// to the login prompt instead.
func (c *navigationController) Navigate(ctx *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.View == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "view is required",
		})
	}

	instruction := c.service.Navigate(req.View, req.Payload)
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Navigation committed",
		"data":    instruction,
	})
}

// Render re-resolves the current state, as a refresh would.
func (c *navigationController) Render(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Render decision",
		"data":    c.service.Resolve(),
	})
}
