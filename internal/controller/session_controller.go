package controller

import (
	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/pkg/serverutils"
	"jf-travels-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	SelectCurrency(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessions   service.ISessionService
	auth       service.IAuthService
	navigation service.INavigationService
}

func NewSessionController(
	sessions service.ISessionService,
	auth service.IAuthService,
	navigation service.INavigationService,
) ISessionController {
	return &sessionController{
		sessions:   sessions,
		auth:       auth,
		navigation: navigation,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session")
	h.Post("/currency", c.SelectCurrency)
	h.Post("/logout", c.Logout)
}

// SelectCurrency sets the display currency for every later render.
func (c *sessionController) SelectCurrency(ctx *fiber.Ctx) error {
	var req dto.SelectCurrencyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	if err := c.sessions.SelectCurrency(req.Code); err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Display currency updated",
		"data":    c.navigation.Resolve(),
	})
}

// Logout always succeeds from the caller's point of view: the token is
// revoked if parseable, the remote sign-out outcome is swallowed, and the
// session lands on home.
func (c *sessionController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err == nil && req.Token != "" {
		c.auth.RevokeToken(ctx.Context(), req.Token)
	}

	c.sessions.Logout(ctx.Context())

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logged out successfully",
		"data":    c.navigation.Resolve(),
	})
}
