package controller

import (
	"errors"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/pkg/serverutils"
	"jf-travels-be/internal/service"
	"jf-travels-be/pkg/exchange"

	"github.com/gofiber/fiber/v2"
)

type ICurrencyController interface {
	RegisterRoutes(r fiber.Router)
	Convert(ctx *fiber.Ctx) error
	Swap(ctx *fiber.Ctx) error
	ListRates(ctx *fiber.Ctx) error
}

type currencyController struct {
	service service.ICurrencyService
}

func NewCurrencyController(currencyService service.ICurrencyService) ICurrencyController {
	return &currencyController{service: currencyService}
}

func (c *currencyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/currency")
	h.Post("/convert", c.Convert)
	h.Post("/swap", c.Swap)
	h.Get("/rates", c.ListRates)
}

// Convert rejects bad input with 400 and no side effect, so the client's
// previously displayed amount stays valid.
func (c *currencyController) Convert(ctx *fiber.Ctx) error {
	var req dto.ConvertRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Convert(ctx.Context(), &req)
	if err != nil {
		return convertError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Converted",
		"data":    res,
	})
}

func (c *currencyController) Swap(ctx *fiber.Ctx) error {
	var req dto.SwapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Swap(ctx.Context(), &req)
	if err != nil {
		return convertError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Swapped and converted",
		"data":    res,
	})
}

func (c *currencyController) ListRates(ctx *fiber.Ctx) error {
	rates, err := c.service.ListRates(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Current exchange rates",
		"data":    rates,
	})
}

func convertError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrBadAmount) || errors.Is(err, exchange.ErrUnknownCurrency) {
		return badRequest(ctx, err)
	}
	return err
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"code":    400,
		"message": err.Error(),
	})
}
