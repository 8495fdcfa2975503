// FILE: internal/controller/catalog_controller.go
package controller

import (
	"ai-shopassist-be/internal/pkg/serverutils"
	"ai-shopassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetCategories(ctx *fiber.Ctx) error
	GetProducts(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{service: catalogService}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("/categories", c.GetCategories)
	h.Get("/products/:category", c.GetProducts)
}

func (c *catalogController) GetCategories(ctx *fiber.Ctx) error {
	res, err := c.service.GetCategories(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get categories", res))
}

func (c *catalogController) GetProducts(ctx *fiber.Ctx) error {
	category := ctx.Params("category")
	if category == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "category parameter is required"))
	}

	res, err := c.service.GetProducts(ctx.Context(), category)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}
