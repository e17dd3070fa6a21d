package controller

import (
	"fikrswap-academy-be/internal/content"
	"fikrswap-academy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// Static marketing content. No service layer behind it.
type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Categories(ctx *fiber.Ctx) error
	Testimonials(ctx *fiber.Ctx) error
}

type contentController struct{}

func NewContentController() IContentController {
	return &contentController{}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	r.Get("/categories", c.Categories)
	r.Get("/testimonials", c.Testimonials)
}

func (c *contentController) Categories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved", content.Categories))
}

func (c *contentController) Testimonials(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Testimonials retrieved", content.Testimonials))
}
