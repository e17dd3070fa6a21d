package controller

import (
	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/pkg/serverutils"
	"fikrswap-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
}

func NewContactController(s service.IContactService) IContactController {
	return &contactController{service: s}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Submit)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.service.Submit(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message received", nil))
}
