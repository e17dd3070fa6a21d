package controller

import (
	"errors"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/pkg/serverutils"
	"fikrswap-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type userController struct {
	service   service.IUserService
	dashboard service.IDashboardService
}

func NewUserController(s service.IUserService, dashboard service.IDashboardService) IUserController {
	return &userController{service: s, dashboard: dashboard}
}

func (c *userController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	me := r.Group("/users/me", authRequired)
	me.Get("/", c.GetProfile)
	me.Put("/", c.UpdateProfile)
	me.Get("/dashboard", c.Dashboard)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	profile, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved", profile))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	profile, err := c.service.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", profile))
}

func (c *userController) Dashboard(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	data, err := c.dashboard.GetDashboard(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard retrieved", data))
}
