package controller

import (
	"errors"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/liveclass"
	"fikrswap-academy-be/internal/pkg/serverutils"
	"fikrswap-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILiveClassController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	List(ctx *fiber.Ctx) error
	Join(ctx *fiber.Ctx) error
	Leave(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	FullscreenChange(ctx *fiber.Ctx) error
	Key(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type liveClassController struct {
	service     service.ILiveClassService
	userService service.IUserService
}

func NewLiveClassController(s service.ILiveClassService, users service.IUserService) ILiveClassController {
	return &liveClassController{service: s, userService: users}
}

func (c *liveClassController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	classes := r.Group("/live-classes", authRequired)
	classes.Get("/", c.List)

	session := r.Group("/live-session", authRequired)
	session.Get("/", c.State)
	session.Post("/join", c.Join)
	session.Post("/leave", c.Leave)
	session.Post("/toggle", c.Toggle)
	session.Post("/fullscreen-change", c.FullscreenChange)
	session.Post("/key", c.Key)
	session.Post("/chat", c.Chat)
}

func (c *liveClassController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category", liveclass.CategoryAll)

	classes, err := c.service.ListByCategory(ctx.Context(), category)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Live classes retrieved", classes))
}

func (c *liveClassController) Join(ctx *fiber.Ctx) error {
	var req dto.JoinClassRequest
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

	profile, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	state, err := c.service.Join(ctx.Context(), userId, profile.FullName, req.ClassId)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Joined class", state))
}

func (c *liveClassController) Leave(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Leave(ctx.Context(), userId); err != nil {
		if errors.Is(err, service.ErrNotInClass) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Left class", nil))
}

func (c *liveClassController) State(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session state", c.service.GetSessionState(ctx.Context(), userId)))
}

func (c *liveClassController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleRequest
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

	state, err := c.service.Toggle(ctx.Context(), userId, req.Control)
	if err != nil {
		if errors.Is(err, service.ErrNotInClass) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Toggled", state))
}

func (c *liveClassController) FullscreenChange(ctx *fiber.Ctx) error {
	var req dto.FullscreenChangeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.HandleFullscreenChange(ctx.Context(), userId, req.Active); err != nil {
		if errors.Is(err, service.ErrNotInClass) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Fullscreen state recorded", nil))
}

func (c *liveClassController) Key(ctx *fiber.Ctx) error {
	var req dto.KeyEventRequest
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

	event := liveclass.KeyEvent{
		Key:         req.Key,
		Ctrl:        req.Ctrl,
		Alt:         req.Alt,
		Shift:       req.Shift,
		Meta:        req.Meta,
		InTextInput: req.InTextInput,
	}
	if err := c.service.DispatchKey(ctx.Context(), userId, event); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Key dispatched", nil))
}

func (c *liveClassController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	msg, err := c.service.SendChatMessage(ctx.Context(), userId, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrNotInClass) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return err
	}
	if msg == nil {
		// Whitespace-only input; nothing appended.
		return ctx.JSON(serverutils.SuccessResponse("Nothing to send", nil))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", msg))
}
