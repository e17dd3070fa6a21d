package controller

import (
	"errors"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/pkg/serverutils"
	"fikrswap-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICourseController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Curriculum(ctx *fiber.Ctx) error
	Enroll(ctx *fiber.Ctx) error
	ListEnrollments(ctx *fiber.Ctx) error
	UpdateProgress(ctx *fiber.Ctx) error
}

type courseController struct {
	service service.ICourseService
}

func NewCourseController(s service.ICourseService) ICourseController {
	return &courseController{service: s}
}

func (c *courseController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	courses := r.Group("/courses")
	courses.Get("/", c.List)
	courses.Get("/:id", c.Get)
	// Curriculum requires a session; the catalog and detail views do not.
	courses.Get("/:id/curriculum", authRequired, c.Curriculum)

	enrollments := r.Group("/enrollments", authRequired)
	enrollments.Post("/", c.Enroll)
	enrollments.Get("/", c.ListEnrollments)
	enrollments.Patch("/:id/progress", c.UpdateProgress)
}

func (c *courseController) List(ctx *fiber.Ctx) error {
	courses, err := c.service.ListPublished(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Courses retrieved", courses))
}

func (c *courseController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid course id")
	}

	course, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Course retrieved", course))
}

func (c *courseController) Curriculum(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid course id")
	}

	curriculum, err := c.service.GetCurriculum(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Curriculum retrieved", curriculum))
}

func (c *courseController) Enroll(ctx *fiber.Ctx) error {
	var req dto.EnrollRequest
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

	enrollment, err := c.service.Enroll(ctx.Context(), userId, req.CourseId)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyEnrolled) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		if errors.Is(err, service.ErrCourseNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Enrolled successfully", enrollment))
}

func (c *courseController) ListEnrollments(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	enrollments, err := c.service.ListEnrollments(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Enrollments retrieved", enrollments))
}

func (c *courseController) UpdateProgress(ctx *fiber.Ctx) error {
	enrollmentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid enrollment id")
	}

	var req dto.UpdateProgressRequest
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

	if err := c.service.UpdateProgress(ctx.Context(), userId, enrollmentId, req.Progress); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Progress updated", nil))
}

// currentUserID reads the authenticated user from request locals set by
// the JWT middleware.
func currentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user identity")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user identity")
	}
	return userId, nil
}
