package controller

import (
	"context"

	"fikrswap-academy-be/internal/authstate"
	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/identity"
	"fikrswap-academy-be/internal/pkg/serverutils"
	"fikrswap-academy-be/internal/routing"

	"github.com/gofiber/fiber/v2"
)

// IAccountManager covers the identity operations that bypass the session
// store: email verification and password recovery.
type IAccountManager interface {
	ConfirmEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignUp(ctx *fiber.Ctx) error
	SignIn(ctx *fiber.Ctx) error
	SignOut(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	ConfirmEmail(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
	OAuthRedirect(ctx *fiber.Ctx) error
	AuthCallback(ctx *fiber.Ctx) error
}

type authController struct {
	store    *authstate.Store
	accounts IAccountManager
}

func NewAuthController(store *authstate.Store, accounts IAccountManager) IAuthController {
	return &authController{
		store:    store,
		accounts: accounts,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.SignUp)
	h.Post("/signin", c.SignIn)
	h.Post("/signout", c.SignOut)
	h.Get("/session", c.Session)
	h.Post("/confirm-email", c.ConfirmEmail)
	h.Post("/forgot-password", c.ForgotPassword)
	h.Post("/reset-password", c.ResetPassword)
	h.Get("/oauth/:provider", c.OAuthRedirect)
}

func (c *authController) SignUp(ctx *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.store.SignUp(ctx.Context(), req.Email, req.Password, req.Metadata); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Account created. Please check your email to verify your account.", fiber.Map{
		"redirect": routing.LoginPath,
	}))
}

func (c *authController) SignIn(ctx *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.store.SignIn(ctx.Context(), req.Email, req.Password); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	session := c.store.Session()
	return ctx.JSON(serverutils.SuccessResponse("Welcome back!", fiber.Map{
		"session":  toSessionResponse(session),
		"redirect": routing.HomePath,
	}))
}

func (c *authController) SignOut(ctx *fiber.Ctx) error {
	c.store.SignOut(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Signed out", fiber.Map{
		"redirect": routing.LoginPath,
	}))
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	session := c.store.Session()
	return ctx.JSON(serverutils.SuccessResponse("Current session", fiber.Map{
		"status":  string(c.store.Status()),
		"session": toSessionResponse(session),
	}))
}

func (c *authController) ConfirmEmail(ctx *fiber.Ctx) error {
	var req dto.ConfirmEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.accounts.ConfirmEmail(ctx.Context(), req.Token); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Email verified successfully", nil))
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.accounts.RequestPasswordReset(ctx.Context(), req.Email); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	// Same reply for known and unknown addresses.
	return ctx.JSON(serverutils.SuccessResponse("If that email exists, a reset link has been sent", nil))
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.accounts.ResetPassword(ctx.Context(), req.Token, req.NewPassword); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Password updated successfully", nil))
}

func (c *authController) OAuthRedirect(ctx *fiber.Ctx) error {
	providerName := ctx.Params("provider")

	url, err := c.store.SignInWithProvider(providerName)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Redirect to external provider", dto.OAuthRedirectResponse{
		RedirectURL: url,
	}))
}

// AuthCallback absorbs the return leg of an external OAuth redirect.
// An error fragment always resolves to the login view; otherwise the
// code is exchanged and the settled auth status picks the destination.
func (c *authController) AuthCallback(ctx *fiber.Ctx) error {
	var req dto.OAuthCallbackRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if req.Error != "" {
		outcome := routing.ResolveCallback(req.Error, c.store.Status())
		return ctx.JSON(serverutils.SuccessResponse("Authentication failed", fiber.Map{
			"redirect": outcome.Target,
			"error":    outcome.ErrorDescription,
		}))
	}

	// The store applies the exchange outcome synchronously; the status
	// read below never races the event stream.
	exchangeErr := c.store.CompleteOAuth(ctx.Context(), req.Provider, req.Code)

	outcome := routing.ResolveCallback("", c.store.Status())

	if outcome.ShowError {
		message := "Authentication failed"
		if exchangeErr != nil {
			message = exchangeErr.Error()
		}
		return ctx.JSON(serverutils.SuccessResponse("Authentication failed", fiber.Map{
			"redirect": outcome.Target,
			"error":    message,
		}))
	}

	return ctx.JSON(serverutils.SuccessResponse("Signed in", fiber.Map{
		"redirect": outcome.Target,
		"session":  toSessionResponse(c.store.Session()),
	}))
}

func toSessionResponse(session *identity.Session) *dto.SessionResponse {
	if session == nil {
		return nil
	}
	return &dto.SessionResponse{
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
		User: dto.SessionUserDTO{
			Id:        session.User.Id,
			Email:     session.User.Email,
			FullName:  session.User.FullName,
			AvatarURL: session.User.AvatarURL,
			Metadata:  session.User.Metadata,
		},
	}
}
