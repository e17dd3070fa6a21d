package routing

import (
	"os"

	"fikrswap-academy-be/internal/authstate"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GuardMiddleware applies the navigation guard to incoming page
// requests. The bearer token (or auth cookie) resolves the status; the
// pure Decide call does the rest. HTTP requests never observe
// Authenticating since token parsing is synchronous.
func GuardMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		status := statusFromRequest(ctx)

		switch Decide(status, ctx.Path()) {
		case RedirectToLogin:
			return ctx.Redirect(LoginPath, fiber.StatusFound)
		case RedirectToHome:
			return ctx.Redirect(HomePath, fiber.StatusFound)
		default:
			return ctx.Next()
		}
	}
}

func statusFromRequest(ctx *fiber.Ctx) authstate.Status {
	tokenStr := bearerToken(ctx)
	if tokenStr == "" {
		tokenStr = ctx.Cookies("access_token")
	}
	if tokenStr == "" {
		return authstate.StatusUnauthenticated
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return authstate.StatusUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authstate.StatusUnauthenticated
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("email", claims["email"])
	return authstate.StatusAuthenticated
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
