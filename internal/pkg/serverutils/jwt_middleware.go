package serverutils

import (
	"sakhi-support-be/internal/config"
	"sakhi-support-be/internal/repository/specification"
	"sakhi-support-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
)

// NewJwtMiddleware resolves the current user from a bearer access token.
// Besides signature/expiry/type checks it loads the user row, so revoked or
// inactive accounts are rejected even while their token is still fresh.
func NewJwtMiddleware(cfg config.JWTConfig, uowFactory unitofwork.RepositoryFactory) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(errorResponse(401, "Missing token"))
		}
		tokenStr := authHeader[7:]

		email, err := VerifyToken(cfg.Secret, tokenStr, TokenTypeAccess)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(errorResponse(401, "Invalid token"))
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByEmail{Email: email})
		if err != nil || user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(errorResponse(401, "User not found"))
		}
		if !user.IsActive {
			return ctx.Status(fiber.StatusBadRequest).JSON(errorResponse(400, "Inactive user"))
		}

		ctx.Locals("user_id", user.Id.String())
		ctx.Locals("user_email", user.Email)
		return ctx.Next()
	}
}
