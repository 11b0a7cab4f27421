// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"helphub/internal/helphub/ports/services"
	"helphub/pkg/logger"
)

// Константы для логирования и ключей контекста запроса.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"

	// LocalsUserID и LocalsActorEmail задают ключи, под которыми
	// идентичность действующего лица доступна обработчикам.
	LocalsUserID     = "user_id"
	LocalsActorEmail = "actor_email"

	bearerPrefix = "Bearer "
)

// NewAuthMiddleware создает промежуточное ПО, проверяющее JWT токен доступа.
// Идентичность действующего лица извлекается из токена и сохраняется в
// locals запроса, сессионное состояние на сервере не используется.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		userID, email, err := tokenService.ValidateAccessToken(requestCtx, tokenString)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		ctx.Locals(LocalsUserID, userID)
		ctx.Locals(LocalsActorEmail, email)

		return ctx.Next()
	}
}
