// Package auth содержит HTTP обработчики для работы с учетными записями.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"helphub/internal/helphub/app"
	"helphub/internal/helphub/app/dto"
	httpmw "helphub/internal/helphub/app/http/middleware"
	"helphub/internal/helphub/domain/services"
	"helphub/internal/helphub/ports/api"
	"helphub/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister      = "auth handler: register"
	LogHandlerLogin         = "auth handler: login"
	LogHandlerRefreshTokens = "auth handler: refresh tokens" // #nosec G101 - not a credential
	LogHandlerLogout        = "auth handler: logout"
	LogHandlerGetProfile    = "auth handler: get profile"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики для учетных записей.
type Handler struct {
	accounts api.AccountUseCase
}

// NewHandler создает новый экземпляр обработчика учетных записей.
func NewHandler(accounts api.AccountUseCase) *Handler {
	return &Handler{
		accounts: accounts,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
// Ошибки валидации возвращаются списком, чтобы форма могла показать их все.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	user, err := h.accounts.Register(requestCtx, req.ToInput())
	if err != nil {
		var vErr *app.ValidationError
		if errors.As(err, &vErr) {
			if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"errors": vErr.Messages,
			}); err != nil {
				return fmt.Errorf("sending validation response: %w", err)
			}
			return nil
		}
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			if err := ctx.Status(http.StatusConflict).JSON(fiber.Map{
				"errors": []string{app.MsgEmailExists},
			}); err != nil {
				return fmt.Errorf("sending conflict response: %w", err)
			}
			return nil
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewUserProfileResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
// Несуществующий email и неверный пароль дают одинаковый ответ.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if vErrs := app.ValidateLogin(req.Email, req.Password); len(vErrs) > 0 {
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"errors": vErrs,
		}); err != nil {
			return fmt.Errorf("sending validation response: %w", err)
		}
		return nil
	}

	pair, err := h.accounts.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return sendErrorResponse(ctx, http.StatusUnauthorized, app.MsgWrongCredentials)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	response := dto.TokenResponse{
		UserID:       pair.UserID,
		Email:        pair.Email,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RefreshTokens обрабатывает запрос на обновление токенов.
func (h *Handler) RefreshTokens(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefreshTokens)

	var req dto.RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.RefreshToken == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "refresh token is required")
	}

	pair, err := h.accounts.RefreshTokens(requestCtx, req.RefreshToken)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusUnauthorized, "invalid refresh token")
	}

	response := dto.TokenResponse{
		UserID:       pair.UserID,
		Email:        pair.Email,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	var req dto.LogoutRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.RefreshToken == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "refresh token is required")
	}

	if err := h.accounts.Logout(requestCtx, req.RefreshToken); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusUnauthorized, "invalid refresh token")
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "logged out successfully",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetProfile обрабатывает запрос на получение профиля пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	userID, ok := ctx.Locals(httpmw.LocalsUserID).(string)
	if !ok || userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.accounts.GetProfile(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusNotFound, "user not found")
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserProfileResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
