// Package requests содержит HTTP обработчики для журнала заявок о помощи.
package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"helphub/internal/helphub/app"
	"helphub/internal/helphub/app/dto"
	httpmw "helphub/internal/helphub/app/http/middleware"
	"helphub/internal/helphub/ports/api"
	"helphub/internal/helphub/ports/cache"
	"helphub/pkg/logger"
)

// Константы для логирования и кэширования.
const (
	LogHandlerList     = "requests handler: list"
	LogHandlerCreate   = "requests handler: create"
	LogHandlerAccept   = "requests handler: accept"
	LogHandlerCancel   = "requests handler: cancel"
	LogHandlerContacts = "requests handler: contacts"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidRequestID     = "invalid request id"
	ErrorFailedToServeRequest = "failed to serve request"

	// FeedCacheKey задает ключ, под которым в кэше хранится снимок ленты заявок.
	FeedCacheKey = "requests:feed"
)

// Сообщения об ошибках, видимые клиенту.
const (
	MsgNotAvailable = "Not available"
	MsgNotFound     = "Not found"
	MsgForbidden    = "Forbidden"
	MsgUnauthorized = "Unauthorized"
)

// Handler содержит HTTP обработчики журнала заявок.
type Handler struct {
	ledger api.LedgerUseCase
	cache  cache.Cache
}

// NewHandler создает новый экземпляр обработчика заявок.
func NewHandler(ledger api.LedgerUseCase, feedCache cache.Cache) *Handler {
	return &Handler{
		ledger: ledger,
		cache:  feedCache,
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// sendLedgerError переводит ошибки бизнес-логики в HTTP статусы.
func sendLedgerError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNotAvailable):
		return sendErrorResponse(ctx, http.StatusConflict, MsgNotAvailable)
	case errors.Is(err, app.ErrNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, MsgNotFound)
	case errors.Is(err, app.ErrForbidden), errors.Is(err, app.ErrOwnRequest):
		return sendErrorResponse(ctx, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, app.ErrUnauthorized):
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgUnauthorized)
	default:
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
}

// actor извлекает email действующего лица из locals запроса.
func actor(ctx fiber.Ctx) string {
	email, _ := ctx.Locals(httpmw.LocalsActorEmail).(string)
	return email
}

func parseRequestID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("request_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing request id: %w", err)
	}
	return id, nil
}

// invalidateFeed сбрасывает кэшированный снимок ленты после мутации.
func (h *Handler) invalidateFeed(ctx fiber.Ctx) {
	requestCtx := ctx.Context()
	if err := h.cache.Delete(requestCtx, FeedCacheKey); err != nil {
		logger.Log(requestCtx).Warn(requestCtx, "failed to invalidate feed cache", zap.Error(err))
	}
}

// List возвращает снимок всех заявок для отображения на карте.
// Снимок кэшируется целиком как JSON и сбрасывается при любой мутации.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	if cached, err := h.cache.Get(requestCtx, FeedCacheKey); err == nil && cached != "" {
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return ctx.Status(http.StatusOK).SendString(cached)
	}

	all, err := h.ledger.ListAll(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	feed := dto.NewRequestListResponse(all)

	payload, err := json.Marshal(feed)
	if err != nil {
		log.Error(requestCtx, "failed to marshal feed", zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := h.cache.Set(requestCtx, FeedCacheKey, string(payload), 0); err != nil {
		log.Warn(requestCtx, "failed to cache feed", zap.Error(err))
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(http.StatusOK).SendString(string(payload))
}

// Create обрабатывает создание новой заявки.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.CreateRequestRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Title == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "title is required")
	}

	created, err := h.ledger.Create(requestCtx, req.ToInput(), actor(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendLedgerError(ctx, err)
	}

	h.invalidateFeed(ctx)

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewRequestResponse(created)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Accept обрабатывает принятие заявки действующим лицом.
func (h *Handler) Accept(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAccept)

	id, err := parseRequestID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequestID)
	}

	if err := h.ledger.Accept(requestCtx, id, actor(ctx)); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendLedgerError(ctx, err)
	}

	h.invalidateFeed(ctx)

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"accepted": true,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Cancel обрабатывает отмену заявки. Автор удаляет заявку целиком,
// исполнитель возвращает ее в статус New.
func (h *Handler) Cancel(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCancel)

	id, err := parseRequestID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequestID)
	}

	outcome, err := h.ledger.Cancel(requestCtx, id, actor(ctx))
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendLedgerError(ctx, err)
	}

	h.invalidateFeed(ctx)

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		string(outcome): true,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Contacts возвращает контакты участников принятой заявки.
func (h *Handler) Contacts(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerContacts)

	id, err := parseRequestID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequestID)
	}

	contacts, err := h.ledger.GetContacts(requestCtx, id, actor(ctx))
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendLedgerError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(contacts); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
