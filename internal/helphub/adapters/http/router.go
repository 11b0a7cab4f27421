// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"helphub/internal/helphub/adapters/http/auth"
	"helphub/internal/helphub/adapters/http/requests"
	"helphub/internal/helphub/app/http/middleware"
	"helphub/internal/helphub/ports/api"
	"helphub/internal/helphub/ports/cache"
	"helphub/internal/helphub/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	accounts api.AccountUseCase,
	ledger api.LedgerUseCase,
	tokenService services.TokenService,
	feedCache cache.Cache,
) {
	authHandler := auth.NewHandler(accounts)
	requestsHandler := requests.NewHandler(ledger, feedCache)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshTokens)
	authRoutes.Post("/logout", authHandler.Logout)

	// Защищенные маршруты профиля.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	userRoutes.Get("/profile", authHandler.GetProfile)

	// Лента заявок публична, мутации требуют авторизации.
	requestRoutes := apiV1.Group("/requests")
	requestRoutes.Get("/", requestsHandler.List)
	requestRoutes.Post("/", requestsHandler.Create, middleware.NewAuthMiddleware(tokenService))
	requestRoutes.Post("/:request_id/accept", requestsHandler.Accept, middleware.NewAuthMiddleware(tokenService))
	requestRoutes.Post("/:request_id/cancel", requestsHandler.Cancel, middleware.NewAuthMiddleware(tokenService))
	requestRoutes.Get("/:request_id/contacts", requestsHandler.Contacts, middleware.NewAuthMiddleware(tokenService))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
