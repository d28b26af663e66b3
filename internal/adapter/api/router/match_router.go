package router

import (
	"roomatch/internal/adapter/api/handler"
	"roomatch/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMatchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	matchHandler := handler.GetMatchHandler()

	matches := e.Group("/api/matches")
	matches.Use(authMiddleware.Authenticate)

	matches.GET("", matchHandler.ListMatches)
	matches.GET("/:id", matchHandler.GetMatch)
	matches.GET("/:id/messages", matchHandler.ListMessages)
	matches.POST("/:id/messages", matchHandler.PostMessage)
	matches.POST("/:id/messages/:messageId/read", matchHandler.MarkMessageRead)
}
