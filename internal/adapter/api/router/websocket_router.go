package router

import (
	"roomatch/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupWebSocketRouter registers the WebSocket endpoint. Auth happens
// inside the handler via the token query parameter, not the middleware
// chain.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}
