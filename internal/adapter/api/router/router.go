package router

import (
	"roomatch/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupMatchRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
