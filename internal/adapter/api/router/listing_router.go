package router

import (
	"roomatch/internal/adapter/api/handler"
	"roomatch/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/api/listings")
	listings.Use(authMiddleware.Authenticate)

	// Static segments before :id so they are not captured as IDs
	listings.GET("/browse", listingHandler.Browse)
	listings.GET("/buyers", listingHandler.ListBuyers)
	listings.POST("/buyers/:buyerId/like", listingHandler.LikeBuyer)
	listings.GET("/my-listings", listingHandler.MyListings)
	listings.GET("/likes/saved", listingHandler.SavedListings)

	listings.POST("", listingHandler.CreateListing)
	listings.GET("/:id", listingHandler.GetListing)
	listings.PUT("/:id", listingHandler.UpdateListing)
	listings.DELETE("/:id", listingHandler.DeleteListing)

	listings.POST("/:id/like", listingHandler.LikeListing)
	listings.DELETE("/:id/like", listingHandler.UnlikeListing)
}
