package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"roomatch/internal/domain/entity"
	"roomatch/internal/usecase"
	"roomatch/pkg/errors"
	"roomatch/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	matchUseCase   *usecase.MatchUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, matchUseCase *usecase.MatchUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		matchUseCase:   matchUseCase,
	}
}

type createListingRequest struct {
	Title          string                    `json:"title" validate:"required,min=3"`
	Price          float64                   `json:"price" validate:"required,gt=0"`
	Neighborhood   string                    `json:"neighborhood" validate:"required"`
	StartDate      time.Time                 `json:"start_date" validate:"required"`
	EndDate        time.Time                 `json:"end_date" validate:"required"`
	Images         []string                  `json:"images"`
	Vibes          []string                  `json:"vibes"`
	PromptQuestion string                    `json:"prompt_question"`
	PromptAnswer   string                    `json:"prompt_answer"`
	Preferences    entity.ListingPreferences `json:"preferences"`
}

type updateListingRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=3"`
	Price          *float64   `json:"price" validate:"omitempty,gt=0"`
	Neighborhood   *string    `json:"neighborhood"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Images         *[]string  `json:"images"`
	Vibes          *[]string  `json:"vibes"`
	PromptQuestion *string    `json:"prompt_question"`
	PromptAnswer   *string    `json:"prompt_answer"`
	IsActive       *bool      `json:"is_active"`
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), userID, usecase.CreateListingInput{
		Title:          req.Title,
		Price:          req.Price,
		Neighborhood:   req.Neighborhood,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Images:         req.Images,
		Vibes:          req.Vibes,
		PromptQuestion: req.PromptQuestion,
		PromptAnswer:   req.PromptAnswer,
		Preferences:    req.Preferences,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), userID, c.Param("id"), usecase.UpdateListingInput{
		Title:          req.Title,
		Price:          req.Price,
		Neighborhood:   req.Neighborhood,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Images:         req.Images,
		Vibes:          req.Vibes,
		PromptQuestion: req.PromptQuestion,
		PromptAnswer:   req.PromptAnswer,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.listingUseCase.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted successfully",
	})
}

// Browse returns the swipe deck: active listings the caller has not
// liked and does not own, optionally narrowed by owner role.
func (h *ListingHandler) Browse(c echo.Context) error {
	userID := c.Get("uid").(string)
	browseType := c.QueryParam("type")

	listings, err := h.listingUseCase.Browse(c.Request().Context(), userID, browseType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) ListBuyers(c echo.Context) error {
	userID := c.Get("uid").(string)

	buyers, err := h.listingUseCase.ListBuyers(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, buyers)
}

func (h *ListingHandler) MyListings(c echo.Context) error {
	userID := c.Get("uid").(string)

	listings, err := h.listingUseCase.MyListings(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) SavedListings(c echo.Context) error {
	userID := c.Get("uid").(string)

	listings, err := h.listingUseCase.SavedListings(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) LikeListing(c echo.Context) error {
	userID := c.Get("uid").(string)
	listingID := c.Param("id")

	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	result, err := h.matchUseCase.LikeListing(c.Request().Context(), userID, listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ListingHandler) UnlikeListing(c echo.Context) error {
	userID := c.Get("uid").(string)
	listingID := c.Param("id")

	removed, err := h.matchUseCase.Unlike(c.Request().Context(), userID, listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"removed": removed,
	})
}

func (h *ListingHandler) LikeBuyer(c echo.Context) error {
	userID := c.Get("uid").(string)
	buyerID := c.Param("buyerId")

	if buyerID == "" {
		return response.Error(c, errors.BadRequest("Buyer ID is required", nil))
	}

	result, err := h.matchUseCase.LikeBuyer(c.Request().Context(), userID, buyerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}
