package handler

import (
	"github.com/labstack/echo/v4"

	"roomatch/internal/usecase"
	"roomatch/pkg/errors"
	"roomatch/pkg/response"
)

type MatchHandler struct {
	matchUseCase   *usecase.MatchUseCase
	messageUseCase *usecase.MessageUseCase
}

func NewMatchHandler(matchUseCase *usecase.MatchUseCase, messageUseCase *usecase.MessageUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase:   matchUseCase,
		messageUseCase: messageUseCase,
	}
}

func (h *MatchHandler) ListMatches(c echo.Context) error {
	userID := c.Get("uid").(string)

	matches, err := h.matchUseCase.ListMatches(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, matches)
}

func (h *MatchHandler) GetMatch(c echo.Context) error {
	userID := c.Get("uid").(string)

	match, err := h.matchUseCase.GetMatch(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, match)
}

func (h *MatchHandler) ListMessages(c echo.Context) error {
	userID := c.Get("uid").(string)

	messages, err := h.messageUseCase.ListMessages(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

type postMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *MatchHandler) PostMessage(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.PostMessage(c.Request().Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MatchHandler) MarkMessageRead(c echo.Context) error {
	userID := c.Get("uid").(string)

	err := h.messageUseCase.MarkMessageRead(c.Request().Context(), c.Param("id"), c.Param("messageId"), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message marked as read",
	})
}
