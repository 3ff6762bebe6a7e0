package server

import (
	"net/http"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/labstack/echo/v4"
)

// Chat runs one message through the bot and persists the exchange.
func (h *controller) Chat(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.chat.Chat(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
