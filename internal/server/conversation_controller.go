package server

import (
	"net/http"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/labstack/echo/v4"
)

func (h *controller) CreateConversation(c echo.Context) error {
	var req models.ConversationCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conversation, err := h.conversations.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, conversation)
}

func (h *controller) ListConversations(c echo.Context) error {
	var page models.PageQuery
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination")
	}

	conversations, err := h.conversations.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversations)
}

func (h *controller) GetConversation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	conversation, err := h.conversations.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversation)
}

func (h *controller) ListUserConversations(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var page models.PageQuery
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination")
	}

	conversations, err := h.conversations.ListByUser(c.Request().Context(), userID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversations)
}

func (h *controller) UpdateConversation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.ConversationUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	conversation, err := h.conversations.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversation)
}

func (h *controller) DeleteConversation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.conversations.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "conversation deleted",
	})
}
