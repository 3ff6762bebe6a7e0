package server

import (
	"net/http"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/labstack/echo/v4"
)

// Document-backend routes mirror the relational ones under /mongo;
// identifiers are hex document keys instead of numeric ids.

func (h *controller) CreateMongoUser(c echo.Context) error {
	var req models.UserCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.docUsers.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *controller) ListMongoUsers(c echo.Context) error {
	var page models.PageQuery
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination")
	}

	users, err := h.docUsers.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *controller) GetMongoUser(c echo.Context) error {
	user, err := h.docUsers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *controller) GetMongoUserByUsername(c echo.Context) error {
	user, err := h.docUsers.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *controller) MongoUserConversationCount(c echo.Context) error {
	id := c.Param("id")
	count, err := h.docUsers.ConversationCount(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"user_id":            id,
		"conversation_count": count,
	})
}

func (h *controller) UpdateMongoUser(c echo.Context) error {
	var req models.UserUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.docUsers.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *controller) DeleteMongoUser(c echo.Context) error {
	if err := h.docUsers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "user deleted",
	})
}

func (h *controller) CreateMongoConversation(c echo.Context) error {
	var req models.ConversationDocCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conversation, err := h.docConversations.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, conversation)
}

func (h *controller) ListMongoConversations(c echo.Context) error {
	var page models.PageQuery
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination")
	}

	conversations, err := h.docConversations.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversations)
}

func (h *controller) GetMongoConversation(c echo.Context) error {
	conversation, err := h.docConversations.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversation)
}

func (h *controller) ListMongoUserConversations(c echo.Context) error {
	var page models.PageQuery
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination")
	}

	conversations, err := h.docConversations.ListByUser(c.Request().Context(), c.Param("id"), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversations)
}

func (h *controller) UpdateMongoConversation(c echo.Context) error {
	var req models.ConversationUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	conversation, err := h.docConversations.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversation)
}

func (h *controller) DeleteMongoConversation(c echo.Context) error {
	if err := h.docConversations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "conversation deleted",
	})
}
