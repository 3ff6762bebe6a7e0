package server

import (
	"net/http"
	"strconv"

	"github.com/convokit/chatbot-api/internal/usecase"
	"github.com/labstack/echo/v4"
)

type Controller interface {
	Root(c echo.Context) error
	Health(c echo.Context) error

	CreateUser(c echo.Context) error
	ListUsers(c echo.Context) error
	GetUser(c echo.Context) error
	GetUserFull(c echo.Context) error
	UserConversationCount(c echo.Context) error
	UpdateUser(c echo.Context) error
	DeleteUser(c echo.Context) error

	CreateConversation(c echo.Context) error
	ListConversations(c echo.Context) error
	GetConversation(c echo.Context) error
	ListUserConversations(c echo.Context) error
	UpdateConversation(c echo.Context) error
	DeleteConversation(c echo.Context) error

	CreateMongoUser(c echo.Context) error
	ListMongoUsers(c echo.Context) error
	GetMongoUser(c echo.Context) error
	GetMongoUserByUsername(c echo.Context) error
	MongoUserConversationCount(c echo.Context) error
	UpdateMongoUser(c echo.Context) error
	DeleteMongoUser(c echo.Context) error

	CreateMongoConversation(c echo.Context) error
	ListMongoConversations(c echo.Context) error
	GetMongoConversation(c echo.Context) error
	ListMongoUserConversations(c echo.Context) error
	UpdateMongoConversation(c echo.Context) error
	DeleteMongoConversation(c echo.Context) error

	Chat(c echo.Context) error
}

type controller struct {
	users            usecase.UserUsecase
	conversations    usecase.ConversationUsecase
	chat             usecase.ChatUsecase
	docUsers         usecase.DocUserUsecase
	docConversations usecase.DocConversationUsecase
}

func NewHandler(
	users usecase.UserUsecase,
	conversations usecase.ConversationUsecase,
	chat usecase.ChatUsecase,
	docUsers usecase.DocUserUsecase,
	docConversations usecase.DocConversationUsecase,
) Controller {
	return &controller{
		users:            users,
		conversations:    conversations,
		chat:             chat,
		docUsers:         docUsers,
		docConversations: docConversations,
	}
}

func (h *controller) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Chatbot API is running",
		"docs":    "/api/v1",
	})
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "chatbot-api",
	})
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
