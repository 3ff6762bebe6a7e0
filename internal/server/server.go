package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/convokit/chatbot-api/internal/config"
	pkgmdw "github.com/convokit/chatbot-api/internal/server/middleware"
	"github.com/convokit/chatbot-api/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
) {
	log := logger.MustNamed("http")
	e := newRouter(handler, log)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting HTTP server", "addr", conf.Server.Addr)
				if err := e.Start(conf.Server.Addr); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func newRouter(handler Controller, log *zap.SugaredLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: log,
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw("PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")

	api.POST("/users", handler.CreateUser)
	api.GET("/users", handler.ListUsers)
	api.GET("/users/:id", handler.GetUser)
	api.GET("/users/:id/full", handler.GetUserFull)
	api.GET("/users/:id/conversation-count", handler.UserConversationCount)
	api.GET("/users/:id/conversations", handler.ListUserConversations)
	api.PUT("/users/:id", handler.UpdateUser)
	api.DELETE("/users/:id", handler.DeleteUser)

	api.POST("/conversations", handler.CreateConversation)
	api.GET("/conversations", handler.ListConversations)
	api.GET("/conversations/:id", handler.GetConversation)
	api.PUT("/conversations/:id", handler.UpdateConversation)
	api.DELETE("/conversations/:id", handler.DeleteConversation)

	api.POST("/chat", handler.Chat)

	mongo := api.Group("/mongo")

	mongo.POST("/users", handler.CreateMongoUser)
	mongo.GET("/users", handler.ListMongoUsers)
	mongo.GET("/users/:id", handler.GetMongoUser)
	mongo.GET("/users/by-username/:username", handler.GetMongoUserByUsername)
	mongo.GET("/users/:id/conversation-count", handler.MongoUserConversationCount)
	mongo.GET("/users/:id/conversations", handler.ListMongoUserConversations)
	mongo.PUT("/users/:id", handler.UpdateMongoUser)
	mongo.DELETE("/users/:id", handler.DeleteMongoUser)

	mongo.POST("/conversations", handler.CreateMongoConversation)
	mongo.GET("/conversations", handler.ListMongoConversations)
	mongo.GET("/conversations/:id", handler.GetMongoConversation)
	mongo.PUT("/conversations/:id", handler.UpdateMongoConversation)
	mongo.DELETE("/conversations/:id", handler.DeleteMongoConversation)

	return e
}
