package app

import (
	"github.com/convokit/chatbot-api/internal/config"
	"github.com/convokit/chatbot-api/internal/repo/mongodb"
	"github.com/convokit/chatbot-api/internal/repo/mysql"
	"github.com/convokit/chatbot-api/internal/server"
	"github.com/convokit/chatbot-api/internal/usecase"
	"github.com/convokit/chatbot-api/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", "config", conf)
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMySQLDB,
			newMongoDB,

			server.NewHandler,

			usecase.NewUserUsecase,
			usecase.NewConversationUsecase,
			usecase.NewChatUsecase,
			usecase.NewDocUserUsecase,
			usecase.NewDocConversationUsecase,

			mysql.NewUserRepository,
			mysql.NewConversationRepository,

			mongodb.NewUserRepository,
			mongodb.NewConversationRepository,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
