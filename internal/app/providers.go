package app

import (
	"context"
	"fmt"
	"time"

	"github.com/convokit/chatbot-api/internal/config"
	"github.com/convokit/chatbot-api/internal/repo/mongodb"
	"github.com/convokit/chatbot-api/internal/repo/mysql"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMySQLDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := mysql.NewConnection(cfg.MySQL)
	if err != nil {
		return nil, fmt.Errorf("init mysql: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return mysql.AutoMigrate(db)
		},
		OnStop: func(ctx context.Context) error {
			return mysql.Close(db)
		},
	})

	return db, nil
}

func newMongoDB(lc fx.Lifecycle, cfg *config.Config) (*mongodb.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := mongodb.NewConnection(ctx, cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("init mongo client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Ping(ctx); err != nil {
				return fmt.Errorf("ping mongo: %w", err)
			}
			return db.EnsureIndexes(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return db.Close(ctx)
		},
	})

	return db, nil
}
