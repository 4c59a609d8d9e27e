package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pokeolivos/pokeolivos-api/internal/api"
	"github.com/pokeolivos/pokeolivos-api/internal/config"
	"github.com/pokeolivos/pokeolivos-api/internal/db"
	"github.com/pokeolivos/pokeolivos-api/internal/logger"
	"github.com/pokeolivos/pokeolivos-api/internal/storage"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	bucket, err := storage.OpenBucket(context.Background(), conf.Storage)
	if err != nil {
		return fmt.Errorf("failed to open the image bucket -> %w", err)
	}
	defer bucket.Close()

	s := api.NewServer(conf, postgresDB, bucket)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
