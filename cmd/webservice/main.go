package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/config"
	"github.com/thanha17/online-shop/internal/app"
	"github.com/thanha17/online-shop/internal/infrastructure/database/elasticsearch"
	"github.com/thanha17/online-shop/internal/infrastructure/database/mongodb"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf, err := config.CreateNewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := mongodb.ConnectToMongoDB(ctx, conf.MongoDBConfig.URI, conf.MongoDBConfig.DBName)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	application := app.App{
		DB:     db,
		Config: conf,
	}

	// The search index is a best-effort collaborator: an unreachable cluster
	// downgrades search to the primary store instead of failing startup.
	if conf.ElasticsearchConfig.DBHost != "" {
		esClient, err := elasticsearch.CreateElasticsearchClient(conf)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Elasticsearch, continuing without the search index")
		} else {
			application.ES = esClient
		}
	}

	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")

	if err := application.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown server")
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongodb.Disconnect(ctx, db); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
