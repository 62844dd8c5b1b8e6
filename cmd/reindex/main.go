package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/config"
	"github.com/thanha17/online-shop/internal/infrastructure/circuitbreaker"
	"github.com/thanha17/online-shop/internal/infrastructure/database/elasticsearch"
	"github.com/thanha17/online-shop/internal/infrastructure/database/mongodb"
	"github.com/thanha17/online-shop/internal/repository"
	"github.com/thanha17/online-shop/internal/service"
)

// One-off batch: walks the whole product collection and pushes every record
// into the search index, then refreshes it once.
func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	log.Logger = logger

	conf, err := config.CreateNewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if conf.ElasticsearchConfig.DBHost == "" {
		log.Fatal().Msg("ELASTIC_SEARCH_HOST is required for reindexing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := mongodb.ConnectToMongoDB(ctx, conf.MongoDBConfig.URI, conf.MongoDBConfig.DBName)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongodb.Disconnect(ctx, db); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	esClient, err := elasticsearch.CreateElasticsearchClient(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Elasticsearch")
	}

	productRepo := repository.CreateNewProductRepository(db)
	userRepo := repository.CreateNewUserRepository(db)
	elasticSearchRepo := repository.CreateNewElasticSearchRepository(esClient, circuitbreaker.CreateCircuitBreaker("elasticsearch"))

	svc := service.CreateProductService(productRepo, elasticSearchRepo, userRepo, *conf)

	count, err := svc.ReindexProducts(context.Background())
	if err != nil {
		log.Fatal().Err(err).Int("indexed", count).Msg("Reindex failed")
	}

	log.Info().Int("indexed", count).Msg("Reindex complete")
}
