package elasticsearch

import (
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch"

	"github.com/thanha17/online-shop/config"
)

func CreateElasticsearchClient(config *config.Config) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{
			config.ElasticsearchConfig.DBHost,
		},
		Transport: http.DefaultTransport,
	}

	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	res, err := esClient.Info()
	if err != nil {
		return nil, fmt.Errorf("error connecting to Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error response from Elasticsearch: %s", res.String())
	}

	return esClient, nil
}
