package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch"
	"github.com/sony/gobreaker/v2"

	"github.com/thanha17/online-shop/internal/dto"
	pkgdto "github.com/thanha17/online-shop/pkg/dto"
)

const esIndex = "products"

type ElasticSearchProductRepositoryImpl struct {
	elasticsearch *elasticsearch.Client
	breaker       *gobreaker.CircuitBreaker[[]byte]
}

func CreateNewElasticSearchRepository(es *elasticsearch.Client, breaker *gobreaker.CircuitBreaker[[]byte]) ElasticSearchProductRepository {
	return &ElasticSearchProductRepositoryImpl{elasticsearch: es, breaker: breaker}
}

func (r *ElasticSearchProductRepositoryImpl) AddProduct(ctx context.Context, index string, data dto.ProductResponse) (err error) {
	docBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling document: %w", err)
	}

	res, err := r.elasticsearch.Index(
		index,
		bytes.NewReader(docBytes),
		r.elasticsearch.Index.WithDocumentID(data.ID),
		r.elasticsearch.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error indexing document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *ElasticSearchProductRepositoryImpl) UpdateProductViews(ctx context.Context, id string, views int64) (err error) {
	body := map[string]interface{}{
		"doc": map[string]interface{}{
			"views": views,
		},
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error marshaling update: %w", err)
	}

	res, err := r.elasticsearch.Update(
		esIndex,
		id,
		bytes.NewReader(bodyBytes),
		r.elasticsearch.Update.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error updating document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error updating document: %s", res.String())
	}

	return nil
}

// buildSearchQuery builds the index query: full-text match across name
// (boosted) and category with fuzzy matching when a keyword is present, plus
// exact-term and numeric-range filter clauses.
func buildSearchQuery(filter pkgdto.SearchFilter) map[string]interface{} {
	must := []interface{}{}
	if filter.Keyword != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     filter.Keyword,
				"fields":    []string{"name^3", "category"},
				"fuzziness": "AUTO",
				"operator":  "and",
			},
		})
	} else {
		must = append(must, map[string]interface{}{
			"match_all": map[string]interface{}{},
		})
	}

	filterClauses := []interface{}{}
	if filter.Category != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"category": filter.Category},
		})
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		priceRange := map[string]interface{}{}
		if filter.MinPrice != nil {
			priceRange["gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			priceRange["lte"] = *filter.MaxPrice
		}
		filterClauses = append(filterClauses, map[string]interface{}{
			"range": map[string]interface{}{"price": priceRange},
		})
	}
	if filter.PromotionOnly() {
		filterClauses = append(filterClauses, map[string]interface{}{
			"range": map[string]interface{}{"promotion": map[string]interface{}{"gte": 1}},
		})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filterClauses,
			},
		},
	}

	esSortOptions := map[string]map[string]string{
		"priceAsc":  {"price": "asc"},
		"priceDesc": {"price": "desc"},
		"views":     {"views": "desc"},
		"newest":    {"createdAt": "desc"},
		"purchases": {"purchasesCount": "desc"},
	}
	if sort, ok := esSortOptions[filter.SortBy]; ok {
		query["sort"] = []interface{}{sort}
	}

	if filter.Limit != 0 && filter.Page != 0 {
		query["from"] = (filter.Page - 1) * filter.Limit
		query["size"] = filter.Limit
	}

	return query
}

// SearchProducts returns the ordered id list from the index plus the total hit
// count. The call runs through the circuit breaker; an open breaker surfaces
// as an error like any other index failure.
func (r *ElasticSearchProductRepositoryImpl) SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) (ids []string, count int64, err error) {
	query := buildSearchQuery(filter)

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, 0, fmt.Errorf("error encoding query: %w", err)
	}

	body, err := r.breaker.Execute(func() ([]byte, error) {
		res, err := r.elasticsearch.Search(
			r.elasticsearch.Search.WithContext(ctx),
			r.elasticsearch.Search.WithIndex(esIndex),
			r.elasticsearch.Search.WithBody(strings.NewReader(buf.String())),
			r.elasticsearch.Search.WithTrackTotalHits(true),
		)
		if err != nil {
			return nil, fmt.Errorf("error performing search: %w", err)
		}
		defer res.Body.Close()

		if res.IsError() {
			return nil, fmt.Errorf("error searching documents: %s", res.String())
		}

		return io.ReadAll(res.Body)
	})
	if err != nil {
		return nil, 0, err
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, 0, fmt.Errorf("error parsing the response body: %w", err)
	}

	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.ID)
	}

	return ids, result.Hits.Total.Value, nil
}

func (r *ElasticSearchProductRepositoryImpl) EnsureIndex(ctx context.Context) (err error) {
	res, err := r.elasticsearch.Indices.Exists(
		[]string{esIndex},
		r.elasticsearch.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error checking index: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	mapping := map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"name":           map[string]string{"type": "text"},
				"category":       map[string]string{"type": "keyword"},
				"price":          map[string]string{"type": "float"},
				"image":          map[string]string{"type": "keyword"},
				"promotion":      map[string]string{"type": "integer"},
				"views":          map[string]string{"type": "integer"},
				"purchasesCount": map[string]string{"type": "integer"},
				"commentsCount":  map[string]string{"type": "integer"},
				"createdAt":      map[string]string{"type": "date"},
			},
		},
	}

	mappingBytes, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("error marshaling mapping: %w", err)
	}

	createRes, err := r.elasticsearch.Indices.Create(
		esIndex,
		r.elasticsearch.Indices.Create.WithBody(bytes.NewReader(mappingBytes)),
		r.elasticsearch.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating index: %s", createRes.String())
	}

	return nil
}

func (r *ElasticSearchProductRepositoryImpl) Refresh(ctx context.Context) (err error) {
	res, err := r.elasticsearch.Indices.Refresh(
		r.elasticsearch.Indices.Refresh.WithIndex(esIndex),
		r.elasticsearch.Indices.Refresh.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error refreshing index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error refreshing index: %s", res.String())
	}

	return nil
}
