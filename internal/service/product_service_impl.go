package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/config"
	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/repository"
	pkgdto "github.com/thanha17/online-shop/pkg/dto"
)

const (
	defaultPageSize  = 6
	similarLimit     = 6
	reindexBatchSize = 100
)

type ProductServiceImpl struct {
	mongoDBRepo       repository.ProductRepository
	elasticSearchRepo repository.ElasticSearchProductRepository
	userRepo          repository.UserRepository
	config            config.Config
}

// CreateProductService wires the product service; elasticSearchRepo may be nil
// when no search index is configured, in which case listing and search run
// against the primary store only.
func CreateProductService(mongoDBRepo repository.ProductRepository, elasticSearchRepo repository.ElasticSearchProductRepository, userRepo repository.UserRepository, config config.Config) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo, elasticSearchRepo: elasticSearchRepo, userRepo: userRepo, config: config}
}

func normalizePaging(page, limit int64) (int64, int64) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	return page, limit
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (responsePayload pkgdto.PaginationResponse, err error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	data, err := s.mongoDBRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	total, err := s.mongoDBRepo.CountProducts(ctx)
	if err != nil {
		return
	}

	if data == nil {
		data = []domain.Product{}
	}

	responsePayload.Data = data
	responsePayload.Total = total
	responsePayload.Page = filter.Page
	responsePayload.TotalPages = pkgdto.CountTotalPages(total, filter.Limit)

	return
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	product = domain.Product{
		Name:      data.Name,
		Price:     data.Price,
		Category:  data.Category,
		Image:     data.Image,
		Promotion: data.Promotion,
		CreatedAt: time.Now().UnixMilli(),
	}

	productID, err := s.mongoDBRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = productID

	// Fire-and-forget mirror into the search index: failures are logged and
	// never fail the request.
	if s.elasticSearchRepo != nil {
		doc := dto.ProductResponseFromDomain(product)
		go func() {
			if err := s.elasticSearchRepo.AddProduct(context.Background(), "products", doc); err != nil {
				log.Error().Err(err).Str("component", "AddProduct").Msg("failed to mirror product into the search index")
			}
		}()
	}

	return product, nil
}

func (s *ProductServiceImpl) GetProductDetail(ctx context.Context, id string, userEmail string) (detail dto.ProductDetailResponse, err error) {
	product, err := s.mongoDBRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if err = s.mongoDBRepo.IncrementViews(ctx, product.ID); err != nil {
		return
	}
	product.Views++

	if s.elasticSearchRepo != nil {
		views := product.Views
		go func() {
			if err := s.elasticSearchRepo.UpdateProductViews(context.Background(), id, views); err != nil {
				log.Error().Err(err).Str("component", "GetProductDetail").Msg("failed to mirror view count into the search index")
			}
		}()
	}

	if userEmail != "" {
		if err := s.userRepo.PushRecentlyViewed(ctx, userEmail, product.ID); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetProductDetail").Msg("failed to update recently viewed")
		}
	}

	similar, err := s.mongoDBRepo.GetSimilarProducts(ctx, product.Category, product.ID, similarLimit)
	if err != nil {
		return
	}
	if similar == nil {
		similar = []domain.Product{}
	}

	detail.Product = product
	detail.Similar = similar

	return detail, nil
}

func (s *ProductServiceImpl) SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) (responsePayload pkgdto.PaginationResponse, err error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	if s.elasticSearchRepo == nil {
		return s.searchProductsFromDB(ctx, filter)
	}

	ids, total, err := s.elasticSearchRepo.SearchProducts(ctx, filter)
	if err != nil || len(ids) == 0 {
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("search index query failed")
		}
		if s.config.SearchConfig.FallbackToDB {
			return s.searchProductsFromDB(ctx, filter)
		}
		return emptyPage(filter.Page), nil
	}

	// Reconciliation: re-fetch the ids from the primary store with the same
	// filters applied, then restore the index's relative order.
	products, err := s.mongoDBRepo.GetProductsByIDsFiltered(ctx, ids, filter)
	if err != nil {
		return responsePayload, err
	}

	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.SliceStable(products, func(i, j int) bool {
		return rank[products[i].ID.Hex()] < rank[products[j].ID.Hex()]
	})

	if int64(len(products)) > filter.Limit {
		products = products[:filter.Limit]
	}
	if products == nil {
		products = []domain.Product{}
	}

	responsePayload.Data = products
	responsePayload.Total = total
	responsePayload.Page = filter.Page
	responsePayload.TotalPages = pkgdto.CountTotalPages(total, filter.Limit)

	return responsePayload, nil
}

func (s *ProductServiceImpl) searchProductsFromDB(ctx context.Context, filter pkgdto.SearchFilter) (responsePayload pkgdto.PaginationResponse, err error) {
	data, total, err := s.mongoDBRepo.SearchProducts(ctx, filter)
	if err != nil {
		return
	}

	if data == nil {
		data = []domain.Product{}
	}

	responsePayload.Data = data
	responsePayload.Total = total
	responsePayload.Page = filter.Page
	responsePayload.TotalPages = pkgdto.CountTotalPages(total, filter.Limit)

	return responsePayload, nil
}

func emptyPage(page int64) pkgdto.PaginationResponse {
	return pkgdto.PaginationResponse{
		Data:       []domain.Product{},
		Total:      0,
		Page:       page,
		TotalPages: 0,
	}
}

// ReindexProducts walks the whole product collection and pushes every record
// into the search index, continuing past per-document failures, then refreshes
// the index once at the end.
func (s *ProductServiceImpl) ReindexProducts(ctx context.Context) (count int, err error) {
	if err = s.elasticSearchRepo.EnsureIndex(ctx); err != nil {
		return
	}

	for page := int64(1); ; page++ {
		batch, err := s.mongoDBRepo.GetProducts(ctx, pkgdto.Filter{Page: page, Limit: reindexBatchSize})
		if err != nil {
			return count, err
		}
		if len(batch) == 0 {
			break
		}

		for _, product := range batch {
			doc := dto.ProductResponseFromDomain(product)
			if err := s.elasticSearchRepo.AddProduct(ctx, "products", doc); err != nil {
				log.Error().Err(err).Str("component", "ReindexProducts").Str("product_id", doc.ID).Msg("failed to index product")
				continue
			}
			count++
		}
	}

	if err = s.elasticSearchRepo.Refresh(ctx); err != nil {
		return
	}

	return count, nil
}
