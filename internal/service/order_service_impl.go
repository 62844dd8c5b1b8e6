package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/repository"
	"github.com/thanha17/online-shop/pkg/errs"
)

type OrderServiceImpl struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
}

func CreateOrderService(repo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &OrderServiceImpl{repo: repo, productRepo: productRepo}
}

// AddOrder snapshots each line at the product's current price and accumulates
// the total; every referenced product must exist before anything is persisted.
// The purchase counter increments afterwards are sequential and best-effort:
// a failing increment is logged, not rolled back.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, email string, payload dto.OrderRequest) (order domain.Order, err error) {
	if len(payload.Items) == 0 {
		return order, errs.ErrClient
	}

	var totalAmount float64
	items := make([]domain.OrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return order, err
		}

		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		totalAmount += product.Price * float64(qty)
		items = append(items, domain.OrderItem{
			ProductID:       product.ID,
			Quantity:        qty,
			PriceAtPurchase: product.Price,
		})
	}

	order = domain.Order{
		UserEmail:   email,
		Items:       items,
		TotalAmount: totalAmount,
		CreatedAt:   time.Now().UnixMilli(),
	}

	orderID, err := s.repo.AddOrder(ctx, order)
	if err != nil {
		return order, err
	}
	order.ID = orderID

	for _, item := range items {
		if err := s.productRepo.IncrementPurchases(ctx, item.ProductID, item.Quantity); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Str("product_id", item.ProductID.Hex()).Msg("failed to increment purchase counter")
		}
	}

	return order, nil
}
