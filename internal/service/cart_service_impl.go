package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/repository"
	"github.com/thanha17/online-shop/pkg/errs"
)

type CartServiceImpl struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func CreateCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &CartServiceImpl{repo: repo, productRepo: productRepo}
}

// getOrCreateCart lazily creates the user's cart on first access.
func (s *CartServiceImpl) getOrCreateCart(ctx context.Context, email string) (cart domain.Cart, err error) {
	cart, err = s.repo.GetCartByEmail(ctx, email)
	if err == errs.ErrCartNotFound {
		return s.repo.AddCart(ctx, domain.Cart{UserEmail: email, Items: []domain.CartItem{}})
	}

	return cart, err
}

// resolveCart resolves product details for every cart line.
func (s *CartServiceImpl) resolveCart(ctx context.Context, cart domain.Cart) (res dto.CartResponse, err error) {
	res = dto.CartResponse{
		ID:        cart.ID.Hex(),
		UserEmail: cart.UserEmail,
		Items:     []dto.CartItemDetail{},
	}

	if len(cart.Items) == 0 {
		return res, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return res, err
	}

	byID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range cart.Items {
		res.Items = append(res.Items, dto.CartItemDetail{
			Product:  byID[item.ProductID],
			Quantity: item.Quantity,
		})
	}

	return res, nil
}

func (s *CartServiceImpl) GetCart(ctx context.Context, email string) (cart dto.CartResponse, err error) {
	ent, err := s.getOrCreateCart(ctx, email)
	if err != nil {
		return
	}

	return s.resolveCart(ctx, ent)
}

func (s *CartServiceImpl) AddOrUpdateItem(ctx context.Context, email string, payload dto.CartItemRequest) (cart dto.CartResponse, err error) {
	if payload.ProductID == "" {
		return cart, errs.ErrClient
	}

	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		return cart, errs.ErrClient
	}

	ent, err := s.getOrCreateCart(ctx, email)
	if err != nil {
		return
	}

	qty := payload.Quantity
	if qty < 1 {
		qty = 1
	}

	found := false
	for i := range ent.Items {
		if ent.Items[i].ProductID == productID {
			ent.Items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		ent.Items = append(ent.Items, domain.CartItem{ProductID: productID, Quantity: qty})
	}

	if err = s.repo.UpdateCartItems(ctx, ent); err != nil {
		return
	}

	return s.resolveCart(ctx, ent)
}

func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, email string, payload dto.CartItemRequest) (cart dto.CartResponse, err error) {
	if payload.ProductID == "" {
		return cart, errs.ErrClient
	}

	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		return cart, errs.ErrClient
	}

	ent, err := s.repo.GetCartByEmail(ctx, email)
	if err != nil {
		return
	}

	idx := -1
	for i := range ent.Items {
		if ent.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cart, errs.ErrCartItemNotFound
	}

	if payload.Quantity <= 0 {
		ent.Items = append(ent.Items[:idx], ent.Items[idx+1:]...)
	} else {
		ent.Items[idx].Quantity = payload.Quantity
	}

	if err = s.repo.UpdateCartItems(ctx, ent); err != nil {
		return
	}

	return s.resolveCart(ctx, ent)
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, email string, productID string) (cart dto.CartResponse, err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return cart, errs.ErrClient
	}

	ent, err := s.repo.GetCartByEmail(ctx, email)
	if err != nil {
		return
	}

	items := ent.Items[:0]
	for _, item := range ent.Items {
		if item.ProductID != objectID {
			items = append(items, item)
		}
	}
	ent.Items = items

	if err = s.repo.UpdateCartItems(ctx, ent); err != nil {
		return
	}

	return s.resolveCart(ctx, ent)
}
