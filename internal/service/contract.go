package service

import (
	"context"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	pkgdto "github.com/thanha17/online-shop/pkg/dto"
)

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (res dto.UserResponse, err error)
	Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error)
	GetUsers(ctx context.Context) (data []dto.UserResponse, err error)
	GetFavorites(ctx context.Context, email string) (data []domain.Product, err error)
	AddFavorite(ctx context.Context, email string, productID string) (err error)
	RemoveFavorite(ctx context.Context, email string, productID string) (err error)
}

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (responsePayload pkgdto.PaginationResponse, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	GetProductDetail(ctx context.Context, id string, userEmail string) (detail dto.ProductDetailResponse, err error)
	SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) (responsePayload pkgdto.PaginationResponse, err error)
	ReindexProducts(ctx context.Context) (count int, err error)
}

type CartService interface {
	GetCart(ctx context.Context, email string) (cart dto.CartResponse, err error)
	AddOrUpdateItem(ctx context.Context, email string, payload dto.CartItemRequest) (cart dto.CartResponse, err error)
	UpdateQuantity(ctx context.Context, email string, payload dto.CartItemRequest) (cart dto.CartResponse, err error)
	RemoveItem(ctx context.Context, email string, productID string) (cart dto.CartResponse, err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, email string, payload dto.OrderRequest) (order domain.Order, err error)
}

type CommentService interface {
	GetComments(ctx context.Context, productID string) (data []domain.Comment, err error)
	AddComment(ctx context.Context, email string, productID string, payload dto.CommentRequest) (comment domain.Comment, err error)
}
