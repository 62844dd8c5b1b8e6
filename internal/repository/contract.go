package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	pkgdto "github.com/thanha17/online-shop/pkg/dto"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context) (count int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) (data []domain.Product, count int64, err error)
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error)
	GetProductsByIDsFiltered(ctx context.Context, ids []string, filter pkgdto.SearchFilter) (data []domain.Product, err error)
	GetSimilarProducts(ctx context.Context, category string, excludeID primitive.ObjectID, limit int64) (data []domain.Product, err error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) (err error)
	IncrementPurchases(ctx context.Context, id primitive.ObjectID, quantity int64) (err error)
	IncrementComments(ctx context.Context, id primitive.ObjectID) (err error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUsers(ctx context.Context) (data []domain.User, err error)
	AddFavorite(ctx context.Context, email string, productID primitive.ObjectID) (err error)
	RemoveFavorite(ctx context.Context, email string, productID primitive.ObjectID) (err error)
	PushRecentlyViewed(ctx context.Context, email string, productID primitive.ObjectID) (err error)
}

type CartRepository interface {
	GetCartByEmail(ctx context.Context, email string) (cart domain.Cart, err error)
	AddCart(ctx context.Context, data domain.Cart) (cart domain.Cart, err error)
	UpdateCartItems(ctx context.Context, cart domain.Cart) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
}

type CommentRepository interface {
	AddComment(ctx context.Context, data domain.Comment) (id primitive.ObjectID, err error)
	GetCommentsByProductID(ctx context.Context, productID primitive.ObjectID) (data []domain.Comment, err error)
}

type ElasticSearchProductRepository interface {
	AddProduct(ctx context.Context, index string, data dto.ProductResponse) (err error)
	UpdateProductViews(ctx context.Context, id string, views int64) (err error)
	SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) (ids []string, count int64, err error)
	EnsureIndex(ctx context.Context) (err error)
	Refresh(ctx context.Context) (err error)
}
