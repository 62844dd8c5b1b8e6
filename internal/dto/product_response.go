package dto

import "github.com/thanha17/online-shop/internal/domain"

// ProductResponse is the shape mirrored into the search index; the hex id
// doubles as the index document id.
type ProductResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Image          string  `json:"image"`
	Promotion      int64   `json:"promotion"`
	Views          int64   `json:"views"`
	PurchasesCount int64   `json:"purchasesCount"`
	CommentsCount  int64   `json:"commentsCount"`
	CreatedAt      int64   `json:"createdAt"`
}

func ProductResponseFromDomain(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID.Hex(),
		Name:           p.Name,
		Price:          p.Price,
		Category:       p.Category,
		Image:          p.Image,
		Promotion:      p.Promotion,
		Views:          p.Views,
		PurchasesCount: p.PurchasesCount,
		CommentsCount:  p.CommentsCount,
		CreatedAt:      p.CreatedAt,
	}
}

type ProductDetailResponse struct {
	Product domain.Product   `json:"product"`
	Similar []domain.Product `json:"similar"`
}
