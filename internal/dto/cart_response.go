package dto

import "github.com/thanha17/online-shop/internal/domain"

type CartItemDetail struct {
	Product  domain.Product `json:"product"`
	Quantity int64          `json:"quantity"`
}

type CartResponse struct {
	ID        string           `json:"id"`
	UserEmail string           `json:"userEmail"`
	Items     []CartItemDetail `json:"items"`
}
