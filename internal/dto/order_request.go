package dto

type OrderItemRequest struct {
	ProductID string `json:"product"`
	Quantity  int64  `json:"quantity"`
}

type OrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}
