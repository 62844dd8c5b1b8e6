package dto

type ProductRequest struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	Promotion int64   `json:"promotion"`
}
