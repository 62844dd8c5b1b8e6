package dto

type Filter struct {
	Page  int64 `query:"page"`
	Limit int64 `query:"limit"`
}

type SearchFilter struct {
	Keyword   string   `query:"keyword"`
	Category  string   `query:"category"`
	MinPrice  *float64 `query:"minPrice"`
	MaxPrice  *float64 `query:"maxPrice"`
	Promotion string   `query:"promotion"`
	SortBy    string   `query:"sortBy"`
	Page      int64    `query:"page"`
	Limit     int64    `query:"limit"`
}

// PromotionOnly reports whether the filter restricts results to promoted
// products (promotion >= 1).
func (f SearchFilter) PromotionOnly() bool {
	return f.Promotion == "true"
}
