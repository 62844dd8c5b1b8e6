package dto

type PaginationResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int64       `json:"page"`
	TotalPages int64       `json:"totalPages"`
}

// CountTotalPages is ceil(total/limit), with 0 when there are no records.
func CountTotalPages(total int64, limit int64) int64 {
	if total == 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
