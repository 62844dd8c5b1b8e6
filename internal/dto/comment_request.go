package dto

type CommentRequest struct {
	Content string `json:"content"`
	Rating  int64  `json:"rating"`
}

type FavoriteRequest struct {
	ProductID string `json:"productId"`
}
