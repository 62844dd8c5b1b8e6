package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/repository"
	"github.com/thanha17/online-shop/pkg/errs"
)

type CommentServiceImpl struct {
	repo        repository.CommentRepository
	productRepo repository.ProductRepository
}

func CreateCommentService(repo repository.CommentRepository, productRepo repository.ProductRepository) CommentService {
	return &CommentServiceImpl{repo: repo, productRepo: productRepo}
}

func (s *CommentServiceImpl) GetComments(ctx context.Context, productID string) (data []domain.Comment, err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, errs.ErrClient
	}

	data, err = s.repo.GetCommentsByProductID(ctx, objectID)
	if err != nil {
		return
	}

	if data == nil {
		data = []domain.Comment{}
	}

	return data, nil
}

func (s *CommentServiceImpl) AddComment(ctx context.Context, email string, productID string, payload dto.CommentRequest) (comment domain.Comment, err error) {
	if payload.Content == "" {
		return comment, errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	rating := payload.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	comment = domain.Comment{
		ProductID: product.ID,
		UserEmail: email,
		Content:   payload.Content,
		Rating:    rating,
		CreatedAt: time.Now().UnixMilli(),
	}

	commentID, err := s.repo.AddComment(ctx, comment)
	if err != nil {
		return
	}
	comment.ID = commentID

	if err := s.productRepo.IncrementComments(ctx, product.ID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddComment").Msg("failed to increment comment counter")
	}

	return comment, nil
}
