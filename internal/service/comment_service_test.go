package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/pkg/errs"
)

func Test_AddComment(t *testing.T) {
	type TestCase struct {
		Name           string
		Request        dto.CommentRequest
		ExpectedErr    error
		ExpectedRating int64
	}

	testCases := []TestCase{
		{
			Name:           "Valid request",
			Request:        dto.CommentRequest{Content: "great keyboard", Rating: 4},
			ExpectedRating: 4,
		},
		{
			Name:           "Missing rating defaults to 5",
			Request:        dto.CommentRequest{Content: "great keyboard"},
			ExpectedRating: 5,
		},
		{
			Name:           "Rating above the scale is capped",
			Request:        dto.CommentRequest{Content: "great keyboard", Rating: 9},
			ExpectedRating: 5,
		},
		{
			Name:           "Rating below the scale is floored",
			Request:        dto.CommentRequest{Content: "bad keyboard", Rating: -2},
			ExpectedRating: 1,
		},
		{
			Name:        "Missing content",
			Request:     dto.CommentRequest{Rating: 4},
			ExpectedErr: errs.ErrClient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			productRepo := newFakeProductRepo()
			product := productRepo.seed(domain.Product{Name: "keyboard"})
			svc := CreateCommentService(&fakeCommentRepo{}, productRepo)

			comment, err := svc.AddComment(context.Background(), "test@gmail.com", product.ID.Hex(), tc.Request)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}

			require.NoError(t, err)
			assert.False(t, comment.ID.IsZero())
			assert.Equal(t, tc.ExpectedRating, comment.Rating)
			assert.Equal(t, "test@gmail.com", comment.UserEmail)
			assert.Equal(t, int64(1), productRepo.get(product.ID).CommentsCount)
		})
	}
}

func Test_AddComment_UnknownProduct(t *testing.T) {
	svc := CreateCommentService(&fakeCommentRepo{}, newFakeProductRepo())

	_, err := svc.AddComment(context.Background(), "test@gmail.com", "507f1f77bcf86cd799439011", dto.CommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func Test_GetComments(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := productRepo.seed(domain.Product{Name: "keyboard"})
	other := productRepo.seed(domain.Product{Name: "mouse"})

	commentRepo := &fakeCommentRepo{}
	oldest := commentRepo.seed(domain.Comment{ProductID: product.ID, Content: "first", CreatedAt: 100})
	newest := commentRepo.seed(domain.Comment{ProductID: product.ID, Content: "second", CreatedAt: 200})
	commentRepo.seed(domain.Comment{ProductID: other.ID, Content: "other product", CreatedAt: 300})

	svc := CreateCommentService(commentRepo, productRepo)

	comments, err := svc.GetComments(context.Background(), product.ID.Hex())
	require.NoError(t, err)

	// Newest first, scoped to the requested product.
	require.Len(t, comments, 2)
	assert.Equal(t, newest.ID, comments[0].ID)
	assert.Equal(t, oldest.ID, comments[1].ID)
}

func Test_GetComments_NoComments(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := productRepo.seed(domain.Product{Name: "keyboard"})
	svc := CreateCommentService(&fakeCommentRepo{}, productRepo)

	comments, err := svc.GetComments(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func Test_GetComments_InvalidID(t *testing.T) {
	svc := CreateCommentService(&fakeCommentRepo{}, newFakeProductRepo())

	_, err := svc.GetComments(context.Background(), "nope")
	assert.ErrorIs(t, err, errs.ErrClient)
}
