package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/service"
	"github.com/thanha17/online-shop/pkg/response"
	"github.com/thanha17/online-shop/pkg/utils"
)

type CommentController struct {
	service service.CommentService
}

func CreateCommentController(e *echo.Group, service service.CommentService, isLoggedIn echo.MiddlewareFunc) {
	cc := CommentController{
		service: service,
	}
	e.GET("/products/:productId/comments", cc.GetComments)
	e.POST("/products/:productId/comments", cc.AddComment, isLoggedIn)
}

func (c *CommentController) GetComments(e echo.Context) error {
	data, err := c.service.GetComments(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", data)
}

func (c *CommentController) AddComment(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	payload := dto.CommentRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddComment").Msg("")
	}

	comment, err := c.service.AddComment(e.Request().Context(), email, e.Param("productId"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "Comment added", comment)
}
