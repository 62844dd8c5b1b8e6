package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/service"
	"github.com/thanha17/online-shop/pkg/response"
	"github.com/thanha17/online-shop/pkg/utils"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Group, service service.CartService, isLoggedIn echo.MiddlewareFunc) {
	cc := CartController{
		service: service,
	}
	e.GET("/cart", cc.GetCart, isLoggedIn)
	e.POST("/cart/items", cc.AddOrUpdateItem, isLoggedIn)
	e.PUT("/cart/items", cc.UpdateQuantity, isLoggedIn)
	e.DELETE("/cart/items/:productId", cc.RemoveItem, isLoggedIn)
}

func (c *CartController) GetCart(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	cart, err := c.service.GetCart(e.Request().Context(), email)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", cart)
}

func (c *CartController) AddOrUpdateItem(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	payload := dto.CartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrUpdateItem").Msg("")
	}

	cart, err := c.service.AddOrUpdateItem(e.Request().Context(), email, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Updated", cart)
}

func (c *CartController) UpdateQuantity(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	payload := dto.CartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateQuantity").Msg("")
	}

	cart, err := c.service.UpdateQuantity(e.Request().Context(), email, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Updated", cart)
}

func (c *CartController) RemoveItem(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	cart, err := c.service.RemoveItem(e.Request().Context(), email, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Removed", cart)
}
