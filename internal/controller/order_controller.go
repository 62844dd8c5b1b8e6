package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/service"
	"github.com/thanha17/online-shop/pkg/response"
	"github.com/thanha17/online-shop/pkg/utils"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	oc := OrderController{
		service: service,
	}
	e.POST("/orders", oc.AddOrder, isLoggedIn)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	order, err := c.service.AddOrder(e.Request().Context(), email, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "Order created", order)
}
