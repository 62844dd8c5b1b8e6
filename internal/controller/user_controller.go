package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/service"
	"github.com/thanha17/online-shop/pkg/response"
	"github.com/thanha17/online-shop/pkg/utils"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	uc := UserController{
		service: service,
	}
	e.POST("/register", uc.AddUser)
	e.POST("/login", uc.Login)
	e.GET("/user", uc.GetUsers, isLoggedIn)
	e.GET("/account", uc.GetAccount, isLoggedIn)
	e.GET("/favorites", uc.GetFavorites, isLoggedIn)
	e.POST("/favorites", uc.AddFavorite, isLoggedIn)
	e.DELETE("/favorites/:productId", uc.RemoveFavorite, isLoggedIn)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
	}

	res, err := c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", res)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", respPayload)
}

func (c *UserController) GetUsers(e echo.Context) error {
	data, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", data)
}

func (c *UserController) GetAccount(e echo.Context) error {
	email, name := utils.ExtractTokenUser(e)

	return response.WriteSuccessResponse(e, "Success", dto.UserIdentity{Email: email, Name: name})
}

func (c *UserController) GetFavorites(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	data, err := c.service.GetFavorites(e.Request().Context(), email)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", data)
}

func (c *UserController) AddFavorite(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	payload := dto.FavoriteRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddFavorite").Msg("")
	}

	if err := c.service.AddFavorite(e.Request().Context(), email, payload.ProductID); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Added", nil)
}

func (c *UserController) RemoveFavorite(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	if err := c.service.RemoveFavorite(e.Request().Context(), email, e.Param("productId")); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Removed", nil)
}
