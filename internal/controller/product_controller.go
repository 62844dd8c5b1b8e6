package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/service"
	pkgdto "github.com/thanha17/online-shop/pkg/dto"
	"github.com/thanha17/online-shop/pkg/response"
	"github.com/thanha17/online-shop/pkg/utils"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc, optionalAuth echo.MiddlewareFunc) {
	pc := ProductController{
		service: service,
	}
	e.GET("/products", pc.GetProducts)
	e.GET("/products/search", pc.SearchProducts)
	e.GET("/products/:id", pc.GetProductDetail, optionalAuth)
	e.POST("/products", pc.AddProduct, isLoggedIn)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	responsePayload, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", responsePayload)
}

func (c *ProductController) SearchProducts(e echo.Context) error {
	filter := pkgdto.SearchFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "SearchProducts").Msg("")
	}

	responsePayload, err := c.service.SearchProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", responsePayload)
}

func (c *ProductController) GetProductDetail(e echo.Context) error {
	email, _ := utils.ExtractTokenUser(e)

	detail, err := c.service.GetProductDetail(e.Request().Context(), e.Param("id"), email)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success", detail)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "Product created successfully", product)
}
