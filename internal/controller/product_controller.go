package controller

import (
	"github.com/kamronbek003/sellerProject/internal/dto"
	"github.com/kamronbek003/sellerProject/internal/middleware"
	"github.com/kamronbek003/sellerProject/internal/service"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/kamronbek003/sellerProject/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const productDeletedMessage = "Mahsulot muvaffaqiyatli o'chirildi"

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.GET("/products", c.GetProducts, isLoggedIn)
	e.GET("/products/:id", c.GetProductByID, isLoggedIn)
	e.PATCH("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, fieldErrs)
	}

	respPayload, err := c.service.AddProduct(e.Request().Context(), payload, middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", respPayload)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := dto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if fieldErrs := filter.Validate(); len(fieldErrs) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, fieldErrs)
	}

	respPayload, err := c.service.GetProducts(e.Request().Context(), middleware.ExtractSellerID(e), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	respPayload, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"), middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.UpdateProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, fieldErrs)
	}

	respPayload, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload, middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"), middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, productDeletedMessage, nil)
}
