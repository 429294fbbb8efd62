package controller

import (
	"github.com/kamronbek003/sellerProject/internal/dto"
	"github.com/kamronbek003/sellerProject/internal/middleware"
	"github.com/kamronbek003/sellerProject/internal/service"
	pkgdto "github.com/kamronbek003/sellerProject/pkg/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/kamronbek003/sellerProject/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const categoryDeletedMessage = "Kategoriya muvaffaqiyatli o'chirildi"

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService, isLoggedIn echo.MiddlewareFunc) {
	c := CategoryController{
		service: service,
	}
	e.POST("/categories", c.AddCategory, isLoggedIn)
	e.GET("/categories", c.GetCategories, isLoggedIn)
	e.GET("/categories/:id", c.GetCategoryByID, isLoggedIn)
	e.PATCH("/categories/:id", c.UpdateCategory, isLoggedIn)
	e.DELETE("/categories/:id", c.DeleteCategory, isLoggedIn)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, fieldErrs)
	}

	respPayload, err := c.service.AddCategory(e.Request().Context(), payload, middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", respPayload)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	respPayload, err := c.service.GetCategories(e.Request().Context(), middleware.ExtractSellerID(e), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *CategoryController) GetCategoryByID(e echo.Context) error {
	respPayload, err := c.service.GetCategoryByID(e.Request().Context(), e.Param("id"), middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	payload := dto.UpdateCategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, fieldErrs)
	}

	respPayload, err := c.service.UpdateCategory(e.Request().Context(), e.Param("id"), payload, middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	err := c.service.DeleteCategory(e.Request().Context(), e.Param("id"), middleware.ExtractSellerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, categoryDeletedMessage, nil)
}
