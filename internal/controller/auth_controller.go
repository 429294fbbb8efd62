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

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, service service.AuthService, isLoggedIn echo.MiddlewareFunc) {
	c := AuthController{
		service: service,
	}
	e.POST("/auth/register", c.Register)
	e.POST("/auth/login", c.Login)
	e.GET("/sellers/me", c.GetProfile, isLoggedIn)
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, fieldErrs)
	}

	message, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, message, nil)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, fieldErrs)
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *AuthController) GetProfile(e echo.Context) error {
	sellerID := middleware.ExtractSellerID(e)

	respPayload, err := c.service.GetProfile(e.Request().Context(), sellerID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}
