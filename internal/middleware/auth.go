package middleware

import (
	"strings"

	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/internal/repository"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/kamronbek003/sellerProject/pkg/response"
	"github.com/kamronbek003/sellerProject/pkg/utils"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	ContextSellerID = "sellerID"
	ContextRole     = "role"
)

// CreateAuthMiddleware walks a request through token verification, seller
// lookup and the active check before any handler runs. Every failure mode is
// the same 401 so callers learn nothing about which step rejected them.
func CreateAuthMiddleware(repo repository.SellerRepository, jwtSecretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			sellerID, role, err := utils.ParseAccessToken(strings.TrimPrefix(header, bearerPrefix), jwtSecretKey)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			seller, err := repo.GetSellerByID(c.Request().Context(), sellerID)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			if seller.ID == "" || seller.IsActive != domain.SellerStatusActive {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set(ContextSellerID, seller.ID)
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}

// ExtractSellerID reads the identity the auth middleware attached.
func ExtractSellerID(c echo.Context) string {
	sellerID, _ := c.Get(ContextSellerID).(string)
	return sellerID
}
