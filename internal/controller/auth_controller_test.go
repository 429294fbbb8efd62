package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kamronbek003/sellerProject/internal/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthService) Register(ctx context.Context, payload dto.RegisterRequest) (string, error) {
	if s.registerErr != nil {
		return "", s.registerErr
	}
	return "Tabriklaymiz, sotuvchi muvaffaqiyatli ro'yxatdan o'tkazildi!", nil
}

func (s *stubAuthService) Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	if s.loginErr != nil {
		return dto.LoginResponse{}, s.loginErr
	}
	return dto.LoginResponse{AccessToken: "token"}, nil
}

func (s *stubAuthService) GetProfile(ctx context.Context, sellerID string) (dto.SellerResponse, error) {
	return dto.SellerResponse{ID: sellerID}, nil
}

const registerBody = `{
	"firstName": "Ali",
	"lastName": "Valiyev",
	"phone": "+998901234567",
	"nameOfStore": "Vali Market",
	"dateBirth": "1995-08-15",
	"image": "https://example.com/images/store.jpg",
	"logo": "https://example.com/images/logo.png",
	"paymentTime": "2025-04-07T13:57:25.123Z",
	"botToken": "1234567890:ABCDEF",
	"password": "P@sswOrd123"
}`

func performJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newAuthTestServer(service *stubAuthService) *echo.Echo {
	e := echo.New()
	passThrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	CreateAuthController(e.Group("/api/v1"), service, passThrough)
	return e
}

func TestAuthController_Register(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	rec := performJSON(e, http.MethodPost, "/api/v1/auth/register", registerBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "success")
}

func TestAuthController_Register_ValidationErrors(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	rec := performJSON(e, http.MethodPost, "/api/v1/auth/register", `{"phone": "901234567"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Status string `json:"status"`
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.NotEmpty(t, body.Errors)

	fields := make([]string, 0, len(body.Errors))
	for _, fieldErr := range body.Errors {
		fields = append(fields, fieldErr.Field)
	}
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "password")
}

func TestAuthController_Register_DuplicatePhone(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{registerErr: errs.ErrPhoneAlreadyUsed})

	rec := performJSON(e, http.MethodPost, "/api/v1/auth/register", registerBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), errs.ErrPhoneAlreadyUsed.Error())
}

func TestAuthController_Register_MalformedJSON(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	rec := performJSON(e, http.MethodPost, "/api/v1/auth/register", `{"firstName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthController_Login(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	rec := performJSON(e, http.MethodPost, "/api/v1/auth/login", `{"phone": "+998901234567", "password": "P@sswOrd123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"token"`)
}

func TestAuthController_Login_BadCredentials(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{loginErr: errs.ErrInvalidCredentials})

	rec := performJSON(e, http.MethodPost, "/api/v1/auth/login", `{"phone": "+998901234567", "password": "wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthController_Login_MissingFields(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	rec := performJSON(e, http.MethodPost, "/api/v1/auth/login", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
