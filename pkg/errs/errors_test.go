package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		Name     string
		Err      error
		Expected int
	}{
		{Name: "Invalid credentials", Err: ErrInvalidCredentials, Expected: http.StatusUnauthorized},
		{Name: "Not logged in", Err: ErrNotLoggedIn, Expected: http.StatusUnauthorized},
		{Name: "Duplicate phone", Err: ErrPhoneAlreadyUsed, Expected: http.StatusConflict},
		{Name: "Duplicate category name", Err: ErrCategoryNameAlreadyUsed, Expected: http.StatusConflict},
		{Name: "Category with products", Err: ErrCategoryHasProducts, Expected: http.StatusConflict},
		{Name: "Product with order items", Err: ErrProductHasOrderItems, Expected: http.StatusConflict},
		{Name: "Category missing", Err: ErrCategoryNotFound, Expected: http.StatusNotFound},
		{Name: "Product missing", Err: ErrProductNotFound, Expected: http.StatusNotFound},
		{Name: "Bad payload", Err: ErrClient, Expected: http.StatusBadRequest},
		{Name: "Internal", Err: ErrInternalServer, Expected: http.StatusInternalServerError},
		{Name: "Unknown error falls back to 500", Err: errors.New("boom"), Expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, GetErrorStatusCode(tc.Err))
		})
	}
}
