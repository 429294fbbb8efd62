package dto

import (
	pkgdto "github.com/kamronbek003/sellerProject/pkg/dto"
	"github.com/kamronbek003/sellerProject/pkg/response"
)

type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	CategoryID  string `json:"categoryId"`
}

func (r ProductRequest) Validate() []response.ValidationError {
	var fieldErrs []response.ValidationError

	if isBlank(r.Name) {
		fieldErrs = append(fieldErrs, fieldError("name", "Mahsulot nomi bo'sh bo'lmasligi kerak"))
	}
	if isBlank(r.Description) {
		fieldErrs = append(fieldErrs, fieldError("description", "Mahsulot tavsifi bo'sh bo'lmasligi kerak"))
	}
	if isBlank(r.Color) {
		fieldErrs = append(fieldErrs, fieldError("color", "Mahsulot rangi bo'sh bo'lmasligi kerak"))
	}

	switch {
	case isBlank(r.Image):
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm URL manzili bo'sh bo'lmasligi kerak"))
	case !isValidURL(r.Image):
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm URL manzili noto'g'ri"))
	}

	switch {
	case isBlank(r.Price):
		fieldErrs = append(fieldErrs, fieldError("price", "Mahsulot narxi bo'sh bo'lmasligi kerak"))
	case !isValidPrice(r.Price):
		fieldErrs = append(fieldErrs, fieldError("price", "Mahsulot narxi raqam bo'lishi kerak"))
	}

	if isBlank(r.CategoryID) {
		fieldErrs = append(fieldErrs, fieldError("categoryId", "Kategoriya IDsi kiritilishi majburiy"))
	}

	return fieldErrs
}

// UpdateProductRequest is a partial update; empty fields stay untouched.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	CategoryID  string `json:"categoryId"`
}

func (r UpdateProductRequest) Validate() []response.ValidationError {
	var fieldErrs []response.ValidationError

	if r.Image != "" && !isValidURL(r.Image) {
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm URL manzili noto'g'ri"))
	}
	if r.Price != "" && !isValidPrice(r.Price) {
		fieldErrs = append(fieldErrs, fieldError("price", "Mahsulot narxi raqam bo'lishi kerak"))
	}

	return fieldErrs
}

type ProductFilter struct {
	pkgdto.Filter
	Color      string `query:"color"`
	MinPrice   string `query:"minPrice"`
	MaxPrice   string `query:"maxPrice"`
	CategoryID string `query:"categoryId"`
}

func (f ProductFilter) Validate() []response.ValidationError {
	var fieldErrs []response.ValidationError

	if f.MinPrice != "" && !isValidPrice(f.MinPrice) {
		fieldErrs = append(fieldErrs, fieldError("minPrice", "Minimal narx raqam bo'lishi kerak"))
	}
	if f.MaxPrice != "" && !isValidPrice(f.MaxPrice) {
		fieldErrs = append(fieldErrs, fieldError("maxPrice", "Maksimal narx raqam bo'lishi kerak"))
	}

	return fieldErrs
}
