package dto

import "github.com/kamronbek003/sellerProject/pkg/response"

type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (r CategoryRequest) Validate() []response.ValidationError {
	var fieldErrs []response.ValidationError

	if isBlank(r.Name) {
		fieldErrs = append(fieldErrs, fieldError("name", "Kategoriya nomi bo'sh bo'lmasligi kerak"))
	}

	switch {
	case isBlank(r.Image):
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm URL manzili bo'sh bo'lmasligi kerak"))
	case !isValidURL(r.Image):
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm URL manzili noto'g'ri"))
	}

	return fieldErrs
}

// UpdateCategoryRequest is a partial update; empty fields stay untouched.
type UpdateCategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (r UpdateCategoryRequest) Validate() []response.ValidationError {
	var fieldErrs []response.ValidationError

	if r.Image != "" && !isValidURL(r.Image) {
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm URL manzili noto'g'ri"))
	}

	return fieldErrs
}
