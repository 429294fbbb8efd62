package dto

import "github.com/kamronbek003/sellerProject/pkg/response"

type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	NameOfStore string `json:"nameOfStore"`
	DateBirth   string `json:"dateBirth"`
	Image       string `json:"image"`
	Logo        string `json:"logo"`
	PaymentTime string `json:"paymentTime"`
	BotToken    string `json:"botToken"`
	Password    string `json:"password"`
}

func (r RegisterRequest) Validate() []response.ValidationError {
	var fieldErrs []response.ValidationError

	switch {
	case isBlank(r.FirstName):
		fieldErrs = append(fieldErrs, fieldError("firstName", "Ism kiritilishi majburiy"))
	case runeLen(r.FirstName) > 50:
		fieldErrs = append(fieldErrs, fieldError("firstName", "Ism 50 belgidan oshmasligi kerak"))
	}

	switch {
	case isBlank(r.LastName):
		fieldErrs = append(fieldErrs, fieldError("lastName", "Familiya kiritilishi majburiy"))
	case runeLen(r.LastName) > 50:
		fieldErrs = append(fieldErrs, fieldError("lastName", "Familiya 50 belgidan oshmasligi kerak"))
	}

	switch {
	case isBlank(r.Phone):
		fieldErrs = append(fieldErrs, fieldError("phone", "Telefon raqami kiritilishi majburiy"))
	case !isValidPhone(r.Phone):
		fieldErrs = append(fieldErrs, fieldError("phone", "Telefon raqami O'zbekiston formatida bo'lishi kerak (masalan, +998901234567)"))
	}

	switch {
	case isBlank(r.NameOfStore):
		fieldErrs = append(fieldErrs, fieldError("nameOfStore", "Do'kon nomi kiritilishi majburiy"))
	case runeLen(r.NameOfStore) > 100:
		fieldErrs = append(fieldErrs, fieldError("nameOfStore", "Do'kon nomi 100 belgidan oshmasligi kerak"))
	}

	switch {
	case isBlank(r.DateBirth):
		fieldErrs = append(fieldErrs, fieldError("dateBirth", "Tug'ilgan sana kiritilishi majburiy"))
	case !isValidDate(r.DateBirth):
		fieldErrs = append(fieldErrs, fieldError("dateBirth", "Tug'ilgan sana YYYY-MM-DD formatida bo'lishi kerak"))
	}

	switch {
	case isBlank(r.Image):
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm manzili kiritilishi majburiy"))
	case !isValidURL(r.Image):
		fieldErrs = append(fieldErrs, fieldError("image", "Rasm manzili yaroqli URL bo'lishi kerak"))
	}

	switch {
	case isBlank(r.Logo):
		fieldErrs = append(fieldErrs, fieldError("logo", "Logo manzili kiritilishi majburiy"))
	case !isValidURL(r.Logo):
		fieldErrs = append(fieldErrs, fieldError("logo", "Logo manzili yaroqli URL bo'lishi kerak"))
	}

	switch {
	case isBlank(r.PaymentTime):
		fieldErrs = append(fieldErrs, fieldError("paymentTime", "To'lov vaqti kiritilishi majburiy"))
	case !isValidTimestamp(r.PaymentTime):
		fieldErrs = append(fieldErrs, fieldError("paymentTime", "To'lov vaqti ISO 8601 formatida bo'lishi kerak"))
	}

	if isBlank(r.BotToken) {
		fieldErrs = append(fieldErrs, fieldError("botToken", "Bot token kiritilishi majburiy"))
	}

	switch {
	case isBlank(r.Password):
		fieldErrs = append(fieldErrs, fieldError("password", "Parol kiritilishi majburiy"))
	case runeLen(r.Password) < 6:
		fieldErrs = append(fieldErrs, fieldError("password", "Parol kamida 6 belgidan iborat bo'lishi kerak"))
	}

	return fieldErrs
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() []response.ValidationError {
	var fieldErrs []response.ValidationError

	switch {
	case isBlank(r.Phone):
		fieldErrs = append(fieldErrs, fieldError("phone", "Telefon raqami kiritilishi majburiy"))
	case !isValidPhone(r.Phone):
		fieldErrs = append(fieldErrs, fieldError("phone", "Telefon raqami O'zbekiston formatida bo'lishi kerak (masalan, +998901234567)"))
	}

	switch {
	case isBlank(r.Password):
		fieldErrs = append(fieldErrs, fieldError("password", "Parol kiritilishi majburiy"))
	case runeLen(r.Password) < 6:
		fieldErrs = append(fieldErrs, fieldError("password", "Parol kamida 6 belgidan iborat bo'lishi kerak"))
	}

	return fieldErrs
}
