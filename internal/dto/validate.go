package dto

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kamronbek003/sellerProject/pkg/response"
)

var (
	phonePattern = regexp.MustCompile(`^\+998\d{9}$`)
	pricePattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

const dateBirthLayout = "2006-01-02"

func fieldError(field, message string) response.ValidationError {
	return response.ValidationError{Field: field, Message: message}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func isValidPrice(s string) bool {
	return pricePattern.MatchString(s)
}

func isValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isValidDate(s string) bool {
	_, err := time.Parse(dateBirthLayout, s)
	return err == nil
}

func isValidTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
