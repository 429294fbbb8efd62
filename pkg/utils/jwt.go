package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/kamronbek003/sellerProject/pkg/errs"
)

const accessTokenDuration = 10 * time.Hour

func CreateAccessToken(sellerID string, role string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["id"] = sellerID
	claims["role"] = role
	claims["exp"] = time.Now().Add(accessTokenDuration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ParseAccessToken returns the seller id and role carried by a bearer token.
// Any defect (signature, expiry, algorithm, claim shape) comes back as
// errs.ErrNotLoggedIn.
func ParseAccessToken(tokenString string, jwtSecretKey string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", "", errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errs.ErrNotLoggedIn
	}

	sellerID, ok := claims["id"].(string)
	if !ok || sellerID == "" {
		return "", "", errs.ErrNotLoggedIn
	}

	role, _ := claims["role"].(string)

	return sellerID, role, nil
}
