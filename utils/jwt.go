package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the logged-in customer's identity.
type Claims struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token for the customer.
func GenerateToken(phone, name, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Phone: phone,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
