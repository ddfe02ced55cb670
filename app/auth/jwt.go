package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
)

type JWTClaims struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	PersonID string `json:"person_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a signed token carrying the account's identity and
// resolved role.
func GenerateJWT(secret []byte, acct models.Account, ttl time.Duration) (string, error) {
	claims := JWTClaims{
		UID:      acct.UID,
		Email:    acct.Email,
		Role:     string(acct.Role),
		PersonID: acct.PersonID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "school-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", apperr.Collaborator("sign token", err)
	}
	return signed, nil
}

// ValidateJWT parses and verifies a token.
func ValidateJWT(secret []byte, tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, apperr.Auth("invalid token")
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, apperr.Auth("invalid token")
	}
	return claims, nil
}
