// Package auth issues and verifies the API's bearer tokens and hashes
// account passwords.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the subject and its admin flag next to the standard claims.
// The wire names match what clients decode.
type Claims struct {
	ID      int64 `json:"id"`
	IsAdmin bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

func GenerateToken(userID int64, isAdmin bool, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:      userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry. Every failure matches
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.ID == 0 {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
