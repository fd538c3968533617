package usermgmt

import (
	"time"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// CreateToken signs an HS256 token for user.
func CreateToken(user *model.User) (string, error) {
	claims := tokenClaims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	mu.RLock()
	key := secretKey
	mu.RUnlock()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken verifies a token signed by CreateToken and returns its claims.
func ParseToken(tokenString string) (*model.Claims, error) {
	mu.RLock()
	key := secretKey
	mu.RUnlock()

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	return &model.Claims{Username: claims.Username, IsAdmin: claims.IsAdmin}, nil
}
