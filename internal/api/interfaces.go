package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are issued by the auth gateway. Only user_id is read here.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
