package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken() (string, error)
	ParseToken(tokenString string) (*SessionClaims, error)
}

type SessionClaims struct {
	jwt.RegisteredClaims
}
