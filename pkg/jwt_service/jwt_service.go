package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nmehta/activityclock/internal/api"
	errorvalues "github.com/nmehta/activityclock/internal/error_values"
)

const ownerSubject = "owner"

// JWTService issues and verifies the session tokens behind the auth cookie.
// Single-owner app: every valid token carries the same subject.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *JWTService) GenerateToken() (string, error) {
	now := time.Now()
	claims := &api.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerSubject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.SessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.New("token parsing error: " + err.Error())
	}
	claims, ok := token.Claims.(*api.SessionClaims)
	if !ok || !token.Valid || claims.Subject != ownerSubject {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
