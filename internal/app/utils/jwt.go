package utils

import (
	"fmt"
	"time"

	"space_ships/internal/app/ds"

	"github.com/golang-jwt/jwt/v5"
)

// RoleOperator - роль, которой разрешено изменять реестр
const RoleOperator = "operator"

// GenerateJWT создаёт токен
func GenerateJWT(key []byte, subject, role string, ttl time.Duration) (string, error) {
	claims := &ds.JWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseJWT проверяет и возвращает Claims
func ParseJWT(key []byte, tokenStr string) (*ds.JWTClaims, error) {
	claims := &ds.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
