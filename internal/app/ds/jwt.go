package ds

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims - токен оператора, которому разрешено изменять реестр кораблей
type JWTClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
