package main

// go run cmd/space_ships/token/main.go --subject alice --ttl 24h

import (
	"errors"
	"fmt"
	"time"

	"space_ships/internal/app/config"
	"space_ships/internal/app/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var errNoKey = errors.New("JWT_KEY is not set, write routes are not guarded")

// issueToken подписывает токен ключом из конфигурации сервиса
func issueToken(conf *config.Config, subject, role string, ttl time.Duration) (string, error) {
	if conf.JwtKey == "" {
		return "", errNoKey
	}
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	return utils.GenerateJWT([]byte(conf.JwtKey), subject, role, ttl)
}

func main() {
	subject := pflag.String("subject", "operator", "token subject")
	role := pflag.String("role", utils.RoleOperator, "role claim")
	ttl := pflag.Duration("ttl", 12*time.Hour, "token lifetime")
	pflag.Parse()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	token, err := issueToken(conf, *subject, *role, *ttl)
	if err != nil {
		logrus.Fatalf("error signing token: %v", err)
	}

	logrus.WithFields(logrus.Fields{"subject": *subject, "role": *role, "expires_in": ttl.String()}).Info("token issued")
	fmt.Println(token)
}
