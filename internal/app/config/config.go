package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type Config struct {
	ServiceHost     string
	ServicePort     int
	StorageDriver   string // postgres | memory
	LogLevel        string
	JwtKey          string
	DefaultPageSize int
	RateLimit       RateLimitConfig
}

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("StorageDriver", "postgres")
	v.SetDefault("LogLevel", "info")
	v.SetDefault("DefaultPageSize", 3)
	v.SetDefault("RateLimit.Enabled", false)
	v.SetDefault("RateLimit.RPS", 10)
	v.SetDefault("RateLimit.Burst", 20)

	err = v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	// Чтение .env
	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	v.BindEnv("JwtKey", "JWT_KEY")
	v.BindEnv("StorageDriver", "STORAGE_DRIVER")
	v.BindEnv("LogLevel", "LOG_LEVEL")
	v.BindEnv("ServicePort", "SERVICE_PORT")

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown log level %q, keeping %s", cfg.LogLevel, logrus.GetLevel())
	}

	logrus.Info("config parsed")
	return cfg, nil
}
