package main

// go run cmd/space_ships/main.go

import (
	"space_ships/internal/app/config"
	"space_ships/internal/app/dsn"
	"space_ships/internal/app/handler"
	"space_ships/internal/app/pkg"
	"space_ships/internal/app/repository"
	"space_ships/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Space ships API
// @version 1.0
// @description Registry of space ships with filtering, pagination and rating.
// @BasePath /
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	var (
		store  service.ShipStore
		pinger handler.Pinger
	)
	switch conf.StorageDriver {
	case "memory":
		logrus.Warn("using in-memory storage, ships are lost on restart")
		store = repository.NewMemory()
	case "postgres":
		postgresString := dsn.FromEnv()
		if postgresString == "" {
			logrus.Fatal("DB_HOST is not set")
		}
		rep, errRep := repository.New(postgresString)
		if errRep != nil {
			logrus.Fatalf("error initializing repository: %v", errRep)
		}
		store, pinger = rep, rep
	default:
		logrus.Fatalf("unknown storage driver %q", conf.StorageDriver)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	hand := handler.NewHandler(service.NewShipService(store), conf.DefaultPageSize, conf.JwtKey)
	hand.Pinger = pinger

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
