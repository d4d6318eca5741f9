package main

import (
	"space_ships/internal/app/config"
	"space_ships/internal/app/ds"
	"space_ships/internal/app/dsn"
	"space_ships/internal/app/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()
	if postgresString == "" {
		logrus.Fatal("DB_HOST is not set")
	}
	rep, err := repository.New(postgresString)
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	err = rep.DB().AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}

	logrus.Info("Database migration completed")
}
