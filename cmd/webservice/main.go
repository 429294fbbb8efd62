package main

import (
	"log"

	"github.com/kamronbek003/sellerProject/config"
	"github.com/kamronbek003/sellerProject/internal/app"

	postgresDriver "github.com/kamronbek003/sellerProject/internal/infrastructure/database/postgres"
)

func main() {
	config := config.CreateNewConfig()

	// The signing secret has no safe default; refuse to boot without it.
	if config.JWTSecret == "" {
		log.Fatal("ACCESS_KEY environment variable is not set")
	}

	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
