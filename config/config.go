package config

import (
	"fmt"
	"log"
	"os"

	"github.com/zenott/boilerplate-project-exercisetracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	DatabaseURL string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

// ConnectDB opens the store named by DATABASE_URL and migrates the two
// collections. The returned handle is passed down through the router; there
// is no package-level connection.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Log{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}

	return db, nil
}
