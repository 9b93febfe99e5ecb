package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/olegsavin/storefront/internal/models"
	"github.com/olegsavin/storefront/pkg/db"
)

type Config struct {
	DB_HOST       string
	DB_PORT       string
	DB_USER       string
	DB_PASSWORD   string
	DB_NAME       string
	KAFKA_ADDRESS string
	LOG_LEVEL     string
	PORT          string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:       os.Getenv("DB_HOST"),
		DB_PORT:       os.Getenv("DB_PORT"),
		DB_USER:       os.Getenv("DB_USER"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_NAME:       os.Getenv("DB_NAME"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
		PORT:          os.Getenv("PORT"),
	}

	return config, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}

// InitDB opens the store and migrates the record tables.
func InitDB(ctx context.Context, c *Config) (*gorm.DB, error) {
	database, err := db.Open(ctx, c.DSN())
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(&models.Account{}, &models.Product{}); err != nil {
		return nil, fmt.Errorf("migrate tables: %w", err)
	}
	return database, nil
}
