package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	DatabaseDriver string
	AuthorName     string
	Department     string
	DevMode        bool
}

func Load(dbConn, dbDriver string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if dbConn == "" {
		dbConn = getEnv("DATABASE_URL", "./shuho.db")
	}

	if dbDriver == "" {
		dbDriver = getEnv("DATABASE_DRIVER", "sqlite3")
	}

	cfg := &Config{
		DatabaseURL:    dbConn,
		DatabaseDriver: dbDriver,
		AuthorName:     getEnv("REPORT_AUTHOR", ""),
		Department:     getEnv("REPORT_DEPARTMENT", ""),
		DevMode:        getEnv("DEV_MODE", "true") == "true",
	}

	return cfg, nil
}

func (c *Config) Dump() {
	fmt.Printf("Database URL: %s\n", c.DatabaseURL)
	fmt.Printf("Database Driver: %s\n", c.DatabaseDriver)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
