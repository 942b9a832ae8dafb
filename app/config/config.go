package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config holds everything the application reads from the environment.
type Config struct {
	Addr          string
	DatabaseURL   string
	SessionSecret string
	UploadDir     string
}

// Load reads configuration from the environment. A .env file is honored
// when present so local development does not need exported variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=campus_connect sslmode=disable"),
		SessionSecret: getEnv("SESSION_SECRET", "campus-connect-dev-secret"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
	}
}

// OpenDB opens and verifies the Postgres connection. The caller owns the
// handle and closes it at shutdown.
func (c *Config) OpenDB() (*sql.DB, error) {
	db, err := sql.Open("postgres", c.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
