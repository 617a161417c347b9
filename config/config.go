package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. It is
// loaded once at startup and passed down explicitly instead of being read
// from package globals.
type Config struct {
	Port      string
	SecretKey string
	MongoURI  string
	DBName    string
}

// Load reads a .env file when one is present, then pulls the settings from
// the environment. The signing secret is mandatory: serving the token
// endpoints with an empty secret would sign everything with "".
func Load() (Config, error) {
	// A missing .env is fine; in deployment the variables come from the
	// process environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:      os.Getenv("PORT"),
		SecretKey: os.Getenv("SECRET_KEY"),
		MongoURI:  os.Getenv("MONGODB_URI"),
		DBName:    os.Getenv("DB_NAME"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "tastyKitchen"
	}
	if cfg.SecretKey == "" {
		return Config{}, errors.New("SECRET_KEY is not set")
	}

	if cfg.MongoURI == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		if user != "" && pass != "" {
			cfg.MongoURI = fmt.Sprintf(
				"mongodb+srv://%s:%s@cluster0.mongodb.net/?retryWrites=true&w=majority",
				user, pass)
		} else {
			cfg.MongoURI = "mongodb://localhost:27017"
		}
	}

	return cfg, nil
}
