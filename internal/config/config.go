package config

import (
	"errors"
	"os"
)

// Config holds everything read from the environment. It is built once in
// main, before any other component initializes, and passed down explicitly.
type Config struct {
	MongoURI      string
	MongoDatabase string
	JWTSecret     []byte
	Port          string
}

// Load reads the environment into a Config. The connection string and the
// token-signing secret are mandatory; a missing one is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		Port:          os.Getenv("PORT"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "jayade_clinic"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	return cfg, nil
}
