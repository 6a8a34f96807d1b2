package common

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the process configuration. The session secret and the admin
// credentials have no fallback: starting with a weak default would silently
// undermine the whole auth layer, so missing values abort startup.
type Config struct {
	SessionSecret string
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	DBFile        string
	Port          string
	UploadDir     string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		DBFile:        os.Getenv("SQLITE_DB"),
		Port:          os.Getenv("PORT"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET environment variable not set")
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD environment variables not set")
	}
	if cfg.DBFile == "" {
		return nil, errors.New("SQLITE_DB environment variable not set")
	}

	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@fotografica.com"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./static/images"
	}

	return cfg, nil
}
