package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required"`

	// Durable storage for per-chat API keys
	DataDir string `env:"DATA_DIR" envDefault:"data"`

	// OCRWebService (online OCR mode)
	OCRWSUsername   string `env:"OCRWS_USERNAME"`
	OCRWSLicenseKey string `env:"OCRWS_LICENSE_KEY"`
	OCRWSEndpoint   string `env:"OCRWS_API_URL" envDefault:"https://www.ocrwebservice.com/restservices/processDocument"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// CredentialsPath returns the path of the per-chat API key document.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.DataDir, "credentials.json")
}
