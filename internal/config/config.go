package config

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port          string
	TemplatesFile string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		TemplatesFile: os.Getenv("TEMPLATES_FILE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8001"
		log.Info().Msg("PORT not set, using default: 8001")
	}

	if cfg.TemplatesFile != "" {
		if _, err := os.Stat(cfg.TemplatesFile); err != nil {
			log.Error().Err(err).Str("file", cfg.TemplatesFile).Msg("TEMPLATES_FILE is not readable")
			return nil, errors.New("TEMPLATES_FILE is not readable")
		}
	}

	return cfg, nil
}
