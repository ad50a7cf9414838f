package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPath    string // .hcl / .yaml files
	ViewsPath      string // <slug>.html view modules
	ThumbnailsPath string
	StaticPath     string

	Addr     string
	BasePath string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// CheckOnly validates and reconciles the catalog, then exits.
	CheckOnly bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}
	if cfg.ViewsPath == "" {
		cfg.ViewsPath = "views"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("HealthcheckPort %d is out of range", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
