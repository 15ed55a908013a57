// Package common holds helpers shared by the saasnews subcommands.
package common

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/bootstrap"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/config"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
)

// LoadConfigAndLogger decodes the global viper settings and builds the logger.
func LoadConfigAndLogger() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
