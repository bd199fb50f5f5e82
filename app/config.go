package app

import (
	"github.com/spf13/viper"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

// LoadConfig reads the YAML configuration file, filling in defaults for
// anything not set.
func LoadConfig(path string) (*models.AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("scan.recursive", true)
	v.SetDefault("scan.min_size", 1)
	v.SetDefault("server.port", 8080)
	v.SetDefault("history.db_path", "filexsorter.db")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
