package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tinytelemetry/sidenav/internal/model"
	"github.com/spf13/viper"
)

// appConfig holds the settings of both hosts.
type appConfig struct {
	HTTPEnabled        bool   `mapstructure:"http-enabled"`
	HTTPAddr           string `mapstructure:"http-addr"`
	Skin               string `mapstructure:"skin"`
	SidebarWidth       int    `mapstructure:"sidebar-width"`
	Mouse              bool   `mapstructure:"mouse"`
	ReverseScrollWheel bool   `mapstructure:"reverse-scroll-wheel"`
	LogFile            string `mapstructure:"log-file"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SIDENAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("http-enabled", false)
	v.SetDefault("http-addr", model.DefaultHTTPAddr)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("sidebar-width", model.DefaultSidebarWidth)
	v.SetDefault("mouse", true)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "sidenav", "sidenav.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "sidenav", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.SidebarWidth < 12 {
		return cfg, fmt.Errorf("sidebar-width %d is too narrow (minimum 12)", cfg.SidebarWidth)
	}

	return cfg, nil
}
