// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads quickcite settings and sets up logging.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/quickcite/pkg/types"
)

// EnvPrefix prefixes environment overrides, e.g. QUICKCITE_LOG_LEVEL.
const EnvPrefix = "QUICKCITE"

// Load reads configuration from file and environment. An explicit cfgFile
// must exist; otherwise quickcite.yaml is looked up in the working
// directory and in ~/.config/quickcite/, and its absence is not an error.
func Load(cfgFile string) (*types.Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("quickcite")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "quickcite"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, home)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	storePath := "quickcite.db"
	if home != "" {
		storePath = filepath.Join(home, ".local", "share", "quickcite", "quickcite.db")
	}
	v.SetDefault("store.path", storePath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("display.sort_order", string(types.SortNewest))
	v.SetDefault("display.style", string(types.StyleMLA))
	v.SetDefault("export.include_mla", true)
	v.SetDefault("export.include_apa", true)
	v.SetDefault("export.include_chicago", false)
	v.SetDefault("export.include_metadata", true)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("reliability.rules_file", "")
}

func validate(cfg *types.Config) error {
	style, ok := types.ParseStyle(string(cfg.Display.Style))
	if !ok {
		return eris.Errorf("config: unknown display.style %q", cfg.Display.Style)
	}
	cfg.Display.Style = style

	switch types.SortOrder(strings.ToLower(string(cfg.Display.SortOrder))) {
	case types.SortNewest:
		cfg.Display.SortOrder = types.SortNewest
	case types.SortOldest:
		cfg.Display.SortOrder = types.SortOldest
	default:
		return eris.Errorf("config: unknown display.sort_order %q", cfg.Display.SortOrder)
	}
	return nil
}

// InitLogger builds the zap logger described by cfg and installs it as the
// global logger.
func InitLogger(cfg types.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
