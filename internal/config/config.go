package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API        *APIConfig        `mapstructure:"api"`
	Gin        *GinConfig        `mapstructure:"gin"`
	Classifier *ClassifierConfig `mapstructure:"classifier"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AdminSignupCode    string   `mapstructure:"admin_signup_code"`
	SeedDemoData       bool     `mapstructure:"seed_demo_data"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type ClassifierConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Load reads the yaml config at path, with OTGIL_-prefixed environment
// variables taking precedence, and watches the file for changes.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)

	viper.SetEnvPrefix("OTGIL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.Unmarshal(&conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return &conf, nil
}
