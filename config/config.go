package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Conversational assistant specifics
	TaskStore TaskStoreConfig
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TaskStoreConfig points at the external task CRUD backend.
type TaskStoreConfig struct {
	URL         string
	AccessToken string
}

// AssistantConfig tunes the chat pipeline.
type AssistantConfig struct {
	RateLimitPerMin int
	SessionTTLMin   int
	SessionCacheMax int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task store backend
	cfg.TaskStore.URL = viper.GetString("taskstore.url")
	cfg.TaskStore.AccessToken = viper.GetString("taskstore.access_token")
	if storeURL := viper.GetString("taskstore_url"); storeURL != "" {
		cfg.TaskStore.URL = storeURL
	}
	if storeToken := viper.GetString("taskstore_access_token"); storeToken != "" {
		cfg.TaskStore.AccessToken = storeToken
	}
	if cfg.TaskStore.URL == "" {
		return nil, fmt.Errorf("taskstore.url is required")
	}

	// Assistant
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")
	cfg.Assistant.SessionTTLMin = viper.GetInt("assistant.session_ttl_min")
	cfg.Assistant.SessionCacheMax = viper.GetInt("assistant.session_cache_max")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("assistant.rate_limit_per_min", 60)
	viper.SetDefault("assistant.session_ttl_min", 30)
	viper.SetDefault("assistant.session_cache_max", 1000)
}
