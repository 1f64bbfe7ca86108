package config

import (
	"fmt"
	"os"
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

	// Smart-planner specifics
	Gemini  GeminiConfig
	Planner PlannerConfig
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

// GeminiConfig holds the text-generation credential and model selection.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// PlannerConfig tunes the parse pipeline around the core logic.
type PlannerConfig struct {
	RateLimitPerMin int
	CacheSize       int
	CacheTTL        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("google_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Planner
	cfg.Planner.RateLimitPerMin = viper.GetInt("planner.rate_limit_per_min")
	cfg.Planner.CacheSize = viper.GetInt("planner.cache_size")
	cfg.Planner.CacheTTL = viper.GetString("planner.cache_ttl")

	// The generation credential is a construction-time requirement, never a
	// per-request concern.
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not set - set GOOGLE_API_KEY or gemini.api_key in config.yaml")
	}

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
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("planner.rate_limit_per_min", 60)
	viper.SetDefault("planner.cache_size", 256)
	viper.SetDefault("planner.cache_ttl", "10m")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
