package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	FrontendURL     string
	OpenAIKey       string
	AIModel         string
	AIBaseURL       string
	DataDir         string
	EnableHSTS      bool
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string
}

// fileConfig is the YAML overlay shape. Booleans are pointers so an
// absent key leaves the current value alone.
type fileConfig struct {
	ServerPort      string `yaml:"server_port"`
	FrontendURL     string `yaml:"frontend_url"`
	OpenAIKey       string `yaml:"openai_api_key"`
	AIModel         string `yaml:"ai_model"`
	AIBaseURL       string `yaml:"ai_base_url"`
	DataDir         string `yaml:"data_dir"`
	EnableHSTS      *bool  `yaml:"enable_hsts"`
	ServerDebugMode *bool  `yaml:"server_debug_mode"`
	OTELEnabled     *bool  `yaml:"otel_enabled"`
	OTELEndpoint    string `yaml:"otel_endpoint"`
}

// Load loads configuration from defaults, then the optional YAML file
// named by PLANNER_CONFIG, then environment variables. Later sources
// win.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  "8080",
		FrontendURL: "http://localhost:3000",
		DataDir:     DefaultDataDir(),
	}

	if path := os.Getenv("PLANNER_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.FrontendURL = getEnv("FRONTEND_URL", cfg.FrontendURL)
	cfg.OpenAIKey = getEnv("OPENAI_API_KEY", cfg.OpenAIKey)
	cfg.AIModel = getEnv("AI_MODEL", cfg.AIModel)
	cfg.AIBaseURL = getEnv("AI_BASE_URL", cfg.AIBaseURL)
	cfg.DataDir = getEnv("PLANNER_DATA_DIR", cfg.DataDir)
	cfg.EnableHSTS = getEnvBool("ENABLE_HSTS", cfg.EnableHSTS)
	cfg.ServerDebugMode = getEnvBool("SERVER_DEBUG_MODE", cfg.ServerDebugMode)
	cfg.OTELEnabled = getEnvBool("OTEL_ENABLED", cfg.OTELEnabled)
	cfg.OTELEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTELEndpoint)

	return cfg, nil
}

// DefaultDataDir returns the default location of the local snapshot
// store: ~/.zen-planner, or the working directory when the home
// directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zen-planner"
	}
	return filepath.Join(home, ".zen-planner")
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.ServerPort != "" {
		c.ServerPort = fc.ServerPort
	}
	if fc.FrontendURL != "" {
		c.FrontendURL = fc.FrontendURL
	}
	if fc.OpenAIKey != "" {
		c.OpenAIKey = fc.OpenAIKey
	}
	if fc.AIModel != "" {
		c.AIModel = fc.AIModel
	}
	if fc.AIBaseURL != "" {
		c.AIBaseURL = fc.AIBaseURL
	}
	if fc.DataDir != "" {
		c.DataDir = fc.DataDir
	}
	if fc.EnableHSTS != nil {
		c.EnableHSTS = *fc.EnableHSTS
	}
	if fc.ServerDebugMode != nil {
		c.ServerDebugMode = *fc.ServerDebugMode
	}
	if fc.OTELEnabled != nil {
		c.OTELEnabled = *fc.OTELEnabled
	}
	if fc.OTELEndpoint != "" {
		c.OTELEndpoint = fc.OTELEndpoint
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
