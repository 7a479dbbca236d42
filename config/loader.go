package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultURL is the live messages endpoint.
const DefaultURL = "https://www.mvg.de/api/bgw-pt/v3/messages"

// Default returns the built-in configuration: fetch incident messages
// from the live endpoint and print them as an indented JSON list.
func Default() AppConfig {
	return AppConfig{
		API: APIConfig{
			URL:         DefaultURL,
			MessageType: "INCIDENT",
			TimeoutMS:   10000,
		},
		Output: OutputConfig{
			Format:   "json",
			Timezone: "Europe/Berlin",
			Producer: "MVG",
		},
		Server: ServerConfig{
			Port: 16181,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path skips the file and returns the defaults untouched.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
