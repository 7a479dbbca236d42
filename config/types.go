package config

import "time"

// APIConfig describes the upstream messages endpoint
type APIConfig struct {
	URL         string `yaml:"url" validate:"required,url"`
	MessageType string `yaml:"messageType" validate:"required"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gt=0"`
}

// Timeout returns the fetch timeout as a duration
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// OutputConfig controls the rendered document
type OutputConfig struct {
	// Format selects the output document: json is the incident list,
	// siri and siri-xml the SIRI-SX response, gtfsrt the service alerts
	// protobuf, gtfsrt-json its protojson rendering.
	Format   string `yaml:"format" validate:"oneof=json siri siri-xml gtfsrt gtfsrt-json"`
	Compact  bool   `yaml:"compact"`
	Timezone string `yaml:"timezone" validate:"required"`
	Producer string `yaml:"producer"`
}

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	API    APIConfig    `yaml:"api"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}
