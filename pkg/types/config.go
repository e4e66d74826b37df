package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout bounds a single remote lookup end to end (default 10s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bestiary/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// RemoteConfig holds settings for the remote animals API.
type RemoteConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the animals endpoint; the query is sent as the name parameter.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is sent as X-Api-Key. Empty or placeholder values are a
	// configuration error.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// RateLimit is the sustained number of requests per second (default 1).
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`

	// Burst is the number of requests allowed above RateLimit (default 3).
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst"`
}

// DatasetConfig holds settings for the bundled local dataset.
type DatasetConfig struct {
	// Path is the JSON or YAML file with local records (default "animals.json").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// Config groups every component's settings.
type Config struct {
	Dataset DatasetConfig `json:"dataset" yaml:"dataset" mapstructure:"dataset"`
	Remote  RemoteConfig  `json:"remote" yaml:"remote" mapstructure:"remote"`
	Debug   bool          `json:"debug" yaml:"debug" mapstructure:"debug"`
}
