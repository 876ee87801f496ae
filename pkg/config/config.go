package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the bridge server configuration
type Config struct {
	Environment string         `yaml:"environment" default:"sepolia" validate:"required"`
	Server      ServerConfig   `yaml:"server"`
	Logging     LoggingConfig  `yaml:"logging"`
	Identity    IdentityConfig `yaml:"identity"`
	Agent       AgentConfig    `yaml:"agent"`
	Auth        AuthConfig     `yaml:"auth"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"3m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"2m" validate:"gt=0"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// IdentityConfig selects the identity the server signs canister calls with.
// An empty PEMFile runs the server with the anonymous identity.
type IdentityConfig struct {
	PEMFile string `yaml:"pem_file" validate:"omitempty,file"`
	// KeyType is the key algorithm of PEMFile.
	KeyType string `yaml:"key_type" default:"ed25519" validate:"oneof=ed25519 secp256k1"`
}

// AgentConfig contains Internet Computer agent settings
type AgentConfig struct {
	IngressExpiry time.Duration `yaml:"ingress_expiry" default:"5m" validate:"gt=0"`
}

// AuthConfig contains JWT (JWKS) authentication settings for mutating endpoints
type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	JWKSURL string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer  string `yaml:"issuer"`
}

// MetricsConfig contains Prometheus metrics settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics" validate:"startswith=/"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load loads configuration from a YAML file, applying defaults first
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse builds a configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints and that the environment is known
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Auth.Enabled && c.Auth.JWKSURL == "" {
		return errors.New("auth.jwks_url is required when auth is enabled")
	}
	if _, err := LookupEnvironment(c.Environment); err != nil {
		return err
	}
	return nil
}
