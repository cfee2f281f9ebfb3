package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crmviewer/domain"
	"crmviewer/service"

	"github.com/go-kit/log/level"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

var formFactors = map[string]bool{"Large": true, "Medium": true, "Small": true}

// envConfig is read from environment variables.
type envConfig struct {
	HTTPPort    int           `envconfig:"SERVICE_PORT_HTTP" required:"true"`
	RedisAddr   string        `envconfig:"REDIS_ADDR" required:"true"`
	APIVersion  string        `envconfig:"SF_API_VERSION" default:"61.0"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	HTTPTimeout time.Duration `envconfig:"SF_HTTP_TIMEOUT" default:"30s"`
	ConfigPath  string        `envconfig:"CONFIG_PATH"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// yamlConfig is the root struct of the optional file at CONFIG_PATH.
type yamlConfig struct {
	Discovery yamlDiscovery `yaml:"discovery"`
	Queries   yamlQueries   `yaml:"queries"`
}

// yamlDiscovery holds the target app developer name, the ui-api form factor and the combine policy (intersect|catalog).
type yamlDiscovery struct {
	TargetApp  string `yaml:"target_app"`
	FormFactor string `yaml:"form_factor"`
	Policy     string `yaml:"policy"`
}

// yamlQueries holds the SOQL behind the contacts and accounts lists.
type yamlQueries struct {
	Contacts string `yaml:"contacts"`
	Accounts string `yaml:"accounts"`
}

// CRMViewerConfig holds the full service configuration.
type CRMViewerConfig struct {
	HTTPPort    int
	RedisAddr   string
	APIVersion  string
	SessionTTL  time.Duration
	HTTPTimeout time.Duration
	LogLevel    level.Option
	Repository  service.RepositoryConfig
}

// LoadConfig loads configuration from environment variables and the optional YAML file at CONFIG_PATH.
// SERVICE_PORT_HTTP and REDIS_ADDR are required; YAML values override the repository defaults.
func LoadConfig() (*CRMViewerConfig, error) {
	var env envConfig
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}
	if strings.TrimSpace(env.RedisAddr) == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}
	if env.HTTPPort <= 0 || env.HTTPPort > 65535 {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP must be 1-65535, got %d", env.HTTPPort)
	}
	if env.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if env.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("SF_HTTP_TIMEOUT must be positive")
	}
	logLevel, err := parseLogLevel(env.LogLevel)
	if err != nil {
		return nil, err
	}

	repository := service.DefaultRepositoryConfig()
	if path := strings.TrimSpace(env.ConfigPath); path != "" {
		raw, err := loadYAMLConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		if repository, err = applyYAML(repository, raw); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	return &CRMViewerConfig{
		HTTPPort:    env.HTTPPort,
		RedisAddr:   env.RedisAddr,
		APIVersion:  env.APIVersion,
		SessionTTL:  env.SessionTTL,
		HTTPTimeout: env.HTTPTimeout,
		LogLevel:    logLevel,
		Repository:  repository,
	}, nil
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		path = abs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// applyYAML overrides the non-empty values of raw on top of cfg.
func applyYAML(cfg service.RepositoryConfig, raw *yamlConfig) (service.RepositoryConfig, error) {
	if v := strings.TrimSpace(raw.Discovery.TargetApp); v != "" {
		cfg.TargetApp = v
	}
	if v := strings.TrimSpace(raw.Discovery.FormFactor); v != "" {
		if !formFactors[v] {
			return cfg, fmt.Errorf("discovery.form_factor must be Large|Medium|Small, got %q", v)
		}
		cfg.FormFactor = v
	}
	if v := strings.TrimSpace(raw.Discovery.Policy); v != "" {
		policy, err := domain.ParseDiscoveryPolicy(v)
		if err != nil {
			return cfg, fmt.Errorf("discovery.policy: %w", err)
		}
		cfg.Policy = policy
	}
	if v := strings.TrimSpace(raw.Queries.Contacts); v != "" {
		cfg.ContactsQuery = v
	}
	if v := strings.TrimSpace(raw.Queries.Accounts); v != "" {
		cfg.AccountsQuery = v
	}
	return cfg, nil
}

func parseLogLevel(s string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be debug|info|warn|error, got %q", s)
	}
}
