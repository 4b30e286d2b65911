// Package config loads the service configuration: defaults, then an
// optional YAML file, then CAMPCONNECT_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Catalog sources
const (
	SourceStatic = "static"
	SourceSQLite = "sqlite"
)

// Cache backends
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Agent providers
const (
	ProviderCanned = "canned"
	ProviderOpenAI = "openai"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig  `yaml:"server"`
	Metrics   MetricsConfig `yaml:"metrics"`
	LogLevel  string        `yaml:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string        `yaml:"log_format" validate:"oneof=json text"`
	Catalog   CatalogConfig `yaml:"catalog"`
	Cache     CacheConfig   `yaml:"cache"`
	Agents    AgentsConfig  `yaml:"agents"`
	Impact    ImpactConfig  `yaml:"impact"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port        int      `yaml:"port" validate:"min=1,max=65535"`
	Mode        string   `yaml:"mode" validate:"oneof=debug release test"`
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port" validate:"min=1,max=65535"`
	Path    string `yaml:"path" validate:"startswith=/"`
}

// CatalogConfig selects where inventory and vendor records come from
type CatalogConfig struct {
	Source       string `yaml:"source" validate:"oneof=static sqlite"`
	Dataset      string `yaml:"dataset"`
	Watch        bool   `yaml:"watch"`
	DatabasePath string `yaml:"database_path" validate:"required_if=Source sqlite"`
}

// CacheConfig selects the view cache
type CacheConfig struct {
	Backend    string        `yaml:"backend" validate:"oneof=memory redis none"`
	RedisAddr  string        `yaml:"redis_addr" validate:"required_if=Backend redis"`
	TTL        time.Duration `yaml:"ttl" validate:"min=0"`
	MaxEntries int           `yaml:"max_entries" validate:"min=0"`
}

// AgentsConfig selects what answers agent chats. The openai provider
// talks to any OpenAI-compatible endpoint; the token is read from TokenEnv.
type AgentsConfig struct {
	Provider string `yaml:"provider" validate:"oneof=canned openai"`
	Model    string `yaml:"model" validate:"required_if=Provider openai"`
	BaseURL  string `yaml:"base_url" validate:"omitempty,url"`
	TokenEnv string `yaml:"token_env"`
}

// ImpactConfig holds the baseline figures of the impact report that are
// not derived from the catalog
type ImpactConfig struct {
	AIOperationsCostKg  float64            `yaml:"ai_operations_cost_kg" validate:"min=0"`
	KmNotDriven         float64            `yaml:"km_not_driven" validate:"min=0"`
	TreeSeedlings       float64            `yaml:"tree_seedlings" validate:"min=0"`
	KWhSaved            float64            `yaml:"kwh_saved" validate:"min=0"`
	HostCommunityIncome float64            `yaml:"host_community_income" validate:"min=0"`
	EquityScore         float64            `yaml:"equity_score" validate:"min=0,max=100"`
	MonthlyGrowth       float64            `yaml:"monthly_growth"`
	VendorIncome        []VendorIncomeLine `yaml:"vendor_income" validate:"dive"`
	AvgDeliveryDays     float64            `yaml:"avg_delivery_days" validate:"min=0"`
	InternationalSpeed  float64            `yaml:"international_comparison" validate:"min=0"`
	OnTimeDeliveries    int                `yaml:"on_time_deliveries" validate:"min=0"`
	TotalDeliveries     int                `yaml:"total_deliveries" validate:"min=0,gtefield=OnTimeDeliveries"`
}

// VendorIncomeLine is one bar of the vendor income distribution
type VendorIncomeLine struct {
	Name   string  `yaml:"name" validate:"required"`
	Income float64 `yaml:"income" validate:"min=0"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Mode:        "release",
			CORSOrigins: []string{"*"},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
			Path:    "/metrics",
		},
		LogLevel:  "info",
		LogFormat: "json",
		Catalog: CatalogConfig{
			Source:       SourceStatic,
			DatabasePath: ":memory:",
		},
		Cache: CacheConfig{
			Backend:    CacheMemory,
			RedisAddr:  "localhost:6379",
			TTL:        30 * time.Minute,
			MaxEntries: 1024,
		},
		Agents: AgentsConfig{
			Provider: ProviderCanned,
			TokenEnv: "OPENAI_API_KEY",
		},
		Impact: ImpactConfig{
			AIOperationsCostKg:  12,
			KmNotDriven:         1200,
			TreeSeedlings:       47,
			KWhSaved:            3200,
			HostCommunityIncome: 4250,
			EquityScore:         92,
			MonthlyGrowth:       18,
			VendorIncome: []VendorIncomeLine{
				{Name: "Top Vendor", Income: 680},
				{Name: "Vendor 2", Income: 520},
				{Name: "Vendor 3", Income: 450},
				{Name: "Vendor 4", Income: 380},
				{Name: "Vendor 5", Income: 320},
				{Name: "Lowest Vendor", Income: 180},
			},
			AvgDeliveryDays:    2.5,
			InternationalSpeed: 85,
			OnTimeDeliveries:   96,
			TotalDeliveries:    100,
		},
	}
}

// Load builds the configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CAMPCONNECT_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CAMPCONNECT_PORT=%q", ErrInvalid, v)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("CAMPCONNECT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("CAMPCONNECT_CATALOG_SOURCE"); ok {
		c.Catalog.Source = v
	}
	if v, ok := lookup("CAMPCONNECT_DATASET"); ok {
		c.Catalog.Dataset = v
	}
	if v, ok := lookup("CAMPCONNECT_CACHE_BACKEND"); ok {
		c.Cache.Backend = v
	}
	if v, ok := lookup("CAMPCONNECT_REDIS_ADDR"); ok {
		c.Cache.RedisAddr = v
	}
	if v, ok := lookup("CAMPCONNECT_AGENT_PROVIDER"); ok {
		c.Agents.Provider = v
	}
	if v, ok := lookup("CAMPCONNECT_AGENT_MODEL"); ok {
		c.Agents.Model = v
	}
	return nil
}

var validate = validator.New()

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("%w: %s failed on %q", ErrInvalid, first.Namespace(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
