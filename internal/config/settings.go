// Package config loads simulator settings and combatant rosters
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "RPG_COMBAT_"

// Telemetry backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings holds everything the simulator reads at startup
type Settings struct {
	MaxLevel              int  `yaml:"max_level" env:"MAX_LEVEL"`
	RequireAffordableCost bool `yaml:"require_affordable_cost" env:"REQUIRE_AFFORDABLE_COST"`

	ReductionDefaults ReductionSettings `yaml:"reduction_defaults" envPrefix:"REDUCTION_"`
	Telemetry         TelemetrySettings `yaml:"telemetry" envPrefix:"TELEMETRY_"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
}

// ReductionSettings are the baselines of the reduction formulas
type ReductionSettings struct {
	ItemValueMultiplier             float64 `yaml:"item_value_multiplier" env:"ITEM_VALUE_MULTIPLIER"`
	ItemFindRange                   float64 `yaml:"item_find_range" env:"ITEM_FIND_RANGE"`
	ItemFindRangeMultiplier         float64 `yaml:"item_find_range_multiplier" env:"ITEM_FIND_RANGE_MULTIPLIER"`
	MerchantItemGeneratorBonus      float64 `yaml:"merchant_item_generator_bonus" env:"MERCHANT_ITEM_GENERATOR_BONUS"`
	MerchantCostReductionMultiplier float64 `yaml:"merchant_cost_reduction_multiplier" env:"MERCHANT_COST_REDUCTION_MULTIPLIER"`
}

// TelemetrySettings selects where counters are stored
type TelemetrySettings struct {
	Backend   string `yaml:"backend" env:"BACKEND"`
	RedisAddr string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisDB   int    `yaml:"redis_db" env:"REDIS_DB"`

	// CounterTTL expires a character's counters after inactivity. Zero keeps them.
	CounterTTL time.Duration `yaml:"counter_ttl" env:"COUNTER_TTL"`
}

// DefaultSettings returns settings with stock values
func DefaultSettings() Settings {
	r := engine.DefaultReductionDefaults()
	return Settings{
		MaxLevel:              150,
		RequireAffordableCost: true,
		ReductionDefaults: ReductionSettings{
			ItemValueMultiplier:             r.ItemValueMultiplier,
			ItemFindRange:                   r.ItemFindRange,
			ItemFindRangeMultiplier:         r.ItemFindRangeMultiplier,
			MerchantItemGeneratorBonus:      r.MerchantItemGeneratorBonus,
			MerchantCostReductionMultiplier: r.MerchantCostReductionMultiplier,
		},
		Telemetry: TelemetrySettings{
			Backend:   BackendMemory,
			RedisAddr: "localhost:6379",
		},
		LogLevel:  "info",
		LogFormat: LogFormatText,
	}
}

// Load reads settings from a YAML file, then applies environment overrides.
// A missing file yields the defaults. An empty path skips the file.
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return s, errors.Wrapf(err, "failed to read settings %s", path)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, errors.InvalidArgumentf("failed to parse settings %s: %v", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return s, errors.InvalidArgumentf("failed to parse environment: %v", err)
	}

	if err := s.Validate(); err != nil {
		return s, errors.Wrap(err, "invalid settings")
	}
	return s, nil
}

// Validate checks ranges and enums
func (s *Settings) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.MaxLevel < 1 {
		vb.Fieldf("MaxLevel", "must be at least 1, got %d", s.MaxLevel)
	}

	r := s.ReductionDefaults
	errors.ValidateNonNegative("ReductionDefaults.ItemValueMultiplier", r.ItemValueMultiplier, vb)
	errors.ValidateNonNegative("ReductionDefaults.ItemFindRange", r.ItemFindRange, vb)
	errors.ValidateNonNegative("ReductionDefaults.ItemFindRangeMultiplier", r.ItemFindRangeMultiplier, vb)
	errors.ValidateNonNegative("ReductionDefaults.MerchantItemGeneratorBonus", r.MerchantItemGeneratorBonus, vb)
	errors.ValidateNonNegative("ReductionDefaults.MerchantCostReductionMultiplier", r.MerchantCostReductionMultiplier, vb)

	errors.ValidateEnum("Telemetry.Backend", s.Telemetry.Backend, []string{BackendMemory, BackendRedis}, vb)
	if s.Telemetry.Backend == BackendRedis {
		errors.ValidateRequired("Telemetry.RedisAddr", s.Telemetry.RedisAddr, vb)
		errors.ValidateRange("Telemetry.RedisDB", s.Telemetry.RedisDB, 0, 15, vb)
	}
	if s.Telemetry.CounterTTL < 0 {
		vb.Fieldf("Telemetry.CounterTTL", "must not be negative, got %s", s.Telemetry.CounterTTL)
	}

	if _, ok := parseLevel(s.LogLevel); !ok {
		vb.InvalidField("LogLevel", s.LogLevel)
	}
	errors.ValidateEnum("LogFormat", s.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)

	return vb.Build()
}

// EngineConfig builds the resolver configuration
func (s *Settings) EngineConfig() *engine.Config {
	r := s.ReductionDefaults
	return &engine.Config{
		Reductions: engine.ReductionDefaults{
			ItemValueMultiplier:             r.ItemValueMultiplier,
			ItemFindRange:                   r.ItemFindRange,
			ItemFindRangeMultiplier:         r.ItemFindRangeMultiplier,
			MerchantItemGeneratorBonus:      r.MerchantItemGeneratorBonus,
			MerchantCostReductionMultiplier: r.MerchantCostReductionMultiplier,
		},
	}
}

// Level returns the slog level, defaulting to info
func (s *Settings) Level() slog.Level {
	level, _ := parseLevel(s.LogLevel)
	return level
}

func parseLevel(value string) (slog.Level, bool) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
