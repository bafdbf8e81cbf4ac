package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/billaudit/internal/model"
)

// Config holds all runtime knobs for the audit engine and CLI.
type Config struct {
	DataDir   string `yaml:"data_dir"`
	LogFormat string `yaml:"log_format"` // "text" or "json"
	Debug     bool   `yaml:"debug"`
	Region    string `yaml:"region"` // "US", "IN", or "AUTO"

	FuzzyThreshold        int     `yaml:"fuzzy_threshold"`         // minimum fuzzy-match score (0-100)
	OverchargeMultiplier  float64 `yaml:"overcharge_multiplier"`   // charges above fair price x this are flagged
	ArithmeticTolerance   float64 `yaml:"arithmetic_tolerance"`    // currency units
	MinTaxRate            float64 `yaml:"min_tax_rate"`            // fractional, e.g. 0.0
	MaxTaxRate            float64 `yaml:"max_tax_rate"`            // fractional, e.g. 0.15
	HighQuantityThreshold float64 `yaml:"high_quantity_threshold"` // quantities above this get a review flag
	DuplicateAllRegions   bool    `yaml:"duplicate_all_regions"`   // run duplicate check for India too
}

// Default returns a Config with the engine's documented defaults.
func Default() Config {
	return Config{
		LogFormat:             "text",
		Region:                string(model.RegionAuto),
		FuzzyThreshold:        60,
		OverchargeMultiplier:  1.5,
		ArithmeticTolerance:   0.01,
		MinTaxRate:            0.0,
		MaxTaxRate:            0.15,
		HighQuantityThreshold: 10,
	}
}

// yamlConfig mirrors the on-disk YAML structure with pointer fields so that
// omitted keys keep their current values.
type yamlConfig struct {
	DataDir               *string  `yaml:"data_dir"`
	LogFormat             *string  `yaml:"log_format"`
	Region                *string  `yaml:"region"`
	FuzzyThreshold        *int     `yaml:"fuzzy_threshold"`
	OverchargeMultiplier  *float64 `yaml:"overcharge_multiplier"`
	ArithmeticTolerance   *float64 `yaml:"arithmetic_tolerance"`
	MinTaxRate            *float64 `yaml:"min_tax_rate"`
	MaxTaxRate            *float64 `yaml:"max_tax_rate"`
	HighQuantityThreshold *float64 `yaml:"high_quantity_threshold"`
	DuplicateAllRegions   *bool    `yaml:"duplicate_all_regions"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if yc.DataDir != nil {
		c.DataDir = *yc.DataDir
	}
	if yc.LogFormat != nil {
		c.LogFormat = *yc.LogFormat
	}
	if yc.Region != nil {
		c.Region = *yc.Region
	}
	if yc.FuzzyThreshold != nil {
		c.FuzzyThreshold = *yc.FuzzyThreshold
	}
	if yc.OverchargeMultiplier != nil {
		c.OverchargeMultiplier = *yc.OverchargeMultiplier
	}
	if yc.ArithmeticTolerance != nil {
		c.ArithmeticTolerance = *yc.ArithmeticTolerance
	}
	if yc.MinTaxRate != nil {
		c.MinTaxRate = *yc.MinTaxRate
	}
	if yc.MaxTaxRate != nil {
		c.MaxTaxRate = *yc.MaxTaxRate
	}
	if yc.HighQuantityThreshold != nil {
		c.HighQuantityThreshold = *yc.HighQuantityThreshold
	}
	if yc.DuplicateAllRegions != nil {
		c.DuplicateAllRegions = *yc.DuplicateAllRegions
	}

	return c.Validate()
}

// RegionOverride returns the configured region as a typed value.
func (c *Config) RegionOverride() model.Region {
	r, _ := model.ParseRegion(c.Region)
	return r
}

// Validate checks that every knob is in range.
func (c *Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("fuzzy_threshold must be in [0,100], got %d", c.FuzzyThreshold)
	}
	if c.OverchargeMultiplier < 1 {
		return fmt.Errorf("overcharge_multiplier must be >= 1, got %g", c.OverchargeMultiplier)
	}
	if c.ArithmeticTolerance < 0 {
		return fmt.Errorf("arithmetic_tolerance must be >= 0, got %g", c.ArithmeticTolerance)
	}
	if c.MinTaxRate < 0 || c.MaxTaxRate < c.MinTaxRate {
		return fmt.Errorf("tax rate bounds invalid: min=%g max=%g", c.MinTaxRate, c.MaxTaxRate)
	}
	if c.HighQuantityThreshold <= 0 {
		return fmt.Errorf("high_quantity_threshold must be > 0, got %g", c.HighQuantityThreshold)
	}
	if _, ok := model.ParseRegion(c.Region); !ok {
		return fmt.Errorf("unknown region %q (want US, IN, or AUTO)", c.Region)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
