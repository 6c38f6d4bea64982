// Package config defines the engine configuration structures and loads them
// from a YAML file via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/kopaflow/loan-engine/pkg/classify"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the loan engine.
type Configuration struct {
	Validation   ValidationConfig   `yaml:"validation,omitempty"`
	Provisioning map[string]float64 `yaml:"provisioning,omitempty"`
	Batch        BatchConfig        `yaml:"batch,omitempty"`
	Logging      LoggingConfig      `yaml:"logging,omitempty"`
	Currency     string             `yaml:"currency,omitempty"`
}

// ValidationConfig holds the loan parameter bounds.
type ValidationConfig struct {
	MinLoanAmount    float64 `yaml:"minLoanAmount,omitempty"`
	MaxStorableValue float64 `yaml:"maxStorableValue,omitempty"`
	MaxTermMonths    int     `yaml:"maxTermMonths,omitempty"`
}

// BatchConfig holds accrual batch options.
type BatchConfig struct {
	Workers int `yaml:"workers,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, applying defaults for anything unset.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	defaults := validation.DefaultBounds()
	viper.SetDefault("validation.minLoanAmount", defaults.MinLoanAmount)
	viper.SetDefault("validation.maxStorableValue", defaults.MaxStorableValue)
	viper.SetDefault("validation.maxTermMonths", defaults.MaxTermMonths)
	viper.SetDefault("batch.workers", 4)
	viper.SetDefault("currency", "USD")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Bounds converts the validation section into the value the engines consume.
func (c *Configuration) Bounds() validation.Bounds {
	return validation.Bounds{
		MinLoanAmount:    c.Validation.MinLoanAmount,
		MaxStorableValue: c.Validation.MaxStorableValue,
		MaxTermMonths:    c.Validation.MaxTermMonths,
	}
}

// ProvisioningPolicy converts the provisioning section into a policy table,
// rejecting unknown tier names and rates outside [0, 1].
func (c *Configuration) ProvisioningPolicy() (classify.ProvisioningPolicy, error) {
	policy := make(classify.ProvisioningPolicy, len(c.Provisioning))
	for tier, rate := range c.Provisioning {
		// viper lowercases config keys, so normalize before parsing.
		status, err := loan.ParseStatus(strings.ToUpper(tier))
		if err != nil {
			return nil, fmt.Errorf("provisioning: %w", err)
		}
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("provisioning: rate %v for tier %s outside [0, 1]", rate, tier)
		}
		policy[status] = rate
	}
	return policy, nil
}
