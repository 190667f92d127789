// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the profile file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/leftover-labs/freedom-rate/internal/refdata"
	"github.com/leftover-labs/freedom-rate/pkg/costs"
)

// Configuration holds all configuration for freedom-rate.
type Configuration struct {
	// SessionID keys the analytics snapshot; repeated submissions for the
	// same session upsert rather than append.
	SessionID string `mapstructure:"sessionId"`

	// Profile is the user's scenario input.
	Profile costs.Input `mapstructure:"profile"`

	Scenario  ScenarioConfig  `mapstructure:"scenario"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Output    OutputConfig    `mapstructure:"output"`
}

// ScenarioConfig selects the comparison scenarios to run alongside the
// current month.
type ScenarioConfig struct {
	// RelocationTarget names a catalogue entry; empty skips the
	// relocation comparison.
	RelocationTarget string `mapstructure:"relocationTarget"`

	WhatIf WhatIfConfig `mapstructure:"whatIf"`
}

// WhatIfConfig holds the ad-hoc deltas applied on top of the baseline.
type WhatIfConfig struct {
	RemoteDays  float64 `mapstructure:"remoteDays"`
	RentDelta   float64 `mapstructure:"rentDelta"`
	IncomeDelta float64 `mapstructure:"incomeDelta"`
}

// AnalyticsConfig configures the fire-and-forget snapshot forwarder; an
// empty URL disables forwarding.
type AnalyticsConfig struct {
	ForwardURL string `mapstructure:"forwardUrl"`
	TimeoutMS  int    `mapstructure:"timeoutMs"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`    // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv, pdf

	// File receives the PDF report; ignored for terminal formats.
	File string `mapstructure:"file"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

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

// ValidateConfiguration performs general validation and returns warnings.
// Every warning is advisory; the engine resolves all of these conditions to
// documented fallbacks rather than failing.
func (c *Configuration) ValidateConfiguration(catalog *refdata.Catalog) []string {
	var warnings []string

	if catalog == nil {
		catalog = refdata.NewCatalog()
	}

	region := catalog.LookupRegion(c.Profile.Region)
	if !strings.EqualFold(region.ID, strings.TrimSpace(c.Profile.Region)) {
		warnings = append(warnings, fmt.Sprintf(
			"unknown region %q, using %q benchmarks", c.Profile.Region, region.ID))
	}

	if c.Profile.City != "" {
		if _, ok := catalog.LookupCity(c.Profile.City); !ok {
			warnings = append(warnings, fmt.Sprintf(
				"unknown city %q, using regional typical figures", c.Profile.City))
		}
	}

	if c.Profile.ChildCount > 0 && !c.Profile.Household.Parenting() {
		warnings = append(warnings, fmt.Sprintf(
			"household type %q does not model children; child count ignored", c.Profile.Household))
	}

	if c.Profile.SavingsRatePct < 0 || c.Profile.SavingsRatePct > 100 {
		warnings = append(warnings, fmt.Sprintf(
			"savings rate %.1f%% outside 0-100, clamping", c.Profile.SavingsRatePct))
	}

	if c.Profile.IncomeMonthly <= 0 {
		warnings = append(warnings, "income is zero or negative; derived figures will be negative")
	}

	if c.Scenario.RelocationTarget != "" {
		if _, ok := catalog.LookupTarget(c.Scenario.RelocationTarget); !ok {
			warnings = append(warnings, fmt.Sprintf(
				"unknown relocation target %q, skipping relocation comparison", c.Scenario.RelocationTarget))
		}
	}

	if c.Scenario.WhatIf.RemoteDays < 0 || c.Scenario.WhatIf.RemoteDays > 5 {
		warnings = append(warnings, fmt.Sprintf(
			"remote days %.1f outside 0-5, clamping", c.Scenario.WhatIf.RemoteDays))
	}

	return warnings
}
