// Package config defines the data structures related to configuration and
// includes functions for loading and resolving the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/streamlens/profit-forecast/pkg/validation"
)

// Configuration holds all configuration for profit-forecast.
type Configuration struct {
	Assumptions Assumptions
	Pricing     PricingConfig `yaml:"pricing,omitempty"`
	Scenarios   []Scenario
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Assumptions holds the baseline business and usage parameters shared by
// all scenarios.
type Assumptions struct {
	MonthlyActiveUsers  int
	DailyActivePercent  float64
	UploadPercent       float64
	VideoLengthSeconds  float64
	SubscriptionPrice   float64
	SubscriptionPercent float64
	AdRPM               float64
	DataConsumptionGB   float64
}

// PricingConfig holds optional overrides of the published default pricing.
// Unset fields fall back to the defaults.
type PricingConfig struct {
	TranscodePricePerVideoMinute float64 `yaml:"transcodePricePerVideoMinute,omitempty"`
	AIPricePer1000Chars          float64 `yaml:"aiPricePer1000Chars,omitempty"`
	StoragePricePerGBMonth       float64 `yaml:"storagePricePerGbMonth,omitempty"`
	ReadOpsPricePerMillion       float64 `yaml:"readOpsPricePerMillion,omitempty"`
	AdImpressionThreshold        float64 `yaml:"adImpressionThreshold,omitempty"`
}

// Scenario holds a named what-if variation of the baseline assumptions.
// Only the fields present in its override block differ from the baseline.
type Scenario struct {
	Name        string
	Active      bool
	Assumptions AssumptionOverrides
}

// AssumptionOverrides holds optional per-scenario parameter overrides.
// Pointer fields distinguish "unset" from an explicit zero.
type AssumptionOverrides struct {
	MonthlyActiveUsers  *int
	DailyActivePercent  *float64
	UploadPercent       *float64
	VideoLengthSeconds  *float64
	SubscriptionPrice   *float64
	SubscriptionPercent *float64
	AdRPM               *float64
	DataConsumptionGB   *float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// arbitrary reader, e.g. an HTTP upload.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Resolve applies the scenario's overrides to the baseline assumptions and
// returns the effective assumption set.
func (s Scenario) Resolve(baseline Assumptions) Assumptions {
	resolved := baseline
	if s.Assumptions.MonthlyActiveUsers != nil {
		resolved.MonthlyActiveUsers = *s.Assumptions.MonthlyActiveUsers
	}
	if s.Assumptions.DailyActivePercent != nil {
		resolved.DailyActivePercent = *s.Assumptions.DailyActivePercent
	}
	if s.Assumptions.UploadPercent != nil {
		resolved.UploadPercent = *s.Assumptions.UploadPercent
	}
	if s.Assumptions.VideoLengthSeconds != nil {
		resolved.VideoLengthSeconds = *s.Assumptions.VideoLengthSeconds
	}
	if s.Assumptions.SubscriptionPrice != nil {
		resolved.SubscriptionPrice = *s.Assumptions.SubscriptionPrice
	}
	if s.Assumptions.SubscriptionPercent != nil {
		resolved.SubscriptionPercent = *s.Assumptions.SubscriptionPercent
	}
	if s.Assumptions.AdRPM != nil {
		resolved.AdRPM = *s.Assumptions.AdRPM
	}
	if s.Assumptions.DataConsumptionGB != nil {
		resolved.DataConsumptionGB = *s.Assumptions.DataConsumptionGB
	}
	return resolved
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Out-of-bound values are reported but never rejected;
// they still propagate through the model arithmetic.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	warnings = append(warnings, validation.CheckAssumptions(assumptionValues(c.Assumptions), "baseline")...)

	seen := make(map[string]struct{})
	for _, scenario := range c.Scenarios {
		if scenario.Name == "" {
			warnings = append(warnings, "scenario with empty name; it will be hard to identify in output")
		}
		if _, dup := seen[scenario.Name]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate scenario name %q", scenario.Name))
		}
		seen[scenario.Name] = struct{}{}

		if !scenario.Active {
			continue
		}
		resolved := scenario.Resolve(c.Assumptions)
		warnings = append(warnings, validation.CheckAssumptions(assumptionValues(resolved), fmt.Sprintf("scenario %q", scenario.Name))...)
	}

	warnings = append(warnings, validation.CheckPricing(map[string]float64{
		"transcodePricePerVideoMinute": c.Pricing.TranscodePricePerVideoMinute,
		"aiPricePer1000Chars":          c.Pricing.AIPricePer1000Chars,
		"storagePricePerGbMonth":       c.Pricing.StoragePricePerGBMonth,
		"readOpsPricePerMillion":       c.Pricing.ReadOpsPricePerMillion,
		"adImpressionThreshold":        c.Pricing.AdImpressionThreshold,
	})...)

	return warnings
}

func assumptionValues(a Assumptions) map[string]float64 {
	return map[string]float64{
		validation.ParamMonthlyActiveUsers:  float64(a.MonthlyActiveUsers),
		validation.ParamDailyActivePercent:  a.DailyActivePercent,
		validation.ParamUploadPercent:       a.UploadPercent,
		validation.ParamVideoLengthSeconds:  a.VideoLengthSeconds,
		validation.ParamSubscriptionPrice:   a.SubscriptionPrice,
		validation.ParamSubscriptionPercent: a.SubscriptionPercent,
		validation.ParamAdRPM:               a.AdRPM,
		validation.ParamDataConsumptionGB:   a.DataConsumptionGB,
	}
}
