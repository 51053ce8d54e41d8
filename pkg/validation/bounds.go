// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"sort"
)

// Parameter names shared between configuration validation, the bounds API,
// and the slider UI.
const (
	ParamMonthlyActiveUsers  = "monthlyActiveUsers"
	ParamDailyActivePercent  = "dailyActivePercent"
	ParamUploadPercent       = "uploadPercent"
	ParamVideoLengthSeconds  = "videoLengthSeconds"
	ParamSubscriptionPrice   = "subscriptionPrice"
	ParamSubscriptionPercent = "subscriptionPercent"
	ParamAdRPM               = "adRpm"
	ParamDataConsumptionGB   = "dataConsumptionGbPerUser"
)

// ParameterBound describes the recognized range, step, and default for one
// model input. Values outside the range are warned about but not rejected.
type ParameterBound struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// parameterBounds is the recognized input surface, matching the original
// slider configuration.
var parameterBounds = map[string]ParameterBound{
	ParamMonthlyActiveUsers:  {Name: ParamMonthlyActiveUsers, Label: "Monthly Active Users (MAU)", Min: 0, Max: 20000000, Step: 100000, Default: 1000000},
	ParamDailyActivePercent:  {Name: ParamDailyActivePercent, Label: "Daily Active Users (% of MAU)", Min: 5, Max: 50, Step: 1, Default: 20},
	ParamDataConsumptionGB:   {Name: ParamDataConsumptionGB, Label: "Monthly Data Consumption per User (GB)", Min: 0.1, Max: 20.0, Step: 0.1, Default: 0.7},
	ParamUploadPercent:       {Name: ParamUploadPercent, Label: "Content Uploads (% of DAU per day)", Min: 1, Max: 20, Step: 1, Default: 5},
	ParamVideoLengthSeconds:  {Name: ParamVideoLengthSeconds, Label: "Average Video Length (seconds)", Min: 5, Max: 120, Step: 5, Default: 30},
	ParamSubscriptionPrice:   {Name: ParamSubscriptionPrice, Label: "Monthly Subscription Price ($)", Min: 0.0, Max: 30.0, Step: 0.50, Default: 7.99},
	ParamSubscriptionPercent: {Name: ParamSubscriptionPercent, Label: "% of MAUs that Subscribe", Min: 0.25, Max: 40.0, Step: 0.25, Default: 2.0},
	ParamAdRPM:               {Name: ParamAdRPM, Label: "Ad RPM (per 1,000 views)", Min: 0.04, Max: 0.25, Step: 0.01, Default: 0.10},
}

// boundsOrder fixes the presentation order of RecognizedBounds.
var boundsOrder = []string{
	ParamMonthlyActiveUsers,
	ParamDailyActivePercent,
	ParamDataConsumptionGB,
	ParamUploadPercent,
	ParamVideoLengthSeconds,
	ParamSubscriptionPrice,
	ParamSubscriptionPercent,
	ParamAdRPM,
}

// RecognizedBounds returns the recognized parameter bounds in presentation
// order.
func RecognizedBounds() []ParameterBound {
	bounds := make([]ParameterBound, 0, len(boundsOrder))
	for _, name := range boundsOrder {
		bounds = append(bounds, parameterBounds[name])
	}
	return bounds
}

// CheckAssumptions compares assumption values against their recognized
// bounds and returns one warning per out-of-range value. The context string
// identifies which assumption set the warning belongs to.
func CheckAssumptions(values map[string]float64, context string) []string {
	var warnings []string

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		bound, known := parameterBounds[name]
		if !known {
			continue
		}
		value := values[name]
		if value < bound.Min || value > bound.Max {
			warnings = append(warnings, fmt.Sprintf("%s: %s = %v is outside the recognized range [%v, %v]",
				context, name, value, bound.Min, bound.Max))
		}
	}

	return warnings
}

// CheckPricing warns about negative pricing overrides. Zero means "use the
// default" and is never warned about.
func CheckPricing(values map[string]float64) []string {
	var warnings []string

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if values[name] < 0 {
			warnings = append(warnings, fmt.Sprintf("pricing: %s = %v is negative", name, values[name]))
		}
	}

	return warnings
}
