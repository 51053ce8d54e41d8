// Package adapters provides conversions between configuration structures
// and the finance model's input types.
package adapters

import (
	"github.com/streamlens/profit-forecast/internal/config"
	"github.com/streamlens/profit-forecast/pkg/finance"
)

// AssumptionsToInputs converts configuration assumptions to model inputs.
func AssumptionsToInputs(a config.Assumptions) finance.Inputs {
	return finance.Inputs{
		MonthlyActiveUsers:  a.MonthlyActiveUsers,
		DailyActivePercent:  a.DailyActivePercent,
		UploadPercent:       a.UploadPercent,
		VideoLengthSeconds:  a.VideoLengthSeconds,
		SubscriptionPrice:   a.SubscriptionPrice,
		SubscriptionPercent: a.SubscriptionPercent,
		AdRPM:               a.AdRPM,
		DataConsumptionGB:   a.DataConsumptionGB,
	}
}

// PricingToFinance converts configured pricing overrides to model pricing.
// Unset (zero) fields remain zero here; the model fills them from its
// defaults.
func PricingToFinance(p config.PricingConfig) finance.Pricing {
	return finance.Pricing{
		TranscodePricePerVideoMinute: p.TranscodePricePerVideoMinute,
		AIPricePer1000Chars:          p.AIPricePer1000Chars,
		StoragePricePerGBMonth:       p.StoragePricePerGBMonth,
		ReadOpsPricePerMillion:       p.ReadOpsPricePerMillion,
		AdImpressionThreshold:        p.AdImpressionThreshold,
	}
}
