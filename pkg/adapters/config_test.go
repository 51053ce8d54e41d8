package adapters

import (
	"testing"

	"github.com/streamlens/profit-forecast/internal/config"
	"github.com/streamlens/profit-forecast/pkg/finance"
)

func TestAssumptionsToInputs(t *testing.T) {
	assumptions := config.Assumptions{
		MonthlyActiveUsers:  1000000,
		DailyActivePercent:  20,
		UploadPercent:       5,
		VideoLengthSeconds:  30,
		SubscriptionPrice:   7.99,
		SubscriptionPercent: 2.0,
		AdRPM:               0.10,
		DataConsumptionGB:   0.7,
	}

	inputs := AssumptionsToInputs(assumptions)

	expected := finance.Inputs{
		MonthlyActiveUsers:  1000000,
		DailyActivePercent:  20,
		UploadPercent:       5,
		VideoLengthSeconds:  30,
		SubscriptionPrice:   7.99,
		SubscriptionPercent: 2.0,
		AdRPM:               0.10,
		DataConsumptionGB:   0.7,
	}
	if inputs != expected {
		t.Errorf("AssumptionsToInputs() = %+v, expected %+v", inputs, expected)
	}
}

func TestPricingToFinance(t *testing.T) {
	pricing := PricingToFinance(config.PricingConfig{
		StoragePricePerGBMonth: 0.02,
		AdImpressionThreshold:  5000000,
	})

	if pricing.StoragePricePerGBMonth != 0.02 {
		t.Errorf("StoragePricePerGBMonth = %v, expected 0.02", pricing.StoragePricePerGBMonth)
	}
	if pricing.AdImpressionThreshold != 5000000 {
		t.Errorf("AdImpressionThreshold = %v, expected 5000000", pricing.AdImpressionThreshold)
	}
	// Unset fields stay zero here so the model can substitute defaults.
	if pricing.TranscodePricePerVideoMinute != 0 {
		t.Errorf("TranscodePricePerVideoMinute = %v, expected 0", pricing.TranscodePricePerVideoMinute)
	}
}
