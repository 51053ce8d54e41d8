// Package finance implements the profitability model: a pure mapping from
// business and usage assumptions to estimated monthly costs, revenue, and
// net profit for a video-based consumer app.
package finance

import (
	"math"

	"github.com/streamlens/profit-forecast/pkg/constants"
	"github.com/streamlens/profit-forecast/pkg/format"
)

// Inputs holds the business and usage assumptions for one estimate. All
// fields are immutable per invocation; callers are responsible for keeping
// values inside their recognized bounds.
type Inputs struct {
	// MonthlyActiveUsers is the total monthly active user count.
	MonthlyActiveUsers int
	// DailyActivePercent is the share of MAU active on a given day (0-100).
	DailyActivePercent float64
	// UploadPercent is the share of daily actives uploading per day (0-100).
	UploadPercent float64
	// VideoLengthSeconds is the average uploaded video length.
	VideoLengthSeconds float64
	// SubscriptionPrice is the monthly subscription price.
	SubscriptionPrice float64
	// SubscriptionPercent is the share of MAU subscribing (0-100).
	SubscriptionPercent float64
	// AdRPM is ad revenue per 1,000 impressions.
	AdRPM float64
	// DataConsumptionGB is monthly data consumption per user in GB.
	DataConsumptionGB float64
}

// Pricing holds the unit prices and thresholds the model bills against.
// The zero value of any field is replaced by the corresponding default, so
// partial overrides compose with DefaultPricing.
type Pricing struct {
	TranscodePricePerVideoMinute float64
	AIPricePer1000Chars          float64
	StoragePricePerGBMonth       float64
	ReadOpsPricePerMillion       float64
	AdImpressionThreshold        float64
}

// DefaultPricing returns the published pricing the model ships with.
func DefaultPricing() Pricing {
	return Pricing{
		TranscodePricePerVideoMinute: constants.DefaultTranscodePricePerVideoMinute,
		AIPricePer1000Chars:          constants.DefaultAIPricePer1000Chars,
		StoragePricePerGBMonth:       constants.DefaultStoragePricePerGBMonth,
		ReadOpsPricePerMillion:       constants.DefaultReadOpsPricePerMillion,
		AdImpressionThreshold:        constants.DefaultAdImpressionThreshold,
	}
}

// withDefaults fills unset pricing fields from DefaultPricing.
func (p Pricing) withDefaults() Pricing {
	defaults := DefaultPricing()
	if p.TranscodePricePerVideoMinute == 0 {
		p.TranscodePricePerVideoMinute = defaults.TranscodePricePerVideoMinute
	}
	if p.AIPricePer1000Chars == 0 {
		p.AIPricePer1000Chars = defaults.AIPricePer1000Chars
	}
	if p.StoragePricePerGBMonth == 0 {
		p.StoragePricePerGBMonth = defaults.StoragePricePerGBMonth
	}
	if p.ReadOpsPricePerMillion == 0 {
		p.ReadOpsPricePerMillion = defaults.ReadOpsPricePerMillion
	}
	if p.AdImpressionThreshold == 0 {
		p.AdImpressionThreshold = defaults.AdImpressionThreshold
	}
	return p
}

// CostBreakdown holds the monthly cost components. Total is always the sum
// of the five components.
type CostBreakdown struct {
	MediaProcessing       float64 `json:"mediaProcessing"`
	StorageDelivery       float64 `json:"storageDelivery"`
	Database              float64 `json:"database"`
	ComputeRecommendation float64 `json:"computeRecommendation"`
	DevOps                float64 `json:"devops"`
	Total                 float64 `json:"total"`
}

// Report holds the computed financial estimate for one set of inputs.
type Report struct {
	Costs                CostBreakdown `json:"costs"`
	SubscriptionRevenue  float64       `json:"subscriptionRevenue"`
	AdRevenue            float64       `json:"adRevenue"`
	TotalRevenue         float64       `json:"totalRevenue"`
	NetProfit            float64       `json:"netProfit"`
	MonthlyImpressions   float64       `json:"monthlyImpressions"`
	AdEligible           bool          `json:"adEligible"`
	AdEligibilityMessage string        `json:"adEligibilityMessage"`
}

// Compute produces the financial report for one set of inputs. It is a
// total function: no error conditions, no side effects, safe to call
// concurrently. Out-of-domain values are not rejected and simply propagate
// through the arithmetic.
func Compute(in Inputs, pricing Pricing) Report {
	pricing = pricing.withDefaults()
	mau := float64(in.MonthlyActiveUsers)

	var costs CostBreakdown
	if in.MonthlyActiveUsers != 0 {
		// User and content metrics driving costs.
		dailyActiveUsers := mau * (in.DailyActivePercent / constants.PercentageMultiplier)
		videosPerMonth := dailyActiveUsers * (in.UploadPercent / constants.PercentageMultiplier) * constants.DaysPerMonth
		charsPerVideo := (in.VideoLengthSeconds / 30.0) * constants.CharsPer30SecondsVideo

		transcodeCost := videosPerMonth * (in.VideoLengthSeconds / 60.0) * constants.NumRenditions * pricing.TranscodePricePerVideoMinute
		aiCost := videosPerMonth * (charsPerVideo * constants.AICharacterPassMultiplier) / 1000 * pricing.AIPricePer1000Chars
		costs.MediaProcessing = transcodeCost + aiCost

		totalVideosStored := videosPerMonth * constants.StorageRetentionMonths
		totalGBStored := totalVideosStored * constants.MBPerStoredVideo / 1024
		storageCost := totalGBStored * pricing.StoragePricePerGBMonth

		// Read operations are estimated from total data delivered.
		totalGBDelivered := mau * in.DataConsumptionGB
		readOpsMillions := totalGBDelivered / constants.GBDeliveredPerMillionReadOps
		readOpsCost := readOpsMillions * pricing.ReadOpsPricePerMillion
		costs.StorageDelivery = storageCost + readOpsCost

		scaleFactor := ScaleFactor(in.MonthlyActiveUsers)
		costs.Database = constants.DatabaseBaseCost * math.Pow(scaleFactor, constants.DatabaseScaleExponent)
		costs.ComputeRecommendation = constants.ComputeBaseCost * math.Pow(scaleFactor, constants.ComputeScaleExponent)
		costs.DevOps = constants.DevOpsBaseCost * scaleFactor

		costs.Total = costs.MediaProcessing + costs.StorageDelivery + costs.Database + costs.ComputeRecommendation + costs.DevOps
	}

	subscribers := mau * (in.SubscriptionPercent / constants.PercentageMultiplier)
	subscriptionRevenue := subscribers * in.SubscriptionPrice

	// Views are estimated from data consumption and the average encoded
	// video size.
	mbPerVideo := (in.VideoLengthSeconds / 30.0) * constants.MBPer30SecondsDelivered
	gbPerVideo := mbPerVideo / 1024
	viewsPerUser := 0.0
	if gbPerVideo > 0 {
		viewsPerUser = in.DataConsumptionGB / gbPerVideo
	}
	totalMonthlyImpressions := mau * viewsPerUser

	adRevenue := 0.0
	adEligible := totalMonthlyImpressions >= pricing.AdImpressionThreshold
	var adEligibilityMessage string
	if adEligible {
		adRevenue = totalMonthlyImpressions / 1000 * in.AdRPM
		adEligibilityMessage = EligibleMessage
	} else {
		adEligibilityMessage = NotEligibleMessage(pricing.AdImpressionThreshold)
	}

	totalRevenue := subscriptionRevenue + adRevenue

	return Report{
		Costs:                costs,
		SubscriptionRevenue:  subscriptionRevenue,
		AdRevenue:            adRevenue,
		TotalRevenue:         totalRevenue,
		NetProfit:            totalRevenue - costs.Total,
		MonthlyImpressions:   totalMonthlyImpressions,
		AdEligible:           adEligible,
		AdEligibilityMessage: adEligibilityMessage,
	}
}

// ScaleFactor is the normalized logarithmic growth metric used for the
// scale-driven infrastructure costs. It equals 1 at the 100,000 MAU anchor
// and grows sub-logarithmically beyond it.
func ScaleFactor(monthlyActiveUsers int) float64 {
	return math.Log10(float64(monthlyActiveUsers)+1) / math.Log10(constants.ScaleAnchorMAU)
}

// EligibleMessage is displayed verbatim when the platform clears the ad
// impression threshold.
const EligibleMessage = "✅ Platform is eligible for AdSense for Video."

// NotEligibleMessage reports the impression threshold the platform still
// needs to clear.
func NotEligibleMessage(threshold float64) string {
	return "⚠️ Platform is NOT eligible for AdSense. Needs >" + format.Grouped(threshold) + " monthly views."
}
