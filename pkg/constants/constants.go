// Package constants provides shared constants for the profit-forecast application.
package constants

// Default pricing, based on public pricing as of mid-2024.
const (
	// DefaultTranscodePricePerVideoMinute is AWS MediaConvert pricing (Basic Tier, SD/HD)
	DefaultTranscodePricePerVideoMinute = 0.0075

	// DefaultAIPricePer1000Chars is ElevenLabs pricing (Scale Plan)
	DefaultAIPricePer1000Chars = 0.09

	// DefaultStoragePricePerGBMonth is Cloudflare R2 storage pricing
	DefaultStoragePricePerGBMonth = 0.015

	// DefaultReadOpsPricePerMillion is Cloudflare R2 Class B operation pricing
	DefaultReadOpsPricePerMillion = 0.36

	// DefaultAdImpressionThreshold is the AdSense for Video eligibility floor
	DefaultAdImpressionThreshold = 2000000
)

// Modeling assumptions baked into the cost and revenue formulas. These are
// domain heuristics rather than published prices and are intentionally not
// configurable.
const (
	// NumRenditions is the number of transcoded output variants per upload
	NumRenditions = 5

	// CharsPer30SecondsVideo is the assumed transcript density
	CharsPer30SecondsVideo = 450.0

	// AICharacterPassMultiplier models transcript generation plus a
	// synthesized voice pass, both billed per character
	AICharacterPassMultiplier = 2.0

	// DaysPerMonth is the number of upload days assumed per month
	DaysPerMonth = 30.0

	// StorageRetentionMonths is the rolling retention window for stored videos
	StorageRetentionMonths = 12.0

	// MBPerStoredVideo is the average stored asset size across renditions
	MBPerStoredVideo = 75.0

	// MBPer30SecondsDelivered is the average encoded size per 30s of delivered video
	MBPer30SecondsDelivered = 15.0

	// GBDeliveredPerMillionReadOps estimates 1M read operations per 10 TB delivered
	GBDeliveredPerMillionReadOps = 10.0

	// ScaleAnchorMAU is the MAU at which the infrastructure scale factor equals 1
	ScaleAnchorMAU = 100000.0

	// DatabaseBaseCost is the monthly database cost at the scale anchor
	DatabaseBaseCost = 2550.0

	// ComputeBaseCost is the monthly recommendation-compute cost at the scale anchor
	ComputeBaseCost = 3250.0

	// DevOpsBaseCost is the monthly devops cost at the scale anchor
	DevOpsBaseCost = 50.0

	// DatabaseScaleExponent shapes database cost growth against the scale factor
	DatabaseScaleExponent = 1.5

	// ComputeScaleExponent shapes recommendation-compute cost growth against the scale factor
	ComputeScaleExponent = 1.8
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// BaselineScenarioName labels the estimate computed from the baseline
// assumptions before any scenario overrides are applied.
const BaselineScenarioName = "baseline"
