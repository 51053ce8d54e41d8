// Package output provides utilities for formatting and displaying
// profitability estimates.
package output

import (
	"fmt"
	"strings"

	"github.com/streamlens/profit-forecast/internal/estimate"
	"github.com/streamlens/profit-forecast/pkg/finance"
	"github.com/streamlens/profit-forecast/pkg/format"
)

// metricRow pairs a display label with the report field it renders.
type metricRow struct {
	Label string
	Value func(finance.Report) float64
}

// metricRows fixes the presentation order of report metrics in both the
// pretty and CSV output.
var metricRows = []metricRow{
	{"Net Monthly Profit", func(r finance.Report) float64 { return r.NetProfit }},
	{"Total Monthly Revenue", func(r finance.Report) float64 { return r.TotalRevenue }},
	{"Subscription Revenue", func(r finance.Report) float64 { return r.SubscriptionRevenue }},
	{"Ad Revenue", func(r finance.Report) float64 { return r.AdRevenue }},
	{"Total Monthly Costs", func(r finance.Report) float64 { return r.Costs.Total }},
	{"Media Processing & AI", func(r finance.Report) float64 { return r.Costs.MediaProcessing }},
	{"Storage & Delivery", func(r finance.Report) float64 { return r.Costs.StorageDelivery }},
	{"Database", func(r finance.Report) float64 { return r.Costs.Database }},
	{"Compute & Recommendations", func(r finance.Report) float64 { return r.Costs.ComputeRecommendation }},
	{"DevOps", func(r finance.Report) float64 { return r.Costs.DevOps }},
}

// LabeledAmount is one report metric with its display formatting applied.
type LabeledAmount struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// DisplayRows renders every report metric with its display label and
// 0-decimal localized currency string, in presentation order.
func DisplayRows(r finance.Report) []LabeledAmount {
	rows := make([]LabeledAmount, 0, len(metricRows))
	for _, row := range metricRows {
		value := row.Value(r)
		rows = append(rows, LabeledAmount{
			Label:   row.Label,
			Amount:  value,
			Display: format.Currency(value),
		})
	}
	return rows
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []estimate.Estimate) {
	for i, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)
		fmt.Printf("Metric                    | Amount\n")
		fmt.Printf("______________________    | ____________\n")
		for _, row := range metricRows {
			fmt.Printf("%-25s | %s\n", row.Label, format.Currency(row.Value(result.Report)))
		}
		fmt.Printf("%s\n", result.Report.AdEligibilityMessage)
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []estimate.Estimate) {
	fmt.Print(CsvString(results))
}

// CsvString renders the estimates as CSV with one row per metric and one
// column per scenario.
func CsvString(results []estimate.Estimate) string {
	var builder strings.Builder

	builder.WriteString(`"metric"`)
	for _, result := range results {
		builder.WriteString(fmt.Sprintf(`,"%s"`, result.Name))
	}
	builder.WriteString("\n")

	for _, row := range metricRows {
		builder.WriteString(fmt.Sprintf(`"%s"`, row.Label))
		for _, result := range results {
			builder.WriteString(fmt.Sprintf(`,"%s"`, format.Amount(row.Value(result.Report))))
		}
		builder.WriteString("\n")
	}

	builder.WriteString(`"Ad Eligibility"`)
	for _, result := range results {
		builder.WriteString(fmt.Sprintf(`,"%s"`, result.Report.AdEligibilityMessage))
	}
	builder.WriteString("\n")

	return builder.String()
}
