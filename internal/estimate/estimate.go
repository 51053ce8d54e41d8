// Package estimate runs the profitability model over the configured
// baseline and scenarios.
package estimate

import (
	"fmt"

	"github.com/streamlens/profit-forecast/internal/config"
	"github.com/streamlens/profit-forecast/pkg/adapters"
	"github.com/streamlens/profit-forecast/pkg/constants"
	"github.com/streamlens/profit-forecast/pkg/finance"
	"go.uber.org/zap"
)

// Estimate holds the computed report for one named assumption set.
type Estimate struct {
	Name   string
	Inputs finance.Inputs
	Report finance.Report
}

// GetEstimates computes the baseline estimate followed by one estimate per
// active scenario. Inactive scenarios are skipped.
func GetEstimates(logger *zap.Logger, conf config.Configuration) []Estimate {
	if logger == nil {
		logger = zap.NewNop()
	}

	pricing := adapters.PricingToFinance(conf.Pricing)

	baselineInputs := adapters.AssumptionsToInputs(conf.Assumptions)
	results := []Estimate{
		{
			Name:   constants.BaselineScenarioName,
			Inputs: baselineInputs,
			Report: finance.Compute(baselineInputs, pricing),
		},
	}

	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "estimate.GetEstimates"),
			)
			continue
		}

		inputs := adapters.AssumptionsToInputs(scenario.Resolve(conf.Assumptions))
		report := finance.Compute(inputs, pricing)

		logger.Debug("computed scenario estimate",
			zap.String("op", "estimate.GetEstimates"),
			zap.String("scenario", scenario.Name),
			zap.Float64("netProfit", report.NetProfit),
		)

		results = append(results, Estimate{
			Name:   scenario.Name,
			Inputs: inputs,
			Report: report,
		})
	}

	return results
}
