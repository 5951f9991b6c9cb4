package processing

import "blinkdeploys/tokenscope/pkg/processing/costs"

// SelectModels returns the cheapest and most expensive fitting models by
// TotalCost1KOutput. Ties keep the first model seen. ok is false when no
// model fits.
func SelectModels(analyses []costs.CostAnalysis) (cheapest, mostExpensive costs.CostAnalysis, ok bool) {
	for _, a := range analyses {
		if !a.FitsInContext {
			continue
		}
		if !ok {
			cheapest, mostExpensive, ok = a, a, true
			continue
		}
		if a.TotalCost1KOutput.LessThan(cheapest.TotalCost1KOutput) {
			cheapest = a
		}
		if a.TotalCost1KOutput.GreaterThan(mostExpensive.TotalCost1KOutput) {
			mostExpensive = a
		}
	}
	return cheapest, mostExpensive, ok
}
