// Package impact computes the carbon, economic and efficiency figures of
// the impact dashboard. Every ratio returns 0 when its denominator is 0.
package impact

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CostLine is a quantity priced at a unit cost
type CostLine struct {
	Quantity float64
	UnitCost float64
}

// InventoryValue sums quantity times unit cost over lines
func InventoryValue(lines []CostLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.Quantity).Mul(decimal.NewFromFloat(l.UnitCost)))
	}
	return total
}

// TurnoverRate is cost of goods sold over average inventory value
func TurnoverRate(costOfGoodsSold, averageInventoryValue float64) float64 {
	return ratio(decimal.NewFromFloat(costOfGoodsSold), decimal.NewFromFloat(averageInventoryValue))
}

// ROI is the return on cost in percent
func ROI(gain, cost float64) float64 {
	c := decimal.NewFromFloat(cost)
	return percent(decimal.NewFromFloat(gain).Sub(c), c)
}

// CarbonReduction is the emissions avoided against the baseline
func CarbonReduction(current, baseline float64) float64 {
	return decimal.NewFromFloat(baseline).Sub(decimal.NewFromFloat(current)).InexactFloat64()
}

// CarbonReductionPercentage is the reduction as a percent of the baseline
func CarbonReductionPercentage(current, baseline float64) float64 {
	b := decimal.NewFromFloat(baseline)
	return percent(b.Sub(decimal.NewFromFloat(current)), b)
}

// AverageRating is the mean of ratings
func AverageRating(ratings []float64) float64 {
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromFloat(r))
	}
	return ratio(sum, decimal.NewFromInt(int64(len(ratings))))
}

// OnTimeDeliveryRate is the share of on-time deliveries in percent
func OnTimeDeliveryRate(onTime, total int) float64 {
	return percent(decimal.NewFromInt(int64(onTime)), decimal.NewFromInt(int64(total)))
}

func ratio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.DivRound(den, 8).InexactFloat64()
}

func percent(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Mul(hundred).DivRound(den, 8).InexactFloat64()
}
