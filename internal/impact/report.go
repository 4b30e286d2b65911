package impact

import (
	"campconnect/internal/config"
	"campconnect/internal/models"

	"github.com/shopspring/decimal"
)

// Report is the payload of the impact dashboard
type Report struct {
	Carbon     CarbonMetrics     `json:"carbon"`
	Economic   EconomicMetrics   `json:"economic"`
	Efficiency EfficiencyMetrics `json:"efficiency"`
}

// CarbonMetrics is the environmental block
type CarbonMetrics struct {
	SupplyChainSavings float64     `json:"supplyChainSavings"`
	AIOperationsCost   float64     `json:"aiOperationsCost"`
	NetImpact          float64     `json:"netImpact"`
	Equivalents        Equivalents `json:"equivalents"`
}

// Equivalents expresses carbon savings in everyday units
type Equivalents struct {
	KmNotDriven   float64 `json:"kmNotDriven"`
	TreeSeedlings float64 `json:"treeSeedlings"`
	KWhSaved      float64 `json:"kWhSaved"`
}

// EconomicMetrics is the host community block
type EconomicMetrics struct {
	HostCommunityIncome float64        `json:"hostCommunityIncome"`
	ActiveVendors       int            `json:"activeVendors"`
	EquityScore         float64        `json:"equityScore"`
	MonthlyGrowth       float64        `json:"monthlyGrowth"`
	AverageRating       float64        `json:"averageRating"`
	VendorStockValue    float64        `json:"vendorStockValue"`
	VendorDistribution  []VendorIncome `json:"vendorDistribution"`
}

// VendorIncome is one bar of the income distribution chart
type VendorIncome struct {
	Name   string  `json:"name"`
	Income float64 `json:"income"`
}

// EfficiencyMetrics is the delivery performance block
type EfficiencyMetrics struct {
	AvgDeliveryTime         float64 `json:"avgDeliveryTime"`
	InternationalComparison float64 `json:"internationalComparison"`
	OrderFulfillment        float64 `json:"orderFulfillment"`
}

// Build assembles the report. Vendor-derived figures come from vendors;
// the rest comes from the configured baselines.
func Build(vendors []models.Vendor, baselines config.ImpactConfig) Report {
	savings := decimal.Zero
	ratings := make([]float64, 0, len(vendors))
	var stock []CostLine
	for _, v := range vendors {
		savings = savings.Add(decimal.NewFromFloat(v.CarbonSavingsKg))
		ratings = append(ratings, v.Rating)
		for _, p := range v.Products {
			stock = append(stock, CostLine{Quantity: p.AvailableQuantity, UnitCost: p.PricePerUnit})
		}
	}
	cost := decimal.NewFromFloat(baselines.AIOperationsCostKg)

	distribution := make([]VendorIncome, 0, len(baselines.VendorIncome))
	for _, line := range baselines.VendorIncome {
		distribution = append(distribution, VendorIncome{Name: line.Name, Income: line.Income})
	}

	return Report{
		Carbon: CarbonMetrics{
			SupplyChainSavings: savings.InexactFloat64(),
			AIOperationsCost:   cost.InexactFloat64(),
			NetImpact:          savings.Sub(cost).InexactFloat64(),
			Equivalents: Equivalents{
				KmNotDriven:   baselines.KmNotDriven,
				TreeSeedlings: baselines.TreeSeedlings,
				KWhSaved:      baselines.KWhSaved,
			},
		},
		Economic: EconomicMetrics{
			HostCommunityIncome: baselines.HostCommunityIncome,
			ActiveVendors:       len(vendors),
			EquityScore:         baselines.EquityScore,
			MonthlyGrowth:       baselines.MonthlyGrowth,
			AverageRating:       AverageRating(ratings),
			VendorStockValue:    InventoryValue(stock).InexactFloat64(),
			VendorDistribution:  distribution,
		},
		Efficiency: EfficiencyMetrics{
			AvgDeliveryTime:         baselines.AvgDeliveryDays,
			InternationalComparison: baselines.InternationalSpeed,
			OrderFulfillment:        OnTimeDeliveryRate(baselines.OnTimeDeliveries, baselines.TotalDeliveries),
		},
	}
}
