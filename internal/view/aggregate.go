package view

import (
	"campconnect/internal/models"
)

// InventorySummary holds the headline counts over an inventory collection
type InventorySummary struct {
	Total         int                        `json:"total"`
	StatusCounts  map[models.StockStatus]int `json:"statusCounts"`
	ShortageCount int                        `json:"shortageCount"`
}

// VendorSummary holds the headline figures over a vendor collection
type VendorSummary struct {
	Total         int                      `json:"total"`
	TierCounts    map[models.ScoreTier]int `json:"tierCounts"`
	AverageRating float64                  `json:"averageRating"`
	AveragePrice  float64                  `json:"averagePrice"`
	VendorPrices  map[string]float64       `json:"vendorPrices"`
}

// SummarizeInventory counts items per status (every status present, zero
// filled) and items with a forecast shortage.
func SummarizeInventory(items []models.InventoryItem) InventorySummary {
	summary := InventorySummary{
		Total:        len(items),
		StatusCounts: make(map[models.StockStatus]int, len(models.Statuses())),
	}
	for _, s := range models.Statuses() {
		summary.StatusCounts[s] = 0
	}
	for _, item := range items {
		if item.Status.Valid() {
			summary.StatusCounts[item.Status]++
		}
		if item.HasShortage() {
			summary.ShortageCount++
		}
	}
	return summary
}

// SummarizeVendors tiers vendors by composite score and averages their
// ratings and prices. Averages over nothing are 0.
func SummarizeVendors(vendors []models.Vendor) VendorSummary {
	summary := VendorSummary{
		Total:         len(vendors),
		TierCounts:    make(map[models.ScoreTier]int, len(models.Tiers())),
		AverageRating: AverageRating(vendors),
		VendorPrices:  make(map[string]float64, len(vendors)),
	}
	for _, tier := range models.Tiers() {
		summary.TierCounts[tier] = 0
	}

	var priced []float64
	for _, v := range vendors {
		summary.TierCounts[v.Tier()]++
		summary.VendorPrices[v.ID] = AveragePrice(v)
		if avg, ok := v.AveragePrice(); ok {
			priced = append(priced, avg)
		}
	}
	summary.AveragePrice = mean(priced)
	return summary
}

// AverageRating is the mean vendor rating, 0 for no vendors
func AverageRating(vendors []models.Vendor) float64 {
	ratings := make([]float64, 0, len(vendors))
	for _, v := range vendors {
		ratings = append(ratings, v.Rating)
	}
	return mean(ratings)
}

// AveragePrice is the vendor's mean price per unit, 0 when it lists no products
func AveragePrice(v models.Vendor) float64 {
	avg, _ := v.AveragePrice()
	return avg
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
