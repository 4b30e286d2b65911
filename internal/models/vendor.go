package models

import (
	"fmt"
	"math"
)

// Vendor represents a local supplier serving the camp
type Vendor struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Rating          float64         `json:"rating" yaml:"rating"`
	DistanceKm      float64         `json:"distanceKm" yaml:"distanceKm"`
	Location        string          `json:"location" yaml:"location"`
	Certifications  []string        `json:"certifications" yaml:"certifications"`
	Products        []VendorProduct `json:"products" yaml:"products"`
	AgentScores     AgentScores     `json:"agentScores" yaml:"agentScores"`
	CarbonSavingsKg float64         `json:"carbonSavingsKg" yaml:"carbonSavingsKg"`
	Phone           string          `json:"phone" yaml:"phone"`
	ResponseTime    string          `json:"responseTime" yaml:"responseTime"`
	TotalOrders     int             `json:"totalOrders" yaml:"totalOrders"`
}

// VendorProduct is a product line offered by a vendor
type VendorProduct struct {
	Name              string  `json:"name" yaml:"name"`
	AvailableQuantity float64 `json:"availableQuantity" yaml:"availableQuantity"`
	Unit              string  `json:"unit" yaml:"unit"`
	PricePerUnit      float64 `json:"pricePerUnit" yaml:"pricePerUnit"`
	Currency          string  `json:"currency" yaml:"currency"`
}

// AgentScores holds the per-agent assessment of a vendor, each on a 0-100 scale
type AgentScores struct {
	Sustainability float64 `json:"sustainability" yaml:"sustainability"`
	Cultural       float64 `json:"cultural" yaml:"cultural"`
	Economic       float64 `json:"economic" yaml:"economic"`
}

// Composite returns the arithmetic mean of the three agent scores
func (s AgentScores) Composite() float64 {
	return (s.Sustainability + s.Cultural + s.Economic) / 3
}

// ScoreTier is the badge tier of a composite agent score
type ScoreTier string

const (
	TierHigh   ScoreTier = "high"
	TierMedium ScoreTier = "medium"
	TierLower  ScoreTier = "lower"
)

// Tiers returns the tiers from best to worst
func Tiers() []ScoreTier {
	return []ScoreTier{TierHigh, TierMedium, TierLower}
}

// TierFor maps a composite score to its tier. The score is rounded first,
// so 84.6 displays as 85 and lands in the high tier.
func TierFor(score float64) ScoreTier {
	rounded := math.Round(score)
	switch {
	case rounded >= 85:
		return TierHigh
	case rounded >= 70:
		return TierMedium
	default:
		return TierLower
	}
}

// CompositeScore returns the vendor's composite agent score
func (v Vendor) CompositeScore() float64 {
	return v.AgentScores.Composite()
}

// Tier returns the vendor's composite score tier
func (v Vendor) Tier() ScoreTier {
	return TierFor(v.CompositeScore())
}

// AveragePrice returns the mean price per unit across the vendor's products.
// ok is false when the vendor lists no products.
func (v Vendor) AveragePrice() (avg float64, ok bool) {
	if len(v.Products) == 0 {
		return 0, false
	}
	var sum float64
	for _, p := range v.Products {
		sum += p.PricePerUnit
	}
	return sum / float64(len(v.Products)), true
}

// ProductNames returns the names of the vendor's products in listing order
func (v Vendor) ProductNames() []string {
	names := make([]string, 0, len(v.Products))
	for _, p := range v.Products {
		names = append(names, p.Name)
	}
	return names
}

// Validate checks the record invariants
func (v Vendor) Validate() error {
	switch {
	case v.ID == "":
		return fmt.Errorf("%w: vendor %q has no id", ErrInvalidRecord, v.Name)
	case v.Rating < 0 || v.Rating > 5:
		return fmt.Errorf("%w: vendor %s: rating %.1f outside 0-5", ErrInvalidRecord, v.ID, v.Rating)
	case v.DistanceKm < 0:
		return fmt.Errorf("%w: vendor %s: negative distance", ErrInvalidRecord, v.ID)
	}
	for name, score := range map[string]float64{
		"sustainability": v.AgentScores.Sustainability,
		"cultural":       v.AgentScores.Cultural,
		"economic":       v.AgentScores.Economic,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: vendor %s: %s score %.1f outside 0-100", ErrInvalidRecord, v.ID, name, score)
		}
	}
	for _, p := range v.Products {
		if p.PricePerUnit < 0 || p.AvailableQuantity < 0 {
			return fmt.Errorf("%w: vendor %s: product %q has negative price or quantity", ErrInvalidRecord, v.ID, p.Name)
		}
	}
	return nil
}
