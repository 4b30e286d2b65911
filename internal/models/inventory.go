package models

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is returned when a catalog record breaks a data invariant
var ErrInvalidRecord = errors.New("invalid record")

// InventoryItem represents a stocked item in the camp store.
// Records are built once at load time and replaced wholesale on reload,
// never mutated in place.
type InventoryItem struct {
	ID                   string      `json:"id" yaml:"id"`
	Name                 string      `json:"name" yaml:"name"`
	StockLevel           float64     `json:"stockLevel" yaml:"stockLevel"`
	Unit                 string      `json:"unit" yaml:"unit"`
	DailyUsageRate       float64     `json:"dailyUsageRate" yaml:"dailyUsageRate"`
	Category             Category    `json:"category" yaml:"category"`
	Status               StockStatus `json:"status" yaml:"status"`
	PredictedShortage    *string     `json:"predictedShortage,omitempty" yaml:"predictedShortage,omitempty"`
	PredictionConfidence *float64    `json:"predictionConfidence,omitempty" yaml:"predictionConfidence,omitempty"`
}

// Category represents the category of an inventory item
type Category string

const (
	// Inventory categories
	CategoryGrains  Category = "Grains"
	CategoryProtein Category = "Protein"
	CategoryProduce Category = "Produce"
	CategoryDairy   Category = "Dairy"
	CategoryCooking Category = "Cooking"
	CategoryLegumes Category = "Legumes"
	CategoryStaples Category = "Staples"
)

// Categories returns every known category in display order
func Categories() []Category {
	return []Category{
		CategoryGrains,
		CategoryProtein,
		CategoryProduce,
		CategoryDairy,
		CategoryCooking,
		CategoryLegumes,
		CategoryStaples,
	}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// StockStatus represents the authored stock status of an inventory item
type StockStatus string

const (
	StatusCritical StockStatus = "critical"
	StatusLow      StockStatus = "low"
	StatusAdequate StockStatus = "adequate"
	StatusGood     StockStatus = "good"
)

// Statuses returns the statuses ordered by severity, most severe first
func Statuses() []StockStatus {
	return []StockStatus{StatusCritical, StatusLow, StatusAdequate, StatusGood}
}

// Rank returns the severity rank of the status (critical=0 .. good=3).
// Unknown statuses rank after good.
func (s StockStatus) Rank() int {
	for i, known := range Statuses() {
		if s == known {
			return i
		}
	}
	return len(Statuses())
}

// Valid reports whether s is one of the known statuses
func (s StockStatus) Valid() bool {
	return s.Rank() < len(Statuses())
}

// HasShortage reports whether a shortage is forecast for the item
func (i InventoryItem) HasShortage() bool {
	return i.PredictedShortage != nil
}

// DaysRemaining estimates how long current stock lasts at the daily usage rate.
// It is informational only: Status is authored and never derived from it.
func (i InventoryItem) DaysRemaining() (float64, bool) {
	if i.DailyUsageRate <= 0 {
		return 0, false
	}
	return i.StockLevel / i.DailyUsageRate, true
}

// Validate checks the record invariants
func (i InventoryItem) Validate() error {
	switch {
	case i.ID == "":
		return fmt.Errorf("%w: inventory item %q has no id", ErrInvalidRecord, i.Name)
	case i.StockLevel < 0:
		return fmt.Errorf("%w: inventory item %s: negative stock level", ErrInvalidRecord, i.ID)
	case i.DailyUsageRate < 0:
		return fmt.Errorf("%w: inventory item %s: negative daily usage", ErrInvalidRecord, i.ID)
	case !i.Category.Valid():
		return fmt.Errorf("%w: inventory item %s: unknown category %q", ErrInvalidRecord, i.ID, i.Category)
	case !i.Status.Valid():
		return fmt.Errorf("%w: inventory item %s: unknown status %q", ErrInvalidRecord, i.ID, i.Status)
	case (i.PredictedShortage == nil) != (i.PredictionConfidence == nil):
		return fmt.Errorf("%w: inventory item %s: prediction confidence must accompany a predicted shortage", ErrInvalidRecord, i.ID)
	case i.PredictionConfidence != nil && (*i.PredictionConfidence < 0 || *i.PredictionConfidence > 100):
		return fmt.Errorf("%w: inventory item %s: prediction confidence out of range", ErrInvalidRecord, i.ID)
	}
	return nil
}
