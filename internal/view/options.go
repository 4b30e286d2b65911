package view

import (
	"strings"

	"campconnect/internal/models"
)

// InventoryOptions are the selections offered by the inventory page
type InventoryOptions struct {
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
	SortKeys   []string `json:"sortKeys"`
}

// VendorOptions are the selections offered by the suppliers page
type VendorOptions struct {
	Products  []string `json:"products"`
	Dietary   []string `json:"dietary"`
	Distances []string `json:"distances"`
	SortKeys  []string `json:"sortKeys"`
}

// NewInventoryOptions lists every category and status, each led by its
// sentinel. Statuses are title-cased the way the page shows them.
func NewInventoryOptions() InventoryOptions {
	categories := []string{AllCategories}
	for _, c := range models.Categories() {
		categories = append(categories, string(c))
	}
	statuses := []string{AllStatuses}
	for _, s := range models.Statuses() {
		statuses = append(statuses, strings.ToUpper(string(s[:1]))+string(s[1:]))
	}
	return InventoryOptions{
		Categories: categories,
		Statuses:   statuses,
		SortKeys:   InventorySortKeys(),
	}
}

// NewVendorOptions lists the product types, dietary tags and distance
// thresholds of the suppliers page
func NewVendorOptions() VendorOptions {
	return VendorOptions{
		Products:  []string{AllProducts, "Meat", "Dairy", "Grains", "Vegetables", "Cooking Supplies"},
		Dietary:   []string{AllTags, "Halal", "Organic", "Fair Trade", "Local", "Women-Owned"},
		Distances: []string{AnyDistance, "Within 10km", "Within 25km", "Within 50km"},
		SortKeys:  VendorSortKeys(),
	}
}
