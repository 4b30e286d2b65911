package view

import (
	"campconnect/internal/models"
)

// InventoryFilter is the inventory page filter selection.
// Empty fields are read as their sentinel.
type InventoryFilter struct {
	Search   string `json:"search" form:"search" binding:"max=200"`
	Category string `json:"category" form:"category"`
	Status   string `json:"status" form:"status"`
}

// VendorFilter is the suppliers page filter selection.
// Empty fields are read as their sentinel.
type VendorFilter struct {
	Search      string `json:"search" form:"search" binding:"max=200"`
	Product     string `json:"product" form:"product"`
	Dietary     string `json:"dietary" form:"dietary"`
	MaxDistance string `json:"maxDistance" form:"distance"`
}

// Normalize fills empty fields with their sentinel
func (f InventoryFilter) Normalize() InventoryFilter {
	if f.Category == "" {
		f.Category = AllCategories
	}
	if f.Status == "" {
		f.Status = AllStatuses
	}
	return f
}

// IsIdentity reports whether the filter lets every item through
func (f InventoryFilter) IsIdentity() bool {
	n := f.Normalize()
	return n.Search == "" && n.Category == AllCategories && n.Status == AllStatuses
}

// Matches reports whether item passes every predicate of the filter
func (f InventoryFilter) Matches(item models.InventoryItem) bool {
	f = f.Normalize()
	return TextMatches([]string{item.Name, string(item.Category)}, f.Search) &&
		CategoryMatches(string(item.Category), f.Category) &&
		StatusMatches(item.Status, f.Status)
}

// Normalize fills empty fields with their sentinel
func (f VendorFilter) Normalize() VendorFilter {
	if f.Product == "" {
		f.Product = AllProducts
	}
	if f.Dietary == "" {
		f.Dietary = AllTags
	}
	if f.MaxDistance == "" {
		f.MaxDistance = AnyDistance
	}
	return f
}

// IsIdentity reports whether the filter lets every vendor through
func (f VendorFilter) IsIdentity() bool {
	n := f.Normalize()
	return n.Search == "" && n.Product == AllProducts && n.Dietary == AllTags && n.MaxDistance == AnyDistance
}

// Matches reports whether vendor passes every predicate of the filter
func (f VendorFilter) Matches(vendor models.Vendor) bool {
	f = f.Normalize()
	products := vendor.ProductNames()
	return TextMatches(append([]string{vendor.Name}, products...), f.Search) &&
		CertificationIncludes(vendor.Certifications, f.Dietary) &&
		NumericAtMost(vendor.DistanceKm, f.MaxDistance) &&
		productMatches(products, f.Product)
}

// productMatches is the product-type predicate: some product name contains
// the selected type.
func productMatches(products []string, selected string) bool {
	if selected == AllProducts || selected == AllCategories {
		return true
	}
	return TextMatches(products, selected)
}

// FilterInventory returns the items passing f, in their original order
func FilterInventory(items []models.InventoryItem, f InventoryFilter) []models.InventoryItem {
	return filter(items, f.Matches)
}

// FilterVendors returns the vendors passing f, in their original order
func FilterVendors(vendors []models.Vendor, f VendorFilter) []models.Vendor {
	return filter(vendors, f.Matches)
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
