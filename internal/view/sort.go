package view

import (
	"cmp"
	"slices"
	"strings"

	"campconnect/internal/models"
)

// Sort keys offered by the inventory and suppliers pages
const (
	SortName       = "Name"
	SortStockAsc   = "Stock (Low to High)"
	SortStockDesc  = "Stock (High to Low)"
	SortStatus     = "Status"
	SortAgentScore = "Agent Score"
	SortDistance   = "Distance"
	SortRating     = "Rating"
	SortPrice      = "Price"
)

// Comparator orders two records: negative when a sorts first
type Comparator[T any] func(a, b T) int

// InventorySortKeys lists the sort keys understood for inventory
func InventorySortKeys() []string {
	return []string{SortName, SortStockAsc, SortStockDesc, SortStatus}
}

// VendorSortKeys lists the sort keys understood for vendors
func VendorSortKeys() []string {
	return []string{SortAgentScore, SortDistance, SortRating, SortPrice, SortName}
}

// ByName orders by display name, case-insensitively ascending
func ByName[T any](name func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(name(a)), strings.ToLower(name(b)))
	}
}

// Ascending orders by a numeric key, smallest first
func Ascending[T any](key func(T) float64) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Descending orders by a numeric key, largest first
func Descending[T any](key func(T) float64) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}

// ByStatusRank orders inventory most severe first
func ByStatusRank(a, b models.InventoryItem) int {
	return cmp.Compare(a.Status.Rank(), b.Status.Rank())
}

// ByAveragePrice orders vendors by mean product price, cheapest first.
// Vendors without products have no price and sort after all others.
func ByAveragePrice(a, b models.Vendor) int {
	pa, okA := a.AveragePrice()
	pb, okB := b.AveragePrice()
	switch {
	case okA && okB:
		return cmp.Compare(pa, pb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

// InventoryComparator resolves a sort key to its comparator. Unknown keys
// resolve to name ordering; the returned key is the one actually applied.
func InventoryComparator(key string) (Comparator[models.InventoryItem], string) {
	switch key {
	case SortStockAsc:
		return Ascending(func(i models.InventoryItem) float64 { return i.StockLevel }), key
	case SortStockDesc:
		return Descending(func(i models.InventoryItem) float64 { return i.StockLevel }), key
	case SortStatus:
		return ByStatusRank, key
	default:
		return ByName(func(i models.InventoryItem) string { return i.Name }), SortName
	}
}

// VendorComparator resolves a sort key to its comparator. Unknown keys
// resolve to name ordering; the returned key is the one actually applied.
func VendorComparator(key string) (Comparator[models.Vendor], string) {
	switch key {
	case SortAgentScore:
		return Descending(models.Vendor.CompositeScore), key
	case SortDistance:
		return Ascending(func(v models.Vendor) float64 { return v.DistanceKm }), key
	case SortRating:
		return Descending(func(v models.Vendor) float64 { return v.Rating }), key
	case SortPrice:
		return ByAveragePrice, key
	default:
		return ByName(func(v models.Vendor) string { return v.Name }), SortName
	}
}

// SortInventory returns a stably sorted copy of items
func SortInventory(items []models.InventoryItem, key string) []models.InventoryItem {
	compare, _ := InventoryComparator(key)
	return sortStable(items, compare)
}

// SortVendors returns a stably sorted copy of vendors
func SortVendors(vendors []models.Vendor, key string) []models.Vendor {
	compare, _ := VendorComparator(key)
	return sortStable(vendors, compare)
}

func sortStable[T any](in []T, compare Comparator[T]) []T {
	out := make([]T, len(in))
	copy(out, in)
	slices.SortStableFunc(out, compare)
	return out
}
