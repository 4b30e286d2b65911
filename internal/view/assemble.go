package view

import (
	"campconnect/internal/models"
)

// InventoryView is the display model of the inventory page.
//
// Summary covers the whole collection and drives the headline badges
// ("2 critical items") regardless of the active filter. Visible covers the
// filtered rows and drives the "Showing N of M" footer.
type InventoryView struct {
	Items   []models.InventoryItem `json:"items"`
	Filter  InventoryFilter        `json:"filter"`
	SortKey string                 `json:"sortKey"`
	Summary InventorySummary       `json:"summary"`
	Visible InventorySummary       `json:"visible"`
	Showing int                    `json:"showing"`
	Total   int                    `json:"total"`
}

// VendorView is the display model of the suppliers page, with the same
// whole-collection / visible split as InventoryView.
type VendorView struct {
	Vendors []models.Vendor `json:"vendors"`
	Filter  VendorFilter    `json:"filter"`
	SortKey string          `json:"sortKey"`
	Summary VendorSummary   `json:"summary"`
	Visible VendorSummary   `json:"visible"`
	Showing int             `json:"showing"`
	Total   int             `json:"total"`
}

// AssembleInventory filters items, sorts the survivors by sortKey and
// summarizes both the full and the filtered collection.
func AssembleInventory(items []models.InventoryItem, f InventoryFilter, sortKey string) InventoryView {
	f = f.Normalize()
	compare, applied := InventoryComparator(sortKey)
	visible := sortStable(FilterInventory(items, f), compare)

	return InventoryView{
		Items:   visible,
		Filter:  f,
		SortKey: applied,
		Summary: SummarizeInventory(items),
		Visible: SummarizeInventory(visible),
		Showing: len(visible),
		Total:   len(items),
	}
}

// AssembleVendors filters vendors, sorts the survivors by sortKey and
// summarizes both the full and the filtered collection.
func AssembleVendors(vendors []models.Vendor, f VendorFilter, sortKey string) VendorView {
	f = f.Normalize()
	compare, applied := VendorComparator(sortKey)
	visible := sortStable(FilterVendors(vendors, f), compare)

	return VendorView{
		Vendors: visible,
		Filter:  f,
		SortKey: applied,
		Summary: SummarizeVendors(vendors),
		Visible: SummarizeVendors(visible),
		Showing: len(visible),
		Total:   len(vendors),
	}
}
