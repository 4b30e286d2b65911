package view

import (
	"campconnect/internal/models"
)

func ptr[T any](v T) *T { return &v }

func item(id, name string, stock, usage float64, category models.Category, status models.StockStatus) models.InventoryItem {
	return models.InventoryItem{
		ID:             id,
		Name:           name,
		StockLevel:     stock,
		Unit:           "kg",
		DailyUsageRate: usage,
		Category:       category,
		Status:         status,
	}
}

func withShortage(i models.InventoryItem, when string, confidence float64) models.InventoryItem {
	i.PredictedShortage = ptr(when)
	i.PredictionConfidence = ptr(confidence)
	return i
}

// campInventory mirrors the dashboard's stock sheet
func campInventory() []models.InventoryItem {
	return []models.InventoryItem{
		item("1", "Rice", 850, 120, models.CategoryGrains, models.StatusAdequate),
		withShortage(item("2", "Meat (Beef)", 125, 125, models.CategoryProtein, models.StatusLow), "4 days", 87),
		item("3", "Vegetables (Mixed)", 320, 80, models.CategoryProduce, models.StatusGood),
		withShortage(item("4", "Milk", 45, 50, models.CategoryDairy, models.StatusCritical), "Tomorrow", 95),
		item("5", "Cooking Oil", 180, 15, models.CategoryCooking, models.StatusAdequate),
		item("6", "Beans", 420, 65, models.CategoryLegumes, models.StatusGood),
		withShortage(item("7", "Flour", 95, 45, models.CategoryGrains, models.StatusLow), "6 days", 78),
		item("8", "Sugar", 200, 25, models.CategoryStaples, models.StatusGood),
		item("9", "Salt", 50, 5, models.CategoryStaples, models.StatusAdequate),
		withShortage(item("10", "Chicken", 60, 75, models.CategoryProtein, models.StatusLow), "3 days", 91),
	}
}

func product(name string, price float64) models.VendorProduct {
	return models.VendorProduct{Name: name, AvailableQuantity: 100, Unit: "kg", PricePerUnit: price, Currency: "KES"}
}

func vendor(id, name string, rating, distance float64, certs []string, scores models.AgentScores, products ...models.VendorProduct) models.Vendor {
	return models.Vendor{
		ID:             id,
		Name:           name,
		Rating:         rating,
		DistanceKm:     distance,
		Certifications: certs,
		AgentScores:    scores,
		Products:       products,
	}
}

// campVendors mirrors the dashboard's supplier directory
func campVendors() []models.Vendor {
	return []models.Vendor{
		vendor("1", "Ahmed's Farm", 4.8, 12, []string{"Halal", "Organic"},
			models.AgentScores{Sustainability: 92, Cultural: 100, Economic: 85},
			product("Beef", 350), product("Chicken", 280)),
		vendor("2", "Mama Grace Dairy", 4.6, 8, []string{"Halal", "Local Women-Owned"},
			models.AgentScores{Sustainability: 88, Cultural: 95, Economic: 92},
			product("Fresh Milk", 50), product("Yogurt", 80)),
		vendor("3", "Turkana Grains Cooperative", 4.5, 25, []string{"Fair Trade", "Cooperative"},
			models.AgentScores{Sustainability: 85, Cultural: 88, Economic: 95},
			product("Rice", 120), product("Flour", 95), product("Beans", 150)),
		vendor("4", "Fresh Harvest Vegetables", 4.7, 15, []string{"Organic", "Local"},
			models.AgentScores{Sustainability: 95, Cultural: 82, Economic: 88},
			product("Tomatoes", 80), product("Onions", 60), product("Cabbage", 40), product("Kale", 50)),
		vendor("5", "Ali Cooking Supplies", 4.3, 20, []string{"Halal"},
			models.AgentScores{Sustainability: 78, Cultural: 100, Economic: 82},
			product("Cooking Oil", 250), product("Sugar", 140), product("Salt", 50)),
	}
}

func names[T any](records []T, name func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, name(r))
	}
	return out
}

func itemNames(items []models.InventoryItem) []string {
	return names(items, func(i models.InventoryItem) string { return i.Name })
}

func vendorNames(vendors []models.Vendor) []string {
	return names(vendors, func(v models.Vendor) string { return v.Name })
}

func itemIDs(items []models.InventoryItem) []string {
	return names(items, func(i models.InventoryItem) string { return i.ID })
}

func vendorIDs(vendors []models.Vendor) []string {
	return names(vendors, func(v models.Vendor) string { return v.ID })
}
