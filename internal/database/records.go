package database

import (
	"campconnect/internal/models"

	"github.com/jinzhu/gorm"
)

// InventoryRecord is the stored form of an inventory item
type InventoryRecord struct {
	gorm.Model
	ItemID               string `gorm:"unique_index;not null"`
	Name                 string
	StockLevel           float64
	Unit                 string
	DailyUsageRate       float64
	Category             string `gorm:"index"`
	Status               string `gorm:"index"`
	PredictedShortage    *string
	PredictionConfidence *float64
}

// VendorRecord is the stored form of a vendor
type VendorRecord struct {
	gorm.Model
	VendorID        string `gorm:"unique_index;not null"`
	Name            string
	Rating          float64
	DistanceKm      float64
	Location        string
	Certifications  models.StringSlice `gorm:"type:text"`
	Sustainability  float64
	Cultural        float64
	Economic        float64
	CarbonSavingsKg float64
	Phone           string
	ResponseTime    string
	TotalOrders     int
	Products        []VendorProductRecord `gorm:"foreignkey:VendorRecordID"`
}

// VendorProductRecord is a product line of a stored vendor
type VendorProductRecord struct {
	gorm.Model
	VendorRecordID    uint `gorm:"index"`
	Position          int
	Name              string
	AvailableQuantity float64
	Unit              string
	PricePerUnit      float64
	Currency          string
}

func inventoryRecordFrom(item models.InventoryItem) InventoryRecord {
	return InventoryRecord{
		ItemID:               item.ID,
		Name:                 item.Name,
		StockLevel:           item.StockLevel,
		Unit:                 item.Unit,
		DailyUsageRate:       item.DailyUsageRate,
		Category:             string(item.Category),
		Status:               string(item.Status),
		PredictedShortage:    item.PredictedShortage,
		PredictionConfidence: item.PredictionConfidence,
	}
}

func (r InventoryRecord) toModel() models.InventoryItem {
	return models.InventoryItem{
		ID:                   r.ItemID,
		Name:                 r.Name,
		StockLevel:           r.StockLevel,
		Unit:                 r.Unit,
		DailyUsageRate:       r.DailyUsageRate,
		Category:             models.Category(r.Category),
		Status:               models.StockStatus(r.Status),
		PredictedShortage:    r.PredictedShortage,
		PredictionConfidence: r.PredictionConfidence,
	}
}

func vendorRecordFrom(v models.Vendor) VendorRecord {
	return VendorRecord{
		VendorID:        v.ID,
		Name:            v.Name,
		Rating:          v.Rating,
		DistanceKm:      v.DistanceKm,
		Location:        v.Location,
		Certifications:  models.StringSlice(v.Certifications),
		Sustainability:  v.AgentScores.Sustainability,
		Cultural:        v.AgentScores.Cultural,
		Economic:        v.AgentScores.Economic,
		CarbonSavingsKg: v.CarbonSavingsKg,
		Phone:           v.Phone,
		ResponseTime:    v.ResponseTime,
		TotalOrders:     v.TotalOrders,
	}
}

func productRecordFrom(vendorID uint, position int, p models.VendorProduct) VendorProductRecord {
	return VendorProductRecord{
		VendorRecordID:    vendorID,
		Position:          position,
		Name:              p.Name,
		AvailableQuantity: p.AvailableQuantity,
		Unit:              p.Unit,
		PricePerUnit:      p.PricePerUnit,
		Currency:          p.Currency,
	}
}

func (r VendorRecord) toModel() models.Vendor {
	products := make([]models.VendorProduct, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, models.VendorProduct{
			Name:              p.Name,
			AvailableQuantity: p.AvailableQuantity,
			Unit:              p.Unit,
			PricePerUnit:      p.PricePerUnit,
			Currency:          p.Currency,
		})
	}
	return models.Vendor{
		ID:              r.VendorID,
		Name:            r.Name,
		Rating:          r.Rating,
		DistanceKm:      r.DistanceKm,
		Location:        r.Location,
		Certifications:  []string(r.Certifications),
		Products:        products,
		AgentScores:     models.AgentScores{Sustainability: r.Sustainability, Cultural: r.Cultural, Economic: r.Economic},
		CarbonSavingsKg: r.CarbonSavingsKg,
		Phone:           r.Phone,
		ResponseTime:    r.ResponseTime,
		TotalOrders:     r.TotalOrders,
	}
}
