// Package export writes assembled views as spreadsheets.
package export

import (
	"fmt"
	"io"

	"campconnect/internal/models"

	"github.com/xuri/excelize/v2"
)

// InventorySheet is the sheet name used by InventoryXLSX
const InventorySheet = "Inventory"

// ContentType is the MIME type of an XLSX workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var inventoryHeadings = []interface{}{
	"Item", "Category", "Stock", "Unit", "Daily Usage", "Status", "Predicted Shortage", "Confidence",
}

// InventoryXLSX writes items, in order, as a one-sheet workbook
func InventoryXLSX(items []models.InventoryItem, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", InventorySheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(InventorySheet, "A1", &inventoryHeadings); err != nil {
		return err
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			item.Name,
			string(item.Category),
			item.StockLevel,
			item.Unit,
			item.DailyUsageRate,
			string(item.Status),
			"",
			"",
		}
		if item.PredictedShortage != nil {
			row[6] = *item.PredictedShortage
		}
		if item.PredictionConfidence != nil {
			row[7] = *item.PredictionConfidence
		}
		if err := f.SetSheetRow(InventorySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", item.ID, err)
		}
	}

	if err := f.SetColWidth(InventorySheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(InventorySheet, "G", "G", 18); err != nil {
		return err
	}
	return f.Write(w)
}
