package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"campconnect/internal/models"
	"campconnect/internal/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0078D4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)

	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)

	statusColors = map[models.StockStatus]lipgloss.Color{
		models.StatusCritical: "#ff453a",
		models.StatusLow:      "#ff9f0a",
		models.StatusAdequate: "#0a84ff",
		models.StatusGood:     "#30d158",
	}
	tierColors = map[models.ScoreTier]lipgloss.Color{
		models.TierHigh:   "#30d158",
		models.TierMedium: "#ff9f0a",
		models.TierLower:  "#8e8e93",
	}
)

var (
	inventoryFilter view.InventoryFilter
	inventorySort   string

	vendorFilter view.VendorFilter
	vendorSort   string
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Print the inventory view",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		v := view.AssembleInventory(a.catalog.Inventory(), inventoryFilter, inventorySort)
		renderInventory(cmd.OutOrStdout(), v)
		return nil
	},
}

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Print the suppliers view",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		v := view.AssembleVendors(a.catalog.Vendors(), vendorFilter, vendorSort)
		renderVendors(cmd.OutOrStdout(), v)
		return nil
	},
}

func init() {
	f := inventoryCmd.Flags()
	f.StringVar(&inventoryFilter.Search, "search", "", "Match item name or category")
	f.StringVar(&inventoryFilter.Category, "category", view.AllCategories, "Category to show")
	f.StringVar(&inventoryFilter.Status, "status", view.AllStatuses, "Stock status to show")
	f.StringVar(&inventorySort, "sort", view.SortName, "Sort key: "+strings.Join(view.InventorySortKeys(), ", "))

	f = vendorsCmd.Flags()
	f.StringVar(&vendorFilter.Search, "search", "", "Match vendor or product name")
	f.StringVar(&vendorFilter.Product, "product", view.AllProducts, "Product type")
	f.StringVar(&vendorFilter.Dietary, "dietary", view.AllTags, "Certification tag")
	f.StringVar(&vendorFilter.MaxDistance, "distance", view.AnyDistance, `Distance threshold, e.g. "Within 25km"`)
	f.StringVar(&vendorSort, "sort", view.SortAgentScore, "Sort key: "+strings.Join(view.VendorSortKeys(), ", "))
}

func renderInventory(w io.Writer, v view.InventoryView) {
	fmt.Fprintln(w, titleStyle.Render("Inventory"))

	var badges []string
	for _, s := range models.Statuses() {
		if n := v.Summary.StatusCounts[s]; n > 0 {
			badges = append(badges, badgeStyle.Background(statusColors[s]).Render(fmt.Sprintf("%d %s", n, s)))
		}
	}
	if v.Summary.ShortageCount > 0 {
		badges = append(badges, badgeStyle.Background(statusColors[models.StatusCritical]).Render(fmt.Sprintf("%d shortages forecast", v.Summary.ShortageCount)))
	}
	fmt.Fprintln(w, strings.Join(badges, " "))

	rows := make([][]string, 0, len(v.Items))
	for _, item := range v.Items {
		shortage := "-"
		if item.HasShortage() {
			shortage = fmt.Sprintf("%s (%.0f%%)", *item.PredictedShortage, *item.PredictionConfidence)
		}
		rows = append(rows, []string{
			item.Name,
			string(item.Category),
			formatAmount(item.StockLevel, item.Unit),
			formatAmount(item.DailyUsageRate, item.Unit) + "/day",
			string(item.Status),
			shortage,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Item", "Category", "Stock", "Daily Usage", "Status", "Shortage").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 && row >= 0 && row < len(v.Items) {
				return cellStyle.Foreground(statusColors[v.Items[row].Status])
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, footerStyle.Render(fmt.Sprintf("Showing %d of %d items", v.Showing, v.Total)))
}

func renderVendors(w io.Writer, v view.VendorView) {
	fmt.Fprintln(w, titleStyle.Render("Local Suppliers"))

	var badges []string
	for _, tier := range models.Tiers() {
		if n := v.Summary.TierCounts[tier]; n > 0 {
			badges = append(badges, badgeStyle.Background(tierColors[tier]).Render(fmt.Sprintf("%d %s score", n, tier)))
		}
	}
	badges = append(badges, fmt.Sprintf("avg rating %.1f", v.Summary.AverageRating))
	fmt.Fprintln(w, strings.Join(badges, " "))

	rows := make([][]string, 0, len(v.Vendors))
	for _, vendor := range v.Vendors {
		price := "-"
		if avg, ok := vendor.AveragePrice(); ok {
			price = strconv.FormatFloat(avg, 'f', 0, 64)
			if len(vendor.Products) > 0 && vendor.Products[0].Currency != "" {
				price = vendor.Products[0].Currency + " " + price
			}
		}
		rows = append(rows, []string{
			vendor.Name,
			fmt.Sprintf("%.1f", vendor.Rating),
			fmt.Sprintf("%gkm", vendor.DistanceKm),
			fmt.Sprintf("%.0f", vendor.CompositeScore()),
			price,
			strings.Join(vendor.Certifications, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Vendor", "Rating", "Distance", "Score", "Avg Price", "Certifications").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(v.Vendors) {
				return cellStyle.Foreground(tierColors[v.Vendors[row].Tier()])
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, footerStyle.Render(fmt.Sprintf("Showing %d of %d vendors", v.Showing, v.Total)))
}

func formatAmount(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}
