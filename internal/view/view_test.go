package view

import (
	"testing"

	"campconnect/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterInventory(t *testing.T) {
	items := campInventory()

	t.Run("identity", func(t *testing.T) {
		got := FilterInventory(items, InventoryFilter{})
		assert.Equal(t, items, got)
		assert.True(t, InventoryFilter{}.IsIdentity())
		assert.True(t, InventoryFilter{Category: AllCategories, Status: AllStatuses}.IsIdentity())
	})

	t.Run("status", func(t *testing.T) {
		got := FilterInventory(items, InventoryFilter{Status: "Low"})
		assert.Equal(t, []string{"Meat (Beef)", "Flour", "Chicken"}, itemNames(got))
	})

	t.Run("search matches category", func(t *testing.T) {
		got := FilterInventory(items, InventoryFilter{Search: "prot"})
		assert.Equal(t, []string{"Meat (Beef)", "Chicken"}, itemNames(got))
	})

	t.Run("combined", func(t *testing.T) {
		got := FilterInventory(items, InventoryFilter{Category: "Grains", Status: "Adequate"})
		assert.Equal(t, []string{"Rice"}, itemNames(got))
	})

	t.Run("no match", func(t *testing.T) {
		got := FilterInventory(items, InventoryFilter{Search: "caviar"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterVendors(t *testing.T) {
	vendors := campVendors()

	tests := []struct {
		name   string
		filter VendorFilter
		want   []string
	}{
		{"identity", VendorFilter{}, []string{"1", "2", "3", "4", "5"}},
		{"search by product", VendorFilter{Search: "milk"}, []string{"2"}},
		{"search by name", VendorFilter{Search: "turkana"}, []string{"3"}},
		{"halal", VendorFilter{Dietary: "Halal"}, []string{"1", "2", "5"}},
		{"local includes women-owned", VendorFilter{Dietary: "Local"}, []string{"2", "4"}},
		{"within 10km", VendorFilter{MaxDistance: "Within 10km"}, []string{"2"}},
		{"within 25km", VendorFilter{MaxDistance: "Within 25km"}, []string{"1", "2", "3", "4", "5"}},
		{"product type", VendorFilter{Product: "Dairy"}, []string{}},
		{"product substring", VendorFilter{Product: "Oil"}, []string{"5"}},
		{"malformed distance", VendorFilter{MaxDistance: "close by"}, []string{}},
		{"halal and near", VendorFilter{Dietary: "Halal", MaxDistance: "Within 15km"}, []string{"1", "2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, vendorIDs(FilterVendors(vendors, tc.filter)))
		})
	}
}

func TestFilterMonotonicity(t *testing.T) {
	items := campInventory()
	base := InventoryFilter{Search: "r"}
	narrowed := base
	narrowed.Status = "Low"

	assertSubsequence(t, itemIDs(FilterInventory(items, base)), itemIDs(FilterInventory(items, narrowed)))

	vendors := campVendors()
	vbase := VendorFilter{Dietary: "Halal"}
	vnarrowed := vbase
	vnarrowed.MaxDistance = "Within 12km"

	assertSubsequence(t, vendorIDs(FilterVendors(vendors, vbase)), vendorIDs(FilterVendors(vendors, vnarrowed)))
}

func assertSubsequence(t *testing.T, seq, sub []string) {
	t.Helper()
	i := 0
	for _, s := range seq {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	assert.Equal(t, len(sub), i, "%v is not a subsequence of %v", sub, seq)
}

func TestSortInventory(t *testing.T) {
	items := campInventory()

	tests := []struct {
		key  string
		want []string
	}{
		{SortName, []string{"Beans", "Chicken", "Cooking Oil", "Flour", "Meat (Beef)", "Milk", "Rice", "Salt", "Sugar", "Vegetables (Mixed)"}},
		{SortStockAsc, []string{"Milk", "Salt", "Chicken", "Flour", "Meat (Beef)", "Cooking Oil", "Sugar", "Vegetables (Mixed)", "Beans", "Rice"}},
		{SortStockDesc, []string{"Rice", "Beans", "Vegetables (Mixed)", "Sugar", "Cooking Oil", "Meat (Beef)", "Flour", "Chicken", "Salt", "Milk"}},
		{SortStatus, []string{"Milk", "Meat (Beef)", "Flour", "Chicken", "Rice", "Cooking Oil", "Salt", "Vegetables (Mixed)", "Beans", "Sugar"}},
		{"Expiry", []string{"Beans", "Chicken", "Cooking Oil", "Flour", "Meat (Beef)", "Milk", "Rice", "Salt", "Sugar", "Vegetables (Mixed)"}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, itemNames(SortInventory(items, tc.key)))
		})
	}

	// input untouched
	assert.Equal(t, campInventory(), items)
}

func TestSortNameIsCaseInsensitive(t *testing.T) {
	items := []models.InventoryItem{
		item("1", "beans", 1, 1, models.CategoryLegumes, models.StatusGood),
		item("2", "Apples", 1, 1, models.CategoryProduce, models.StatusGood),
		item("3", "Corn", 1, 1, models.CategoryGrains, models.StatusGood),
	}
	assert.Equal(t, []string{"Apples", "beans", "Corn"}, itemNames(SortInventory(items, SortName)))
}

func TestSortVendors(t *testing.T) {
	vendors := campVendors()

	tests := []struct {
		key  string
		want []string
	}{
		// composites: 92.33, 91.67, 89.33, 88.33, 86.67
		{SortAgentScore, []string{"1", "2", "3", "4", "5"}},
		{SortDistance, []string{"2", "1", "4", "5", "3"}},
		{SortRating, []string{"1", "4", "2", "3", "5"}},
		// average prices: 315, 65, 121.67, 57.5, 146.67
		{SortPrice, []string{"4", "2", "3", "5", "1"}},
		{SortName, []string{"1", "5", "4", "2", "3"}},
		{"Popularity", []string{"1", "5", "4", "2", "3"}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, vendorIDs(SortVendors(vendors, tc.key)))
		})
	}
}

func TestSortStability(t *testing.T) {
	items := []models.InventoryItem{
		item("a", "Maize", 100, 10, models.CategoryGrains, models.StatusLow),
		item("b", "maize", 100, 10, models.CategoryGrains, models.StatusLow),
		item("c", "Sorghum", 50, 10, models.CategoryGrains, models.StatusCritical),
		item("d", "MAIZE", 100, 10, models.CategoryGrains, models.StatusLow),
	}
	for _, key := range InventorySortKeys() {
		got := itemIDs(SortInventory(items, key))
		var equal []string
		for _, id := range got {
			if id != "c" {
				equal = append(equal, id)
			}
		}
		assert.Equal(t, []string{"a", "b", "d"}, equal, "sort key %q", key)
	}

	scores := models.AgentScores{Sustainability: 80, Cultural: 80, Economic: 80}
	vendors := []models.Vendor{
		vendor("x", "Depot", 4, 10, nil, scores, product("Rice", 100)),
		vendor("y", "depot", 4, 10, nil, scores, product("Rice", 100)),
		vendor("z", "DEPOT", 4, 10, nil, scores, product("Rice", 100)),
	}
	for _, key := range VendorSortKeys() {
		assert.Equal(t, []string{"x", "y", "z"}, vendorIDs(SortVendors(vendors, key)), "sort key %q", key)
	}
}

func TestSortByPriceEmptyProductsLast(t *testing.T) {
	vendors := campVendors()
	empty := vendor("0", "AAA Wholesale", 5, 1, []string{"Halal"},
		models.AgentScores{Sustainability: 100, Cultural: 100, Economic: 100})
	bare := vendor("9", "Bare Shelf", 1, 90, nil, models.AgentScores{})
	vendors = append([]models.Vendor{empty}, vendors...)
	vendors = append(vendors, bare)

	got := vendorIDs(SortVendors(vendors, SortPrice))
	assert.Equal(t, []string{"4", "2", "3", "5", "1", "0", "9"}, got)
}

func TestSummarizeInventory(t *testing.T) {
	summary := SummarizeInventory(campInventory())
	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, 4, summary.ShortageCount)
	assert.Equal(t, map[models.StockStatus]int{
		models.StatusCritical: 1,
		models.StatusLow:      3,
		models.StatusAdequate: 3,
		models.StatusGood:     3,
	}, summary.StatusCounts)
}

func TestSummarizeVendors(t *testing.T) {
	summary := SummarizeVendors(campVendors())
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, map[models.ScoreTier]int{
		models.TierHigh:   5,
		models.TierMedium: 0,
		models.TierLower:  0,
	}, summary.TierCounts)
	assert.InDelta(t, 4.58, summary.AverageRating, 1e-9)
	assert.InDelta(t, 315.0, summary.VendorPrices["1"], 1e-9)
	assert.InDelta(t, (315+65+365.0/3+57.5+440.0/3)/5, summary.AveragePrice, 1e-9)
}

func TestSummarizeVendorTiers(t *testing.T) {
	vendors := []models.Vendor{
		vendor("1", "A", 4, 1, nil, models.AgentScores{Sustainability: 92, Cultural: 92, Economic: 92}),
		vendor("2", "B", 4, 1, nil, models.AgentScores{Sustainability: 70, Cultural: 75, Economic: 80}),
		vendor("3", "C", 4, 1, nil, models.AgentScores{Sustainability: 60, Cultural: 60, Economic: 60}),
	}
	summary := SummarizeVendors(vendors)
	assert.Equal(t, 1, summary.TierCounts[models.TierHigh])
	assert.Equal(t, 1, summary.TierCounts[models.TierMedium])
	assert.Equal(t, 1, summary.TierCounts[models.TierLower])
	assert.Zero(t, summary.AveragePrice)
	assert.Zero(t, summary.VendorPrices["1"])
}

func TestAggregatesEmpty(t *testing.T) {
	inv := SummarizeInventory(nil)
	assert.Zero(t, inv.Total)
	assert.Zero(t, inv.ShortageCount)
	for _, s := range models.Statuses() {
		count, ok := inv.StatusCounts[s]
		assert.True(t, ok, "status %s missing", s)
		assert.Zero(t, count)
	}

	vs := SummarizeVendors(nil)
	assert.Zero(t, vs.AverageRating)
	assert.Zero(t, vs.AveragePrice)
	assert.Zero(t, AverageRating(nil))
	assert.Zero(t, AveragePrice(models.Vendor{}))
}

func TestAssembleInventory(t *testing.T) {
	items := []models.InventoryItem{
		withShortage(item("4", "Milk", 45, 50, models.CategoryDairy, models.StatusCritical), "Tomorrow", 95),
		item("1", "Rice", 850, 120, models.CategoryGrains, models.StatusAdequate),
		withShortage(item("7", "Flour", 95, 45, models.CategoryGrains, models.StatusLow), "6 days", 78),
	}

	critical := AssembleInventory(items, InventoryFilter{Status: "Critical"}, SortName)
	assert.Equal(t, []string{"Milk"}, itemNames(critical.Items))
	assert.Equal(t, 1, critical.Showing)
	assert.Equal(t, 3, critical.Total)
	// headline counts cover the whole inventory
	assert.Equal(t, 1, critical.Summary.StatusCounts[models.StatusLow])
	assert.Equal(t, 2, critical.Summary.ShortageCount)
	// footer counts cover the visible rows
	assert.Equal(t, 0, critical.Visible.StatusCounts[models.StatusLow])
	assert.Equal(t, 1, critical.Visible.Total)

	byStatus := AssembleInventory(items, InventoryFilter{}, SortStatus)
	assert.Equal(t, []string{"Milk", "Flour", "Rice"}, itemNames(byStatus.Items))
	assert.Equal(t, SortStatus, byStatus.SortKey)
	assert.Equal(t, AllCategories, byStatus.Filter.Category)
}

func TestAssembleVendorsHalalByScore(t *testing.T) {
	vendors := []models.Vendor{
		vendor("c", "Gamma Traders", 4.1, 30, []string{"Halal"},
			models.AgentScores{Sustainability: 80, Cultural: 85, Economic: 80}, product("Goat", 400)),
		vendor("b", "Beta Foods", 4.4, 10, []string{"Organic"},
			models.AgentScores{Sustainability: 85, Cultural: 90, Economic: 90}, product("Kale", 50)),
		vendor("a", "Alpha Meats", 4.9, 5, []string{"Halal", "Local"},
			models.AgentScores{Sustainability: 92, Cultural: 92, Economic: 92}, product("Beef", 350)),
	}

	got := AssembleVendors(vendors, VendorFilter{Dietary: "Halal"}, SortAgentScore)
	assert.Equal(t, []string{"a", "c"}, vendorIDs(got.Vendors))
	assert.Equal(t, 2, got.Showing)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Summary.TierCounts[models.TierHigh])
	assert.Equal(t, 1, got.Summary.TierCounts[models.TierMedium])
	assert.Equal(t, 1, got.Visible.TierCounts[models.TierMedium])
}

func TestAssemblePriceGuard(t *testing.T) {
	vendors := append([]models.Vendor{
		vendor("0", "Aardvark Supplies", 5, 0, []string{"Halal"},
			models.AgentScores{Sustainability: 100, Cultural: 100, Economic: 100}),
	}, campVendors()...)

	got := AssembleVendors(vendors, VendorFilter{}, SortPrice)
	require.Len(t, got.Vendors, 6)
	assert.Equal(t, "0", got.Vendors[5].ID)
	assert.Zero(t, got.Summary.VendorPrices["0"])
}

func TestAssembleIdentity(t *testing.T) {
	items := campInventory()
	for _, key := range InventorySortKeys() {
		got := AssembleInventory(items, InventoryFilter{}, key)
		assert.ElementsMatch(t, items, got.Items, "sort key %q", key)
		assert.Equal(t, got.Total, got.Showing)
	}

	vendors := campVendors()
	for _, key := range VendorSortKeys() {
		got := AssembleVendors(vendors, VendorFilter{}, key)
		assert.ElementsMatch(t, vendors, got.Vendors, "sort key %q", key)
	}
}

func TestAssembleEmpty(t *testing.T) {
	inv := AssembleInventory(nil, InventoryFilter{Search: "milk"}, "nonsense")
	assert.NotNil(t, inv.Items)
	assert.Empty(t, inv.Items)
	assert.Zero(t, inv.Showing)
	assert.Equal(t, SortName, inv.SortKey)

	vs := AssembleVendors([]models.Vendor{}, VendorFilter{}, SortPrice)
	assert.Empty(t, vs.Vendors)
	assert.Zero(t, vs.Summary.AverageRating)
	assert.Zero(t, vs.Summary.AveragePrice)
}

func TestAssembleIdempotent(t *testing.T) {
	items := campInventory()
	f := InventoryFilter{Search: "i", Status: "Low"}
	first := AssembleInventory(items, f, SortStockDesc)
	second := AssembleInventory(items, f, SortStockDesc)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("AssembleInventory not idempotent (-first +second):\n%s", diff)
	}

	vendors := campVendors()
	vf := VendorFilter{Dietary: "Organic"}
	vfirst := AssembleVendors(vendors, vf, SortPrice)
	vsecond := AssembleVendors(vendors, vf, SortPrice)
	if diff := cmp.Diff(vfirst, vsecond); diff != "" {
		t.Errorf("AssembleVendors not idempotent (-first +second):\n%s", diff)
	}

	if diff := cmp.Diff(campVendors(), vendors); diff != "" {
		t.Errorf("AssembleVendors mutated its input:\n%s", diff)
	}
}
