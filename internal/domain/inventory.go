package domain

import "time"

// Quality represents the quality tier of a crafted item. Items of the same
// recipe but different quality never share a stack.
type Quality string

const (
	QualityNormal      Quality = "NORMAL"
	QualityFine        Quality = "FINE"
	QualityExceptional Quality = "EXCEPTIONAL"
	QualityMasterwork  Quality = "MASTERWORK"
)

// KnownQualities lists every valid quality tier, lowest first
var KnownQualities = []Quality{
	QualityNormal,
	QualityFine,
	QualityExceptional,
	QualityMasterwork,
}

// Valid reports whether q is a known quality tier
func (q Quality) Valid() bool {
	for _, known := range KnownQualities {
		if q == known {
			return true
		}
	}
	return false
}

// Rank returns the sort rank of a quality tier; higher tiers rank higher.
// Unknown tiers rank below everything.
func (q Quality) Rank() int {
	for i, known := range KnownQualities {
		if q == known {
			return i + 1
		}
	}
	return 0
}

// InventoryStack groups identical (recipe, quality) items with a count.
// A stack never persists with Quantity <= 0; emptied stacks are removed
// from the bag entirely.
type InventoryStack struct {
	RecipeID  int       `json:"recipe_id"`
	Quantity  int       `json:"quantity"`
	Quality   Quality   `json:"quality"`
	DateAdded time.Time `json:"date_added"`
}

// SortMode selects the display ordering of the bag
type SortMode string

const (
	SortByName     SortMode = "name"
	SortByQuantity SortMode = "quantity"
	SortByDate     SortMode = "date"
	SortByQuality  SortMode = "quality"
	SortByValue    SortMode = "value"
)

// Valid reports whether m is a known sort mode
func (m SortMode) Valid() bool {
	switch m {
	case SortByName, SortByQuantity, SortByDate, SortByQuality, SortByValue:
		return true
	}
	return false
}

// BagStats aggregates bag contents for display
type BagStats struct {
	TotalItems int             `json:"total_items"`
	TotalValue int             `json:"total_value"`
	ByQuality  map[Quality]int `json:"by_quality"`
}
