package domain

import "time"

// Craft XP ratio values stored per item
const (
	// DefaultCraftXPRatio is the standard craft XP percentage
	DefaultCraftXPRatio = 100

	// CraftXPRatioUnset is the stored sentinel meaning "use DefaultCraftXPRatio"
	CraftXPRatioUnset = -1
)

// Item represents a market item. Name is unique; CatalogID is the optional
// identifier used by the external item catalog.
type Item struct {
	ID           int       `json:"item_id" db:"item_id"`
	Name         string    `json:"name" db:"name"`
	CatalogID    *int      `json:"catalog_id,omitempty" db:"catalog_id"`
	Category     *string   `json:"category,omitempty" db:"category"`
	CraftXPRatio int       `json:"craft_xp_ratio" db:"craft_xp_ratio"`
	CreatedAt    time.Time `json:"created_at,omitempty" db:"created_at"`
}

// EffectiveCraftXPRatio returns the ratio to apply to craft XP, falling back
// to DefaultCraftXPRatio when the stored value is unset or non-positive.
func (i Item) EffectiveCraftXPRatio() int {
	return EffectiveCraftXPRatio(i.CraftXPRatio)
}

// EffectiveCraftXPRatio normalizes a stored craft XP ratio
func EffectiveCraftXPRatio(ratio int) int {
	if ratio <= 0 {
		return DefaultCraftXPRatio
	}
	return ratio
}
