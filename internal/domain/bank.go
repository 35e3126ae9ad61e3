package domain

import "time"

// BankScope selects bank rows. An empty ProfileID denotes the anonymous
// server-wide scope: when reading, it aggregates every profile on the server;
// when syncing, it addresses the anonymous rows only.
type BankScope struct {
	Server    string `json:"server"`
	ProfileID string `json:"profile_id,omitempty"`
}

// BankEntry is one stack of an item held in a bank
type BankEntry struct {
	Server     string    `json:"server"`
	ProfileID  string    `json:"profile_id,omitempty"`
	ItemID     int       `json:"item_id"`
	Quantity   int64     `json:"quantity"`
	CapturedAt time.Time `json:"captured_at"`
}

// BankSyncItem is one line of a bank sync payload
type BankSyncItem struct {
	ItemID   int   `json:"item_id" validate:"required,min=1"`
	Quantity int64 `json:"quantity"`
}

// BankDiff is the set of changes needed to bring stored rows in line with a payload
type BankDiff struct {
	Insert []BankEntry
	Update []BankEntry
	Delete []int // item ids
}

// Empty reports whether the diff carries no changes
func (d BankDiff) Empty() bool {
	return len(d.Insert) == 0 && len(d.Update) == 0 && len(d.Delete) == 0
}

// BankSyncResult summarizes a bank sync
type BankSyncResult struct {
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
}

// BankOpportunityFilter selects recipes to match against a bank
type BankOpportunityFilter struct {
	Scope      BankScope
	MaxMissing int
	MinLevel   int
	MaxLevel   int
	JobID      *int
	MinROI     *float64
	NameSearch string
	Limit      int
	Offset     int
}

// BankOpportunity describes how close a bank is to crafting one recipe
type BankOpportunity struct {
	RecipeID           int      `json:"recipe_id"`
	ResultItemID       int      `json:"result_item_id"`
	ResultItemName     string   `json:"result_item_name"`
	JobID              int      `json:"job_id"`
	Level              int      `json:"level"`
	TotalIngredients   int      `json:"total_ingredients"`
	OwnedIngredients   int      `json:"owned_ingredients"`
	MissingIngredients int      `json:"missing_ingredients"`
	CompletenessPct    float64  `json:"completeness_pct"`
	MaxCraftable       int64    `json:"max_craftable"`
	OwnedValue         float64  `json:"owned_value"`
	MissingCost        float64  `json:"missing_cost"`
	TotalCraftCost     float64  `json:"total_craft_cost"`
	SellPrice          *float64 `json:"sell_price"`
	Margin             float64  `json:"margin"`
	ROI                float64  `json:"roi"`
}

// BankOpportunityPage is a paginated bank match result
type BankOpportunityPage struct {
	Rows   []BankOpportunity `json:"rows"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
