package domain

// Sort keys accepted by the recipe profitability listing
const (
	SortByMargin          = "margin"
	SortByROI             = "roi"
	SortByLevel           = "level"
	SortByCost            = "cost"
	SortByEstimatedMargin = "estimated_margin"
	SortByEstimatedROI    = "estimated_roi"
)

// IsValidSortKey checks a profitability sort key (empty means default)
func IsValidSortKey(key string) bool {
	switch key {
	case "", SortByMargin, SortByROI, SortByLevel, SortByCost, SortByEstimatedMargin, SortByEstimatedROI:
		return true
	}
	return false
}

// Pagination defaults shared by listing endpoints
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// ProfitabilityFilter selects and orders profitability rows. Optional fields
// are nil or zero when unset; every set field narrows the result.
type ProfitabilityFilter struct {
	Server       string
	MinLevel     int
	MaxLevel     int
	JobID        *int
	MinROI       *float64
	NameSearch   string
	RecipeID     *int
	ResultItemID *int
	SortBy       string
	Limit        int
	Offset       int
}

// IngredientCost is the per-ingredient breakdown of an estimated craft cost
type IngredientCost struct {
	ItemID   int              `json:"item_id"`
	ItemName string           `json:"item_name"`
	Quantity int              `json:"quantity"`
	UnitCost float64          `json:"unit_cost"`
	Source   IngredientSource `json:"source"`
	Layer    int              `json:"layer"`
}

// ProfitabilityRow is one recipe with its market and estimated economics
type ProfitabilityRow struct {
	RecipeID       int      `json:"recipe_id"`
	ResultItemID   int      `json:"result_item_id"`
	ResultItemName string   `json:"result_item_name"`
	JobID          int      `json:"job_id"`
	JobName        string   `json:"job_name,omitempty"`
	Level          int      `json:"level"`
	CraftXPRatio   int      `json:"craft_xp_ratio"`
	CraftCost      float64  `json:"craft_cost"`
	SellPrice      *float64 `json:"sell_price"`
	Margin         float64  `json:"margin"`
	ROI            float64  `json:"roi"`

	TotalIngredients      int `json:"total_ingredients"`
	PricedIngredients     int `json:"priced_ingredients"`
	EstimatedIngredients  int `json:"estimated_ingredients"`
	UnresolvedIngredients int `json:"unresolved_ingredients"`

	EstimatedCost        float64 `json:"estimated_cost"`
	EstimatedMargin      float64 `json:"estimated_margin"`
	EstimatedROI         float64 `json:"estimated_roi"`
	HasEstimation        bool    `json:"has_estimation"`
	EstimationIncomplete bool    `json:"estimation_incomplete"`

	Ingredients []IngredientCost `json:"ingredients,omitempty"`
}

// ProfitabilityPage is a paginated profitability result
type ProfitabilityPage struct {
	Rows   []ProfitabilityRow `json:"rows"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ROI returns margin / cost * 100, defined as 0 when cost is not positive
func ROI(margin, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return margin / cost * 100
}
