package domain

// LevelingRequest asks for a plan to level a profession
type LevelingRequest struct {
	Server    string
	JobID     int
	FromLevel int
	ToLevel   int
}

// ShoppingItem is one ingredient to buy for a leveling step
type ShoppingItem struct {
	ItemID        int      `json:"item_id"`
	ItemName      string   `json:"item_name"`
	QuantityEach  int      `json:"quantity_per_craft"`
	TotalQuantity int64    `json:"total_quantity"`
	UnitPrice     *float64 `json:"unit_price"`
	TotalCost     float64  `json:"total_cost"`
}

// LevelingStep covers consecutive levels crafted with the same recipe.
// StartLevel is inclusive; EndLevel is the level reached after the step.
type LevelingStep struct {
	StartLevel     int            `json:"start_level"`
	EndLevel       int            `json:"end_level"`
	RecipeID       int            `json:"recipe_id"`
	ResultItemID   int            `json:"result_item_id"`
	ResultItemName string         `json:"result_item_name"`
	RecipeLevel    int            `json:"recipe_level"`
	Quantity       int64          `json:"quantity"`
	XPPerCraft     int64          `json:"xp_per_craft"`
	CostPerCraft   float64        `json:"cost_per_craft"`
	TotalXP        int64          `json:"total_xp"`
	TotalCost      float64        `json:"total_cost"`
	Ingredients    []ShoppingItem `json:"ingredients"`
}

// LevelingPlan is the full planner output. ToLevel is the level actually
// reached, which is below TargetLevel when the planner halted early.
type LevelingPlan struct {
	JobID       int            `json:"job_id"`
	Server      string         `json:"server"`
	FromLevel   int            `json:"from_level"`
	ToLevel     int            `json:"to_level"`
	TargetLevel int            `json:"target_level"`
	Complete    bool           `json:"complete"`
	TotalCost   float64        `json:"total_cost"`
	TotalXP     int64          `json:"total_xp"`
	Steps       []LevelingStep `json:"steps"`
}
