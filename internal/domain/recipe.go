package domain

import "time"

// Ingredient is one input line of a recipe
type Ingredient struct {
	ItemID   int    `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Recipe produces exactly one result item. A result item has at most one recipe.
type Recipe struct {
	ID             int          `json:"recipe_id"`
	ResultItemID   int          `json:"result_item_id"`
	ResultItemName string       `json:"result_item_name"`
	JobID          int          `json:"job_id"`
	JobName        string       `json:"job_name,omitempty"`
	Level          int          `json:"level"`
	CraftXPRatio   int          `json:"craft_xp_ratio"` // of the result item, -1 = default
	IsLocked       bool         `json:"is_locked"`
	Ingredients    []Ingredient `json:"ingredients"`
	UpdatedAt      time.Time    `json:"updated_at,omitempty"`
}

// IngredientSource tells where an ingredient's unit cost came from
type IngredientSource string

const (
	// SourceMarket means the ingredient has a direct market price
	SourceMarket IngredientSource = "market"
	// SourceEstimated means the cost was derived by resolving its own recipe
	SourceEstimated IngredientSource = "estimated"
	// SourcePartial means the ingredient's recipe could only be partially resolved
	SourcePartial IngredientSource = "partial"
	// SourceUnresolved means no price and no recipe could provide a cost
	SourceUnresolved IngredientSource = "unresolved"
)
