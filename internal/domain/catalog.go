package domain

import "time"

// ItemInput is an item definition pushed by catalog sync or ingestion
type ItemInput struct {
	Name         string  `json:"name" validate:"required,max=200"`
	CatalogID    *int    `json:"catalog_id,omitempty" validate:"omitempty,min=1"`
	Category     *string `json:"category,omitempty" validate:"omitempty,max=100"`
	CraftXPRatio *int    `json:"craft_xp_ratio,omitempty" validate:"omitempty,min=-1"`
}

// IngredientInput names a recipe ingredient by item name
type IngredientInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// RecipeInput is a recipe definition pushed by catalog sync
type RecipeInput struct {
	ResultName  string            `json:"result_name" validate:"required,max=200"`
	JobID       int               `json:"job_id" validate:"required,min=1"`
	Level       int               `json:"level" validate:"min=1,max=200"`
	Ingredients []IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
}

// ObservationInput is one price sighting to ingest
type ObservationInput struct {
	Item       ItemInput  `json:"item" validate:"required"`
	Server     string     `json:"server" validate:"required,server"`
	UnitPrice  float64    `json:"unit_price" validate:"min=0"`
	LotCount   int        `json:"lot_count" validate:"omitempty,min=1"`
	Source     string     `json:"source,omitempty" validate:"max=50"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// SyncResult summarizes a catalog sync batch
type SyncResult struct {
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Detached int `json:"detached"`
}
