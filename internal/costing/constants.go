package costing

// DefaultMaxLayers is the number of derived layers resolved before the
// partial tier when the caller does not configure one
const DefaultMaxLayers = 5

// MarketLayer is the layer of items priced directly by an observation
const MarketLayer = 0

// Tier labels used when reporting resolution counts
const (
	TierMarket     = "market"
	TierDerived    = "derived"
	TierPartial    = "partial"
	TierUnresolved = "unresolved"
)
