package domain

import "time"

// Observation is a single market price sighting. Observations are append-only.
type Observation struct {
	ID         int64     `json:"observation_id" db:"observation_id"`
	ItemID     int       `json:"item_id" db:"item_id"`
	Server     string    `json:"server" db:"server"`
	UnitPrice  float64   `json:"unit_price" db:"unit_price"`
	LotCount   int       `json:"lot_count" db:"lot_count"`
	Source     string    `json:"source,omitempty" db:"source"`
	CapturedAt time.Time `json:"captured_at" db:"captured_at"`
}

// Price is a spot price lookup result. A zero Price is unknown, which is
// distinct from a known price of zero.
type Price struct {
	Value float64
	Known bool
}

// KnownPrice wraps a resolved price
func KnownPrice(v float64) Price {
	return Price{Value: v, Known: true}
}

// Ptr returns the price value or nil when unknown
func (p Price) Ptr() *float64 {
	if !p.Known {
		return nil
	}
	v := p.Value
	return &v
}

// PriceBook holds the latest known unit price per item id for one server.
// Items absent from the map have no observation.
type PriceBook map[int]float64

// Lookup returns the price for an item
func (b PriceBook) Lookup(itemID int) Price {
	v, ok := b[itemID]
	if !ok {
		return Price{}
	}
	return KnownPrice(v)
}

// ValueOrZero returns the price for an item, or zero when unknown
func (b PriceBook) ValueOrZero(itemID int) float64 {
	return b[itemID]
}
