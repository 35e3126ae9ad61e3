package costing

import (
	"sort"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Resolution is the effective unit cost assigned to one item
type Resolution struct {
	ItemID int
	Cost   float64
	// Layer is 0 for market prices, 1..K for derived costs and K+1 for the
	// partial tier
	Layer      int
	Source     domain.IngredientSource
	Incomplete bool
}

// Stats counts resolved items per tier
type Stats struct {
	Market  int
	Derived int
	Partial int
	// LayersUsed is the deepest derived layer that resolved at least one item
	LayersUsed int
}

// Estimator computes layered craft costs over a recipe graph
type Estimator struct {
	maxLayers int
}

// NewEstimator creates an estimator resolving up to maxLayers derived layers.
// Values below 1 fall back to DefaultMaxLayers.
func NewEstimator(maxLayers int) *Estimator {
	if maxLayers < 1 {
		maxLayers = DefaultMaxLayers
	}
	return &Estimator{maxLayers: maxLayers}
}

// MaxLayers returns the configured derived layer depth
func (e *Estimator) MaxLayers() int {
	return e.maxLayers
}

// Table is the outcome of one resolution pass. It is immutable once built.
type Table struct {
	maxLayers int
	entries   map[int]Resolution
	recipes   map[int]domain.Recipe // keyed by result item id
	stats     Stats
}

// Resolve assigns every priced item and every recipe result a cost.
//
// Layer 0 holds items whose market price is positive. An unresolved recipe
// result joins layer k only when each of its ingredients was resolved in an
// earlier layer; a layer's results are committed after the whole pass so they
// never feed the same layer. Whatever is left after maxLayers gets a partial
// cost summing only the ingredients that did resolve.
func (e *Estimator) Resolve(recipes []domain.Recipe, prices domain.PriceBook) *Table {
	t := &Table{
		maxLayers: e.maxLayers,
		entries:   make(map[int]Resolution, len(prices)+len(recipes)),
		recipes:   indexByResult(recipes),
	}

	for itemID, price := range prices {
		if price > 0 {
			t.entries[itemID] = Resolution{ItemID: itemID, Cost: price, Layer: MarketLayer, Source: domain.SourceMarket}
			t.stats.Market++
		}
	}

	pending := make([]int, 0, len(t.recipes))
	for itemID := range t.recipes {
		if _, ok := t.entries[itemID]; !ok {
			pending = append(pending, itemID)
		}
	}
	sort.Ints(pending)

	for layer := 1; layer <= e.maxLayers && len(pending) > 0; layer++ {
		var resolved []Resolution
		remaining := make([]int, 0, len(pending))
		for _, itemID := range pending {
			cost, ok := t.fullCost(t.recipes[itemID])
			if !ok {
				remaining = append(remaining, itemID)
				continue
			}
			resolved = append(resolved, Resolution{ItemID: itemID, Cost: cost, Layer: layer, Source: domain.SourceEstimated})
		}
		if len(resolved) == 0 {
			// Nothing new can resolve at later layers either
			break
		}
		for _, r := range resolved {
			t.entries[r.ItemID] = r
		}
		t.stats.Derived += len(resolved)
		t.stats.LayersUsed = layer
		pending = remaining
	}

	partialLayer := e.maxLayers + 1
	partial := make([]Resolution, 0, len(pending))
	for _, itemID := range pending {
		partial = append(partial, Resolution{
			ItemID:     itemID,
			Cost:       t.knownCost(t.recipes[itemID]),
			Layer:      partialLayer,
			Source:     domain.SourcePartial,
			Incomplete: true,
		})
	}
	for _, r := range partial {
		t.entries[r.ItemID] = r
	}
	t.stats.Partial = len(partial)

	return t
}

// fullCost sums ingredient costs when every ingredient is already resolved
// outside the partial tier
func (t *Table) fullCost(r domain.Recipe) (float64, bool) {
	if len(r.Ingredients) == 0 {
		return 0, false
	}
	var total float64
	for _, ing := range r.Ingredients {
		res, ok := t.entries[ing.ItemID]
		if !ok || res.Incomplete {
			return 0, false
		}
		total += float64(ing.Quantity) * res.Cost
	}
	return total, true
}

// knownCost sums the complete ingredient costs, treating the rest as zero
func (t *Table) knownCost(r domain.Recipe) float64 {
	var total float64
	for _, ing := range r.Ingredients {
		if res, ok := t.entries[ing.ItemID]; ok && !res.Incomplete {
			total += float64(ing.Quantity) * res.Cost
		}
	}
	return total
}

// indexByResult keeps the lowest recipe id per result item
func indexByResult(recipes []domain.Recipe) map[int]domain.Recipe {
	out := make(map[int]domain.Recipe, len(recipes))
	for _, r := range recipes {
		if existing, ok := out[r.ResultItemID]; ok && existing.ID <= r.ID {
			continue
		}
		out[r.ResultItemID] = r
	}
	return out
}

// Lookup returns the resolution of an item
func (t *Table) Lookup(itemID int) (Resolution, bool) {
	r, ok := t.entries[itemID]
	return r, ok
}

// MaxLayers returns the derived layer depth the table was built with
func (t *Table) MaxLayers() int {
	return t.maxLayers
}

// PartialLayer returns the layer number assigned to partial estimates
func (t *Table) PartialLayer() int {
	return t.maxLayers + 1
}

// Stats returns per-tier counts
func (t *Table) Stats() Stats {
	return t.stats
}

// Len returns the number of resolved items, partial ones included
func (t *Table) Len() int {
	return len(t.entries)
}

// Estimate is the cascaded cost breakdown of a single recipe
type Estimate struct {
	Cost        float64
	Ingredients []domain.IngredientCost

	Priced     int
	Estimated  int
	Unresolved int

	// HasEstimation is set when any ingredient cost came from a cascade
	HasEstimation bool
	// Incomplete is set when some ingredient cost is partial or missing
	Incomplete bool
}

// EstimateRecipe prices a recipe's ingredients from the table. The recipe's
// own result is not consulted, so a result with a market price still gets
// its crafted cost.
func (t *Table) EstimateRecipe(r domain.Recipe) Estimate {
	est := Estimate{Ingredients: make([]domain.IngredientCost, 0, len(r.Ingredients))}
	for _, ing := range r.Ingredients {
		line := domain.IngredientCost{
			ItemID:   ing.ItemID,
			ItemName: ing.ItemName,
			Quantity: ing.Quantity,
			Source:   domain.SourceUnresolved,
			Layer:    -1,
		}
		if res, ok := t.entries[ing.ItemID]; ok {
			line.UnitCost = res.Cost
			line.Source = res.Source
			line.Layer = res.Layer
		}

		switch line.Source {
		case domain.SourceMarket:
			est.Priced++
		case domain.SourceEstimated:
			est.Estimated++
			est.HasEstimation = true
		case domain.SourcePartial:
			est.Estimated++
			est.HasEstimation = true
			est.Incomplete = true
		default:
			est.Unresolved++
			est.Incomplete = true
		}

		est.Cost += float64(ing.Quantity) * line.UnitCost
		est.Ingredients = append(est.Ingredients, line)
	}
	if len(r.Ingredients) == 0 {
		est.Incomplete = true
	}
	return est
}

// MarketCost sums ingredient market prices only; unpriced ingredients
// contribute zero. priced counts ingredients with any known price.
func MarketCost(r domain.Recipe, prices domain.PriceBook) (cost float64, priced int) {
	for _, ing := range r.Ingredients {
		p := prices.Lookup(ing.ItemID)
		if !p.Known {
			continue
		}
		priced++
		cost += float64(ing.Quantity) * p.Value
	}
	return cost, priced
}
