package costing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

func recipe(id, result int, ingredients ...domain.Ingredient) domain.Recipe {
	return domain.Recipe{ID: id, ResultItemID: result, Level: 1, Ingredients: ingredients}
}

func ing(itemID, qty int) domain.Ingredient {
	return domain.Ingredient{ItemID: itemID, Quantity: qty}
}

func TestResolve_Layers(t *testing.T) {
	// 1,2 priced; 10 = 2x1 + 1x2; 20 = 3x10; 30 = 1x20 + 1x1
	recipes := []domain.Recipe{
		recipe(1, 10, ing(1, 2), ing(2, 1)),
		recipe(2, 20, ing(10, 3)),
		recipe(3, 30, ing(20, 1), ing(1, 1)),
	}
	prices := domain.PriceBook{1: 5, 2: 7}

	table := NewEstimator(5).Resolve(recipes, prices)

	tests := []struct {
		item  int
		cost  float64
		layer int
	}{
		{1, 5, 0},
		{2, 7, 0},
		{10, 17, 1},
		{20, 51, 2},
		{30, 56, 3},
	}
	for _, tt := range tests {
		res, ok := table.Lookup(tt.item)
		require.True(t, ok, "item %d", tt.item)
		assert.Equal(t, tt.cost, res.Cost, "item %d cost", tt.item)
		assert.Equal(t, tt.layer, res.Layer, "item %d layer", tt.item)
		assert.False(t, res.Incomplete)
	}

	stats := table.Stats()
	assert.Equal(t, 2, stats.Market)
	assert.Equal(t, 3, stats.Derived)
	assert.Equal(t, 0, stats.Partial)
	assert.Equal(t, 3, stats.LayersUsed)
}

func TestResolve_LayeringMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const items = 200

	prices := domain.PriceBook{}
	for id := 1; id <= 40; id++ {
		prices[id] = float64(rng.Intn(100) + 1)
	}
	var recipes []domain.Recipe
	for id := 41; id <= items; id++ {
		n := rng.Intn(3) + 1
		var ings []domain.Ingredient
		for j := 0; j < n; j++ {
			// Some edges point forward to create cycles and deep chains
			ings = append(ings, ing(rng.Intn(items)+1, rng.Intn(4)+1))
		}
		recipes = append(recipes, recipe(id, id, ings...))
	}

	table := NewEstimator(5).Resolve(recipes, prices)
	byResult := indexByResult(recipes)

	for id := 1; id <= items; id++ {
		res, ok := table.Lookup(id)
		if !ok || res.Layer == MarketLayer || res.Incomplete {
			continue
		}
		for _, in := range byResult[id].Ingredients {
			child, ok := table.Lookup(in.ItemID)
			require.True(t, ok)
			assert.False(t, child.Incomplete)
			assert.Less(t, child.Layer, res.Layer, "item %d ingredient %d", id, in.ItemID)
		}
	}
}

func TestResolve_CycleFallsToPartial(t *testing.T) {
	// A(10) needs B(20) + 1 priced; B needs A
	recipes := []domain.Recipe{
		recipe(1, 10, ing(20, 1), ing(1, 2)),
		recipe(2, 20, ing(10, 1)),
	}
	prices := domain.PriceBook{1: 4}

	table := NewEstimator(3).Resolve(recipes, prices)

	a, ok := table.Lookup(10)
	require.True(t, ok)
	assert.True(t, a.Incomplete)
	assert.Equal(t, domain.SourcePartial, a.Source)
	assert.Equal(t, 4, a.Layer)
	assert.Equal(t, 8.0, a.Cost, "only the priced ingredient counts")

	b, ok := table.Lookup(20)
	require.True(t, ok)
	assert.True(t, b.Incomplete)
	assert.Zero(t, b.Cost)
	assert.Equal(t, 2, table.Stats().Partial)
}

func TestResolve_MarketPriceWins(t *testing.T) {
	// Crafting 10 would cost 2, but its market price of 50 must be used
	recipes := []domain.Recipe{
		recipe(1, 10, ing(1, 2)),
		recipe(2, 20, ing(10, 1)),
	}
	prices := domain.PriceBook{1: 1, 10: 50}

	table := NewEstimator(5).Resolve(recipes, prices)

	res, _ := table.Lookup(10)
	assert.Equal(t, 50.0, res.Cost)
	assert.Equal(t, MarketLayer, res.Layer)

	parent, _ := table.Lookup(20)
	assert.Equal(t, 50.0, parent.Cost)
	assert.Equal(t, 1, parent.Layer)
}

func TestResolve_ZeroPriceIsNotLayerZero(t *testing.T) {
	recipes := []domain.Recipe{recipe(1, 10, ing(1, 3))}
	prices := domain.PriceBook{1: 2, 10: 0}

	table := NewEstimator(5).Resolve(recipes, prices)

	res, _ := table.Lookup(10)
	assert.Equal(t, 1, res.Layer)
	assert.Equal(t, 6.0, res.Cost)
}

func TestResolve_QuantityLinearity(t *testing.T) {
	prices := domain.PriceBook{1: 3.5, 2: 10}
	single := NewEstimator(5).Resolve([]domain.Recipe{recipe(1, 10, ing(1, 2), ing(2, 1))}, prices)
	double := NewEstimator(5).Resolve([]domain.Recipe{recipe(1, 10, ing(1, 4), ing(2, 1))}, prices)

	s, _ := single.Lookup(10)
	d, _ := double.Lookup(10)
	// item 2 contributes 10 to both
	assert.InDelta(t, 2*(s.Cost-10), d.Cost-10, 1e-9)
}

func TestResolve_DepthBound(t *testing.T) {
	// Chain 1 <- 2 <- 3 <- 4 where only 1 is priced; with K=2 item 4 is partial
	recipes := []domain.Recipe{
		recipe(1, 2, ing(1, 1)),
		recipe(2, 3, ing(2, 1)),
		recipe(3, 4, ing(3, 1)),
	}
	prices := domain.PriceBook{1: 10}

	table := NewEstimator(2).Resolve(recipes, prices)

	r3, _ := table.Lookup(3)
	assert.Equal(t, 2, r3.Layer)
	assert.False(t, r3.Incomplete)

	r4, _ := table.Lookup(4)
	assert.True(t, r4.Incomplete)
	assert.Equal(t, table.PartialLayer(), r4.Layer)
	assert.Equal(t, 10.0, r4.Cost, "partial sums resolved ingredients")

	deeper := NewEstimator(3).Resolve(recipes, prices)
	r4, _ = deeper.Lookup(4)
	assert.False(t, r4.Incomplete)
	assert.Equal(t, 3, r4.Layer)
}

func TestResolve_FirstRecipePerResultWins(t *testing.T) {
	recipes := []domain.Recipe{
		recipe(9, 10, ing(1, 5)),
		recipe(4, 10, ing(1, 1)),
	}
	table := NewEstimator(5).Resolve(recipes, domain.PriceBook{1: 1})

	res, _ := table.Lookup(10)
	assert.Equal(t, 1.0, res.Cost)
}

func TestResolve_EmptyRecipeIsPartial(t *testing.T) {
	table := NewEstimator(5).Resolve([]domain.Recipe{recipe(1, 10)}, nil)

	res, ok := table.Lookup(10)
	require.True(t, ok)
	assert.True(t, res.Incomplete)
	assert.Zero(t, res.Cost)
}

func TestNewEstimator_DefaultDepth(t *testing.T) {
	assert.Equal(t, DefaultMaxLayers, NewEstimator(0).MaxLayers())
	assert.Equal(t, 7, NewEstimator(7).MaxLayers())
}

func TestEstimateRecipe(t *testing.T) {
	recipes := []domain.Recipe{
		recipe(1, 10, ing(1, 1)),  // derived
		recipe(2, 20, ing(20, 1)), // self cycle, partial
		recipe(3, 30, ing(1, 2), ing(10, 1), ing(20, 1), ing(99, 4)),
	}
	prices := domain.PriceBook{1: 3}
	table := NewEstimator(5).Resolve(recipes, prices)

	est := table.EstimateRecipe(recipes[2])

	assert.Equal(t, 1, est.Priced)
	assert.Equal(t, 2, est.Estimated)
	assert.Equal(t, 1, est.Unresolved)
	assert.True(t, est.HasEstimation)
	assert.True(t, est.Incomplete)
	assert.Equal(t, 9.0, est.Cost)
	require.Len(t, est.Ingredients, 4)
	assert.Equal(t, domain.SourceMarket, est.Ingredients[0].Source)
	assert.Equal(t, domain.SourceEstimated, est.Ingredients[1].Source)
	assert.Equal(t, 1, est.Ingredients[1].Layer)
	assert.Equal(t, domain.SourcePartial, est.Ingredients[2].Source)
	assert.Equal(t, domain.SourceUnresolved, est.Ingredients[3].Source)
	assert.Equal(t, -1, est.Ingredients[3].Layer)

	direct := table.EstimateRecipe(recipes[0])
	assert.False(t, direct.HasEstimation)
	assert.False(t, direct.Incomplete)
	assert.Equal(t, 3.0, direct.Cost)
}

func TestMarketCost(t *testing.T) {
	r := recipe(1, 10, ing(1, 2), ing(2, 3), ing(3, 1))
	prices := domain.PriceBook{1: 4, 2: 0}

	cost, priced := MarketCost(r, prices)

	assert.Equal(t, 8.0, cost)
	assert.Equal(t, 2, priced, "a zero price is still a known price")
}
