package bank

import (
	"math"
	"sort"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Match computes how far owned quantities go toward crafting a recipe.
// Costs use market prices; unpriced ingredients contribute zero.
func Match(r domain.Recipe, owned map[int]int64, prices domain.PriceBook) domain.BankOpportunity {
	opp := domain.BankOpportunity{
		RecipeID:         r.ID,
		ResultItemID:     r.ResultItemID,
		ResultItemName:   r.ResultItemName,
		JobID:            r.JobID,
		Level:            r.Level,
		TotalIngredients: len(r.Ingredients),
	}

	maxCraftable := int64(math.MaxInt64)
	for _, ing := range r.Ingredients {
		required := int64(ing.Quantity)
		have := owned[ing.ItemID]
		price := prices.ValueOrZero(ing.ItemID)

		if have >= required {
			opp.OwnedIngredients++
		}
		if required > 0 {
			if n := have / required; n < maxCraftable {
				maxCraftable = n
			}
		}

		opp.OwnedValue += float64(min(have, required)) * price
		opp.MissingCost += float64(max(0, required-have)) * price
		opp.TotalCraftCost += float64(required) * price
	}
	if len(r.Ingredients) == 0 || maxCraftable == math.MaxInt64 {
		maxCraftable = 0
	}
	opp.MaxCraftable = maxCraftable
	opp.MissingIngredients = opp.TotalIngredients - opp.OwnedIngredients
	if opp.TotalIngredients > 0 {
		opp.CompletenessPct = float64(opp.OwnedIngredients) / float64(opp.TotalIngredients) * 100
	}

	if sell := prices.Lookup(r.ResultItemID); sell.Known {
		opp.SellPrice = sell.Ptr()
		opp.Margin = sell.Value - opp.TotalCraftCost
		opp.ROI = domain.ROI(opp.Margin, opp.TotalCraftCost)
	}
	return opp
}

// sortOpportunities puts the closest and most profitable recipes first
func sortOpportunities(rows []domain.BankOpportunity) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.MissingIngredients != b.MissingIngredients {
			return a.MissingIngredients < b.MissingIngredients
		}
		if a.ROI != b.ROI {
			return a.ROI > b.ROI
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.RecipeID < b.RecipeID
	})
}

// Diff compares stored rows with a desired item->quantity map
func Diff(scope domain.BankScope, current []domain.BankEntry, desired map[int]int64) (domain.BankDiff, int) {
	var diff domain.BankDiff
	unchanged := 0

	stored := make(map[int]int64, len(current))
	for _, e := range current {
		stored[e.ItemID] += e.Quantity
	}

	itemIDs := make([]int, 0, len(desired))
	for id := range desired {
		itemIDs = append(itemIDs, id)
	}
	sort.Ints(itemIDs)

	for _, id := range itemIDs {
		qty := desired[id]
		entry := domain.BankEntry{Server: scope.Server, ProfileID: scope.ProfileID, ItemID: id, Quantity: qty}
		have, ok := stored[id]
		switch {
		case !ok:
			diff.Insert = append(diff.Insert, entry)
		case have != qty:
			diff.Update = append(diff.Update, entry)
		default:
			unchanged++
		}
	}

	for id := range stored {
		if _, ok := desired[id]; !ok {
			diff.Delete = append(diff.Delete, id)
		}
	}
	sort.Ints(diff.Delete)

	return diff, unchanged
}

// collapse sums duplicate payload lines and drops non-positive quantities
func collapse(items []domain.BankSyncItem) map[int]int64 {
	out := make(map[int]int64, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		out[it.ItemID] += it.Quantity
	}
	return out
}
