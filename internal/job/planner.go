package job

import (
	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Candidate is a recipe the planner may craft
type Candidate struct {
	RecipeID       int
	ResultItemID   int
	ResultItemName string
	Level          int
	CraftXPRatio   int
	Cost           float64
}

// CandidatesFromRows keeps recipes of a job whose craft cost is fully known
func CandidatesFromRows(rows []domain.ProfitabilityRow, jobID int) []Candidate {
	out := make([]Candidate, 0)
	for _, row := range rows {
		if row.JobID != jobID || row.EstimationIncomplete || row.TotalIngredients == 0 {
			continue
		}
		out = append(out, Candidate{
			RecipeID:       row.RecipeID,
			ResultItemID:   row.ResultItemID,
			ResultItemName: row.ResultItemName,
			Level:          row.Level,
			CraftXPRatio:   row.CraftXPRatio,
			Cost:           row.EstimatedCost,
		})
	}
	return out
}

// Planner greedily picks the cheapest cost per XP recipe at every level
type Planner struct {
	xp XPFunc
}

// NewPlanner creates a planner; a nil xp uses CraftXP
func NewPlanner(xp XPFunc) *Planner {
	if xp == nil {
		xp = CraftXP
	}
	return &Planner{xp: xp}
}

// Plan walks from fromLevel up to toLevel. XP overflow from the last craft
// of a level carries into the next one. When no candidate yields XP at some
// level the plan stops there and is returned incomplete.
func (p *Planner) Plan(candidates []Candidate, fromLevel, toLevel int) domain.LevelingPlan {
	plan := domain.LevelingPlan{
		FromLevel:   fromLevel,
		TargetLevel: toLevel,
		Steps:       []domain.LevelingStep{},
	}

	var overflow int64
	level := fromLevel
	for level < toLevel {
		need := XPToNextLevel(level) - overflow
		if need <= 0 {
			overflow = -need
			if n := len(plan.Steps); n > 0 {
				plan.Steps[n-1].EndLevel = level + 1
			}
			level++
			continue
		}

		best, xp, ok := p.choose(candidates, level)
		if !ok {
			break
		}

		qty := (need + xp - 1) / xp
		gained := qty * xp
		overflow = gained - need
		cost := float64(qty) * best.Cost

		if n := len(plan.Steps); n > 0 && plan.Steps[n-1].RecipeID == best.RecipeID && plan.Steps[n-1].EndLevel == level {
			last := &plan.Steps[n-1]
			last.EndLevel = level + 1
			last.Quantity += qty
			last.TotalXP += gained
			last.TotalCost += cost
		} else {
			plan.Steps = append(plan.Steps, domain.LevelingStep{
				StartLevel:     level,
				EndLevel:       level + 1,
				RecipeID:       best.RecipeID,
				ResultItemID:   best.ResultItemID,
				ResultItemName: best.ResultItemName,
				RecipeLevel:    best.Level,
				Quantity:       qty,
				XPPerCraft:     xp,
				CostPerCraft:   best.Cost,
				TotalXP:        gained,
				TotalCost:      cost,
			})
		}
		level++
	}

	plan.ToLevel = level
	plan.Complete = level >= toLevel
	for _, step := range plan.Steps {
		plan.TotalCost += step.TotalCost
		plan.TotalXP += step.TotalXP
	}
	return plan
}

// choose returns the candidate with the lowest cost per XP at a level.
// Ties go to the higher recipe level, then the lower recipe id.
func (p *Planner) choose(candidates []Candidate, level int) (Candidate, int64, bool) {
	var (
		best      Candidate
		bestXP    int64
		bestRatio float64
		found     bool
	)
	for _, c := range candidates {
		if c.Level > level || c.Cost < 0 {
			continue
		}
		xp := p.xp(c.CraftXPRatio, c.Level, level)
		if xp <= 0 {
			continue
		}
		ratio := c.Cost / float64(xp)
		better := !found ||
			ratio < bestRatio ||
			(ratio == bestRatio && c.Level > best.Level) ||
			(ratio == bestRatio && c.Level == best.Level && c.RecipeID < best.RecipeID)
		if better {
			best, bestXP, bestRatio, found = c, xp, ratio, true
		}
	}
	return best, bestXP, found
}
