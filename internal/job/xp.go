package job

import "math"

// XPFunc returns the XP gained by one craft of a recipe at a profession level
type XPFunc func(craftXPRatio, recipeLevel, level int) int64

// XPToNextLevel returns the XP needed to go from level to level+1
func XPToNextLevel(level int) int64 {
	return int64(BaseXP * level)
}

// TotalXPForLevel returns the cumulative XP needed to reach level from level 1
func TotalXPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	return int64(10 * level * (level - 1))
}

// Penalty is the multiplier for crafting delta levels below the current one
func Penalty(delta int) float64 {
	if delta <= 0 {
		return 1
	}
	return 1 / (1 + PenaltyScale*math.Pow(float64(delta), PenaltyExponent))
}

// CraftXP is the standard XP formula. A non-positive ratio means 100%.
func CraftXP(craftXPRatio, recipeLevel, level int) int64 {
	if craftXPRatio <= 0 {
		craftXPRatio = 100
	}
	if recipeLevel <= 0 || recipeLevel > level {
		return 0
	}
	xp := float64(BaseXP) * (float64(craftXPRatio) / 100) * float64(recipeLevel) * Penalty(level-recipeLevel)
	return int64(math.Floor(xp))
}
