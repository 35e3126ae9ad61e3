package job

// XP formula constants
const (
	// BaseXP is the XP per level step: reaching level L+1 from L costs BaseXP * L
	BaseXP = 20

	// PenaltyScale and PenaltyExponent shape the decay applied when crafting
	// a recipe below the current level: 1 / (1 + PenaltyScale * delta^PenaltyExponent)
	PenaltyScale    = 0.1
	PenaltyExponent = 1.1
)

// Cache keys
const (
	// CacheSchemaVersion invalidates cached entries when their shape changes
	CacheSchemaVersion = "1.0"

	cacheKeyAllJobs = "jobs:all"
)

// Log messages
const (
	LogMsgPlanHalted   = "Leveling plan halted: no affordable recipe"
	LogMsgPlanComplete = "Leveling plan built"
)
