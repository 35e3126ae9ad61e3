package crafting

// DefaultSortKey orders profitability rows when no sort key is given
const DefaultSortKey = "margin"

// Log messages
const (
	LogMsgCostsResolved = "Resolved layered craft costs"
)
