package domain

// Job is a crafting profession. Jobs are static reference data.
type Job struct {
	ID   int    `json:"job_id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Profession level bounds
const (
	MinJobLevel = 1
	MaxJobLevel = 200
)
