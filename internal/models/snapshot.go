package models

import "time"

// Snapshot is the persisted outcome of a cycle.
type Snapshot struct {
	ID     string        `json:"id"`
	Time   time.Time     `json:"time"`
	Failed bool          `json:"failed,omitempty"`
	Rates  []NetworkRate `json:"rates"`
}

type NetworkRate struct {
	NetworkID   string  `json:"network"`
	Rank        int     `json:"rank"`
	SuccessRate float64 `json:"success_rate"`
}
