package models

import "time"

// JSONData is the root structure for the leaderboard JSON API response.
type JSONData struct {
	ID          string      `json:"id"`
	Time        time.Time   `json:"time"`
	Entries     []JSONEntry `json:"entries"`
	Unavailable []string    `json:"unavailable"`
	Error       string      `json:"error,omitempty"`
}

type JSONEntry struct {
	Rank        int     `json:"rank"`
	Network     string  `json:"network"`
	Symbol      string  `json:"symbol"`
	SuccessRate float64 `json:"success_rate"`
	Days        int     `json:"days"`
}
