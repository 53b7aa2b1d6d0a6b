package models

import "time"

// NetworkResult is the success rate computed for a network during one cycle.
type NetworkResult struct {
	Network     Network
	SuccessRate float64
	Days        int
	FetchedAt   time.Time
}

type Entry struct {
	Rank   int
	Result NetworkResult
}

// Leaderboard is the outcome of one cycle, with entries sorted
// by decreasing success rate and ranks starting at 1.
type Leaderboard struct {
	ID          string
	Time        time.Time
	Entries     []Entry
	Unavailable []Network
}

func (l Leaderboard) Snapshot() Snapshot {
	snapshot := Snapshot{
		ID:    l.ID,
		Time:  l.Time,
		Rates: make([]NetworkRate, len(l.Entries)),
	}
	for i, entry := range l.Entries {
		snapshot.Rates[i] = NetworkRate{
			NetworkID:   entry.Result.Network.ID,
			Rank:        entry.Rank,
			SuccessRate: entry.Result.SuccessRate,
		}
	}
	return snapshot
}

func (l Leaderboard) JSON() JSONData {
	data := JSONData{
		ID:          l.ID,
		Time:        l.Time,
		Entries:     make([]JSONEntry, len(l.Entries)),
		Unavailable: make([]string, len(l.Unavailable)),
	}
	for i, entry := range l.Entries {
		data.Entries[i] = JSONEntry{
			Rank:        entry.Rank,
			Network:     entry.Result.Network.ID,
			Symbol:      entry.Result.Network.Symbol,
			SuccessRate: entry.Result.SuccessRate,
			Days:        entry.Result.Days,
		}
	}
	for i, network := range l.Unavailable {
		data.Unavailable[i] = network.ID
	}
	return data
}
