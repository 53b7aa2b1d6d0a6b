package data

import (
	"errors"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
)

var ErrNoCycleYet = errors.New("no cycle completed yet")

// Leaderboard returns the leaderboard of the last cycle and the error
// of that cycle, which is ErrNoCycleYet if no cycle completed yet.
func (db *Database) Leaderboard() (board models.Leaderboard, cycleErr error) {
	db.RLock()
	defer db.RUnlock()
	if db.cycleTime.IsZero() {
		return board, ErrNoCycleYet
	}
	return db.board, db.cycleErr
}

// Page returns the state of the page containers and the time
// of the last cycle, which is zero if no cycle completed yet.
func (db *Database) Page() (page models.PageState, cycleTime time.Time) {
	db.RLock()
	defer db.RUnlock()
	return db.page, db.cycleTime
}

// LastCycle returns the time and the error of the last cycle.
func (db *Database) LastCycle() (cycleTime time.Time, cycleErr error) {
	db.RLock()
	defer db.RUnlock()
	return db.cycleTime, db.cycleErr
}
