package data

import (
	"errors"
	"testing"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
	persistence "github.com/checker-network/leaderboard/internal/persistence/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Database(t *testing.T) {
	t.Parallel()

	persistentDB, err := persistence.NewDatabase(t.TempDir(), 0)
	require.NoError(t, err)

	initialPage := models.PageState{
		Error:    models.HTMLElement{Hidden: true},
		Networks: models.HTMLElement{Hidden: true},
	}
	db := NewDatabase(initialPage, persistentDB)
	require.NoError(t, db.Check())

	_, err = db.Leaderboard()
	assert.ErrorIs(t, err, ErrNoCycleYet)
	page, cycleTime := db.Page()
	assert.Equal(t, initialPage, page)
	assert.True(t, cycleTime.IsZero())

	successTime := time.Unix(10, 0).UTC()
	board := models.Leaderboard{
		ID:   "success",
		Time: successTime,
		Entries: []models.Entry{{
			Rank: 1,
			Result: models.NetworkResult{
				Network:     models.Network{ID: "walrus"},
				SuccessRate: 50,
			},
		}},
	}
	successPage := models.PageState{
		Loading:  models.HTMLElement{Hidden: true},
		Error:    models.HTMLElement{Hidden: true},
		Networks: models.HTMLElement{Content: "content"},
	}
	err = db.Update(board, successPage, nil)
	require.NoError(t, err)

	gotBoard, err := db.Leaderboard()
	require.NoError(t, err)
	assert.Equal(t, board, gotBoard)
	page, cycleTime = db.Page()
	assert.Equal(t, successPage, page)
	assert.Equal(t, successTime, cycleTime)

	failureTime := time.Unix(20, 0).UTC()
	failedBoard := models.Leaderboard{
		ID:          "failure",
		Time:        failureTime,
		Unavailable: []models.Network{{ID: "walrus"}},
	}
	errCycle := errors.New("no network data")
	err = db.Update(failedBoard, models.PageState{}, errCycle)
	require.NoError(t, err)

	lastTime, lastErr := db.LastCycle()
	assert.Equal(t, failureTime, lastTime)
	assert.ErrorIs(t, lastErr, errCycle)

	history, err := db.History(0)
	require.NoError(t, err)
	expectedHistory := []models.Snapshot{
		{ID: "failure", Time: failureTime, Failed: true},
		{ID: "success", Time: successTime, Rates: []models.NetworkRate{
			{NetworkID: "walrus", Rank: 1, SuccessRate: 50},
		}},
	}
	assert.Equal(t, expectedHistory, history)

	require.NoError(t, db.Stop())
}
