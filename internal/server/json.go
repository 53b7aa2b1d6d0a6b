package server

import (
	"errors"
	"net/http"

	"github.com/checker-network/leaderboard/internal/data"
)

func (h *handlers) leaderboard(w http.ResponseWriter, _ *http.Request) {
	board, cycleErr := h.db.Leaderboard()
	if errors.Is(cycleErr, data.ErrNoCycleYet) {
		httpError(w, http.StatusServiceUnavailable, cycleErr.Error())
		return
	}

	jsonData := board.JSON()
	if cycleErr != nil {
		jsonData.Error = cycleErr.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	err := json.NewEncoder(w).Encode(jsonData)
	if err != nil {
		h.logger.Error("encoding leaderboard: " + err.Error())
	}
}
