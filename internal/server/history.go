package server

import (
	"net/http"
	"strconv"

	"github.com/checker-network/leaderboard/internal/models"
)

func (h *handlers) history(w http.ResponseWriter, r *http.Request) {
	const defaultLimit, maxLimit = 100, 10000
	limit := defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 || parsed > maxLimit {
			httpError(w, http.StatusBadRequest,
				"limit must be an integer between 1 and "+strconv.Itoa(maxLimit))
			return
		}
		limit = parsed
	}

	snapshots, err := h.db.History(limit)
	if err != nil {
		h.logger.Error("getting history: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}
	if snapshots == nil {
		snapshots = []models.Snapshot{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	err = json.NewEncoder(w).Encode(snapshots)
	if err != nil {
		h.logger.Error("encoding history: " + err.Error())
	}
}
