package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/checker-network/leaderboard/internal/data"
	"github.com/checker-network/leaderboard/internal/render"
)

func (h *handlers) chart(w http.ResponseWriter, _ *http.Request) {
	board, cycleErr := h.db.Leaderboard()
	if errors.Is(cycleErr, data.ErrNoCycleYet) {
		httpError(w, http.StatusServiceUnavailable, cycleErr.Error())
		return
	}

	buffer := bytes.NewBuffer(nil)
	err := render.WriteChart(buffer, board, h.decimals)
	switch {
	case errors.Is(err, render.ErrNoEntries):
		httpError(w, http.StatusServiceUnavailable, err.Error())
		return
	case err != nil:
		h.logger.Error("drawing chart: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buffer.Bytes())
}
