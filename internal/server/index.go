package server

import (
	"net/http"

	"github.com/checker-network/leaderboard/internal/models"
)

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	// Prevent caching so the page always shows the last cycle
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	page, cycleTime := h.db.Page()
	htmlData := models.HTMLData{
		Loading:        page.Loading,
		Error:          page.Error,
		Networks:       page.Networks,
		LastUpdate:     "never",
		RefreshSeconds: h.refreshSeconds,
		RootURL:        h.rootURL,
	}
	if !cycleTime.IsZero() {
		htmlData.LastUpdate = cycleTime.Format("15:04:05")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.indexTemplate.ExecuteTemplate(w, "index.html", htmlData)
	if err != nil {
		h.logger.Error("generating webpage: " + err.Error())
		httpError(w, http.StatusInternalServerError, "failed generating webpage")
	}
}
