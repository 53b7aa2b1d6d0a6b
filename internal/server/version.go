package server

import "net/http"

func (h *handlers) version(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(h.buildInfo)
	if err != nil {
		h.logger.Error("encoding build information: " + err.Error())
	}
}
