package health

import (
	"context"
	"net/http"
)

func newHandler(healthcheck func(ctx context.Context) error, logger Logger) http.Handler {
	return &handler{
		healthcheck: healthcheck,
		logger:      logger,
	}
}

type handler struct {
	healthcheck func(ctx context.Context) error
	logger      Logger
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || (r.RequestURI != "" && r.RequestURI != "/") {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	err := h.healthcheck(r.Context())
	if err != nil {
		h.logger.Warn("unhealthy: " + err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
