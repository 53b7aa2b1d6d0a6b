package server

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// fileServer serves the static files under path, redirecting
// path to path + "/" and caching files for an hour.
func fileServer(router chi.Router, path string, files fs.FS) {
	router.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)

	handler := http.StripPrefix(path, http.FileServer(http.FS(files)))
	router.Get(path+"/*", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		handler.ServeHTTP(w, r)
	})
}
