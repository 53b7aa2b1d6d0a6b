package server

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
)

//go:embed ui/index.html ui/static
var uiFS embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type handlers struct {
	// Objects
	db            Database
	updater       UpdateForcer
	indexTemplate *template.Template
	logger        Logger
	// Settings
	rootURL        string
	refreshSeconds int
	decimals       uint
	buildInfo      models.BuildInformation
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(settings Settings) http.Handler {
	indexTemplate := template.Must(template.ParseFS(uiFS, "ui/index.html"))

	handlers := &handlers{
		db:             settings.Database,
		updater:        settings.Updater,
		indexTemplate:  indexTemplate,
		logger:         settings.Logger,
		rootURL:        settings.RootURL,
		refreshSeconds: int(settings.RefreshPeriod / time.Second),
		decimals:       settings.Decimals,
		buildInfo:      settings.BuildInfo,
		timeNow:        time.Now,
	}

	rootURL := settings.RootURL
	router := chi.NewRouter()
	router.Use(middleware.CleanPath, middleware.Recoverer, logMiddleware(settings.Logger))

	router.Get(rootURL+"/", handlers.index)
	router.Get(rootURL+"/api/v1/leaderboard", handlers.leaderboard)
	router.Get(rootURL+"/api/v1/history", handlers.history)
	router.Get(rootURL+"/api/v1/version", handlers.version)
	router.Post(rootURL+"/api/v1/update", handlers.update)
	router.Get(rootURL+"/chart.png", handlers.chart)

	staticFS, err := fs.Sub(uiFS, "ui/static")
	if err != nil {
		panic(err) // embedded directory always exists
	}
	fileServer(router, rootURL+"/static", staticFS)

	return router
}

func logMiddleware(logger Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(wrapped, r)
			logger.Debug(r.Method + " " + r.URL.Path + " " +
				strconv.Itoa(wrapped.Status()) + " in " + time.Since(start).String())
		})
	}
}
