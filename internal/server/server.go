package server

import (
	"strings"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address  string
	RootURL  string
	Database Database
	Updater  UpdateForcer
	Logger   Logger
	// RefreshPeriod is the period at which the page reloads itself,
	// and zero disables reloading.
	RefreshPeriod time.Duration
	Decimals      uint
	BuildInfo     models.BuildInformation
}

func New(settings Settings) (server *httpserver.Server, err error) {
	settings.RootURL = strings.TrimSuffix(settings.RootURL, "/")
	name := "server"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(settings),
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
