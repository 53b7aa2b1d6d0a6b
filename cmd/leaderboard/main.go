package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/checker-network/leaderboard/internal/backup"
	"github.com/checker-network/leaderboard/internal/config"
	"github.com/checker-network/leaderboard/internal/data"
	"github.com/checker-network/leaderboard/internal/health"
	"github.com/checker-network/leaderboard/internal/healthchecksio"
	"github.com/checker-network/leaderboard/internal/leaderboard"
	"github.com/checker-network/leaderboard/internal/models"
	"github.com/checker-network/leaderboard/internal/noop"
	jsonpersistence "github.com/checker-network/leaderboard/internal/persistence/json"
	sqlitepersistence "github.com/checker-network/leaderboard/internal/persistence/sqlite"
	"github.com/checker-network/leaderboard/internal/render"
	"github.com/checker-network/leaderboard/internal/resolver"
	"github.com/checker-network/leaderboard/internal/server"
	"github.com/checker-network/leaderboard/internal/shoutrrr"
	"github.com/checker-network/leaderboard/internal/stats"
	"github.com/checker-network/leaderboard/internal/update"
	"github.com/joho/godotenv"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("loading .env file: " + err.Error())
	}

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status

			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		case "print":
			return printLeaderboard(ctx, reader, logger, timeNow)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}
	config.Paths.ApplyUmask()

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Decimals:     config.Render.Decimals,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	persistentDB, err := createPersistentDatabase(config.Paths)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}

	client, dnsResolver, err := newHTTPClient(config)
	if err != nil {
		return err
	}
	defer client.CloseIdleConnections()

	err = health.CheckHTTP(ctx, client, *config.API.BaseURL)
	if err != nil {
		logger.Warn(err.Error())
	}

	page := render.NewPage()
	db := data.NewDatabase(page.State(), persistentDB)

	builder := newBuilder(config, client, logger, timeNow)
	renderer := render.New(render.Settings{
		Style:        render.Style(config.Render.Style),
		Mode:         render.Mode(config.Render.Mode),
		Decimals:     *config.Render.Decimals,
		PrependLimit: *config.Render.PrependLimit,
	})

	schedule, err := update.NewSchedule(*config.Update.Period, *config.Update.Schedule)
	if err != nil {
		return fmt.Errorf("creating update schedule: %w", err)
	}

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)

	updaterLogger := logger.New(log.SetComponent("updater"))
	updaterService := update.NewService(builder, renderer, page, db, shoutrrrClient,
		hioClient, schedule, updaterLogger, timeNow)

	healthServer, err := createHealthServer(db, dnsResolver, config, logger, timeNow)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	server, err := createServer(config, logger, db, updaterService, buildInfo)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	var backupService goservices.Service
	backupLogger := logger.New(log.SetComponent("backup"))
	backupInputs := []string{config.Paths.SnapshotsFile()}
	if *config.Networks.File != "" {
		backupInputs = append(backupInputs, *config.Networks.File)
	}
	backupService = backup.New(*config.Backup.Period, backup.NewZiper(), backupInputs,
		*config.Backup.Directory, backupLogger, timeNow)
	backupService, err = goservices.NewRestarter(goservices.RestarterSettings{Service: backupService})
	if err != nil {
		return fmt.Errorf("creating backup restarter: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{db, updaterService, healthServer, server, backupService},
		ServicesStop:  []goservices.Service{server, healthServer, updaterService, backupService, db},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	shoutrrrClient.NotifyLaunched(builder.Networks())

	select {
	case <-ctx.Done():
	case err = <-runError:
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	exitHealthchecksio(hioClient, logger, healthchecksio.Exit0)
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "checker-network",
		Repository: "leaderboard",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

//nolint:ireturn
func createPersistentDatabase(paths config.Paths) (
	db data.PersistentDatabase, err error) {
	switch paths.Storage {
	case "sqlite":
		db, err = sqlitepersistence.NewDatabase(*paths.DataDir)
	default:
		db, err = jsonpersistence.NewDatabase(*paths.DataDir, jsonpersistence.DefaultMaxSnapshots)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s database in %s: %w", paths.Storage,
			filepath.Clean(*paths.DataDir), err)
	}
	return db, nil
}

// newHTTPClient creates the client for outbound requests, resolving
// hosts with the configured DNS resolver.
func newHTTPClient(config config.Config) (client *http.Client,
	dnsResolver *resolver.Resolver, err error) {
	dnsResolver, err = resolver.New(resolver.Settings{
		Address: config.Resolver.Address,
		Timeout: config.Resolver.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating resolver: %w", err)
	}

	client, err = stats.NewHTTPClient(config.Client.Timeout,
		*config.Client.SOCKS5Proxy, dnsResolver.Dialer())
	if err != nil {
		return nil, nil, fmt.Errorf("creating HTTP client: %w", err)
	}
	return client, dnsResolver, nil
}

func newBuilder(config config.Config, client *http.Client,
	logger log.LoggerInterface, timeNow func() time.Time) *leaderboard.Builder {
	urlResolver := stats.NewURLResolver(*config.API.BaseURL, config.LegacyURLs())
	statsLogger := logger.New(log.SetComponent("stats"))
	statsClient := stats.New(client, urlResolver, *config.API.WindowDays, statsLogger, timeNow)
	builderLogger := logger.New(log.SetComponent("leaderboard"))
	return leaderboard.NewBuilder(statsClient, config.Networks.List, builderLogger, timeNow)
}

// printLeaderboard builds the leaderboard once and prints it as a table,
// without starting any service.
func printLeaderboard(ctx context.Context, reader *reader.Reader,
	logger log.LoggerInterface, timeNow func() time.Time) (err error) {
	var config config.Config
	err = config.Read(reader, logger)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return fmt.Errorf("settings validation: %w", err)
	}
	logger.Patch(config.Logger.ToOptions()...)

	client, _, err := newHTTPClient(config)
	if err != nil {
		return err
	}
	defer client.CloseIdleConnections()

	board, err := newBuilder(config, client, logger, timeNow).Build(ctx)
	render.WriteTable(os.Stdout, board, *config.Render.Decimals, true)
	return err
}

func exitHealthchecksio(hioClient *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state)
	if err != nil {
		logger.Error(err.Error())
	}
}

//nolint:ireturn
func createHealthServer(db health.LastCycler, resolver health.LookupIPer,
	config config.Config, logger log.LoggerInterface, timeNow func() time.Time) (
	healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("healthcheck server"), nil
	}

	// A cycle is stale once three periods went by without any cycle.
	var maxAge time.Duration
	if *config.Update.Schedule == "" {
		const periodsBeforeStale = 3
		maxAge = periodsBeforeStale * *config.Update.Period
	}

	isHealthy := health.MakeIsHealthy(db, resolver, config.API.Hosts(), maxAge, timeNow)
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	return health.NewServer(*config.Health.ServerAddress, healthLogger, isHealthy)
}

//nolint:ireturn
func createServer(config config.Config, logger log.LoggerInterface,
	db server.Database, updaterService server.UpdateForcer,
	buildInfo models.BuildInformation) (
	service goservices.Service, err error) {
	if !*config.Server.Enabled {
		return noop.New("server"), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(server.Settings{
		Address:       config.Server.ListeningAddress,
		RootURL:       config.Server.RootURL,
		Database:      db,
		Updater:       updaterService,
		Logger:        serverLogger,
		RefreshPeriod: *config.Update.Period,
		Decimals:      *config.Render.Decimals,
		BuildInfo:     buildInfo,
	})
}
