package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"sdg-knowledge/internal/activity"
	"sdg-knowledge/internal/client"
	"sdg-knowledge/internal/command"
	"sdg-knowledge/internal/config"
	"sdg-knowledge/internal/logging"
	"sdg-knowledge/internal/queue"
	"sdg-knowledge/internal/service"
	"sdg-knowledge/internal/session"
	"sdg-knowledge/internal/validator"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// drainTimeout bounds how long pending activity events may delay exit.
const drainTimeout = 3 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	flush := logging.InitSentry(cfg.SentryDSN, "sdgks@"+version)
	defer flush()

	validator.RegisterCustomValidators()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Session store
	var store session.Store
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		redisStore, err := session.NewRedisStore(cfg.RedisURI, cfg.SessionProfile)
		if err != nil {
			logrus.WithError(err).Error("Failed to connect to Redis session store")
			return 1
		}
		defer redisStore.Close()
		store = redisStore
	default:
		store = session.NewFileStore(cfg.SessionFile)
	}
	sessions := session.NewManager(store, cfg.APIURL)

	// API client
	api, err := client.New(cfg.APIURL, cfg.AuthScheme, cfg.HTTPTimeout, sessions.TokenSource(ctx))
	if err != nil {
		logrus.WithError(err).Error("Invalid API_URL")
		return 1
	}

	// Activity queue and processor
	activityQueue := queue.NewMemoryQueue(cfg.ActivityQueueSize)
	processor := queue.NewProcessor(activityQueue, api, cfg.ActivityWorkers)
	processor.Start(ctx)
	defer processor.Stop(drainTimeout)

	tracker := activity.NewTracker(processor, api)

	// Service layer
	app := &command.App{
		Auth:      service.NewAuthService(api, sessions),
		Profiles:  service.NewProfileService(api),
		Teams:     service.NewTeamService(api),
		Forms:     service.NewFormService(api, tracker),
		Search:    service.NewSearchService(api, sessions, tracker),
		Analytics: service.NewAnalyticsService(api),
		Pages:     tracker,
		Prompt:    command.NewTerminalPrompter(),
		Out:       os.Stdout,
		Location:  time.Local,
	}

	args := os.Args[1:]
	if err := command.Root(app).Execute(ctx, args); err != nil {
		command.Report(os.Stderr, err, args)
		return 1
	}
	return 0
}
