package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/fittrackhq/fittrack/internal"
	"github.com/fittrackhq/fittrack/internal/config"
	"github.com/fittrackhq/fittrack/internal/logging"
	"github.com/fittrackhq/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "fittrack-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	adminUsername := os.Getenv("FITTRACK_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("FITTRACK_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Errorf("admin username and password not set. use FITTRACK_ADMIN_USERNAME and FITTRACK_ADMIN_PASSWORD_HASH")
		adminUsername = "todo"
		adminPasswordHash = "$$2a$$14$$gPDY7P8qGduPi.OKoPKzM.N/MTyZpP.q2tmbprdHH.1jyw7fK3KfW"
	}

	mobileAppSecret := os.Getenv("FITTRACK_APP_SECRET")
	if mobileAppSecret == "" {
		log.Errorf("mobile app secret not set. use FITTRACK_APP_SECRET")
	}

	redisPassword := os.Getenv("FITTRACK_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITTRACK_REDIS_PASS")
	}

	insightsApiKey := os.Getenv("INSIGHTS_API_KEY")
	if insightsApiKey == "" {
		log.Warnln("insights API key not set, canned insights will be served. use INSIGHTS_API_KEY")
	}

	googleFitClientID := os.Getenv("GOOGLE_FIT_CLIENT_ID")
	googleFitClientSecret := os.Getenv("GOOGLE_FIT_CLIENT_SECRET")
	googleFitRefreshToken := os.Getenv("GOOGLE_FIT_REFRESH_TOKEN")
	if cfg.WearableSyncEnabled &&
		(googleFitClientID == "" || googleFitClientSecret == "" || googleFitRefreshToken == "") {
		log.Errorf("wearable sync enabled but provider credentials not set. use GOOGLE_FIT_CLIENT_ID, GOOGLE_FIT_CLIENT_SECRET and GOOGLE_FIT_REFRESH_TOKEN")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			MobileAppSecret:         mobileAppSecret,
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           redisPassword,
			InsightsApiKey:          insightsApiKey,
			GoogleFitClientID:       googleFitClientID,
			GoogleFitClientSecret:   googleFitClientSecret,
			GoogleFitRefreshToken:   googleFitRefreshToken,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	// go to sleep 🥱
	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
