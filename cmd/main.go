package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crmviewer/adapters/myredis"
	"crmviewer/adapters/restclient"
	"crmviewer/domain"
	"crmviewer/handlers"
	"crmviewer/interfaces"
	"crmviewer/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

const sessionKeyPrefix = "crmviewer:session"

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting crmviewer service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, config.LogLevel)
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"api_version", config.APIVersion,
		"target_app", config.Repository.TargetApp,
		"policy", config.Repository.Policy,
	)

	var sessionStore interfaces.Cache[domain.Session]
	{
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr, myredis.WithTimeouts(5*time.Second))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		if err := myredis.Ping(context.Background(), redisClient, 5*time.Second); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		sessionStore = myredis.NewJSONCache[domain.Session](redisClient, sessionKeyPrefix)
	}

	var queries *service.QueryBuilder
	{
		queries, err = service.NewQueryBuilder(config.APIVersion)
		if err != nil {
			level.Error(logger).Log("msg", "Invalid API version", "err", err)
			os.Exit(1)
		}
	}

	// Session handover and client
	clients := service.NewClientHolder()
	var sessions *service.SessionManager
	{
		factory := restclient.NewClientFactory(&http.Client{Timeout: config.HTTPTimeout}, logger)
		sessions = service.NewSessionManager(sessionStore, clients, factory, config.SessionTTL, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		restored, err := sessions.Restore(ctx)
		cancel()
		if err != nil {
			level.Warn(logger).Log("msg", "Failed to restore session", "err", err)
		}
		level.Info(logger).Log("msg", "Session restore finished", "restored", restored)
	}

	repository := service.NewRepository(clients, queries, config.Repository, logger)
	state := service.NewStateHolder(logger)

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		validator, err := handlers.NewRequestValidator()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		e.Use(validator)
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(repository, sessions, state, logger))
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			quit <- syscall.SIGTERM
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	// Wait for running fetches
	fetchesDone := make(chan struct{})
	go func() {
		state.Wait()
		close(fetchesDone)
	}()
	select {
	case <-fetchesDone:
	case <-shutdownCtx.Done():
		level.Warn(logger).Log("msg", "Fetches still running at shutdown")
	}

	level.Info(logger).Log("msg", "Server stopped")
}
