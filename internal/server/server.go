// Package server boots the application: configuration, database, cache,
// storage, the middleware stack and the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitrinehq/vitrine/app/routes"
	"github.com/vitrinehq/vitrine/config"
	"github.com/vitrinehq/vitrine/pkg/cache"
	"github.com/vitrinehq/vitrine/pkg/database"
	"github.com/vitrinehq/vitrine/pkg/logger"
	"github.com/vitrinehq/vitrine/pkg/metrics"
	"github.com/vitrinehq/vitrine/pkg/middleware"
	"github.com/vitrinehq/vitrine/pkg/reqid"
	"github.com/vitrinehq/vitrine/pkg/router"
	"github.com/vitrinehq/vitrine/pkg/session"
	"github.com/vitrinehq/vitrine/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Start boots every subsystem and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	var mongoSink *logger.MongoHandler
	if uri := config.LogMongoURI(); uri != "" {
		sink, err := logger.EnableMongo(uri, config.LogMongoDatabase())
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			mongoSink = sink
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		// Sessions and flash messages degrade to no-ops without Redis.
		logger.Warn("cache unavailable", "error", err)
	}

	storage.Connect()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           buildRouter().Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if mongoSink != nil {
		mongoSink.Close() //nolint:errcheck
	}
	return err
}

// buildRouter assembles the middleware stack and mounts all routes.
// Recovery sits above everything except metrics so panics still get counted.
func buildRouter() *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(300, time.Minute))

	routes.Register(r)

	r.Get("/metrics", "metrics", metrics.Handler())

	// Serve locally stored uploads under /storage/.
	if root := storage.LocalRoot(); root != "" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(root)))
		r.Mount("/storage", fs)
	}

	return r
}
