package cmd

import (
	"errors"
	"exercisetracker/internal/config"
	"exercisetracker/internal/core"
	"exercisetracker/internal/db"
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/http/payload"
	"exercisetracker/internal/http/server"
	"exercisetracker/internal/http/site"
	"exercisetracker/internal/metrics"
	"exercisetracker/internal/repository"
	"exercisetracker/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		logger := log.NewZapLogger("exercisetracker", log.ParseLevel(""))
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("exercisetracker", log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer closeDB(logger, dbConn)

	// repository
	repo := repository.NewExerciseRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// tracker
	tracker := core.NewTracker(logger, repo)

	// handlers
	trackerHlr := handler.NewTrackerHandler(
		logger,
		payload.Decoder{},
		tracker)
	healthHlr := handler.NewHealthHandler(logger, dbConn)

	// metrics
	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.CreateUser, trackerHlr.HandleCreateUser)
	mux.HandleFunc(handler.ListUsers, trackerHlr.HandleListUsers)
	mux.HandleFunc(handler.LogExercise, trackerHlr.HandleLogExercise)
	mux.HandleFunc(handler.GetLogs, trackerHlr.HandleGetLogs)
	mux.HandleFunc(handler.Health, healthHlr.HandleHealth)
	mux.Handle(metrics.Route, metrics.Handler(reg))
	site.Register(mux)

	// middleware, the metrics one has to wrap the mux to see route patterns
	hdlr := middleware.NewMetricsMiddleware(httpMetrics).Instrument(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRecoveryMiddleware(logger).Recover(hdlr)
	hdlr = middleware.NewCORSMiddleware(cfg.CORSOrigin).CORS(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Addr(), cfg.ShutdownTimeout)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}

func closeDB(logger *zap.SugaredLogger, conn *db.GormDB) {
	if err := conn.Close(); err != nil {
		logger.Errorw("failed to close database connection", "error", err)
	}
}
