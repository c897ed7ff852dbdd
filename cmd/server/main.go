package main

import (
	"context"
	"errors"
	"file-server/infrastructure/http/server"
	"file-server/internal"
	"file-server/repositories"
	"file-server/resolver"
	"file-server/runtime/workers"
	"file-server/services"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	goruntime "runtime"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "File server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and returns once the server has shut down,
// so that deferred cleanups (Badger, base directory handle) always run.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	goruntime.GOMAXPROCS(config.NumberOfWorkers)

	// 2. Base directory
	pathResolver, err := resolver.NewPathResolver(config.BaseDir)
	if err != nil {
		return exitConfig, err
	}
	downloadService, err := services.NewDownloadService(logger, pathResolver)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = downloadService.Close() }()

	// 3. Audit database (BadgerDB)
	ctx := context.Background()
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, DownloadMapper)
	}

	// 4. Background workers
	repository := repositories.NewDownloadRepository(db, logger, config.AuditRetention)
	auditWorker := workers.NewDownloadAuditWorker(logger, repository, config.AuditBufferSize)
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(auditWorker)

	workersDone := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(workersDone)
	}()
	// Workers outlive the HTTP server so that the last records get stored
	defer func() {
		supervisor.Stop()
		<-workersDone
	}()

	// 5. HTTP server
	accessLog, closeAccessLog, err := openAccessLog(config.AccessLog)
	if err != nil {
		return exitConfig, err
	}
	defer closeAccessLog()

	downloadServer := server.NewDownloadServer(logger, downloadService, auditWorker, config.ChunkSizeKb)
	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           server.NewRouter(logger, downloadServer, accessLog),
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	listener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", httpServer.Addr, err)
	}

	// 6. Context & Signals
	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting file server", "address", httpServer.Addr, "base_dir", pathResolver.Base(),
			"workers", config.NumberOfWorkers, "at", time.Now().UTC())
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-signalCtx.Done():
		logger.Info("Shutting down gracefully...")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}

// openAccessLog appends to path, an empty path disables the access log.
func openAccessLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open access log: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
