package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	minioarchive "screencast/internal/adapters/archive/minio"
	natsbroker "screencast/internal/adapters/eventbroker/nats"
	chirouter "screencast/internal/adapters/handlers/http/chi"
	libraryhandler "screencast/internal/adapters/handlers/http/chi/library"
	recordinghandler "screencast/internal/adapters/handlers/http/chi/recording"
	"screencast/internal/adapters/storage/fs"
	"screencast/internal/adapters/transcoder/ffmpeg"
	"screencast/internal/config"
	"screencast/internal/core/port"
	"screencast/internal/core/service/cleanup"
	"screencast/internal/core/service/library"
	"screencast/internal/core/service/recording"
	"sync"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	//storage
	store, err := fs.NewStore(cfg.Storage.Dir, logger)
	if err != nil {
		logger.Error("failed to init storage", "error", err)
		os.Exit(1)
	}
	logger.Info("storage directory ready", "dir", cfg.Storage.Dir)

	transcoder := ffmpeg.NewTranscoder(cfg.Transcode, logger)
	if !transcoder.Available(ctx) {
		logger.Warn("transcoder binary not found, recordings stay in raw format", "path", cfg.Transcode.FFmpegPath)
	}

	//optional adapters
	var archiver port.ArtifactArchiver
	if cfg.Archive.Enabled() {
		minioArchiver, archErr := minioarchive.NewArchiver(ctx, cfg.Archive, logger)
		if archErr != nil {
			logger.Error("failed to init archive", "error", archErr)
			os.Exit(1)
		}
		archiver = minioArchiver
		logger.Info("artifact archive enabled", "endpoint", cfg.Archive.Endpoint, "bucket", cfg.Archive.Bucket)
	}

	var publisher port.EventPublisher
	if cfg.NATS.Enabled() {
		natsPublisher, natsErr := natsbroker.NewPublisher(ctx, cfg.NATS, logger)
		if natsErr != nil {
			logger.Error("failed to init event publisher", "error", natsErr)
			os.Exit(1)
		}
		publisher = natsPublisher
		defer func() {
			if err := natsPublisher.Close(); err != nil {
				logger.Error("failed to close event publisher", "error", err)
			}
		}()
		logger.Info("finalize events enabled", "subject", cfg.NATS.Subject)
	}

	//services
	recordingService := recording.NewRecordingService(store, transcoder, archiver, publisher, logger)
	libraryService := library.NewLibraryService(store, logger)
	cleanupService := cleanup.NewCleanupService(store, logger)

	//http
	recordingHandler := recordinghandler.NewRecordingHandler(recordingService, logger)
	libraryHandler := libraryhandler.NewLibraryHandler(libraryService, logger)

	router := chirouter.NewRouter(logger, recordingHandler, libraryHandler)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	if cfg.Cleanup.Enabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			initCleanupTask(ctx, cleanupService, cfg.Cleanup, logger)
		}()
	}

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initCleanupTask(ctx context.Context, service port.CleanupService, cfg config.CleanupConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.Every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", cfg.Every, "partial_ttl", cfg.PartialTTL)

	for {
		select {
		case <-ticker.C:
			err := service.CleanupStalePartials(ctx, time.Now().Add(-cfg.PartialTTL))
			if err != nil {
				logger.Error("failed to cleanup stale partials", "error", err)
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}
}
