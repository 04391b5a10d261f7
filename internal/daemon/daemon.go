package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/facts"
	"reel/internal/logging"
	"reel/internal/notifications"
	"reel/internal/pipeline"
	"reel/internal/publish"
	"reel/internal/scripts"
	"reel/internal/videos"
)

// Daemon coordinates the pipeline services and enforces single-instance
// execution.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *catalog.Store

	facts        *facts.Service
	scripts      *scripts.Service
	videos       *videos.Service
	publish      *publish.Service
	orchestrator *pipeline.Orchestrator
	notifier     notifications.Service

	lockPath string
	lock     *flock.Flock

	api *apiServer

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	CatalogPath  string
	LockFilePath string
	Stats        catalog.StoreStats
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, store *catalog.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	logDir, err := config.ExpandPath(cfg.Paths.LogDir)
	if err != nil {
		return nil, fmt.Errorf("expand log directory: %w", err)
	}
	lockPath := filepath.Join(logDir, "reeld.lock")

	notifier := notifications.NewService(cfg)
	factSvc := facts.NewService(store, cfg, logger, nil)
	scriptSvc := scripts.NewService(store, cfg, nil, logger)
	videoSvc, err := videos.NewService(store, cfg, nil, logger)
	if err != nil {
		return nil, err
	}
	publishSvc := publish.NewService(store, cfg, nil, logger)

	d := &Daemon{
		cfg:          cfg,
		logger:       logger.With(logging.String(logging.FieldComponent, "daemon")),
		store:        store,
		facts:        factSvc,
		scripts:      scriptSvc,
		videos:       videoSvc,
		publish:      publishSvc,
		orchestrator: pipeline.NewOrchestrator(factSvc, scriptSvc, videoSvc, publishSvc, notifier, logger),
		notifier:     notifier,
		lockPath:     lockPath,
		lock:         flock.New(lockPath),
	}
	d.api = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock, seeds sample data, and begins serving.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another reel daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)

	if err := d.facts.Seed(d.ctx); err != nil {
		d.logger.Warn("seeding sample facts failed", logging.Error(err))
	}

	if d.api != nil {
		if err := d.api.start(d.ctx); err != nil {
			_ = d.lock.Unlock()
			d.cancel()
			d.ctx = nil
			d.cancel = nil
			return err
		}
	}

	d.running.Store(true)
	d.logger.Info("reel daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop halts serving and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.api != nil {
		d.api.stop()
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("reel daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Facts exposes the fact service.
func (d *Daemon) Facts() *facts.Service { return d.facts }

// Scripts exposes the script service.
func (d *Daemon) Scripts() *scripts.Service { return d.scripts }

// Videos exposes the video service.
func (d *Daemon) Videos() *videos.Service { return d.videos }

// Publish exposes the publish service.
func (d *Daemon) Publish() *publish.Service { return d.publish }

// Pipeline exposes the orchestrator.
func (d *Daemon) Pipeline() *pipeline.Orchestrator { return d.orchestrator }

// DatabaseHealth returns detailed catalog diagnostics.
func (d *Daemon) DatabaseHealth(ctx context.Context) catalog.DatabaseHealth {
	return d.store.CheckHealth(ctx)
}

// TestNotification triggers a test notification using the current
// configuration.
func (d *Daemon) TestNotification(ctx context.Context) error {
	return d.notifier.TestNotification(ctx)
}

// Status returns the current daemon status.
func (d *Daemon) Status(ctx context.Context) Status {
	stats, err := d.store.Stats(ctx)
	if err != nil {
		d.logger.Warn("reading store stats failed", logging.Error(err))
	}
	return Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		CatalogPath:  d.store.DBPath(),
		LockFilePath: d.lockPath,
		Stats:        stats,
	}
}
