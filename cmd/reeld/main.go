package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/daemon"
	"reel/internal/ipc"
	"reel/internal/logging"
)

func main() {
	var configFlag string
	var socketFlag string
	flag.StringVar(&configFlag, "config", "", "configuration file path")
	flag.StringVar(&socketFlag, "socket", "", "IPC socket path")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("ensure directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := catalog.NewStore(cfg)
	if err != nil {
		logger.Error("create catalog store", logging.Error(err))
		return
	}
	if err := store.Open(ctx); err != nil {
		logger.Error("open catalog store", logging.Error(err))
		return
	}

	d, err := daemon.New(cfg, store, logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		return
	}
	defer d.Close()

	pidPath, err := writePIDFile(cfg)
	if err != nil {
		logger.Error("write pid file", logging.Error(err))
		return
	}
	defer removePIDFile(pidPath)

	socketPath := socketFlag
	if socketPath == "" {
		socketPath = buildSocketPath(cfg)
	}
	ipcServer, err := ipc.NewServer(ctx, socketPath, d, logger, cancel)
	if err != nil {
		logger.Error("start IPC server", logging.Error(err))
		return
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start", logging.Error(err))
		return
	}

	<-ctx.Done()
	logger.Info("reeld shutting down")
	d.Stop()
}
