package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"reel/internal/config"
)

func buildSocketPath(cfg *config.Config) string {
	if cfg == nil {
		return filepath.Join("", "reeld.sock")
	}
	return filepath.Join(cfg.Paths.LogDir, "reeld.sock")
}

// writePIDFile records the daemon pid so the CLI can force-terminate a
// wedged process. Returns the path written.
func writePIDFile(cfg *config.Config) (string, error) {
	path := filepath.Join(cfg.Paths.LogDir, "reeld.pid")
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write pid file %q: %w", path, err)
	}
	return path, nil
}

func removePIDFile(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
