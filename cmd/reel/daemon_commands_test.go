package main

import (
	"testing"
)

func TestStatusWithRunningDaemon(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Daemon")
	requireContains(t, out, "Running")
	requireContains(t, out, "Catalog Records")
	requireContains(t, out, "Facts")
}

func TestCatalogHealthCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"catalog-health"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("catalog-health: %v", err)
	}
	requireContains(t, out, "Catalog Health")
	requireContains(t, out, "facts")
	requireContains(t, out, "[OK]")
}

func TestScriptFormatsOffline(t *testing.T) {
	// Listing formats needs neither config nor a running daemon.
	out, _, err := runCLI(t, []string{"scripts", "formats"}, "/nonexistent/socket", "")
	if err != nil {
		t.Fatalf("scripts formats: %v", err)
	}
	requireContains(t, out, "Conversational")
	requireContains(t, out, "Educational")
	requireContains(t, out, "Entertaining")
}

func TestVideoStylesOffline(t *testing.T) {
	out, _, err := runCLI(t, []string{"videos", "styles"}, "/nonexistent/socket", "")
	if err != nil {
		t.Fatalf("videos styles: %v", err)
	}
	requireContains(t, out, "standard")
	requireContains(t, out, "vibrant")
}
