package ipc_test

import (
	"context"
	"path/filepath"
	"testing"

	"reel/internal/daemon"
	"reel/internal/ipc"
	"reel/internal/testsupport"
)

func newClient(t *testing.T) *ipc.Client {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	d, err := daemon.New(cfg, store, nil)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	socket := filepath.Join(t.TempDir(), "reeld.sock")
	server, err := ipc.NewServer(context.Background(), socket, d, nil, nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	server.Serve()
	t.Cleanup(server.Close)

	client, err := ipc.Dial(socket)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestPingRoundTrip(t *testing.T) {
	client := newClient(t)

	resp, err := client.Ping()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if resp.PID == 0 {
		t.Fatal("expected non-zero pid")
	}
}

func TestFactGenerateOverIPC(t *testing.T) {
	client := newClient(t)

	generated, err := client.FactGenerate(2, []string{"Technology"})
	if err != nil {
		t.Fatalf("FactGenerate: %v", err)
	}
	if len(generated.Facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(generated.Facts))
	}

	listed, err := client.FactList("Technology")
	if err != nil {
		t.Fatalf("FactList: %v", err)
	}
	if len(listed.Facts) != 2 {
		t.Fatalf("expected 2 listed facts, got %d", len(listed.Facts))
	}

	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.FactCount != 2 {
		t.Fatalf("expected fact count 2, got %d", status.FactCount)
	}
}

func TestPipelineRunOverIPC(t *testing.T) {
	client := newClient(t)

	resp, err := client.PipelineRun(ipc.PipelineRunRequest{
		FactCount:  2,
		Categories: []string{"Space"},
		Publish:    true,
		Privacy:    "Private",
	})
	if err != nil {
		t.Fatalf("PipelineRun: %v", err)
	}
	if len(resp.Published) != 2 {
		t.Fatalf("expected 2 published, got %d", len(resp.Published))
	}
	for _, pub := range resp.Published {
		if pub.Privacy != "Private" {
			t.Fatalf("expected Private privacy, got %q", pub.Privacy)
		}
	}

	health, err := client.DatabaseHealth()
	if err != nil {
		t.Fatalf("DatabaseHealth: %v", err)
	}
	if len(health.MissingTables) != 0 {
		t.Fatalf("expected no missing tables, got %v", health.MissingTables)
	}
}
