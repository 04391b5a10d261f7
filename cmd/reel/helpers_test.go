package main

import (
	"testing"

	"reel/internal/ipc"
)

func TestParseIDArgs(t *testing.T) {
	ids, err := parseIDArgs([]string{"3", " 7 ", "12"})
	if err != nil {
		t.Fatalf("parseIDArgs: %v", err)
	}
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 7 || ids[2] != 12 {
		t.Fatalf("unexpected ids %v", ids)
	}

	if _, err := parseIDArgs([]string{"abc"}); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if _, err := parseIDArgs([]string{"0"}); err == nil {
		t.Fatal("expected error for non-positive id")
	}
	if _, err := parseIDArgs(nil); err == nil {
		t.Fatal("expected error for empty args")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := truncate("abcdefghij", 4); got != "abcd..." {
		t.Fatalf("expected truncated string, got %q", got)
	}
}

func TestBuildVideoRowsShowsRenderError(t *testing.T) {
	rows := buildVideoRows([]ipc.Video{
		{ID: 1, ScriptID: 2, Title: "Did You Know: A", Status: "Failed", RenderError: "renderer exploded"},
		{ID: 2, ScriptID: 3, Title: "Did You Know: B", Status: "Ready", ArtifactPath: "/tmp/video.mp4"},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][6] != "renderer exploded" {
		t.Fatalf("expected render error in detail column, got %q", rows[0][6])
	}
	if rows[1][6] != "/tmp/video.mp4" {
		t.Fatalf("expected artifact path in detail column, got %q", rows[1][6])
	}
}
