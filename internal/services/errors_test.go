package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapCarriesMarkerAndDetail(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(ErrNotFound, "videos", "get", "video does not exist", cause)

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected wrapped error to match marker")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped error to preserve cause")
	}
	for _, part := range []string{"videos", "get", "video does not exist"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("expected %q in %q", part, err.Error())
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatal("expected nil marker to default to transient")
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}

func TestKindClassification(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{Wrap(ErrValidation, "facts", "generate", "bad count", nil), "validation"},
		{Wrap(ErrNotFound, "facts", "get", "missing", nil), "not_found"},
		{Wrap(ErrAlreadyPublished, "publish", "publish", "duplicate", nil), "already_published"},
		{Wrap(ErrPublish, "publish", "upload", "rejected", nil), "publish"},
		{Wrap(ErrExternalTool, "videos", "render", "crashed", nil), "external_tool"},
		{Wrap(ErrConfiguration, "daemon", "init", "bad path", nil), "configuration"},
		{errors.New("anything else"), "transient"},
	}
	for _, tc := range cases {
		if got := Kind(tc.err); got != tc.want {
			t.Fatalf("Kind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestContextAnnotations(t *testing.T) {
	ctx := context.Background()

	if _, ok := RecordIDFromContext(ctx); ok {
		t.Fatal("expected no record id on bare context")
	}

	ctx = WithRecordID(ctx, 42)
	ctx = WithStage(ctx, "videos")
	ctx = WithRequestID(ctx, "req-1")

	if id, ok := RecordIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("record id = %d, ok = %v", id, ok)
	}
	if stage, ok := StageFromContext(ctx); !ok || stage != "videos" {
		t.Fatalf("stage = %q, ok = %v", stage, ok)
	}
	if rid, ok := RequestIDFromContext(ctx); !ok || rid != "req-1" {
		t.Fatalf("request id = %q, ok = %v", rid, ok)
	}

	// Empty values do not annotate.
	base := context.Background()
	if _, ok := StageFromContext(WithStage(base, "")); ok {
		t.Fatal("expected empty stage to be dropped")
	}
	if _, ok := RequestIDFromContext(WithRequestID(base, "")); ok {
		t.Fatal("expected empty request id to be dropped")
	}
}
