package publish

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"reel/internal/catalog"
)

// UploadMetadata describes the video being uploaded.
type UploadMetadata struct {
	Title       string
	Description string
	Tags        []string
	Privacy     catalog.Privacy
}

// UploadResult identifies the uploaded video on the platform.
type UploadResult struct {
	ExternalID  string
	ExternalURL string
}

// Platform uploads an artifact to the external video service. Credential
// acquisition is the implementation's concern; callers never see tokens.
type Platform interface {
	Upload(ctx context.Context, artifactPath string, metadata UploadMetadata) (UploadResult, error)
}

// StubPlatform accepts any readable artifact and mints synthetic external
// identifiers. It stands in for a real platform client.
type StubPlatform struct {
	WatchBaseURL string
}

func (p *StubPlatform) Upload(ctx context.Context, artifactPath string, metadata UploadMetadata) (UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return UploadResult{}, err
	}
	if _, err := os.Stat(artifactPath); err != nil {
		return UploadResult{}, fmt.Errorf("artifact not readable: %w", err)
	}

	externalID := uuid.NewString()
	return UploadResult{
		ExternalID:  externalID,
		ExternalURL: fmt.Sprintf("%s/%s", p.WatchBaseURL, externalID),
	}, nil
}
