package videos

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"reel/internal/catalog"
)

// RenderSettings carries per-render options forwarded to the renderer.
type RenderSettings struct {
	Resolution  string
	VoiceType   string
	VisualStyle string
}

// RenderResult reports the outcome of one render call.
type RenderResult struct {
	OK           bool
	ArtifactPath string
	Error        string
}

// Renderer synthesizes a media artifact for a script. Implementations must
// honor context cancellation; render calls are made outside any store lock
// and bounded by the configured timeout.
type Renderer interface {
	Render(ctx context.Context, script *catalog.Script, title string, settings RenderSettings) (RenderResult, error)
}

// StyleInfo describes a visual style preset for listings.
type StyleInfo struct {
	Name        string
	Description string
}

// Styles lists the known visual style presets.
func Styles() []StyleInfo {
	return []StyleInfo{
		{Name: "standard", Description: "Clean, professional look with subtle animations"},
		{Name: "minimal", Description: "Simple, text-focused design with minimal distractions"},
		{Name: "vibrant", Description: "Colorful, energetic style with bold text and animations"},
		{Name: "educational", Description: "Focused on clarity with diagrams and explanatory elements"},
	}
}

// StubRenderer writes a placeholder artifact plus metadata and narration
// sidecars into the output directory. It stands in for a real synthesis
// backend and lets the rest of the pipeline run end to end.
type StubRenderer struct {
	OutputDir string
}

type artifactMetadata struct {
	Title             string            `json:"title"`
	Sections          []catalog.Section `json:"sections"`
	Style             string            `json:"style"`
	Resolution        string            `json:"resolution"`
	VoiceType         string            `json:"voiceType"`
	EstimatedDuration int               `json:"estimatedDuration"`
	CreatedAt         string            `json:"createdAt"`
}

func (r *StubRenderer) Render(ctx context.Context, script *catalog.Script, title string, settings RenderSettings) (RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return RenderResult{}, err
	}
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return RenderResult{OK: false, Error: fmt.Sprintf("create output directory: %v", err)}, nil
	}

	base := fmt.Sprintf("video_%d_%s", script.ID, uuid.NewString())
	artifactPath := filepath.Join(r.OutputDir, base+".mp4")

	placeholder := fmt.Sprintf("Placeholder artifact for: %s\nResolution: %s\nVoice: %s\nStyle: %s\n",
		title, settings.Resolution, settings.VoiceType, settings.VisualStyle)
	if err := os.WriteFile(artifactPath, []byte(placeholder), 0o644); err != nil {
		return RenderResult{OK: false, Error: fmt.Sprintf("write artifact: %v", err)}, nil
	}

	meta := artifactMetadata{
		Title:             title,
		Sections:          script.Sections,
		Style:             settings.VisualStyle,
		Resolution:        settings.Resolution,
		VoiceType:         settings.VoiceType,
		EstimatedDuration: script.EstimatedDuration,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
	encoded, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return RenderResult{OK: false, Error: fmt.Sprintf("encode metadata: %v", err)}, nil
	}
	if err := os.WriteFile(filepath.Join(r.OutputDir, base+"_metadata.json"), encoded, 0o644); err != nil {
		return RenderResult{OK: false, Error: fmt.Sprintf("write metadata: %v", err)}, nil
	}

	var narration strings.Builder
	fmt.Fprintf(&narration, "%s\n\n", title)
	for _, section := range script.Sections {
		fmt.Fprintf(&narration, "[%s] (%ds)\n%s\n\n", section.Type, section.Duration, section.Text)
	}
	if err := os.WriteFile(filepath.Join(r.OutputDir, base+"_script.txt"), []byte(narration.String()), 0o644); err != nil {
		return RenderResult{OK: false, Error: fmt.Sprintf("write script text: %v", err)}, nil
	}

	return RenderResult{OK: true, ArtifactPath: artifactPath}, nil
}
