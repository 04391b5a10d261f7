package ipc

import "reel/internal/api"

// Fact mirrors the HTTP API fact DTO for internal IPC callers.
type Fact = api.Fact

// Script mirrors the HTTP API script DTO.
type Script = api.Script

// Video mirrors the HTTP API video DTO.
type Video = api.Video

// Published mirrors the HTTP API publish DTO.
type Published = api.Published

// BatchOutcome mirrors the HTTP API batch outcome DTO.
type BatchOutcome = api.BatchOutcome

// PingRequest checks daemon liveness.
type PingRequest struct{}

// PingResponse acknowledges a ping.
type PingResponse struct {
	PID int `json:"pid"`
}

// StopRequest asks the daemon process to shut down.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents daemon runtime and store information.
type StatusResponse struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid"`
	CatalogPath  string `json:"catalog_path"`
	LockPath     string `json:"lock_path"`
	FactCount    int    `json:"fact_count"`
	ScriptCount  int    `json:"script_count"`
	VideoCount   int    `json:"video_count"`
	PublishCount int    `json:"publish_count"`
}

// FactListRequest lists facts, optionally filtered by category.
type FactListRequest struct {
	Category string `json:"category"`
}

// FactListResponse contains fact records.
type FactListResponse struct {
	Facts []Fact `json:"facts"`
}

// FactCreateRequest appends one manually supplied fact.
type FactCreateRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// FactCreateResponse contains the created fact.
type FactCreateResponse struct {
	Fact Fact `json:"fact"`
}

// FactGenerateRequest draws facts from the curated pools.
type FactGenerateRequest struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

// FactGenerateResponse contains the generated facts.
type FactGenerateResponse struct {
	Facts []Fact `json:"facts"`
}

// ScriptListRequest lists scripts.
type ScriptListRequest struct{}

// ScriptListResponse contains script records.
type ScriptListResponse struct {
	Scripts []Script `json:"scripts"`
}

// ScriptGenerateRequest scripts a batch of facts.
type ScriptGenerateRequest struct {
	FactIDs      []int64 `json:"fact_ids"`
	Format       string  `json:"format"`
	TargetLength string  `json:"target_length"`
}

// ScriptGenerateResponse contains created scripts plus per-item outcomes.
type ScriptGenerateResponse struct {
	Scripts  []Script       `json:"scripts"`
	Outcomes []BatchOutcome `json:"outcomes"`
}

// VideoListRequest lists videos, optionally filtered by status.
type VideoListRequest struct {
	Status string `json:"status"`
}

// VideoListResponse contains video records.
type VideoListResponse struct {
	Videos []Video `json:"videos"`
}

// VideoAssembleRequest renders a batch of scripts.
type VideoAssembleRequest struct {
	ScriptIDs   []int64 `json:"script_ids"`
	Resolution  string  `json:"resolution"`
	VoiceType   string  `json:"voice_type"`
	VisualStyle string  `json:"visual_style"`
}

// VideoAssembleResponse contains created videos plus per-item outcomes.
type VideoAssembleResponse struct {
	Videos   []Video        `json:"videos"`
	Outcomes []BatchOutcome `json:"outcomes"`
}

// PublishRequest publishes a batch of videos.
type PublishRequest struct {
	VideoIDs []int64 `json:"video_ids"`
	Privacy  string  `json:"privacy"`
	Force    bool    `json:"force"`
}

// PublishResponse contains publish records plus per-item outcomes.
type PublishResponse struct {
	Published []Published    `json:"published"`
	Outcomes  []BatchOutcome `json:"outcomes"`
}

// PublishedListRequest lists publish records.
type PublishedListRequest struct{}

// PublishedListResponse contains publish records.
type PublishedListResponse struct {
	Published []Published `json:"published"`
}

// PipelineRunRequest drives a full fact-to-published run.
type PipelineRunRequest struct {
	FactCount    int      `json:"fact_count"`
	Categories   []string `json:"categories"`
	Format       string   `json:"format"`
	TargetLength string   `json:"target_length"`
	Resolution   string   `json:"resolution"`
	VoiceType    string   `json:"voice_type"`
	VisualStyle  string   `json:"visual_style"`
	Publish      bool     `json:"publish"`
	Privacy      string   `json:"privacy"`
}

// PipelineRunResponse reports every stage of a pipeline run.
type PipelineRunResponse struct {
	Facts           []Fact         `json:"facts"`
	Scripts         []Script       `json:"scripts"`
	Videos          []Video        `json:"videos"`
	Published       []Published    `json:"published"`
	ScriptOutcomes  []BatchOutcome `json:"script_outcomes"`
	VideoOutcomes   []BatchOutcome `json:"video_outcomes"`
	PublishOutcomes []BatchOutcome `json:"publish_outcomes"`
	DurationSeconds float64        `json:"duration_seconds"`
}

// DatabaseHealthRequest fetches catalog diagnostics.
type DatabaseHealthRequest struct{}

// DatabaseHealthResponse reports catalog database condition.
type DatabaseHealthResponse struct {
	DBPath           string   `json:"db_path"`
	DatabaseExists   bool     `json:"database_exists"`
	DatabaseReadable bool     `json:"database_readable"`
	SchemaVersion    string   `json:"schema_version"`
	TablesPresent    []string `json:"tables_present"`
	MissingTables    []string `json:"missing_tables"`
	IntegrityCheck   bool     `json:"integrity_check"`
	TotalRecords     int      `json:"total_records"`
	Error            string   `json:"error"`
}

// TestNotificationRequest triggers a test notification.
type TestNotificationRequest struct{}

// TestNotificationResponse reports whether the notification was sent.
type TestNotificationResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}
