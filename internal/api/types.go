package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Fact describes a fact record in a transport-friendly format.
type Fact struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Section is one timed narration segment of a script.
type Section struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Duration int    `json:"duration"`
}

// Script describes a script record in a transport-friendly format.
type Script struct {
	ID                int64     `json:"id"`
	FactID            int64     `json:"factId"`
	Format            string    `json:"format"`
	TargetLength      string    `json:"targetLength"`
	Sections          []Section `json:"sections"`
	EstimatedDuration int       `json:"estimatedDuration"`
	CreatedAt         string    `json:"createdAt,omitempty"`
}

// Video describes a video record in a transport-friendly format.
type Video struct {
	ID           int64  `json:"id"`
	ScriptID     int64  `json:"scriptId"`
	Title        string `json:"title"`
	Duration     int    `json:"duration"`
	Resolution   string `json:"resolution"`
	VoiceType    string `json:"voiceType"`
	VisualStyle  string `json:"visualStyle"`
	Status       string `json:"status"`
	ArtifactPath string `json:"artifactPath,omitempty"`
	RenderError  string `json:"renderError,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Published describes a publish record in a transport-friendly format.
type Published struct {
	ID          int64  `json:"id"`
	VideoID     int64  `json:"videoId"`
	Title       string `json:"title"`
	Privacy     string `json:"privacy"`
	ExternalID  string `json:"externalId"`
	ExternalURL string `json:"externalUrl"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// BatchOutcome reports the per-item result of a batch operation.
type BatchOutcome struct {
	ID    int64  `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// GenerateFactsRequest asks for facts drawn from the curated pools.
type GenerateFactsRequest struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories,omitempty"`
}

// CreateFactRequest appends one manually supplied fact.
type CreateFactRequest struct {
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

// GenerateScriptsRequest scripts a batch of facts.
type GenerateScriptsRequest struct {
	FactIDs      []int64 `json:"factIds"`
	Format       string  `json:"format,omitempty"`
	TargetLength string  `json:"targetLength,omitempty"`
}

// AssembleVideosRequest renders a batch of scripts.
type AssembleVideosRequest struct {
	ScriptIDs   []int64 `json:"scriptIds"`
	Resolution  string  `json:"resolution,omitempty"`
	VoiceType   string  `json:"voiceType,omitempty"`
	VisualStyle string  `json:"visualStyle,omitempty"`
}

// PublishVideosRequest publishes a batch of videos.
type PublishVideosRequest struct {
	VideoIDs []int64 `json:"videoIds"`
	Privacy  string  `json:"privacy,omitempty"`
	Force    bool    `json:"force,omitempty"`
}

// PipelineRunRequest drives a full fact-to-published run.
type PipelineRunRequest struct {
	FactCount    int      `json:"factCount"`
	Categories   []string `json:"categories,omitempty"`
	Format       string   `json:"format,omitempty"`
	TargetLength string   `json:"targetLength,omitempty"`
	Resolution   string   `json:"resolution,omitempty"`
	VoiceType    string   `json:"voiceType,omitempty"`
	VisualStyle  string   `json:"visualStyle,omitempty"`
	Publish      bool     `json:"publish,omitempty"`
	Privacy      string   `json:"privacy,omitempty"`
}

// FactListResponse wraps a collection of facts.
type FactListResponse struct {
	Facts []Fact `json:"facts"`
}

// ScriptListResponse wraps a collection of scripts.
type ScriptListResponse struct {
	Scripts []Script `json:"scripts"`
}

// VideoListResponse wraps a collection of videos.
type VideoListResponse struct {
	Videos []Video `json:"videos"`
}

// PublishedListResponse wraps a collection of publish records.
type PublishedListResponse struct {
	Published []Published `json:"published"`
}

// GenerateScriptsResponse carries created scripts plus per-item outcomes.
type GenerateScriptsResponse struct {
	Scripts  []Script       `json:"scripts"`
	Outcomes []BatchOutcome `json:"outcomes"`
}

// AssembleVideosResponse carries created videos plus per-item outcomes.
type AssembleVideosResponse struct {
	Videos   []Video        `json:"videos"`
	Outcomes []BatchOutcome `json:"outcomes"`
}

// PublishVideosResponse carries publish records plus per-item outcomes.
type PublishVideosResponse struct {
	Published []Published    `json:"published"`
	Outcomes  []BatchOutcome `json:"outcomes"`
}

// PipelineRunResponse reports every stage of a pipeline run.
type PipelineRunResponse struct {
	Facts           []Fact         `json:"facts"`
	Scripts         []Script       `json:"scripts"`
	Videos          []Video        `json:"videos"`
	Published       []Published    `json:"published"`
	ScriptOutcomes  []BatchOutcome `json:"scriptOutcomes,omitempty"`
	VideoOutcomes   []BatchOutcome `json:"videoOutcomes,omitempty"`
	PublishOutcomes []BatchOutcome `json:"publishOutcomes,omitempty"`
	DurationSeconds float64        `json:"durationSeconds"`
}

// FormatInfo describes a script format for listings.
type FormatInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StyleInfo describes a visual style preset for listings.
type StyleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogStats counts records per store.
type CatalogStats struct {
	Facts     int `json:"facts"`
	Scripts   int `json:"scripts"`
	Videos    int `json:"videos"`
	Published int `json:"published"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool         `json:"running"`
	PID          int          `json:"pid"`
	CatalogPath  string       `json:"catalogPath"`
	LockFilePath string       `json:"lockFilePath"`
	Stats        CatalogStats `json:"stats"`
}

// HealthReport mirrors catalog database diagnostics.
type HealthReport struct {
	Healthy          bool     `json:"healthy"`
	DBPath           string   `json:"dbPath"`
	DatabaseExists   bool     `json:"databaseExists"`
	DatabaseReadable bool     `json:"databaseReadable"`
	SchemaVersion    string   `json:"schemaVersion,omitempty"`
	TablesPresent    []string `json:"tablesPresent,omitempty"`
	MissingTables    []string `json:"missingTables,omitempty"`
	IntegrityCheck   bool     `json:"integrityCheck"`
	TotalRecords     int      `json:"totalRecords"`
	Error            string   `json:"error,omitempty"`
}
