package catalog

import (
	"strings"
	"time"
)

// VideoStatus represents the rendering state of a video record.
type VideoStatus string

const (
	VideoStatusReady  VideoStatus = "Ready"
	VideoStatusFailed VideoStatus = "Failed"
)

// Privacy controls platform visibility of a published video.
type Privacy string

const (
	PrivacyPublic   Privacy = "Public"
	PrivacyUnlisted Privacy = "Unlisted"
	PrivacyPrivate  Privacy = "Private"
)

// ParsePrivacy maps free-form input onto a known privacy setting. Matching
// ignores case, so "unlisted" resolves the same as "Unlisted".
func ParsePrivacy(value string) (Privacy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "public":
		return PrivacyPublic, true
	case "unlisted":
		return PrivacyUnlisted, true
	case "private":
		return PrivacyPrivate, true
	default:
		return "", false
	}
}

// SectionType identifies a script section's role in the narration.
type SectionType string

const (
	SectionIntro      SectionType = "intro"
	SectionBody       SectionType = "body"
	SectionTransition SectionType = "transition"
	SectionOutro      SectionType = "outro"
)

// Fact is a short factual statement with a category tag.
type Fact struct {
	ID        int64
	Content   string
	Category  string
	CreatedAt time.Time
}

// Section is one timed narration segment of a script.
type Section struct {
	Type     SectionType `json:"type"`
	Text     string      `json:"text"`
	Duration int         `json:"duration"`
}

// Script is structured narration derived from a fact, split into timed
// sections ordered intro, body, transition, outro.
type Script struct {
	ID           int64
	FactID       int64
	Format       string
	TargetLength string
	Sections     []Section
	// EstimatedDuration is the exact sum of section durations in seconds,
	// not the raw parsed target length.
	EstimatedDuration int
	CreatedAt         time.Time
}

// Video is the metadata record for a rendered artifact derived from a script.
type Video struct {
	ID           int64
	ScriptID     int64
	Title        string
	Duration     int
	Resolution   string
	VoiceType    string
	VisualStyle  string
	Status       VideoStatus
	ArtifactPath string
	RenderError  string
	CreatedAt    time.Time
}

// Published records a video having been uploaded to the external platform.
type Published struct {
	ID          int64
	VideoID     int64
	Title       string
	Privacy     Privacy
	ExternalID  string
	ExternalURL string
	PublishedAt time.Time
}

// StoreStats counts records per store for status reporting.
type StoreStats struct {
	Facts     int
	Scripts   int
	Videos    int
	Published int
}

// DatabaseHealth captures diagnostic information about the catalog database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	SchemaVersion    string
	TablesPresent    []string
	MissingTables    []string
	IntegrityCheck   bool
	TotalRecords     int
	Error            string
}
