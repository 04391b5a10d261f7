package api

import (
	"time"

	"reel/internal/catalog"
	"reel/internal/publish"
	"reel/internal/scripts"
	"reel/internal/videos"
)

// FromFact converts a catalog fact to its API representation.
func FromFact(fact *catalog.Fact) Fact {
	if fact == nil {
		return Fact{}
	}
	return Fact{
		ID:        fact.ID,
		Content:   fact.Content,
		Category:  fact.Category,
		CreatedAt: FormatTime(fact.CreatedAt),
	}
}

// FromFacts converts a slice of catalog facts into API DTOs.
func FromFacts(facts []*catalog.Fact) []Fact {
	if len(facts) == 0 {
		return nil
	}
	out := make([]Fact, 0, len(facts))
	for _, fact := range facts {
		out = append(out, FromFact(fact))
	}
	return out
}

// FromScript converts a catalog script to its API representation.
func FromScript(script *catalog.Script) Script {
	if script == nil {
		return Script{}
	}
	sections := make([]Section, 0, len(script.Sections))
	for _, section := range script.Sections {
		sections = append(sections, Section{
			Type:     string(section.Type),
			Text:     section.Text,
			Duration: section.Duration,
		})
	}
	return Script{
		ID:                script.ID,
		FactID:            script.FactID,
		Format:            script.Format,
		TargetLength:      script.TargetLength,
		Sections:          sections,
		EstimatedDuration: script.EstimatedDuration,
		CreatedAt:         FormatTime(script.CreatedAt),
	}
}

// FromScripts converts a slice of catalog scripts into API DTOs.
func FromScripts(items []*catalog.Script) []Script {
	if len(items) == 0 {
		return nil
	}
	out := make([]Script, 0, len(items))
	for _, script := range items {
		out = append(out, FromScript(script))
	}
	return out
}

// FromVideo converts a catalog video to its API representation.
func FromVideo(video *catalog.Video) Video {
	if video == nil {
		return Video{}
	}
	return Video{
		ID:           video.ID,
		ScriptID:     video.ScriptID,
		Title:        video.Title,
		Duration:     video.Duration,
		Resolution:   video.Resolution,
		VoiceType:    video.VoiceType,
		VisualStyle:  video.VisualStyle,
		Status:       string(video.Status),
		ArtifactPath: video.ArtifactPath,
		RenderError:  video.RenderError,
		CreatedAt:    FormatTime(video.CreatedAt),
	}
}

// FromVideos converts a slice of catalog videos into API DTOs.
func FromVideos(items []*catalog.Video) []Video {
	if len(items) == 0 {
		return nil
	}
	out := make([]Video, 0, len(items))
	for _, video := range items {
		out = append(out, FromVideo(video))
	}
	return out
}

// FromPublished converts a publish record to its API representation.
func FromPublished(pub *catalog.Published) Published {
	if pub == nil {
		return Published{}
	}
	return Published{
		ID:          pub.ID,
		VideoID:     pub.VideoID,
		Title:       pub.Title,
		Privacy:     string(pub.Privacy),
		ExternalID:  pub.ExternalID,
		ExternalURL: pub.ExternalURL,
		PublishedAt: FormatTime(pub.PublishedAt),
	}
}

// FromPublishedList converts a slice of publish records into API DTOs.
func FromPublishedList(items []*catalog.Published) []Published {
	if len(items) == 0 {
		return nil
	}
	out := make([]Published, 0, len(items))
	for _, pub := range items {
		out = append(out, FromPublished(pub))
	}
	return out
}

// ScriptOutcomes merges created scripts and skips into per-item outcomes
// keyed by fact id.
func ScriptOutcomes(created []*catalog.Script, skipped []scripts.Skip) []BatchOutcome {
	out := make([]BatchOutcome, 0, len(created)+len(skipped))
	for _, script := range created {
		out = append(out, BatchOutcome{ID: script.FactID, OK: true})
	}
	for _, skip := range skipped {
		out = append(out, BatchOutcome{ID: skip.FactID, Error: errorText(skip.Err)})
	}
	return out
}

// VideoOutcomes merges assembled videos and skips into per-item outcomes
// keyed by script id.
func VideoOutcomes(created []*catalog.Video, skipped []videos.Skip) []BatchOutcome {
	out := make([]BatchOutcome, 0, len(created)+len(skipped))
	for _, video := range created {
		outcome := BatchOutcome{ID: video.ScriptID, OK: video.Status == catalog.VideoStatusReady}
		if video.RenderError != "" {
			outcome.Error = video.RenderError
		}
		out = append(out, outcome)
	}
	for _, skip := range skipped {
		out = append(out, BatchOutcome{ID: skip.ScriptID, Error: errorText(skip.Err)})
	}
	return out
}

// PublishOutcomes converts publish outcomes into the API shape, keyed by
// video id.
func PublishOutcomes(outcomes []publish.Outcome) []BatchOutcome {
	if len(outcomes) == 0 {
		return nil
	}
	out := make([]BatchOutcome, 0, len(outcomes))
	for _, outcome := range outcomes {
		dto := BatchOutcome{ID: outcome.VideoID, OK: outcome.Err == nil}
		if outcome.Err != nil {
			dto.Error = outcome.Err.Error()
		}
		out = append(out, dto)
	}
	return out
}

// PublishedFromOutcomes extracts the successful publish records.
func PublishedFromOutcomes(outcomes []publish.Outcome) []Published {
	var out []Published
	for _, outcome := range outcomes {
		if outcome.Err == nil && outcome.Published != nil {
			out = append(out, FromPublished(outcome.Published))
		}
	}
	return out
}

// FromHealth converts catalog diagnostics into the API shape.
func FromHealth(health catalog.DatabaseHealth) HealthReport {
	return HealthReport{
		Healthy:          health.Error == "" && len(health.MissingTables) == 0 && health.IntegrityCheck,
		DBPath:           health.DBPath,
		DatabaseExists:   health.DatabaseExists,
		DatabaseReadable: health.DatabaseReadable,
		SchemaVersion:    health.SchemaVersion,
		TablesPresent:    health.TablesPresent,
		MissingTables:    health.MissingTables,
		IntegrityCheck:   health.IntegrityCheck,
		TotalRecords:     health.TotalRecords,
		Error:            health.Error,
	}
}

// FromStats converts store counts into the API shape.
func FromStats(stats catalog.StoreStats) CatalogStats {
	return CatalogStats{
		Facts:     stats.Facts,
		Scripts:   stats.Scripts,
		Videos:    stats.Videos,
		Published: stats.Published,
	}
}

// FormatTime converts a time to RFC3339 or returns empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
