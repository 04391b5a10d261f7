package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"reel/internal/config"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store provides persistent storage for pipeline records using SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a store handle for the catalog database under the
// configured data directory. Call Open before use.
func NewStore(cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	dataDir, err := config.ExpandPath(cfg.Paths.DataDir)
	if err != nil {
		return nil, fmt.Errorf("expand data directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dbPath: filepath.Join(dataDir, "catalog.db")}, nil
}

// Open initializes the database connection and ensures the schema exists.
func (s *Store) Open(ctx context.Context) error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// Serialize access through a single connection; modernc.org/sqlite
	// rejects concurrent writers on separate connections.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return fmt.Errorf("apply %s: %w", pragma, err)
		}
	}

	s.db = db
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DBPath returns the filesystem path of the catalog database.
func (s *Store) DBPath() string {
	return s.dbPath
}

// CreateFact appends a fact record and assigns its id and creation time.
func (s *Store) CreateFact(ctx context.Context, fact *Fact) error {
	fact.CreatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO facts (content, category, created_at) VALUES (?, ?, ?)",
		fact.Content, fact.Category, fact.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert fact: %w", err)
	}
	fact.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("fact id: %w", err)
	}
	return nil
}

// GetFact fetches a single fact by id.
func (s *Store) GetFact(ctx context.Context, id int64) (*Fact, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, content, category, created_at FROM facts WHERE id = ?", id)
	fact, err := scanFact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fact %d: %w", id, ErrNotFound)
	}
	return fact, err
}

// ListFacts returns facts ordered by ascending id, optionally filtered by
// category. A non-positive limit returns all matching records.
func (s *Store) ListFacts(ctx context.Context, category string, limit int) ([]*Fact, error) {
	query := "SELECT id, content, category, created_at FROM facts"
	args := []any{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY id ASC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var facts []*Fact
	for rows.Next() {
		fact, err := scanFact(rows)
		if err != nil {
			return nil, err
		}
		facts = append(facts, fact)
	}
	return facts, rows.Err()
}

// CreateScript appends a script record and assigns its id and creation time.
func (s *Store) CreateScript(ctx context.Context, script *Script) error {
	sections, err := json.Marshal(script.Sections)
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}
	script.CreatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO scripts (fact_id, format, target_length, sections_json, estimated_duration, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		script.FactID, script.Format, script.TargetLength, string(sections),
		script.EstimatedDuration, script.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert script: %w", err)
	}
	script.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("script id: %w", err)
	}
	return nil
}

// GetScript fetches a single script by id.
func (s *Store) GetScript(ctx context.Context, id int64) (*Script, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, fact_id, format, target_length, sections_json, estimated_duration, created_at
		 FROM scripts WHERE id = ?`, id)
	script, err := scanScript(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("script %d: %w", id, ErrNotFound)
	}
	return script, err
}

// ListScripts returns scripts ordered by ascending id.
func (s *Store) ListScripts(ctx context.Context) ([]*Script, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fact_id, format, target_length, sections_json, estimated_duration, created_at
		 FROM scripts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scripts []*Script
	for rows.Next() {
		script, err := scanScript(rows)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}
	return scripts, rows.Err()
}

// CreateVideo appends a video record and assigns its id and creation time.
func (s *Store) CreateVideo(ctx context.Context, video *Video) error {
	video.CreatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO videos (script_id, title, duration, resolution, voice_type, visual_style, status, artifact_path, render_error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		video.ScriptID, video.Title, video.Duration, video.Resolution,
		video.VoiceType, video.VisualStyle, string(video.Status),
		nullableString(video.ArtifactPath), nullableString(video.RenderError),
		video.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	video.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("video id: %w", err)
	}
	return nil
}

// GetVideo fetches a single video by id.
func (s *Store) GetVideo(ctx context.Context, id int64) (*Video, error) {
	row := s.db.QueryRowContext(ctx, selectVideo+" WHERE id = ?", id)
	video, err := scanVideo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("video %d: %w", id, ErrNotFound)
	}
	return video, err
}

// ListVideos returns videos ordered by ascending id, optionally filtered
// by status.
func (s *Store) ListVideos(ctx context.Context, status VideoStatus) ([]*Video, error) {
	query := selectVideo
	args := []any{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var videos []*Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

// LatestVideoForScript returns the most recently created video derived from
// the given script, or ErrNotFound when none exists. Ties on creation time
// resolve to the highest id.
func (s *Store) LatestVideoForScript(ctx context.Context, scriptID int64) (*Video, error) {
	row := s.db.QueryRowContext(ctx,
		selectVideo+" WHERE script_id = ? ORDER BY created_at DESC, id DESC LIMIT 1", scriptID)
	video, err := scanVideo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("video for script %d: %w", scriptID, ErrNotFound)
	}
	return video, err
}

// CreatePublished appends a published record and assigns its id and
// publication time.
func (s *Store) CreatePublished(ctx context.Context, pub *Published) error {
	pub.PublishedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO published (video_id, title, privacy, external_id, external_url, published_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		pub.VideoID, pub.Title, string(pub.Privacy), pub.ExternalID, pub.ExternalURL,
		pub.PublishedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert published: %w", err)
	}
	pub.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("published id: %w", err)
	}
	return nil
}

// GetPublished fetches a single published record by id.
func (s *Store) GetPublished(ctx context.Context, id int64) (*Published, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, video_id, title, privacy, external_id, external_url, published_at
		 FROM published WHERE id = ?`, id)
	pub, err := scanPublished(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("published %d: %w", id, ErrNotFound)
	}
	return pub, err
}

// ListPublished returns published records ordered by ascending id.
func (s *Store) ListPublished(ctx context.Context) ([]*Published, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, video_id, title, privacy, external_id, external_url, published_at
		 FROM published ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pubs []*Published
	for rows.Next() {
		pub, err := scanPublished(rows)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, pub)
	}
	return pubs, rows.Err()
}

// PublishedForVideo returns the existing publish record for a video, or
// ErrNotFound when the video has never been published.
func (s *Store) PublishedForVideo(ctx context.Context, videoID int64) (*Published, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, video_id, title, privacy, external_id, external_url, published_at
		 FROM published WHERE video_id = ? ORDER BY id ASC LIMIT 1`, videoID)
	pub, err := scanPublished(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("publish record for video %d: %w", videoID, ErrNotFound)
	}
	return pub, err
}

// Stats counts records in each store.
func (s *Store) Stats(ctx context.Context) (StoreStats, error) {
	var stats StoreStats
	counts := []struct {
		table string
		dest  *int
	}{
		{"facts", &stats.Facts},
		{"scripts", &stats.Scripts},
		{"videos", &stats.Videos},
		{"published", &stats.Published},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+c.table).Scan(c.dest); err != nil {
			return StoreStats{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return stats, nil
}

const selectVideo = `SELECT id, script_id, title, duration, resolution, voice_type, visual_style, status, artifact_path, render_error, created_at FROM videos`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFact(row rowScanner) (*Fact, error) {
	var fact Fact
	var createdAt string
	if err := row.Scan(&fact.ID, &fact.Content, &fact.Category, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan fact: %w", err)
	}
	fact.CreatedAt = parseTimestamp(createdAt)
	return &fact, nil
}

func scanScript(row rowScanner) (*Script, error) {
	var script Script
	var sections, createdAt string
	err := row.Scan(&script.ID, &script.FactID, &script.Format, &script.TargetLength,
		&sections, &script.EstimatedDuration, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan script: %w", err)
	}
	if err := json.Unmarshal([]byte(sections), &script.Sections); err != nil {
		return nil, fmt.Errorf("decode sections for script %d: %w", script.ID, err)
	}
	script.CreatedAt = parseTimestamp(createdAt)
	return &script, nil
}

func scanVideo(row rowScanner) (*Video, error) {
	var video Video
	var status, createdAt string
	var artifactPath, renderError sql.NullString
	err := row.Scan(&video.ID, &video.ScriptID, &video.Title, &video.Duration,
		&video.Resolution, &video.VoiceType, &video.VisualStyle, &status,
		&artifactPath, &renderError, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan video: %w", err)
	}
	video.Status = VideoStatus(status)
	video.ArtifactPath = artifactPath.String
	video.RenderError = renderError.String
	video.CreatedAt = parseTimestamp(createdAt)
	return &video, nil
}

func scanPublished(row rowScanner) (*Published, error) {
	var pub Published
	var privacy, publishedAt string
	err := row.Scan(&pub.ID, &pub.VideoID, &pub.Title, &privacy,
		&pub.ExternalID, &pub.ExternalURL, &publishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan published: %w", err)
	}
	pub.Privacy = Privacy(privacy)
	pub.PublishedAt = parseTimestamp(publishedAt)
	return &pub, nil
}

func parseTimestamp(value string) time.Time {
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts
	}
	ts, _ := time.Parse(time.RFC3339, value)
	return ts
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
