package catalog

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

var requiredTables = []string{"facts", "scripts", "videos", "published"}

// CheckHealth inspects the catalog database and reports on its condition.
// It never returns an error; failures are recorded in the result so callers
// can surface partial diagnostics.
func (s *Store) CheckHealth(ctx context.Context) DatabaseHealth {
	health := DatabaseHealth{DBPath: s.dbPath}

	if _, err := os.Stat(s.dbPath); err != nil {
		health.Error = fmt.Sprintf("database file not accessible: %v", err)
		return health
	}
	health.DatabaseExists = true

	if s.db == nil {
		health.Error = "store is not open"
		return health
	}

	if err := s.db.PingContext(ctx); err != nil {
		health.Error = fmt.Sprintf("database not readable: %v", err)
		return health
	}
	health.DatabaseReadable = true

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		health.SchemaVersion = "unknown"
	} else {
		health.SchemaVersion = strconv.Itoa(version)
	}

	present := make(map[string]bool, len(requiredTables))
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		health.Error = fmt.Sprintf("list tables: %v", err)
		return health
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			health.Error = fmt.Sprintf("scan table name: %v", err)
			return health
		}
		present[name] = true
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		health.Error = fmt.Sprintf("list tables: %v", err)
		return health
	}

	for _, table := range requiredTables {
		if present[table] {
			health.TablesPresent = append(health.TablesPresent, table)
		} else {
			health.MissingTables = append(health.MissingTables, table)
		}
	}

	var integrity string
	if err := s.db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&integrity); err == nil {
		health.IntegrityCheck = integrity == "ok"
	}

	if len(health.MissingTables) == 0 {
		if stats, err := s.Stats(ctx); err == nil {
			health.TotalRecords = stats.Facts + stats.Scripts + stats.Videos + stats.Published
		}
	}

	return health
}
