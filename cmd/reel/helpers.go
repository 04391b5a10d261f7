package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"reel/internal/ipc"
)

const tableTimeFormat = "2006-01-02 15:04"

// parseIDArgs converts positional CLI arguments into record identifiers.
func parseIDArgs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid record id %q", arg)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one record id is required")
	}
	return ids, nil
}

func truncate(value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}

func shortTimestamp(value string) string {
	parsed, err := time.Parse("2006-01-02T15:04:05.000Z07:00", value)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339, value); err != nil {
			return value
		}
	}
	return parsed.Local().Format(tableTimeFormat)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func buildFactRows(facts []ipc.Fact) [][]string {
	rows := make([][]string, 0, len(facts))
	for _, fact := range facts {
		rows = append(rows, []string{
			strconv.FormatInt(fact.ID, 10),
			fact.Category,
			truncate(fact.Content, 60),
			shortTimestamp(fact.CreatedAt),
		})
	}
	return rows
}

func buildScriptRows(items []ipc.Script) [][]string {
	rows := make([][]string, 0, len(items))
	for _, script := range items {
		rows = append(rows, []string{
			strconv.FormatInt(script.ID, 10),
			strconv.FormatInt(script.FactID, 10),
			script.Format,
			fmt.Sprintf("%ds", script.EstimatedDuration),
			strconv.Itoa(len(script.Sections)),
			shortTimestamp(script.CreatedAt),
		})
	}
	return rows
}

func buildVideoRows(items []ipc.Video) [][]string {
	rows := make([][]string, 0, len(items))
	for _, video := range items {
		detail := video.ArtifactPath
		if video.Status != "Ready" && video.RenderError != "" {
			detail = video.RenderError
		}
		rows = append(rows, []string{
			strconv.FormatInt(video.ID, 10),
			strconv.FormatInt(video.ScriptID, 10),
			truncate(video.Title, 40),
			video.Status,
			fmt.Sprintf("%ds", video.Duration),
			video.Resolution,
			truncate(detail, 50),
		})
	}
	return rows
}

func buildPublishedRows(items []ipc.Published) [][]string {
	rows := make([][]string, 0, len(items))
	for _, record := range items {
		rows = append(rows, []string{
			strconv.FormatInt(record.ID, 10),
			strconv.FormatInt(record.VideoID, 10),
			truncate(record.Title, 40),
			record.Privacy,
			record.ExternalURL,
			shortTimestamp(record.PublishedAt),
		})
	}
	return rows
}

func buildOutcomeRows(outcomes []ipc.BatchOutcome) [][]string {
	rows := make([][]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		rows = append(rows, []string{
			strconv.FormatInt(outcome.ID, 10),
			yesNo(outcome.OK),
			outcome.Error,
		})
	}
	return rows
}
