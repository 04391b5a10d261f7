package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"reel/internal/config"
)

const userAgent = "Reel/0.1.0"

// Service defines the notification surface exposed to pipeline components.
type Service interface {
	NotifyPipelineStarted(ctx context.Context, factCount int) error
	NotifyPipelineCompleted(ctx context.Context, published, failed int, duration time.Duration) error
	NotifyVideoPublished(ctx context.Context, title, externalURL string) error
	NotifyError(ctx context.Context, err error, contextLabel string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		cfg:      cfg,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	cfg      *config.Config
}

func (n *ntfyService) NotifyPipelineStarted(ctx context.Context, factCount int) error {
	if !n.cfg.Notifications.Pipeline {
		return nil
	}
	data := payload{
		title:   "Reel - Pipeline Started",
		message: fmt.Sprintf("Started pipeline run for %d facts", factCount),
		tags:    []string{"reel", "pipeline", "started"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyPipelineCompleted(ctx context.Context, published, failed int, duration time.Duration) error {
	if !n.cfg.Notifications.Pipeline {
		return nil
	}
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}

	var title, message string
	if failed == 0 {
		title = "Reel - Pipeline Complete"
		message = fmt.Sprintf("Pipeline complete: %d videos published in %s", published, duration)
	} else {
		title = "Reel - Pipeline Complete (with errors)"
		message = fmt.Sprintf("Pipeline complete: %d published, %d failed in %s", published, failed, duration)
	}

	data := payload{
		title:   title,
		message: message,
		tags:    []string{"reel", "pipeline", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyVideoPublished(ctx context.Context, title, externalURL string) error {
	if !n.cfg.Notifications.Publish {
		return nil
	}
	title = strings.TrimSpace(title)
	message := fmt.Sprintf("Published: %s", title)
	if externalURL = strings.TrimSpace(externalURL); externalURL != "" {
		message = fmt.Sprintf("%s\n%s", message, externalURL)
	}
	data := payload{
		title:    "Reel - Video Published",
		message:  message,
		tags:     []string{"reel", "publish", "completed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	if !n.cfg.Notifications.Errors {
		return nil
	}
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" with ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "Reel - Error",
		message:  builder.String(),
		tags:     []string{"reel", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Reel - Test",
		message:  "Notification system test",
		tags:     []string{"reel", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyPipelineStarted(context.Context, int) error                       { return nil }
func (noopService) NotifyPipelineCompleted(context.Context, int, int, time.Duration) error { return nil }
func (noopService) NotifyVideoPublished(context.Context, string, string) error             { return nil }
func (noopService) NotifyError(context.Context, error, string) error                       { return nil }
func (noopService) TestNotification(context.Context) error                                 { return nil }
