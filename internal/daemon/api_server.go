package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"reel/internal/api"
	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/logging"
	"reel/internal/pipeline"
	"reel/internal/scripts"
	"reel/internal/services"
	"reel/internal/videos"
)

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	if cfg == nil || d == nil {
		return nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil
	}

	srv := &apiServer{
		bind:   bind,
		logger: logger,
		daemon: d,
	}
	srv.server = &http.Server{
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *apiServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/facts", s.handleFacts)
	mux.HandleFunc("/api/facts/generate", s.handleGenerateFacts)
	mux.HandleFunc("/api/scripts", s.handleScripts)
	mux.HandleFunc("/api/scripts/generate", s.handleGenerateScripts)
	mux.HandleFunc("/api/scripts/formats", s.handleFormats)
	mux.HandleFunc("/api/videos", s.handleVideos)
	mux.HandleFunc("/api/videos/assemble", s.handleAssembleVideos)
	mux.HandleFunc("/api/videos/styles", s.handleStyles)
	mux.HandleFunc("/api/published", s.handlePublished)
	mux.HandleFunc("/api/publish", s.handlePublish)
	mux.HandleFunc("/api/pipeline/run", s.handlePipelineRun)
	return mux
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := s.daemon.Status(r.Context())
	s.writeJSON(w, http.StatusOK, api.DaemonStatus{
		Running:      status.Running,
		PID:          status.PID,
		CatalogPath:  status.CatalogPath,
		LockFilePath: status.LockFilePath,
		Stats:        api.FromStats(status.Stats),
	})
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	report := api.FromHealth(s.daemon.DatabaseHealth(r.Context()))
	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, report)
}

func (s *apiServer) handleFacts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		listed, err := s.daemon.Facts().List(r.Context(), category)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.FactListResponse{Facts: api.FromFacts(listed)})
	case http.MethodPost:
		var req api.CreateFactRequest
		if !s.decode(w, r, &req) {
			return
		}
		fact, err := s.daemon.Facts().Create(r.Context(), req.Content, req.Category)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusCreated, api.FromFact(fact))
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *apiServer) handleGenerateFacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.GenerateFactsRequest
	if !s.decode(w, r, &req) {
		return
	}
	generated, err := s.daemon.Facts().Generate(r.Context(), req.Count, req.Categories)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.FactListResponse{Facts: api.FromFacts(generated)})
}

func (s *apiServer) handleScripts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	listed, err := s.daemon.Scripts().List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.ScriptListResponse{Scripts: api.FromScripts(listed)})
}

func (s *apiServer) handleGenerateScripts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.GenerateScriptsRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, skipped, err := s.daemon.Scripts().GenerateBatch(r.Context(), req.FactIDs, scripts.GenerationConfig{
		Format:       req.Format,
		TargetLength: req.TargetLength,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.GenerateScriptsResponse{
		Scripts:  api.FromScripts(created),
		Outcomes: api.ScriptOutcomes(created, skipped),
	})
}

func (s *apiServer) handleFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	formats := scripts.Formats()
	out := make([]api.FormatInfo, 0, len(formats))
	for _, f := range formats {
		out = append(out, api.FormatInfo{Name: f.Name, Description: f.Description})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *apiServer) handleVideos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := catalog.VideoStatus(strings.TrimSpace(r.URL.Query().Get("status")))
	listed, err := s.daemon.Videos().List(r.Context(), status)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.VideoListResponse{Videos: api.FromVideos(listed)})
}

func (s *apiServer) handleAssembleVideos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.AssembleVideosRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, skipped, err := s.daemon.Videos().AssembleMany(r.Context(), req.ScriptIDs, videos.RenderSettings{
		Resolution:  req.Resolution,
		VoiceType:   req.VoiceType,
		VisualStyle: req.VisualStyle,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.AssembleVideosResponse{
		Videos:   api.FromVideos(created),
		Outcomes: api.VideoOutcomes(created, skipped),
	})
}

func (s *apiServer) handleStyles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	styles := videos.Styles()
	out := make([]api.StyleInfo, 0, len(styles))
	for _, style := range styles {
		out = append(out, api.StyleInfo{Name: style.Name, Description: style.Description})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *apiServer) handlePublished(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	listed, err := s.daemon.Publish().List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.PublishedListResponse{Published: api.FromPublishedList(listed)})
}

func (s *apiServer) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.PublishVideosRequest
	if !s.decode(w, r, &req) {
		return
	}
	privacy, err := s.daemon.Publish().ResolvePrivacy(req.Privacy)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	outcomes, err := s.daemon.Publish().PublishMany(r.Context(), req.VideoIDs, privacy, req.Force)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.PublishVideosResponse{
		Published: api.PublishedFromOutcomes(outcomes),
		Outcomes:  api.PublishOutcomes(outcomes),
	})
}

func (s *apiServer) handlePipelineRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.PipelineRunRequest
	if !s.decode(w, r, &req) {
		return
	}

	var privacy catalog.Privacy
	if req.Publish {
		resolved, err := s.daemon.Publish().ResolvePrivacy(req.Privacy)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		privacy = resolved
	}

	result, err := s.daemon.Pipeline().Run(r.Context(), pipeline.RunOptions{
		FactCount:    req.FactCount,
		Categories:   req.Categories,
		Format:       req.Format,
		TargetLength: req.TargetLength,
		Settings: videos.RenderSettings{
			Resolution:  req.Resolution,
			VoiceType:   req.VoiceType,
			VisualStyle: req.VisualStyle,
		},
		Publish: req.Publish,
		Privacy: privacy,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.PipelineRunResponse{
		Facts:           api.FromFacts(result.Facts),
		Scripts:         api.FromScripts(result.Scripts),
		Videos:          api.FromVideos(result.Videos),
		Published:       api.PublishedFromOutcomes(result.Outcomes),
		ScriptOutcomes:  api.ScriptOutcomes(result.Scripts, result.SkippedFacts),
		VideoOutcomes:   api.VideoOutcomes(result.Videos, result.SkippedScripts),
		PublishOutcomes: api.PublishOutcomes(result.Outcomes),
		DurationSeconds: result.Duration.Seconds(),
	})
}

func (s *apiServer) decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *apiServer) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch services.Kind(err) {
	case "validation":
		status = http.StatusBadRequest
	case "not_found":
		status = http.StatusNotFound
	case "already_published":
		status = http.StatusConflict
	case "publish", "external_tool":
		status = http.StatusBadGateway
	case "configuration":
		status = http.StatusInternalServerError
	}
	s.writeError(w, status, err.Error())
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String(logging.FieldComponent, "api-server"))
	}
	return logging.NewNop()
}
