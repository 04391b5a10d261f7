package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"strings"
	"sync"

	"reel/internal/api"
	"reel/internal/catalog"
	"reel/internal/daemon"
	"reel/internal/logging"
	"reel/internal/pipeline"
	"reel/internal/scripts"
	"reel/internal/videos"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// onStop, when set, is invoked after a Stop RPC so the host process
	// can exit its run loop.
	onStop func()
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger, onStop func()) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	server := &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpc.NewServer(),
		ctx:       serverCtx,
		cancel:    cancel,
		onStop:    onStop,
	}
	svc := &service{daemon: d, logger: logger, ctx: serverCtx, onStop: onStop}
	if err := server.rpcServer.RegisterName("Reel", svc); err != nil {
		cancel()
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}
	return server, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path), logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
	onStop func()
}

func (s *service) log() *slog.Logger {
	if s.logger == nil {
		return logging.NewNop()
	}
	return s.logger.With(logging.String(logging.FieldComponent, "ipc"))
}

func (s *service) Ping(_ PingRequest, resp *PingResponse) error {
	resp.PID = os.Getpid()
	return nil
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.log().Debug("daemon stop requested")
	s.daemon.Stop()
	resp.Stopped = true
	s.log().Info("daemon stopped via IPC")
	if s.onStop != nil {
		s.onStop()
	}
	return nil
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status(s.ctx)
	resp.Running = status.Running
	resp.PID = status.PID
	resp.CatalogPath = status.CatalogPath
	resp.LockPath = status.LockFilePath
	resp.FactCount = status.Stats.Facts
	resp.ScriptCount = status.Stats.Scripts
	resp.VideoCount = status.Stats.Videos
	resp.PublishCount = status.Stats.Published
	return nil
}

func (s *service) FactList(req FactListRequest, resp *FactListResponse) error {
	facts, err := s.daemon.Facts().List(s.ctx, req.Category)
	if err != nil {
		return err
	}
	resp.Facts = api.FromFacts(facts)
	return nil
}

func (s *service) FactCreate(req FactCreateRequest, resp *FactCreateResponse) error {
	fact, err := s.daemon.Facts().Create(s.ctx, req.Content, req.Category)
	if err != nil {
		return err
	}
	resp.Fact = api.FromFact(fact)
	return nil
}

func (s *service) FactGenerate(req FactGenerateRequest, resp *FactGenerateResponse) error {
	s.log().Debug("fact generation requested", logging.Int("count", req.Count))
	facts, err := s.daemon.Facts().Generate(s.ctx, req.Count, req.Categories)
	if err != nil {
		return err
	}
	resp.Facts = api.FromFacts(facts)
	return nil
}

func (s *service) ScriptList(_ ScriptListRequest, resp *ScriptListResponse) error {
	listed, err := s.daemon.Scripts().List(s.ctx)
	if err != nil {
		return err
	}
	resp.Scripts = api.FromScripts(listed)
	return nil
}

func (s *service) ScriptGenerate(req ScriptGenerateRequest, resp *ScriptGenerateResponse) error {
	s.log().Debug("script generation requested", logging.Int("fact_count", len(req.FactIDs)))
	created, skipped, err := s.daemon.Scripts().GenerateBatch(s.ctx, req.FactIDs, scripts.GenerationConfig{
		Format:       req.Format,
		TargetLength: req.TargetLength,
	})
	if err != nil {
		return err
	}
	resp.Scripts = api.FromScripts(created)
	resp.Outcomes = api.ScriptOutcomes(created, skipped)
	return nil
}

func (s *service) VideoList(req VideoListRequest, resp *VideoListResponse) error {
	listed, err := s.daemon.Videos().List(s.ctx, catalog.VideoStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		return err
	}
	resp.Videos = api.FromVideos(listed)
	return nil
}

func (s *service) VideoAssemble(req VideoAssembleRequest, resp *VideoAssembleResponse) error {
	s.log().Debug("video assembly requested", logging.Int("script_count", len(req.ScriptIDs)))
	created, skipped, err := s.daemon.Videos().AssembleMany(s.ctx, req.ScriptIDs, videos.RenderSettings{
		Resolution:  req.Resolution,
		VoiceType:   req.VoiceType,
		VisualStyle: req.VisualStyle,
	})
	if err != nil {
		return err
	}
	resp.Videos = api.FromVideos(created)
	resp.Outcomes = api.VideoOutcomes(created, skipped)
	return nil
}

func (s *service) Publish(req PublishRequest, resp *PublishResponse) error {
	s.log().Debug("publish requested", logging.Int("video_count", len(req.VideoIDs)))
	privacy, err := s.daemon.Publish().ResolvePrivacy(req.Privacy)
	if err != nil {
		return err
	}
	outcomes, err := s.daemon.Publish().PublishMany(s.ctx, req.VideoIDs, privacy, req.Force)
	if err != nil {
		return err
	}
	resp.Published = api.PublishedFromOutcomes(outcomes)
	resp.Outcomes = api.PublishOutcomes(outcomes)
	return nil
}

func (s *service) PublishedList(_ PublishedListRequest, resp *PublishedListResponse) error {
	listed, err := s.daemon.Publish().List(s.ctx)
	if err != nil {
		return err
	}
	resp.Published = api.FromPublishedList(listed)
	return nil
}

func (s *service) PipelineRun(req PipelineRunRequest, resp *PipelineRunResponse) error {
	s.log().Debug("pipeline run requested", logging.Int("fact_count", req.FactCount))

	var privacy catalog.Privacy
	if req.Publish {
		resolved, err := s.daemon.Publish().ResolvePrivacy(req.Privacy)
		if err != nil {
			return err
		}
		privacy = resolved
	}

	result, err := s.daemon.Pipeline().Run(s.ctx, pipeline.RunOptions{
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
		return err
	}
	resp.Facts = api.FromFacts(result.Facts)
	resp.Scripts = api.FromScripts(result.Scripts)
	resp.Videos = api.FromVideos(result.Videos)
	resp.Published = api.PublishedFromOutcomes(result.Outcomes)
	resp.ScriptOutcomes = api.ScriptOutcomes(result.Scripts, result.SkippedFacts)
	resp.VideoOutcomes = api.VideoOutcomes(result.Videos, result.SkippedScripts)
	resp.PublishOutcomes = api.PublishOutcomes(result.Outcomes)
	resp.DurationSeconds = result.Duration.Seconds()
	return nil
}

func (s *service) DatabaseHealth(_ DatabaseHealthRequest, resp *DatabaseHealthResponse) error {
	health := s.daemon.DatabaseHealth(s.ctx)
	resp.DBPath = health.DBPath
	resp.DatabaseExists = health.DatabaseExists
	resp.DatabaseReadable = health.DatabaseReadable
	resp.SchemaVersion = health.SchemaVersion
	resp.TablesPresent = append(resp.TablesPresent, health.TablesPresent...)
	resp.MissingTables = append(resp.MissingTables, health.MissingTables...)
	resp.IntegrityCheck = health.IntegrityCheck
	resp.TotalRecords = health.TotalRecords
	resp.Error = health.Error
	return nil
}

func (s *service) TestNotification(_ TestNotificationRequest, resp *TestNotificationResponse) error {
	if err := s.daemon.TestNotification(s.ctx); err != nil {
		resp.Sent = false
		resp.Message = err.Error()
		return nil
	}
	resp.Sent = true
	resp.Message = "test notification sent"
	return nil
}
